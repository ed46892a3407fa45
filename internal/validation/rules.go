package validation

import (
	"regexp"

	"github.com/YDahdah/Nectar/internal/entity"
)

const (
	_minPhoneLen = 8
	_maxPhoneLen = 20
	_maxEmailLen = 255

	_minItems = 1
	_maxItems = 50

	_maxItemNameLen = 200
	_maxItemSizeLen = 50
	_minQuantity    = 1
	_maxQuantity    = 100
)

var (
	_nameRe  = regexp.MustCompile(`^[a-zA-Z\s'-]+$`)
	_emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	_phoneRe = regexp.MustCompile(`^[+]?[(]?[0-9]{1,4}[)]?[-\s.]?[(]?[0-9]{1,4}[)]?[-\s.]?[0-9]{1,9}$`)
)

// stringRule describes one trimmed string field of the order payload. The
// whole shape lives in this table so field bounds and patterns can be
// audited in one place; email, phone, items and pricing carry extra
// semantics and are checked separately in order.go.
type stringRule struct {
	field      string
	optional   bool
	min        int
	max        int
	pattern    *regexp.Regexp
	patternMsg string
	def        string

	get func(*RawOrder) (value string, present bool)
	set func(*entity.Order, string)
}

var orderStringRules = []stringRule{
	{
		field: "firstName", min: 1, max: 100,
		pattern:    _nameRe,
		patternMsg: "First name can only contain letters, spaces, hyphens, and apostrophes",
		get:        func(r *RawOrder) (string, bool) { return r.FirstName, r.FirstName != "" },
		set:        func(o *entity.Order, v string) { o.FirstName = v },
	},
	{
		field: "lastName", min: 1, max: 100,
		pattern:    _nameRe,
		patternMsg: "Last name can only contain letters, spaces, hyphens, and apostrophes",
		get:        func(r *RawOrder) (string, bool) { return r.LastName, r.LastName != "" },
		set:        func(o *entity.Order, v string) { o.LastName = v },
	},
	{
		field: "address", min: 5, max: 500,
		get: func(r *RawOrder) (string, bool) { return r.Address, r.Address != "" },
		set: func(o *entity.Order, v string) { o.Address = v },
	},
	{
		field: "city", min: 1, max: 100,
		get: func(r *RawOrder) (string, bool) { return r.City, r.City != "" },
		set: func(o *entity.Order, v string) { o.City = v },
	},
	{
		field: "caza", min: 1, max: 100,
		get: func(r *RawOrder) (string, bool) { return r.Caza, r.Caza != "" },
		set: func(o *entity.Order, v string) { o.Caza = v },
	},
	{
		field: "country", optional: true, min: 1, max: 100,
		def: entity.DefaultCountry,
		get: func(r *RawOrder) (string, bool) { return deref(r.Country), r.Country != nil },
		set: func(o *entity.Order, v string) { o.Country = v },
	},
	{
		field: "paymentMethod", optional: true, max: 100,
		def: entity.DefaultPaymentMethod,
		get: func(r *RawOrder) (string, bool) { return deref(r.PaymentMethod), r.PaymentMethod != nil },
		set: func(o *entity.Order, v string) { o.PaymentMethod = v },
	},
	{
		field: "shippingMethod", optional: true, max: 200,
		def: entity.DefaultShippingMethod,
		get: func(r *RawOrder) (string, bool) { return deref(r.ShippingMethod), r.ShippingMethod != nil },
		set: func(o *entity.Order, v string) { o.ShippingMethod = v },
	},
	{
		field: "notes", optional: true, max: 1000,
		get: func(r *RawOrder) (string, bool) { return deref(r.Notes), r.Notes != nil },
		set: func(o *entity.Order, v string) { o.Notes = v },
	},
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
