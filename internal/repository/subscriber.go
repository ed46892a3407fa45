// Package repository holds the newsletter subscriber stores. The memory
// store is the default; the postgres store is opt-in through config for
// deployments that want subscriptions to survive restarts.
package repository

import "context"

// SubscriberStore records newsletter signups. Add reports whether the
// email was newly added (false means it was already subscribed).
type SubscriberStore interface {
	Add(ctx context.Context, email string) (bool, error)
	Count(ctx context.Context) (int, error)
}
