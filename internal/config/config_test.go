package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/YDahdah/Nectar/internal/config"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadPath_Defaults(t *testing.T) {
	path := writeConfig(t, "ENV=local\n")

	cfg, err := config.LoadPath(path)
	require.NoError(t, err)

	require.Equal(t, "nectar-order-api", cfg.App.Name)
	require.Equal(t, "8080", cfg.HTTP.Port)
	require.Equal(t, "+96181353685", cfg.Notify.OwnerPhone)
	require.Equal(t, 15*time.Minute, cfg.RateLimit.CheckoutWindow)
	require.Equal(t, 5, cfg.RateLimit.CheckoutMax)
	require.Equal(t, config.StoreMemory, cfg.Newsletter.Store)
	require.False(t, cfg.MailEnabled())
}

func TestLoadPath_Overrides(t *testing.T) {
	path := writeConfig(t, `ENV=prod
HTTP_PORT=9999
RATE_LIMIT_CHECKOUT_MAX=50
NOTIFY_ORDER_EMAIL=owner@nectar.shop
SMTP_USER=orders@nectar.shop
SMTP_PASSWORD=app-password
`)

	cfg, err := config.LoadPath(path)
	require.NoError(t, err)

	require.Equal(t, "prod", cfg.Env)
	require.Equal(t, "9999", cfg.HTTP.Port)
	require.Equal(t, 50, cfg.RateLimit.CheckoutMax)
	require.Equal(t, "owner@nectar.shop", cfg.Notify.OrderEmail)
	require.True(t, cfg.MailEnabled())
}

func TestLoadPath_RejectsInvalidValues(t *testing.T) {
	for name, content := range map[string]string{
		"bad env":        "ENV=sandbox\n",
		"bad store":      "ENV=local\nNEWSLETTER_STORE=redis\n",
		"bad level":      "ENV=local\nLOGGER_LEVEL=verbose\n",
		"bad owner":      "ENV=local\nNOTIFY_OWNER_PHONE=81353685\n",
		"zero rl window": "ENV=local\nRATE_LIMIT_WINDOW=0s\n",
	} {
		t.Run(name, func(t *testing.T) {
			path := writeConfig(t, content)
			_, err := config.LoadPath(path)
			require.Error(t, err)
		})
	}
}

func TestLoadPath_MissingFile(t *testing.T) {
	_, err := config.LoadPath(filepath.Join(t.TempDir(), "missing.env"))
	require.Error(t, err)
}

func TestMailEnabled_PlaceholderCredentials(t *testing.T) {
	var cfg config.Config

	cfg.SMTP.User = "your-email@gmail.com"
	cfg.SMTP.Password = "secret"
	require.False(t, cfg.MailEnabled())

	cfg.SMTP.User = "someone@example.com"
	require.False(t, cfg.MailEnabled())

	cfg.SMTP.User = "orders@nectar.shop"
	require.True(t, cfg.MailEnabled())

	cfg.SMTP.Password = ""
	require.False(t, cfg.MailEnabled())
}
