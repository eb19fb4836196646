package app_test

import (
	"errors"
	"testing"

	"github.com/km-arc/go-supply/framework/app"
	"github.com/km-arc/go-supply/framework/container"
	"github.com/km-arc/go-supply/framework/supply"
)

// ── stubs ────────────────────────────────────────────────────────────────────

type mailer struct{ host string }

type notifier struct {
	apiKey string
	mail   *mailer
}

func newNotifier(apiKey string, mail *mailer) *notifier {
	return &notifier{apiKey: apiKey, mail: mail}
}

type mailProvider struct{ container.BaseProvider }

func (p *mailProvider) Register(c *container.Container) {
	c.Singleton("mailer", func(c *container.Container) any {
		return &mailer{host: "smtp.local"}
	})
}

// ── MakeWith ─────────────────────────────────────────────────────────────────

func TestApplication_MakeWith(t *testing.T) {
	a := app.New()
	a.Register(&mailProvider{})
	a.MustDefine("notifier", newNotifier,
		supply.Supplied("apiKey"),
		supply.Resolved("mailer"),
	)
	a.Boot()

	got, err := a.MakeWith("notifier", supply.Values{"apiKey": "k-123"})
	if err != nil {
		t.Fatalf("MakeWith: %v", err)
	}

	n := got.(*notifier)
	if n.apiKey != "k-123" {
		t.Errorf("apiKey: got %q, want 'k-123'", n.apiKey)
	}
	if n.mail == nil || n.mail.host != "smtp.local" {
		t.Errorf("mailer: got %+v, want the provider's singleton", n.mail)
	}
}

func TestApplication_MakeWith_MissingValue(t *testing.T) {
	a := app.New()
	a.Register(&mailProvider{})
	a.MustDefine("notifier", newNotifier,
		supply.Supplied("apiKey"),
		supply.Resolved("mailer"),
	)
	a.Boot()

	_, err := a.MakeWith("notifier", supply.Values{})
	var missing supply.MissingSuppliedError
	if !errors.As(err, &missing) {
		t.Fatalf("MakeWith: got %v, want MissingSuppliedError", err)
	}
	if missing.Token != "apiKey" {
		t.Errorf("Token: got %q, want 'apiKey'", missing.Token)
	}
}

// ── Define ───────────────────────────────────────────────────────────────────

func TestApplication_Define_Duplicate(t *testing.T) {
	a := app.New()
	if _, err := a.Define("notifier", newNotifier,
		supply.Supplied("apiKey"), supply.Resolved("mailer")); err != nil {
		t.Fatalf("Define: %v", err)
	}

	_, err := a.Define("notifier", newNotifier,
		supply.Supplied("apiKey"), supply.Resolved("mailer"))
	var dup supply.DuplicateBlueprintError
	if !errors.As(err, &dup) {
		t.Fatalf("Define: got %v, want DuplicateBlueprintError", err)
	}
}

func TestApplication_MustDefine_PanicsOnError(t *testing.T) {
	a := app.New()
	defer func() {
		if recover() == nil {
			t.Error("MustDefine should panic for an invalid blueprint")
		}
	}()
	a.MustDefine("bad", 42)
}

// ── Bootstrap surface ────────────────────────────────────────────────────────

func TestApplication_CoreBindings(t *testing.T) {
	t.Setenv("APP_ENV", "testing")

	a := app.New()
	a.Boot()

	if a.Config() == nil {
		t.Fatal("Config should resolve")
	}
	if a.Router() == nil {
		t.Fatal("Router should resolve")
	}
	if !a.Bound(supply.PlaceholderKey) {
		t.Error("the supply placeholder should be bound at bootstrap")
	}
	if !a.IsTesting() {
		t.Errorf("Environment: got %q, want 'testing'", a.Environment())
	}
}
