package app

import (
	"fmt"
	"log"
	"net/http"

	"github.com/km-arc/go-supply/framework/config"
	"github.com/km-arc/go-supply/framework/container"
	"github.com/km-arc/go-supply/framework/providers"
	"github.com/km-arc/go-supply/framework/routing"
	"github.com/km-arc/go-supply/framework/supply"
)

// Application is the top-level application container.
// It embeds the IoC Container and ProviderRegistry so user code can
// call app.Bind(), app.Singleton(), app.Register() directly —
// exactly like $app in Laravel's bootstrap/app.php — plus a supply
// Registry for classes constructed with caller-supplied arguments.
type Application struct {
	*container.Container
	Providers  *container.ProviderRegistry
	Blueprints *supply.Registry
}

// New creates and bootstraps the application.
func New(envFiles ...string) *Application {
	c := container.New()
	registry := container.NewProviderRegistry(c)

	app := &Application{
		Container:  c,
		Providers:  registry,
		Blueprints: supply.NewRegistry(),
	}

	// Register framework core providers (same order as Laravel)
	registry.Register(&providers.ConfigServiceProvider{EnvFiles: envFiles})
	registry.Register(&providers.RoutingServiceProvider{})
	registry.Register(&supply.ServiceProvider{Registry: app.Blueprints})

	return app
}

// Register adds a ServiceProvider to the application.
func (a *Application) Register(provider container.ServiceProvider) {
	a.Providers.Register(provider)
}

// Boot runs the Boot() phase on all providers.
func (a *Application) Boot() {
	a.Providers.Boot()
}

// ── Hybrid construction ───────────────────────────────────────────────────────

// Define registers a construction blueprint for an abstract.
//
//	_, err := app.Define("reports.service", NewReportService,
//	    supply.Supplied("secret"),
//	    supply.Resolved("reports.store"),
//	)
func (a *Application) Define(abstract string, ctor any, slots ...supply.Slot) (*supply.Blueprint, error) {
	return a.Blueprints.Define(abstract, ctor, slots...)
}

// MustDefine is Define for bootstrap wiring; it panics on error.
func (a *Application) MustDefine(abstract string, ctor any, slots ...supply.Slot) *supply.Blueprint {
	b, err := a.Define(abstract, ctor, slots...)
	if err != nil {
		panic(err.Error())
	}
	return b
}

// MakeWith constructs an abstract defined via Define, mixing
// container-resolved dependencies with the caller's values.
//
//	// Laravel: $app->makeWith(ReportService::class, ['secret' => $token])
//	svc, err := app.MakeWith("reports.service", supply.Values{"secret": token})
func (a *Application) MakeWith(abstract string, values supply.Values) (any, error) {
	return a.Blueprints.Create(a.Container, abstract, values)
}

// ── Accessors ─────────────────────────────────────────────────────────────────

// Config resolves *config.Config from the container.
func (a *Application) Config() *config.Config {
	return container.Resolve[*config.Config](a.Container, "config")
}

// Router resolves *routing.Router from the container.
func (a *Application) Router() *routing.Router {
	return container.Resolve[*routing.Router](a.Container, "router")
}

// Run boots the application (if needed) and starts the HTTP server.
func (a *Application) Run() {
	if !a.Providers.Booted() {
		a.Boot()
	}
	cfg := a.Config()
	router := a.Router()
	addr := ":" + cfg.App.Port
	fmt.Printf("🚀  %s running on http://localhost%s  [%s]\n",
		cfg.App.Name, addr, cfg.App.Env)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

// Environment returns APP_ENV value.
func (a *Application) Environment() string { return a.Config().App.Env }

func (a *Application) IsLocal() bool      { return a.Environment() == "local" }
func (a *Application) IsProduction() bool { return a.Environment() == "production" }
func (a *Application) IsTesting() bool    { return a.Environment() == "testing" }
func (a *Application) IsDebug() bool      { return a.Config().App.Debug }
func (a *Application) Version() string    { return "0.1.0" }
