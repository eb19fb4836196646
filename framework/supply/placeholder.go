package supply

import "github.com/km-arc/go-supply/framework/container"

// PlaceholderKey is the reserved container abstract that supplied slots
// resolve through during phase 1 of Create. ServiceProvider binds it to
// Unset; user code must not rebind it.
const PlaceholderKey = "supply.placeholder"

type unsetValue struct{}

// String makes the sentinel print readably in logs and test failures.
func (unsetValue) String() string { return "supply.Unset" }

// Unset is the "not yet supplied" sentinel. It fills supplied slots during
// container resolution until the binder overwrites them, and a Values entry
// explicitly set to Unset counts as missing.
var Unset = unsetValue{}

// ── ServiceProvider ───────────────────────────────────────────────────────────

// ServiceProvider wires hybrid construction into a container. It must be
// registered before any annotated class is created; without it, Create
// fails at the resolve phase because the placeholder binding is absent.
//
//	reg := supply.NewRegistry()
//	providers.Register(&supply.ServiceProvider{
//	    Registry:   reg,
//	    Blueprints: []*supply.Blueprint{reportServiceBlueprint},
//	})
type ServiceProvider struct {
	container.BaseProvider

	// Registry receives Blueprints at registration. Optional when the
	// blueprints were already registered elsewhere.
	Registry *Registry

	// Blueprints to register. Optional.
	Blueprints []*Blueprint
}

// Register binds the placeholder and registers any carried blueprints.
// A duplicate blueprint here is a bootstrap wiring mistake and panics,
// matching the container's own registration ergonomics.
func (p *ServiceProvider) Register(app *container.Container) {
	app.Instance(PlaceholderKey, Unset)

	if p.Registry == nil {
		return
	}
	for _, b := range p.Blueprints {
		if err := p.Registry.Register(b); err != nil {
			panic(err.Error())
		}
	}
}
