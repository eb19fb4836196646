// Package supply ports Laravel's $app->makeWith to the go-supply container:
// constructing a class whose constructor mixes container-resolved
// dependencies with arguments only the caller knows at creation time
// (a request's bearer token, a per-tenant secret, a one-off parameter).
//
// Such a class cannot be a plain binding — the container has no provider
// for the runtime argument — and hand-building it throws away the
// container's wiring for everything else. Hybrid construction keeps both:
// the container resolves what it knows, the caller supplies the rest, and
// a single constructor call receives the merged argument list.
//
// # Declaring
//
// Each participating class registers a Blueprint: its constructor plus one
// slot per parameter, in order. A slot is either Resolved (a container
// binding key) or Supplied (a caller token):
//
//	bp := supply.MustBlueprint("reports.service", NewReportService,
//	    supply.Supplied("secret"),        // parameter 0 — caller-supplied
//	    supply.Resolved("reports.store"), // parameter 1 — container-resolved
//	)
//
// An existing all-Resolved blueprint can mark a parameter caller-supplied
// after the fact:
//
//	_ = bp.Annotate(0, "secret")
//
// Matching is strictly by parameter index — the order slots were declared
// or annotated in never decides which value lands where.
//
// # Wiring
//
// Add the ServiceProvider to the container's provider set. It binds the
// reserved placeholder (PlaceholderKey → Unset) that supplied slots resolve
// to during creation, and registers blueprints into a Registry:
//
//	reg := supply.NewRegistry()
//	providers.Register(&supply.ServiceProvider{Registry: reg, Blueprints: ...})
//
// # Creating
//
//	// Laravel: $app->makeWith(ReportService::class, ['secret' => $token])
//	svc, err := supply.Create[*ReportService](reg, c, "reports.service",
//	    supply.Values{"secret": token})
//
// Create resolves every slot through the container, overwrites supplied
// slots from Values, and calls the constructor once. A declared token
// missing from Values (or set to Unset) fails with MissingSuppliedError
// naming the token, before any construction; container failures propagate
// wrapped in ResolveError. Either way, no instance is observable on error.
//
// Creation calls are independent: each owns its argument frame, and the
// Registry is read-only once bootstrap finishes, so concurrent Create calls
// never cross-contaminate.
package supply
