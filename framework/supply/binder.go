package supply

import (
	"reflect"

	"github.com/km-arc/go-supply/framework/container"
)

// Values carries the caller-supplied constructor arguments for exactly one
// Create call, keyed by the tokens the blueprint declared.
//
//	// Laravel: $app->makeWith(ReportService::class, ['secret' => $token])
//	svc, err := reg.Create(c, "reports.service", supply.Values{"secret": token})
type Values map[string]any

// Create builds an instance of the named blueprint, mixing container-
// resolved and caller-supplied constructor arguments in one call.
//
// It runs in three phases:
//
//  1. Resolve: every slot is resolved through the container — resolved
//     slots under their own abstract, supplied slots under the reserved
//     placeholder binding (so a container missing the supply
//     ServiceProvider fails here, with the container's error wrapped in a
//     ResolveError).
//  2. Bind: each recorded descriptor overwrites its parameter index with
//     values[token]. A token that is absent, or explicitly set to Unset,
//     aborts with MissingSuppliedError before anything is constructed.
//  3. Construct: one direct constructor call with the finished frame,
//     bypassing the container.
//
// The non-supplied arguments are exactly what a plain container resolution
// of the same abstracts would produce; the supplied arguments are the
// caller's values, untouched. On any error no instance escapes. Create
// never retries.
//
// Each call owns its argument frame, so concurrent Create calls — same
// blueprint or not — cannot see each other's values.
func (r *Registry) Create(c *container.Container, name string, values Values) (any, error) {
	b, ok := r.Lookup(name)
	if !ok {
		return nil, NotDefinedError{Name: name}
	}

	frame := make([]any, len(b.slots))
	for i, s := range b.slots {
		abstract := s.abstract
		if s.supplied {
			abstract = PlaceholderKey
		}
		v, err := c.Get(abstract)
		if err != nil {
			return nil, ResolveError{Name: name, Abstract: abstract, Err: err}
		}
		frame[i] = v
	}

	for i, s := range b.slots {
		if !s.supplied {
			continue
		}
		v, ok := values[s.token]
		if !ok || v == Unset {
			return nil, MissingSuppliedError{Name: name, Token: s.token}
		}
		frame[i] = v
	}

	return b.construct(frame)
}

// Create is the generic form of Registry.Create, asserting the result type.
//
//	svc, err := supply.Create[*ReportService](reg, c, "reports.service", values)
func Create[T any](r *Registry, c *container.Container, name string, values Values) (T, error) {
	instance, err := r.Create(c, name, values)
	if err != nil {
		var zero T
		return zero, err
	}
	typed, ok := instance.(T)
	if !ok {
		var zero T
		got := "<nil>"
		if instance != nil {
			got = reflect.TypeOf(instance).String()
		}
		return zero, ResultTypeError{
			Name: name,
			Want: reflect.TypeOf(&zero).Elem().String(),
			Got:  got,
		}
	}
	return typed, nil
}
