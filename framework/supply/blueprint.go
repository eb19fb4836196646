package supply

import "reflect"

// ── Slots ─────────────────────────────────────────────────────────────────────

// Slot describes one constructor parameter of a blueprint: either resolved
// by the container under a binding key, or supplied by the caller under a
// token at creation time.
type Slot struct {
	abstract string
	token    string
	supplied bool
}

// Resolved declares a container-resolved parameter bound under abstract.
//
//	supply.Resolved("reports.store")
func Resolved(abstract string) Slot {
	return Slot{abstract: abstract}
}

// Supplied declares a caller-supplied parameter identified by token.
//
//	// Laravel: the ['secret' => ...] side of $app->makeWith(...)
//	supply.Supplied("secret")
func Supplied(token string) Slot {
	return Slot{token: token, supplied: true}
}

// Descriptor is the recorded (token, parameter index) pair for one
// caller-supplied slot.
type Descriptor struct {
	Token string
	Index int
}

// ── Blueprint ─────────────────────────────────────────────────────────────────

// Blueprint is the per-class construction metadata: a constructor function
// plus one Slot per constructor parameter, in parameter order. It replaces
// auto-wiring for classes that mix container-resolved and caller-supplied
// arguments — construction matches slots to parameters strictly by index,
// never by declaration order.
//
//	bp := supply.MustBlueprint("reports.service", NewReportService,
//	    supply.Supplied("secret"),
//	    supply.Resolved("reports.store"),
//	)
//
// Blueprints are written at bootstrap and read-only afterwards; Create
// never mutates one.
type Blueprint struct {
	name     string
	ctor     reflect.Value
	ctorType reflect.Type
	slots    []Slot
}

// NewBlueprint validates ctor against the declared slots and returns the
// blueprint. ctor must be a non-variadic function with exactly one slot per
// parameter, returning the instance or (instance, error).
func NewBlueprint(name string, ctor any, slots ...Slot) (*Blueprint, error) {
	if ctor == nil {
		return nil, ConstructorError{Name: name, Reason: "must not be nil"}
	}
	v := reflect.ValueOf(ctor)
	t := v.Type()
	if t.Kind() != reflect.Func {
		return nil, ConstructorError{Name: name, Reason: "must be a function, got " + t.String()}
	}
	if t.IsVariadic() {
		return nil, ConstructorError{Name: name, Reason: "must not be variadic"}
	}
	switch t.NumOut() {
	case 1:
	case 2:
		if !t.Out(1).Implements(errorType) {
			return nil, ConstructorError{Name: name, Reason: "second result must be error, got " + t.Out(1).String()}
		}
	default:
		return nil, ConstructorError{Name: name, Reason: "must return the instance or (instance, error)"}
	}
	if len(slots) != t.NumIn() {
		return nil, ArityError{Name: name, Want: t.NumIn(), Got: len(slots)}
	}

	b := &Blueprint{
		name:     name,
		ctor:     v,
		ctorType: t,
		slots:    make([]Slot, len(slots)),
	}
	copy(b.slots, slots)
	return b, nil
}

// MustBlueprint is like NewBlueprint but panics on error. Intended for
// bootstrap wiring, where a bad blueprint is a programming mistake.
func MustBlueprint(name string, ctor any, slots ...Slot) *Blueprint {
	b, err := NewBlueprint(name, ctor, slots...)
	if err != nil {
		panic(err.Error())
	}
	return b
}

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// Name returns the blueprint's container abstract.
func (b *Blueprint) Name() string { return b.name }

// Arity returns the constructor's parameter count.
func (b *Blueprint) Arity() int { return len(b.slots) }

// Annotate marks the parameter at index as caller-supplied under token.
// The index is bounds-checked eagerly; annotating an index that is already
// supplied overwrites its token (last write wins), so a parameter can never
// carry two descriptors.
//
//	// parameter 0 of an otherwise container-resolved constructor
//	err := bp.Annotate(0, "secret")
func (b *Blueprint) Annotate(index int, token string) error {
	if index < 0 || index >= len(b.slots) {
		return SlotRangeError{Name: b.name, Index: index, Arity: len(b.slots)}
	}
	b.slots[index] = Supplied(token)
	return nil
}

// Supplied returns the recorded descriptors of all caller-supplied slots,
// in parameter order.
func (b *Blueprint) Supplied() []Descriptor {
	out := make([]Descriptor, 0, len(b.slots))
	for i, s := range b.slots {
		if s.supplied {
			out = append(out, Descriptor{Token: s.token, Index: i})
		}
	}
	return out
}

// construct performs the single direct constructor call with the finished
// argument frame. A nil frame entry becomes the parameter's zero value
// (e.g. a nil interface collaborator).
func (b *Blueprint) construct(frame []any) (any, error) {
	in := make([]reflect.Value, len(frame))
	for i, arg := range frame {
		pt := b.ctorType.In(i)
		if arg == nil {
			in[i] = reflect.Zero(pt)
			continue
		}
		av := reflect.ValueOf(arg)
		if !av.Type().AssignableTo(pt) {
			return nil, ArgumentTypeError{
				Name:  b.name,
				Index: i,
				Want:  pt.String(),
				Got:   av.Type().String(),
			}
		}
		in[i] = av
	}

	out := b.ctor.Call(in)
	if len(out) == 2 && !out[1].IsNil() {
		return nil, out[1].Interface().(error)
	}
	return out[0].Interface(), nil
}
