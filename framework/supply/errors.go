package supply

import "strconv"

// The binder's failure modes are typed structs rather than fmt.Errorf values
// so callers can switch on them (errors.As) and so the hot creation path
// never pays formatting costs to build an error it may discard.

// NotDefinedError is returned by Create when no blueprint has been
// registered under the requested name.
type NotDefinedError struct{ Name string }

// Error implements the error interface.
func (e NotDefinedError) Error() string {
	// Example: supply: no blueprint defined for "reports.service"
	return "supply: no blueprint defined for " + strconv.Quote(e.Name)
}

// DuplicateBlueprintError is returned when a blueprint is registered under
// a name that already has one.
type DuplicateBlueprintError struct{ Name string }

// Error implements the error interface.
func (e DuplicateBlueprintError) Error() string {
	// Example: supply: blueprint "reports.service" already defined
	return "supply: blueprint " + strconv.Quote(e.Name) + " already defined"
}

// ArityError is returned by NewBlueprint when the slot count does not match
// the constructor's parameter count.
type ArityError struct {
	Name string
	Want int // constructor parameter count
	Got  int // declared slot count
}

// Error implements the error interface.
func (e ArityError) Error() string {
	// Example: supply: blueprint "reports.service" declares 2 slots, constructor takes 3
	return "supply: blueprint " + strconv.Quote(e.Name) + " declares " +
		strconv.Itoa(e.Got) + " slots, constructor takes " + strconv.Itoa(e.Want)
}

// SlotRangeError is returned by Annotate when the parameter index lies
// outside the constructor's arity.
type SlotRangeError struct {
	Name  string
	Index int
	Arity int
}

// Error implements the error interface.
func (e SlotRangeError) Error() string {
	// Example: supply: blueprint "reports.service" has no parameter 3 (arity 2)
	return "supply: blueprint " + strconv.Quote(e.Name) + " has no parameter " +
		strconv.Itoa(e.Index) + " (arity " + strconv.Itoa(e.Arity) + ")"
}

// ConstructorError is returned by NewBlueprint when the constructor value
// is not a usable constructor function.
type ConstructorError struct {
	Name   string
	Reason string
}

// Error implements the error interface.
func (e ConstructorError) Error() string {
	// Example: supply: blueprint "reports.service" constructor must be a function, got int
	return "supply: blueprint " + strconv.Quote(e.Name) + " constructor " + e.Reason
}

// MissingSuppliedError is returned by Create when a declared supplied token
// has no entry (or an Unset entry) in the caller's Values. It is raised
// before construction, so no instance exists when the caller sees it.
type MissingSuppliedError struct {
	Name  string
	Token string
}

// Error implements the error interface.
func (e MissingSuppliedError) Error() string {
	// Example: supply: missing supplied value "secret" for "reports.service"
	return "supply: missing supplied value " + strconv.Quote(e.Token) +
		" for " + strconv.Quote(e.Name)
}

// ResolveError wraps a container failure hit while resolving one of a
// blueprint's slots. The container's own error is carried unchanged and
// reachable via errors.Unwrap / errors.As.
type ResolveError struct {
	Name     string
	Abstract string
	Err      error
}

// Error implements the error interface.
func (e ResolveError) Error() string {
	// Example: supply: resolving "clock" for "reports.service": container: ...
	return "supply: resolving " + strconv.Quote(e.Abstract) + " for " +
		strconv.Quote(e.Name) + ": " + e.Err.Error()
}

// Unwrap exposes the underlying container error.
func (e ResolveError) Unwrap() error { return e.Err }

// ResultTypeError is returned by the generic Create helper when the
// constructed instance is not the requested type.
type ResultTypeError struct {
	Name string
	Want string
	Got  string
}

// Error implements the error interface.
func (e ResultTypeError) Error() string {
	// Example: supply: "reports.service" constructed *main.Other, want *main.ReportService
	return "supply: " + strconv.Quote(e.Name) + " constructed " + e.Got + ", want " + e.Want
}

// ArgumentTypeError is returned by Create when a resolved or supplied value
// cannot be passed to the constructor parameter at its index.
type ArgumentTypeError struct {
	Name  string
	Index int
	Want  string
	Got   string
}

// Error implements the error interface.
func (e ArgumentTypeError) Error() string {
	// Example: supply: "reports.service" parameter 0 wants string, got int
	return "supply: " + strconv.Quote(e.Name) + " parameter " + strconv.Itoa(e.Index) +
		" wants " + e.Want + ", got " + e.Got
}
