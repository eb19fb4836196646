package supply_test

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/km-arc/go-supply/framework/container"
	"github.com/km-arc/go-supply/framework/supply"
)

// ── stubs ────────────────────────────────────────────────────────────────────

type database struct{ dsn string }

type vault struct {
	secret string
	db     *database
}

func newVault(secret string, db *database) *vault {
	return &vault{secret: secret, db: db}
}

// newContainer returns a container with the supply placeholder registered
// and a singleton "db" binding.
func newContainer() *container.Container {
	c := container.New()
	(&supply.ServiceProvider{}).Register(c)
	c.Singleton("db", func(c *container.Container) any {
		return &database{dsn: "mysql://localhost"}
	})
	return c
}

func defineVault(t *testing.T, reg *supply.Registry) {
	t.Helper()
	_, err := reg.Define("vault", newVault,
		supply.Supplied("secret"),
		supply.Resolved("db"),
	)
	if err != nil {
		t.Fatalf("Define: %v", err)
	}
}

// ── Completeness ─────────────────────────────────────────────────────────────

func TestCreate_SuppliedAndResolved(t *testing.T) {
	c := newContainer()
	reg := supply.NewRegistry()
	defineVault(t, reg)

	got, err := reg.Create(c, "vault", supply.Values{"secret": "hygge"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	v := got.(*vault)
	if v.secret != "hygge" {
		t.Errorf("secret: got %q, want 'hygge'", v.secret)
	}
	if v.db == nil || v.db.dsn != "mysql://localhost" {
		t.Errorf("db: got %+v, want the container's singleton", v.db)
	}
}

func TestCreate_NonSuppliedMatchesPlainResolution(t *testing.T) {
	c := newContainer()
	reg := supply.NewRegistry()
	defineVault(t, reg)

	got, err := reg.Create(c, "vault", supply.Values{"secret": "s"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	// The singleton the binder injected must be the very instance an
	// ordinary resolution yields.
	plain := container.Resolve[*database](c, "db")
	if got.(*vault).db != plain {
		t.Error("container-resolved argument differs from a plain Make of the same abstract")
	}
}

func TestCreate_TransientCollaborators(t *testing.T) {
	c := newContainer()
	c.Bind("db", func(c *container.Container) any { // rebind transient
		return &database{dsn: "mysql://localhost"}
	})
	reg := supply.NewRegistry()
	defineVault(t, reg)

	a, err := reg.Create(c, "vault", supply.Values{"secret": "a"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	b, err := reg.Create(c, "vault", supply.Values{"secret": "b"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if a.(*vault).db == b.(*vault).db {
		t.Error("transient binding should yield an independent instance per Create")
	}
}

func TestCreate_NoSuppliedSlots(t *testing.T) {
	c := newContainer()
	reg := supply.NewRegistry()
	_, err := reg.Define("db.holder",
		func(db *database) *vault { return &vault{db: db} },
		supply.Resolved("db"),
	)
	if err != nil {
		t.Fatalf("Define: %v", err)
	}

	// Degenerates to a plain container-managed creation; Values unused.
	got, err := reg.Create(c, "db.holder", nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if got.(*vault).db == nil {
		t.Error("db should have been container-resolved")
	}
}

// ── Fail-fast on missing token ───────────────────────────────────────────────

func TestCreate_MissingToken_Fails(t *testing.T) {
	c := newContainer()
	reg := supply.NewRegistry()
	defineVault(t, reg)

	_, err := reg.Create(c, "vault", supply.Values{})
	var missing supply.MissingSuppliedError
	if !errors.As(err, &missing) {
		t.Fatalf("Create: got %v, want MissingSuppliedError", err)
	}
	if missing.Token != "secret" {
		t.Errorf("Token: got %q, want 'secret'", missing.Token)
	}
	if missing.Name != "vault" {
		t.Errorf("Name: got %q, want 'vault'", missing.Name)
	}
}

func TestCreate_UnsetValue_CountsAsMissing(t *testing.T) {
	c := newContainer()
	reg := supply.NewRegistry()
	defineVault(t, reg)

	_, err := reg.Create(c, "vault", supply.Values{"secret": supply.Unset})
	var missing supply.MissingSuppliedError
	if !errors.As(err, &missing) {
		t.Fatalf("Create: got %v, want MissingSuppliedError", err)
	}
}

func TestCreate_MissingToken_NothingConstructed(t *testing.T) {
	c := newContainer()
	reg := supply.NewRegistry()

	calls := 0
	_, err := reg.Define("counting",
		func(secret string, db *database) *vault {
			calls++
			return &vault{secret: secret, db: db}
		},
		supply.Supplied("secret"),
		supply.Resolved("db"),
	)
	if err != nil {
		t.Fatalf("Define: %v", err)
	}

	if _, err := reg.Create(c, "counting", supply.Values{}); err == nil {
		t.Fatal("Create should fail without the secret")
	}
	if calls != 0 {
		t.Errorf("constructor ran %d times on a failed Create, want 0", calls)
	}
}

// ── Container failures ───────────────────────────────────────────────────────

func TestCreate_UnknownBlueprint(t *testing.T) {
	c := newContainer()
	reg := supply.NewRegistry()

	_, err := reg.Create(c, "nope", nil)
	var nd supply.NotDefinedError
	if !errors.As(err, &nd) {
		t.Fatalf("Create: got %v, want NotDefinedError", err)
	}
}

func TestCreate_PlaceholderNotRegistered(t *testing.T) {
	c := container.New() // no supply.ServiceProvider
	c.Singleton("db", func(c *container.Container) any { return &database{} })

	reg := supply.NewRegistry()
	defineVault(t, reg)

	_, err := reg.Create(c, "vault", supply.Values{"secret": "s"})
	var re supply.ResolveError
	if !errors.As(err, &re) {
		t.Fatalf("Create: got %v, want ResolveError", err)
	}
	if re.Abstract != supply.PlaceholderKey {
		t.Errorf("Abstract: got %q, want the placeholder key", re.Abstract)
	}
	var nb container.NotBoundError
	if !errors.As(err, &nb) {
		t.Error("ResolveError should wrap the container's NotBoundError")
	}
}

func TestCreate_ResolveFailurePropagates(t *testing.T) {
	c := container.New()
	(&supply.ServiceProvider{}).Register(c)
	// "db" deliberately unbound

	reg := supply.NewRegistry()
	defineVault(t, reg)

	_, err := reg.Create(c, "vault", supply.Values{"secret": "s"})
	var re supply.ResolveError
	if !errors.As(err, &re) {
		t.Fatalf("Create: got %v, want ResolveError", err)
	}
	if re.Abstract != "db" {
		t.Errorf("Abstract: got %q, want 'db'", re.Abstract)
	}
	var nb container.NotBoundError
	if !errors.As(err, &nb) || nb.Abstract != "db" {
		t.Errorf("wrapped error: got %v, want the container's NotBoundError for 'db'", err)
	}
}

func TestCreate_ConstructorErrorPropagates(t *testing.T) {
	c := newContainer()
	reg := supply.NewRegistry()

	boom := errors.New("bad wiring")
	_, err := reg.Define("failing",
		func(secret string) (*vault, error) { return nil, boom },
		supply.Supplied("secret"),
	)
	if err != nil {
		t.Fatalf("Define: %v", err)
	}

	_, err = reg.Create(c, "failing", supply.Values{"secret": "s"})
	if !errors.Is(err, boom) {
		t.Errorf("Create: got %v, want the constructor's error", err)
	}
}

func TestCreate_SuppliedWrongType(t *testing.T) {
	c := newContainer()
	reg := supply.NewRegistry()
	defineVault(t, reg)

	_, err := reg.Create(c, "vault", supply.Values{"secret": 42})
	var ate supply.ArgumentTypeError
	if !errors.As(err, &ate) {
		t.Fatalf("Create: got %v, want ArgumentTypeError", err)
	}
	if ate.Index != 0 {
		t.Errorf("Index: got %d, want 0", ate.Index)
	}
}

// ── Order independence ───────────────────────────────────────────────────────

func TestCreate_AnnotationOrderIrrelevant(t *testing.T) {
	type pair struct{ first, second string }
	ctor := func(first, second string) *pair { return &pair{first, second} }

	c := newContainer()

	// Same class, descriptors recorded in opposite orders.
	forward := supply.MustBlueprint("pair.fwd", ctor,
		supply.Resolved(""), supply.Resolved(""))
	if err := forward.Annotate(0, "a"); err != nil {
		t.Fatalf("Annotate: %v", err)
	}
	if err := forward.Annotate(1, "b"); err != nil {
		t.Fatalf("Annotate: %v", err)
	}

	backward := supply.MustBlueprint("pair.bwd", ctor,
		supply.Resolved(""), supply.Resolved(""))
	if err := backward.Annotate(1, "b"); err != nil {
		t.Fatalf("Annotate: %v", err)
	}
	if err := backward.Annotate(0, "a"); err != nil {
		t.Fatalf("Annotate: %v", err)
	}

	reg := supply.NewRegistry()
	if err := reg.Register(forward); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if err := reg.Register(backward); err != nil {
		t.Fatalf("Register: %v", err)
	}

	values := supply.Values{"a": "one", "b": "two"}
	for _, name := range []string{"pair.fwd", "pair.bwd"} {
		got, err := reg.Create(c, name, values)
		if err != nil {
			t.Fatalf("Create(%s): %v", name, err)
		}
		p := got.(*pair)
		if p.first != "one" || p.second != "two" {
			t.Errorf("%s: got (%q, %q), want values matched by index", name, p.first, p.second)
		}
	}
}

// ── Isolation ────────────────────────────────────────────────────────────────

func TestCreate_ConcurrentCallsDoNotInterfere(t *testing.T) {
	c := newContainer()
	reg := supply.NewRegistry()
	defineVault(t, reg)

	// Warm the singleton so every call shares one store of collaborators.
	if _, err := c.Get("db"); err != nil {
		t.Fatalf("Get: %v", err)
	}

	const n = 32
	var wg sync.WaitGroup
	errs := make(chan error, n)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			secret := fmt.Sprintf("secret-%d", i)
			got, err := reg.Create(c, "vault", supply.Values{"secret": secret})
			if err != nil {
				errs <- err
				return
			}
			if got.(*vault).secret != secret {
				errs <- fmt.Errorf("call %d saw secret %q", i, got.(*vault).secret)
			}
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Error(err)
	}
}

// ── Generic helper ───────────────────────────────────────────────────────────

func TestCreateGeneric(t *testing.T) {
	c := newContainer()
	reg := supply.NewRegistry()
	defineVault(t, reg)

	v, err := supply.Create[*vault](reg, c, "vault", supply.Values{"secret": "hygge"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if v.secret != "hygge" {
		t.Errorf("secret: got %q, want 'hygge'", v.secret)
	}
}

func TestCreateGeneric_WrongType(t *testing.T) {
	c := newContainer()
	reg := supply.NewRegistry()
	defineVault(t, reg)

	_, err := supply.Create[*database](reg, c, "vault", supply.Values{"secret": "s"})
	var rte supply.ResultTypeError
	if !errors.As(err, &rte) {
		t.Fatalf("Create: got %v, want ResultTypeError", err)
	}
}
