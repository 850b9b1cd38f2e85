package registry

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"

	"github.com/aalemi-dev/schemakit/observability"
)

// testSchema is a stand-in for a schema-defining type; the registry treats
// handles as opaque, so identity is all that matters.
type testSchema struct {
	id string
}

func newStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(Config{})
}

// ── Register / Lookup ─────────────────────────────────────────────────────────

func TestRegisterAndLookup(t *testing.T) {
	t.Parallel()
	store := newStore(t)
	user := &testSchema{id: "user"}

	require.NoError(t, store.Register("UserSchema", user, "app/schemas"))

	got, err := store.Lookup("UserSchema")
	require.NoError(t, err)
	assert.Same(t, user, got)

	got, err = store.Lookup("app/schemas.UserSchema")
	require.NoError(t, err)
	assert.Same(t, user, got)
}

func TestLookup_NotFound(t *testing.T) {
	t.Parallel()
	store := newStore(t)

	_, err := store.Lookup("NeverRegistered")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "NeverRegistered")
	assert.Contains(t, err.Error(), "ensure its defining module is loaded")
}

func TestLookup_AmbiguousAcrossOrigins(t *testing.T) {
	t.Parallel()
	store := newStore(t)
	a := &testSchema{id: "a"}
	b := &testSchema{id: "b"}

	require.NoError(t, store.Register("Foo", a, "module/a"))
	require.NoError(t, store.Register("Foo", b, "module/b"))

	_, err := store.Lookup("Foo")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAmbiguous)
	assert.Contains(t, err.Error(), "fully qualified name")

	// Qualified names still resolve unambiguously.
	got, err := store.Lookup("module/b.Foo")
	require.NoError(t, err)
	assert.Same(t, b, got)
}

func TestRegister_SameOriginSupersedes(t *testing.T) {
	t.Parallel()
	store := newStore(t)
	v1 := &testSchema{id: "v1"}
	v2 := &testSchema{id: "v2"}

	require.NoError(t, store.Register("UserSchema", v1, "app/schemas"))
	require.NoError(t, store.Register("UserSchema", v2, "app/schemas"))

	// Short name sees only the newest definition.
	got, err := store.Lookup("UserSchema")
	require.NoError(t, err)
	assert.Same(t, v2, got)

	// The qualified entry keeps the full re-definition history.
	all, err := store.LookupAll("app/schemas.UserSchema")
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Same(t, v1, all[0])
	assert.Same(t, v2, all[1])
}

func TestRegister_DistinctOriginsAccumulate(t *testing.T) {
	t.Parallel()
	store := newStore(t)
	a := &testSchema{id: "a"}
	b := &testSchema{id: "b"}
	c := &testSchema{id: "c"}

	require.NoError(t, store.Register("Foo", a, "module/a"))
	require.NoError(t, store.Register("Foo", b, "module/b"))

	all, err := store.LookupAll("Foo")
	require.NoError(t, err)
	assert.Equal(t, []SchemaType{a, b}, all)

	// A same-origin re-registration resets the short-key entry to the new
	// definition only; the qualified key keeps the history.
	require.NoError(t, store.Register("Foo", c, "module/b"))

	all, err = store.LookupAll("Foo")
	require.NoError(t, err)
	assert.Equal(t, []SchemaType{c}, all)

	qualified, err := store.LookupAll("module/b.Foo")
	require.NoError(t, err)
	require.Len(t, qualified, 2)
	assert.Same(t, b, qualified[0])
	assert.Same(t, c, qualified[1])
}

func TestRegister_InvalidName(t *testing.T) {
	t.Parallel()
	store := newStore(t)

	err := store.Register("", &testSchema{}, "app/schemas")
	assert.ErrorIs(t, err, ErrInvalidName)

	err = store.Register("UserSchema", &testSchema{}, "")
	assert.ErrorIs(t, err, ErrInvalidName)

	assert.Equal(t, 0, store.Count())
}

// ── LookupAll ─────────────────────────────────────────────────────────────────

func TestLookupAll_ReturnsBothInRegistrationOrder(t *testing.T) {
	t.Parallel()
	store := newStore(t)
	a := &testSchema{id: "a"}
	b := &testSchema{id: "b"}

	require.NoError(t, store.Register("Foo", a, "module/a"))
	require.NoError(t, store.Register("Foo", b, "module/b"))

	short, err := store.LookupAll("Foo")
	require.NoError(t, err)
	assert.Equal(t, []SchemaType{a, b}, short)

	allA, err := store.LookupAll("module/a.Foo")
	require.NoError(t, err)
	assert.Equal(t, []SchemaType{a}, allA)

	allB, err := store.LookupAll("module/b.Foo")
	require.NoError(t, err)
	assert.Equal(t, []SchemaType{b}, allB)
}

func TestLookupAll_AmbiguousShortName(t *testing.T) {
	t.Parallel()
	store := newStore(t)
	v1 := &testSchema{id: "v1"}
	v2 := &testSchema{id: "v2"}

	// Same origin re-registration keeps the qualified key growing; the
	// qualified name is then itself a multi-candidate key that Lookup
	// refuses and LookupAll serves in order.
	require.NoError(t, store.Register("Bar", v1, "app"))
	require.NoError(t, store.Register("Bar", v2, "app"))

	_, err := store.Lookup("app.Bar")
	assert.ErrorIs(t, err, ErrAmbiguous)

	all, err := store.LookupAll("app.Bar")
	require.NoError(t, err)
	assert.Equal(t, []SchemaType{v1, v2}, all)
}

func TestLookupAll_NotFound(t *testing.T) {
	t.Parallel()
	store := newStore(t)

	_, err := store.LookupAll("Missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLookupAll_ReturnsCopy(t *testing.T) {
	t.Parallel()
	store := newStore(t)
	a := &testSchema{id: "a"}

	require.NoError(t, store.Register("Foo", a, "module/a"))

	all, err := store.LookupAll("Foo")
	require.NoError(t, err)
	all[0] = &testSchema{id: "mutated"}

	got, err := store.Lookup("Foo")
	require.NoError(t, err)
	assert.Same(t, a, got)
}

// ── Snapshot / Count / Reset ──────────────────────────────────────────────────

func TestSnapshot(t *testing.T) {
	t.Parallel()
	store := newStore(t)
	a := &testSchema{id: "a"}

	require.NoError(t, store.Register("Foo", a, "module/a"))

	snapshot := store.Snapshot()
	require.Len(t, snapshot, 2) // short + qualified
	assert.Equal(t, []SchemaType{a}, snapshot["Foo"])
	assert.Equal(t, []SchemaType{a}, snapshot["module/a.Foo"])

	// Mutating the snapshot must not affect the store.
	delete(snapshot, "Foo")
	_, err := store.Lookup("Foo")
	assert.NoError(t, err)
}

func TestCountAndReset(t *testing.T) {
	t.Parallel()
	store := newStore(t)

	require.NoError(t, store.Register("Foo", &testSchema{}, "module/a"))
	require.NoError(t, store.Register("Bar", &testSchema{}, "module/a"))
	assert.Equal(t, 4, store.Count())

	store.Reset()
	assert.Equal(t, 0, store.Count())

	_, err := store.Lookup("Foo")
	assert.ErrorIs(t, err, ErrNotFound)
}

// ── QualifiedName ─────────────────────────────────────────────────────────────

func TestQualifiedName(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "app/schemas.UserSchema", QualifiedName("app/schemas", "UserSchema"))
}

// ── WithObserver / WithLogger ─────────────────────────────────────────────────

type captureObserver struct {
	mu    sync.Mutex
	calls []observability.OperationContext
}

func (c *captureObserver) ObserveOperation(ctx observability.OperationContext) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls = append(c.calls, ctx)
}

func (c *captureObserver) operations() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	ops := make([]string, len(c.calls))
	for i, call := range c.calls {
		ops[i] = call.Operation
	}
	return ops
}

type captureLogger struct {
	debugCalled bool
	warnCalled  bool
	errorCalled bool
}

func (c *captureLogger) DebugWithContext(_ context.Context, _ string, _ error, _ ...map[string]interface{}) {
	c.debugCalled = true
}
func (c *captureLogger) WarnWithContext(_ context.Context, _ string, _ error, _ ...map[string]interface{}) {
	c.warnCalled = true
}
func (c *captureLogger) ErrorWithContext(_ context.Context, _ string, _ error, _ ...map[string]interface{}) {
	c.errorCalled = true
}

func TestWithObserverAndLogger_Chaining(t *testing.T) {
	t.Parallel()
	observer := &captureObserver{}
	logger := &captureLogger{}

	store := NewStore(Config{}).WithObserver(observer).WithLogger(logger)
	assert.Equal(t, observer, store.observer)
	assert.Equal(t, logger, store.logger)
}

func TestObserver_RegisterAndLookup(t *testing.T) {
	t.Parallel()
	observer := &captureObserver{}
	store := NewStore(Config{Observer: observer})

	require.NoError(t, store.Register("Foo", &testSchema{}, "module/a"))
	_, err := store.Lookup("Foo")
	require.NoError(t, err)
	_, _ = store.LookupAll("Foo")
	store.Reset()

	assert.Equal(t, []string{"register", "lookup", "lookup_all", "reset"}, observer.operations())
	for _, call := range observer.calls {
		assert.Equal(t, "registry", call.Component)
	}
}

func TestObserver_AmbiguousLookupMetadata(t *testing.T) {
	t.Parallel()
	observer := &captureObserver{}
	logger := &captureLogger{}
	store := NewStore(Config{Observer: observer, Logger: logger})

	require.NoError(t, store.Register("Foo", &testSchema{id: "a"}, "module/a"))
	require.NoError(t, store.Register("Foo", &testSchema{id: "b"}, "module/b"))

	_, err := store.Lookup("Foo")
	require.ErrorIs(t, err, ErrAmbiguous)
	assert.True(t, logger.warnCalled)

	last := observer.calls[len(observer.calls)-1]
	assert.Equal(t, "lookup", last.Operation)
	assert.Equal(t, true, last.Metadata["ambiguous"])
	assert.Equal(t, 2, last.Metadata["candidates"])
	assert.ErrorIs(t, last.Error, ErrAmbiguous)
}

func TestLogMethods_NoLogger(t *testing.T) {
	t.Parallel()
	store := NewStore(Config{})
	ctx := context.Background()
	// must not panic
	store.logDebug(ctx, "debug", nil)
	store.logWarn(ctx, "warn", nil)
}

// ── Concurrency ───────────────────────────────────────────────────────────────

func TestConcurrentRegisterAndLookup(t *testing.T) {
	t.Parallel()
	store := newStore(t)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			name := fmt.Sprintf("Schema%d", n)
			origin := fmt.Sprintf("module/%d", n)
			for j := 0; j < 100; j++ {
				_ = store.Register(name, &testSchema{id: name}, origin)
				_, _ = store.Lookup(name)
				_, _ = store.LookupAll(name)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 32, store.Count()) // 16 short + 16 qualified keys
}

// ── FXModule ──────────────────────────────────────────────────────────────────

func TestFXModule(t *testing.T) {
	var store *Store
	var reg Registry
	app := fxtest.New(t,
		FXModule,
		fx.Populate(&store, &reg),
	)
	app.RequireStart()
	t.Cleanup(func() { app.RequireStop() })

	require.NotNil(t, store)
	require.NotNil(t, reg)
	assert.Same(t, store, reg.(*Store))

	require.NoError(t, reg.Register("UserSchema", &testSchema{id: "user"}, "app/schemas"))
	got, err := reg.Lookup("UserSchema")
	require.NoError(t, err)
	assert.Equal(t, &testSchema{id: "user"}, got)
}

func TestFXModule_WithOptionalDependencies(t *testing.T) {
	observer := &captureObserver{}
	logger := &captureLogger{}

	var store *Store
	app := fxtest.New(t,
		fx.Provide(
			func() observability.Observer { return observer },
			func() Logger { return logger },
		),
		FXModule,
		fx.Populate(&store),
	)
	app.RequireStart()
	t.Cleanup(func() { app.RequireStop() })

	require.NoError(t, store.Register("Foo", &testSchema{}, "module/a"))
	assert.Equal(t, []string{"register"}, observer.operations())
	assert.True(t, logger.debugCalled)
}
