package registry

import (
	"context"

	"go.uber.org/fx"

	"github.com/aalemi-dev/schemakit/observability"
)

// FXModule is an fx.Module that provides and configures the schema registry store.
// This module registers the store with the Fx dependency injection framework,
// making it available to other components in the application.
//
// The module provides:
// 1. *Store (concrete type) for direct use
// 2. Registry interface for dependency injection
//
// Usage:
//
//	app := fx.New(
//	    registry.FXModule,
//	    fx.Invoke(func(r registry.Registry) {
//	        // wire r into the serialization engine
//	    }),
//	)
//
// A Logger and an observability.Observer are picked up from the container
// when present; both are optional.
var FXModule = fx.Module("registry",
	fx.Provide(
		NewStoreWithDI, // Provides *Store
		// Also provide the Registry interface
		fx.Annotate(
			func(s *Store) Registry { return s },
			fx.As(new(Registry)),
		),
	),
	fx.Invoke(RegisterRegistryLifecycle),
)

// StoreParams groups the dependencies needed to create a registry store
type StoreParams struct {
	fx.In

	Logger   Logger                 `optional:"true"`
	Observer observability.Observer `optional:"true"`
}

// NewStoreWithDI creates a new registry store using dependency injection.
// This function is designed to be used with Uber's fx dependency injection
// framework where dependencies are automatically provided via the StoreParams
// struct.
//
// Returns the concrete *Store type.
func NewStoreWithDI(params StoreParams) *Store {
	return NewStore(Config{
		Logger:   params.Logger,
		Observer: params.Observer,
	})
}

// RegistryLifecycleParams groups the dependencies needed for registry lifecycle management
type RegistryLifecycleParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Store     *Store
}

// RegisterRegistryLifecycle registers the store with the fx lifecycle system.
// The store is a plain in-memory structure with no connections to open or
// close; the hooks only log readiness and final size for operational insight.
//
// This function is automatically invoked by the FXModule and does not need
// to be called directly in application code.
func RegisterRegistryLifecycle(params RegistryLifecycleParams) {
	params.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			params.Store.logDebug(ctx, "schema registry ready", nil)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			params.Store.logDebug(ctx, "schema registry stopping", map[string]interface{}{
				"keys": params.Store.Count(),
			})
			return nil
		},
	})
}
