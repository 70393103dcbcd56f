// Package resolver turns partially populated entities, carrying only their
// key, into fully populated ones by dispatching to the service that owns
// the entity kind. Dispatch is by runtime type against a registry filled
// once at startup; adding an entity kind is a registration, not a new
// branch.
package resolver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"reflect"
)

var (
	// ErrUnknownModelType is returned when no lookup was registered for
	// the model's type. This is a wiring error, not a runtime condition.
	ErrUnknownModelType = errors.New("no lookup registered for model type")

	// ErrUnsupportedBatch is returned when a batch mixes model types. A
	// batch resolves through exactly one collaborator, so it must be
	// homogeneous.
	ErrUnsupportedBatch = errors.New("batch resolution requires models of a single type")
)

// Keyed is implemented by every resolvable entity: Key returns the
// identifier the owning service looks the entity up by (a uuid for most
// kinds, the name for categories).
type Keyed interface {
	Key() string
}

type lookup struct {
	one  func(ctx context.Context, key string) (Keyed, error)
	many func(ctx context.Context, keys []string) ([]Keyed, error)
}

// Resolver dispatches entities to their per-type lookups.
type Resolver struct {
	bindings map[reflect.Type]lookup
	logger   *slog.Logger
}

// New creates an empty resolver. Register the supported entity kinds
// before first use; registration is not safe to interleave with resolving.
func New(logger *slog.Logger) *Resolver {
	return &Resolver{
		bindings: make(map[reflect.Type]lookup),
		logger:   logger.With("component", "entity_resolver"),
	}
}

// Register binds a model type to its single and batch lookups. The batch
// lookup is expected to omit missing keys rather than fail. Registering a
// type twice replaces the earlier binding.
func Register[T Keyed](
	r *Resolver,
	one func(ctx context.Context, key string) (T, error),
	many func(ctx context.Context, keys []string) ([]T, error),
) {
	var zero T
	r.bindings[reflect.TypeOf(zero)] = lookup{
		one: func(ctx context.Context, key string) (Keyed, error) {
			return one(ctx, key)
		},
		many: func(ctx context.Context, keys []string) ([]Keyed, error) {
			items, err := many(ctx, keys)
			if err != nil {
				return nil, err
			}
			resolved := make([]Keyed, 0, len(items))
			for _, item := range items {
				resolved = append(resolved, item)
			}
			return resolved, nil
		},
	}
}

// ResolveOne fetches the fully populated entity behind the model's key.
// Lookup errors (including not-found) propagate untouched.
func (r *Resolver) ResolveOne(ctx context.Context, model Keyed) (Keyed, error) {
	binding, err := r.bindingFor(ctx, model)
	if err != nil {
		return nil, err
	}

	return binding.one(ctx, model.Key())
}

// ResolveMany fetches a homogeneous batch through a single collaborator
// call. An empty batch is returned unchanged without dispatching; a batch
// mixing model types fails with ErrUnsupportedBatch before any lookup
// runs. Keys missing on the remote side are omitted from the result.
func (r *Resolver) ResolveMany(ctx context.Context, models []Keyed) ([]Keyed, error) {
	if len(models) == 0 {
		return models, nil
	}

	binding, err := r.bindingFor(ctx, models[0])
	if err != nil {
		return nil, err
	}

	first := reflect.TypeOf(models[0])
	keys := make([]string, 0, len(models))
	for _, model := range models {
		if reflect.TypeOf(model) != first {
			err = fmt.Errorf("%w: %s and %s", ErrUnsupportedBatch, first, reflect.TypeOf(model))
			r.logger.Error("Batch resolution rejected", "error", err)
			return nil, err
		}
		keys = append(keys, model.Key())
	}

	return binding.many(ctx, keys)
}

func (r *Resolver) bindingFor(ctx context.Context, model Keyed) (lookup, error) {
	modelType := reflect.TypeOf(model)
	binding, ok := r.bindings[modelType]
	if !ok {
		err := fmt.Errorf("%w: %s", ErrUnknownModelType, modelType)
		r.logger.ErrorContext(ctx, "Entity resolution failed", "error", err)
		return lookup{}, err
	}
	return binding, nil
}
