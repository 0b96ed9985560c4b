package sources

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/de-tools/sku-atlas/pkg/models/store"
	"github.com/de-tools/sku-atlas/pkg/services/config"
	"golang.org/x/exp/maps"
)

// Source yields one raw order-line table per fetch. Implementations cover
// local files, object stores and SQL warehouses; windowing and validation
// happen downstream in the ingestor.
type Source interface {
	// Name identifies the source in logs and dataset records.
	Name() string
	// Fetch materializes the full table in memory.
	Fetch(ctx context.Context) (*store.RawTable, error)
}

// Factory is a function type that creates a Source from a named profile
type Factory func(ctx context.Context, profile config.Profile) (Source, error)

// Registry manages platform source factories
type Registry interface {
	// Register adds a new platform source factory
	Register(platform string, factory Factory) error
	// Create instantiates a source for the profile's platform
	Create(ctx context.Context, profile config.Profile) (Source, error)
	// ListPlatforms returns a sorted list of registered platforms
	ListPlatforms() []string
}

type registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry creates a new source registry
func NewRegistry() Registry {
	return &registry{
		factories: make(map[string]Factory),
	}
}

func (r *registry) Register(platform string, factory Factory) error {
	if platform == "" {
		return fmt.Errorf("platform name cannot be empty")
	}
	if factory == nil {
		return fmt.Errorf("factory cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[platform]; exists {
		return fmt.Errorf("platform %q is already registered", platform)
	}

	r.factories[platform] = factory
	return nil
}

func (r *registry) Create(ctx context.Context, profile config.Profile) (Source, error) {
	r.mu.RLock()
	factory, exists := r.factories[profile.Platform]
	r.mu.RUnlock()

	if !exists {
		return nil, fmt.Errorf("platform %q is not registered", profile.Platform)
	}

	return factory(ctx, profile)
}

func (r *registry) ListPlatforms() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	platforms := maps.Keys(r.factories)
	slices.Sort(platforms)
	return platforms
}
