package providers

import (
	"fmt"
	"sort"

	"github.com/arthur-debert/rulecast/pkg/errors"
)

// Factory constructs a provider instance for one run
type Factory func(opts Options) Provider

// Registry holds the known provider factories, keyed by provider id.
// Registration is structural validation time: ids must be unique and
// non-empty, factories must be callable.
type Registry struct {
	factories map[string]Factory
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]Factory),
	}
}

// Register adds a provider factory under the given id
func (r *Registry) Register(id string, factory Factory) error {
	if id == "" {
		return errors.New(errors.ErrProviderRegister, "provider id must not be empty")
	}
	if factory == nil {
		return errors.Newf(errors.ErrProviderRegister, "provider %q has no factory", id)
	}
	if _, exists := r.factories[id]; exists {
		return errors.Newf(errors.ErrProviderRegister, "provider %q is already registered", id)
	}
	r.factories[id] = factory
	return nil
}

// MustRegister is Register but panics on error. Intended for the built-in
// provider set where a registration failure is a programming error.
func (r *Registry) MustRegister(id string, factory Factory) {
	if err := r.Register(id, factory); err != nil {
		panic(err)
	}
}

// IDs returns all registered provider ids, sorted
func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.factories))
	for id := range r.factories {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Build constructs the active provider set for a run. An empty ids slice
// selects every registered provider. An unknown id is a hard error, unlike
// unknown ids inside routing directives which degrade silently. Built
// providers are checked structurally: the instance must report the id it
// was registered under, and no two providers may share an output path.
func (r *Registry) Build(ids []string, opts Options) ([]Provider, error) {
	if len(ids) == 0 {
		ids = r.IDs()
	}

	built := make([]Provider, 0, len(ids))
	owners := make(map[string]string)
	for _, id := range ids {
		factory, ok := r.factories[id]
		if !ok {
			return nil, errors.Newf(errors.ErrProviderUnknown, "unknown provider %q (known: %v)", id, r.IDs())
		}

		p := factory(opts)
		if p == nil || p.ID() != id {
			return nil, errors.Newf(errors.ErrProviderRegister, "factory for %q built an invalid provider", id)
		}

		target := p.OutputPath()
		if owner, taken := owners[target]; taken {
			return nil, errors.Newf(errors.ErrProviderConflict,
				"providers %q and %q both claim output path %s", owner, id, target)
		}
		owners[target] = id

		built = append(built, p)
	}

	return built, nil
}

// String is a debugging aid
func (r *Registry) String() string {
	return fmt.Sprintf("Registry(%v)", r.IDs())
}
