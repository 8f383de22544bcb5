package providers_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/rulecast/pkg/errors"
	"github.com/arthur-debert/rulecast/pkg/providers"
)

func stubFactory(id string) providers.Factory {
	return func(_ providers.Options) providers.Provider {
		return &stubProvider{id: id}
	}
}

func TestRegistry_Register(t *testing.T) {
	reg := providers.NewRegistry()

	require.NoError(t, reg.Register("cursor", stubFactory("cursor")))

	err := reg.Register("cursor", stubFactory("cursor"))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrProviderRegister))

	err = reg.Register("", stubFactory(""))
	require.Error(t, err)

	err = reg.Register("nilfactory", nil)
	require.Error(t, err)
}

func TestRegistry_Build(t *testing.T) {
	newReg := func() *providers.Registry {
		reg := providers.NewRegistry()
		reg.MustRegister("cursor", stubFactory("cursor"))
		reg.MustRegister("cline", stubFactory("cline"))
		reg.MustRegister("claude", stubFactory("claude"))
		return reg
	}

	t.Run("empty_selection_builds_all_sorted", func(t *testing.T) {
		built, err := newReg().Build(nil, providers.Options{})
		require.NoError(t, err)
		assert.Equal(t, []string{"claude", "cline", "cursor"}, idsOf(built))
	})

	t.Run("explicit_selection", func(t *testing.T) {
		built, err := newReg().Build([]string{"cursor", "claude"}, providers.Options{})
		require.NoError(t, err)
		assert.Equal(t, []string{"cursor", "claude"}, idsOf(built))
	})

	t.Run("unknown_id_is_hard_error", func(t *testing.T) {
		_, err := newReg().Build([]string{"cursor", "zed"}, providers.Options{})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrProviderUnknown))
	})

	t.Run("shared_output_path_is_a_conflict", func(t *testing.T) {
		reg := providers.NewRegistry()
		reg.MustRegister("one", func(_ providers.Options) providers.Provider {
			return &pathProvider{id: "one", path: "out/shared"}
		})
		reg.MustRegister("two", func(_ providers.Options) providers.Provider {
			return &pathProvider{id: "two", path: "out/shared"}
		})

		_, err := reg.Build(nil, providers.Options{})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrProviderConflict))
	})

	t.Run("mismatched_id_rejected", func(t *testing.T) {
		reg := providers.NewRegistry()
		reg.MustRegister("liar", stubFactory("honest"))

		_, err := reg.Build(nil, providers.Options{})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrProviderRegister))
	})
}

// pathProvider is a stub with a controllable output path
type pathProvider struct {
	stubProvider
	id   string
	path string
}

func (p *pathProvider) ID() string         { return p.id }
func (p *pathProvider) OutputPath() string { return p.path }
