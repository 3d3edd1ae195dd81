package validation_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docsafe-go/docsafe/pkg/validation"
)

func TestParsePolicy(t *testing.T) {
	t.Parallel()

	t.Run("empty policy keeps defaults", func(t *testing.T) {
		t.Parallel()

		opts, err := validation.ParsePolicy([]byte(""))
		require.NoError(t, err)
		assert.Equal(t, validation.DefaultOptions(), opts)
	})

	t.Run("stated fields override defaults", func(t *testing.T) {
		t.Parallel()

		opts, err := validation.ParsePolicy([]byte("strict: true\nmax_depth: 6\nallow_null_values: false\n"))
		require.NoError(t, err)
		assert.True(t, opts.Strict)
		assert.Equal(t, 6, opts.MaxDepth)
		assert.False(t, opts.AllowNullValues)
		assert.True(t, opts.SanitizeOnValidation, "unstated fields keep defaults")
	})

	t.Run("explicit false is honored", func(t *testing.T) {
		t.Parallel()

		opts, err := validation.ParsePolicy([]byte("sanitize_on_validation: false\n"))
		require.NoError(t, err)
		assert.False(t, opts.SanitizeOnValidation)
	})

	t.Run("rejects malformed yaml", func(t *testing.T) {
		t.Parallel()

		_, err := validation.ParsePolicy([]byte("strict: [unclosed"))
		assert.ErrorIs(t, err, validation.ErrPolicyFileInvalid)
	})

	t.Run("rejects non-positive max depth", func(t *testing.T) {
		t.Parallel()

		_, err := validation.ParsePolicy([]byte("max_depth: 0\n"))
		assert.ErrorIs(t, err, validation.ErrPolicyFileInvalid)
	})
}

func TestLoadPolicyFile(t *testing.T) {
	t.Parallel()

	t.Run("loads policy from disk", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "policy.yaml")
		require.NoError(t, os.WriteFile(path, []byte("strict: true\nallow_undefined: true\n"), 0o600))

		opts, err := validation.LoadPolicyFile(path)
		require.NoError(t, err)
		assert.True(t, opts.Strict)
		assert.True(t, opts.AllowUndefined)
	})

	t.Run("missing file is an error", func(t *testing.T) {
		t.Parallel()

		_, err := validation.LoadPolicyFile(filepath.Join(t.TempDir(), "absent.yaml"))
		assert.ErrorIs(t, err, validation.ErrPolicyFileUnreadable)
	})
}
