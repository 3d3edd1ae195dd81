package safewrite_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docsafe-go/docsafe/pkg/docvalue"
	"github.com/docsafe-go/docsafe/pkg/safewrite"
	"github.com/docsafe-go/docsafe/pkg/validation"
)

func TestPrepareSafeUpdate(t *testing.T) {
	t.Parallel()

	t.Run("valid fields are merged into the payload", func(t *testing.T) {
		t.Parallel()

		upd := safewrite.PrepareSafeUpdate(map[string]any{
			"profile.name": "Alice",
			"profile.age":  30,
			"active":       true,
		}, validation.DefaultOptions())

		require.True(t, upd.Validation.IsValid)
		assert.Equal(t, map[string]any{
			"profile.name": "Alice",
			"profile.age":  30,
			"active":       true,
		}, upd.Data)
	})

	t.Run("invalid field is excluded, the rest survives", func(t *testing.T) {
		t.Parallel()

		upd := safewrite.PrepareSafeUpdate(map[string]any{
			"profile.name": "Alice",
			"profile.bio":  docvalue.Undefined,
		}, validation.DefaultOptions())

		require.False(t, upd.Validation.IsValid)
		assert.Equal(t, map[string]any{"profile.name": "Alice"}, upd.Data)
		require.Len(t, upd.Validation.Errors, 1)
		assert.Equal(t, "profile.bio: undefined value not allowed", upd.Validation.Errors[0])
		assert.Equal(t, 1, upd.Validation.Context.UndefinedFieldsRemoved)
	})

	t.Run("nested values are sanitized per field", func(t *testing.T) {
		t.Parallel()

		upd := safewrite.PrepareSafeUpdate(map[string]any{
			"cv.skills": []any{"go", docvalue.Undefined, "mongo"},
		}, validation.DefaultOptions())

		require.False(t, upd.Validation.IsValid)
		assert.Equal(t, "cv.skills[1]: undefined value not allowed", upd.Validation.Errors[0])
		// The field errored, so nothing of it reaches the payload.
		assert.Empty(t, upd.Data)
	})

	t.Run("null field passes through when policy allows", func(t *testing.T) {
		t.Parallel()

		upd := safewrite.PrepareSafeUpdate(map[string]any{"cleared": nil}, validation.DefaultOptions())

		require.True(t, upd.Validation.IsValid)
		require.Contains(t, upd.Data, "cleared")
		assert.Nil(t, upd.Data["cleared"])
	})

	t.Run("malformed field paths are rejected", func(t *testing.T) {
		t.Parallel()

		for _, fp := range []string{"", ".", "a..b", ".a", "a.", "a/b", "x.y/z"} {
			upd := safewrite.PrepareSafeUpdate(map[string]any{fp: 1}, validation.DefaultOptions())
			require.False(t, upd.Validation.IsValid, "field path %q must be rejected", fp)
			assert.Empty(t, upd.Data)
		}
	})

	t.Run("diagnostics are ordered by field path", func(t *testing.T) {
		t.Parallel()

		upd := safewrite.PrepareSafeUpdate(map[string]any{
			"zz": docvalue.Undefined,
			"aa": docvalue.Undefined,
			"mm": docvalue.Undefined,
		}, validation.DefaultOptions())

		require.Len(t, upd.Validation.Errors, 3)
		assert.Equal(t, "aa: undefined value not allowed", upd.Validation.Errors[0])
		assert.Equal(t, "mm: undefined value not allowed", upd.Validation.Errors[1])
		assert.Equal(t, "zz: undefined value not allowed", upd.Validation.Errors[2])
	})

	t.Run("sanitization cannot be disabled for updates", func(t *testing.T) {
		t.Parallel()

		opts := validation.DefaultOptions()
		opts.SanitizeOnValidation = false

		upd := safewrite.PrepareSafeUpdate(map[string]any{"name": "ok"}, opts)

		require.True(t, upd.Validation.IsValid)
		assert.Equal(t, map[string]any{"name": "ok"}, upd.Data)
	})

	t.Run("empty update produces empty valid result", func(t *testing.T) {
		t.Parallel()

		upd := safewrite.PrepareSafeUpdate(map[string]any{}, validation.DefaultOptions())

		assert.True(t, upd.Validation.IsValid)
		assert.Empty(t, upd.Data)
	})
}
