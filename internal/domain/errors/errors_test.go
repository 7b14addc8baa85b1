package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError(t *testing.T) {
	t.Run("formats without an underlying error", func(t *testing.T) {
		err := NewAppError(TypeConfiguration, "missing key", nil)
		assert.Equal(t, "CONFIGURATION: missing key", err.Error())
	})

	t.Run("formats with an underlying error", func(t *testing.T) {
		cause := errors.New("boom")
		err := NewAppError(TypeAI, "generation failed", cause)
		assert.Equal(t, "AI: generation failed (boom)", err.Error())
		assert.Equal(t, cause, errors.Unwrap(err))
	})

	t.Run("WithError keeps the original untouched", func(t *testing.T) {
		base := NewAppError(TypeVCS, "not found", nil).WithSuggestion("check the URL")
		wrapped := base.WithError(errors.New("404"))

		assert.Nil(t, base.Err)
		assert.NotNil(t, wrapped.Err)
		assert.Equal(t, base.Suggestion, wrapped.Suggestion)
	})

	t.Run("sentinels carry suggestions", func(t *testing.T) {
		assert.NotEmpty(t, ErrAPIKeyMissing.Suggestion)
		assert.NotEmpty(t, ErrRepoURLMissing.Suggestion)
		assert.NotEmpty(t, ErrRepositoryNotFound.Suggestion)
	})
}
