package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTranslations(t *testing.T) {
	t.Run("embedded messages are always available", func(t *testing.T) {
		trans, err := NewTranslations("en", t.TempDir())
		require.NoError(t, err)

		msg := trans.GetMessage("app_usage", 0, nil)
		assert.NotEmpty(t, msg)
		assert.NotContains(t, msg, "Translation missing")
	})

	t.Run("unknown message id reports itself", func(t *testing.T) {
		trans, err := NewTranslations("en", t.TempDir())
		require.NoError(t, err)

		msg := trans.GetMessage("does_not_exist", 0, nil)
		assert.Equal(t, "Translation missing: does_not_exist", msg)
	})

	t.Run("template data is interpolated", func(t *testing.T) {
		trans, err := NewTranslations("en", t.TempDir())
		require.NoError(t, err)

		msg := trans.GetMessage("language_updated", 0, map[string]interface{}{"Lang": "es"})
		assert.Contains(t, msg, "es")
	})

	t.Run("plural forms follow the count", func(t *testing.T) {
		trans, err := NewTranslations("en", t.TempDir())
		require.NoError(t, err)

		one := trans.GetMessage("relevant_chunks_found", 1, map[string]interface{}{"Count": 1})
		many := trans.GetMessage("relevant_chunks_found", 5, map[string]interface{}{"Count": 5})
		assert.Contains(t, one, "1 relevant code chunk found")
		assert.Contains(t, many, "5 relevant code chunks found")
	})
}

func TestTranslations_SetLanguage(t *testing.T) {
	t.Run("rejects an unsupported language", func(t *testing.T) {
		trans, err := NewTranslations("en", t.TempDir())
		require.NoError(t, err)

		assert.Error(t, trans.SetLanguage("xx"))
	})

	t.Run("accepts a registered language", func(t *testing.T) {
		trans, err := NewTranslations("en", t.TempDir())
		require.NoError(t, err)

		assert.NoError(t, trans.SetLanguage("en"))
	})
}
