package collection

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveColumns(t *testing.T) {
	t.Run("Defaults Case Insensitive", func(t *testing.T) {
		header := []string{"SET_CODE", "Collector_Number", "LANGUAGE", "Foil", "QUANTITY"}

		m, err := ResolveColumns(header, Overrides{})
		assert.NoError(t, err)
		assert.Equal(t, "SET_CODE", m.SetCode)
		assert.Equal(t, "Collector_Number", m.CollectorNumber)
		assert.Equal(t, "LANGUAGE", m.Language)
		assert.Equal(t, "Foil", m.Foil)
		assert.Equal(t, "QUANTITY", m.Quantity)
	})

	t.Run("Override Beats Default", func(t *testing.T) {
		// Both "Set code" (override) and "set_code" (default) exist; the
		// override must win.
		header := []string{"Set code", "set_code", "collector_number"}

		m, err := ResolveColumns(header, Overrides{SetCode: "Set code"})
		assert.NoError(t, err)
		assert.Equal(t, "Set code", m.SetCode)
	})

	t.Run("Missing Optional Columns", func(t *testing.T) {
		header := []string{"set_code", "collector_number"}

		m, err := ResolveColumns(header, Overrides{})
		assert.NoError(t, err)
		assert.Empty(t, m.Language)
		assert.Empty(t, m.Foil)
		assert.Empty(t, m.Quantity)
	})

	t.Run("Missing Set Code Is Fatal", func(t *testing.T) {
		header := []string{"collector_number", "language"}

		_, err := ResolveColumns(header, Overrides{})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "set code")
	})

	t.Run("Missing Collector Number Is Fatal", func(t *testing.T) {
		header := []string{"set_code"}

		_, err := ResolveColumns(header, Overrides{})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "collector number")
	})

	t.Run("Unmatched Override Does Not Fall Back", func(t *testing.T) {
		// An override that matches nothing leaves the field unresolved even
		// when the default name is present.
		header := []string{"set_code", "collector_number", "quantity"}

		m, err := ResolveColumns(header, Overrides{Quantity: "count"})
		assert.NoError(t, err)
		assert.Empty(t, m.Quantity)
	})
}
