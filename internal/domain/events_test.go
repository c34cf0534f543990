package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventWireShape(t *testing.T) {
	sku := mustSKU(t, "A-100")

	t.Run("ProductCreated", func(t *testing.T) {
		event := NewProductCreated(sku, "Widget")

		payload, err := json.Marshal(event)
		require.NoError(t, err)

		var decoded map[string]any
		require.NoError(t, json.Unmarshal(payload, &decoded))

		assert.Equal(t, event.EventID(), decoded["event_id"])
		assert.Equal(t, "ProductCreated", decoded["event_type"])
		assert.Equal(t, "A-100", decoded["sku"])
		assert.Equal(t, "Widget", decoded["title"])
		assert.Contains(t, decoded, "occurred_on")
	})

	t.Run("ProductUpdated", func(t *testing.T) {
		event := NewProductUpdated(sku, "New Name")

		payload, err := json.Marshal(event)
		require.NoError(t, err)

		var decoded map[string]any
		require.NoError(t, json.Unmarshal(payload, &decoded))

		assert.Equal(t, "ProductUpdated", decoded["event_type"])
		assert.Equal(t, "New Name", decoded["title"])
	})

	t.Run("ProductDeleted", func(t *testing.T) {
		event := NewProductDeleted(sku)

		payload, err := json.Marshal(event)
		require.NoError(t, err)

		var decoded map[string]any
		require.NoError(t, json.Unmarshal(payload, &decoded))

		assert.Equal(t, "ProductDeleted", decoded["event_type"])
		assert.Equal(t, "A-100", decoded["sku"])
		assert.NotContains(t, decoded, "title")
	})
}

func TestEventIDsAreUnique(t *testing.T) {
	sku := mustSKU(t, "A-100")

	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		event := NewProductCreated(sku, "Widget")
		_, dup := seen[event.EventID()]
		require.False(t, dup)
		seen[event.EventID()] = struct{}{}
	}
}

func TestEventTimestampAssignedAtConstruction(t *testing.T) {
	sku := mustSKU(t, "A-100")
	event := NewProductDeleted(sku)
	occurredOn := event.OccurredOn()

	// OccurredOn is fixed at construction; reading twice gives the same instant
	assert.Equal(t, occurredOn, event.OccurredOn())
}
