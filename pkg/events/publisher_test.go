package events

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNamespaceChannel(t *testing.T) {
	assert.Equal(t, "namespace:abc-123", NamespaceChannel("abc-123"))
}

func TestInjectDBEventIDAndTruncate(t *testing.T) {
	payload, err := json.Marshal(QueueChangedPayload{
		Type:        EventTypeQueueChanged,
		NamespaceID: "ns-1",
		Timestamp:   1700000000000,
	})
	require.NoError(t, err)

	result, err := injectDBEventIDAndTruncate(payload, 42)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(result), &m))
	assert.Equal(t, float64(42), m["db_event_id"])
	assert.Equal(t, EventTypeQueueChanged, m["type"])
	assert.Equal(t, "ns-1", m["namespace_id"])
	assert.NotContains(t, m, "truncated")
}

func TestTruncateIfNeeded(t *testing.T) {
	t.Run("small payload passes through", func(t *testing.T) {
		in := `{"type":"queue.changed","namespace_id":"ns-1"}`
		out, err := truncateIfNeeded(in)
		require.NoError(t, err)
		assert.Equal(t, in, out)
	})

	t.Run("oversized payload collapses to routing envelope", func(t *testing.T) {
		big := map[string]any{
			"type":         EventTypeQueueChanged,
			"namespace_id": "ns-1",
			"db_event_id":  int64(7),
			"filler":       strings.Repeat("x", 9000),
		}
		payload, err := json.Marshal(big)
		require.NoError(t, err)

		out, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)
		assert.Less(t, len(out), 7900)

		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(out), &m))
		assert.Equal(t, true, m["truncated"])
		assert.Equal(t, EventTypeQueueChanged, m["type"])
		assert.Equal(t, "ns-1", m["namespace_id"])
		assert.Equal(t, float64(7), m["db_event_id"])
		assert.NotContains(t, m, "filler")
	})

	t.Run("truncation without db_event_id omits the field", func(t *testing.T) {
		big := map[string]any{
			"type":         EventTypeQueueChanged,
			"namespace_id": "ns-1",
			"filler":       strings.Repeat("x", 9000),
		}
		payload, err := json.Marshal(big)
		require.NoError(t, err)

		out, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)

		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(out), &m))
		assert.NotContains(t, m, "db_event_id")
	})
}
