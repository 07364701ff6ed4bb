package queue

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationEventRoundTrip(t *testing.T) {
	in := time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)
	out := time.Date(2025, 3, 10, 18, 15, 0, 0, time.UTC)

	event := NotificationEvent{
		Type:        EventWorkSummary,
		DisplayName: "Janarthan",
		CheckIn:     in,
		CheckOut:    out,
		Summary:     "Followed up with three clinics",
	}

	body, err := json.Marshal(event)
	require.NoError(t, err)

	var decoded NotificationEvent
	require.NoError(t, json.Unmarshal(body, &decoded))

	assert.Equal(t, event, decoded)
	assert.True(t, decoded.CheckIn.Equal(in))
}
