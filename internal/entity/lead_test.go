package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLeadDefaults(t *testing.T) {
	lead, err := NewLead("Asha", "asha@x.com", ProductFocusAI)
	require.NoError(t, err)

	assert.NotEmpty(t, lead.ID)
	assert.Equal(t, StatusPending, lead.Status)
	assert.Empty(t, lead.Logs)
	assert.NotNil(t, lead.Logs)
	assert.NotNil(t, lead.LastUpdated)
}

func TestNewLeadRequiredFields(t *testing.T) {
	_, err := NewLead("", "asha@x.com", ProductFocusAI)
	assert.True(t, IsValidationError(err))

	_, err = NewLead("Asha", "", ProductFocusAI)
	assert.True(t, IsValidationError(err))

	_, err = NewLead("Asha", "asha@x.com", "Focus Banking")
	assert.True(t, IsValidationError(err))
}

func TestNormalizeFillsDefaults(t *testing.T) {
	lead := Lead{Email: "x@x.com", Status: "weird"}
	lead.Normalize()

	assert.NotEmpty(t, lead.ID)
	assert.Equal(t, "N/A", lead.Name)
	assert.Equal(t, StatusPending, lead.Status)
	assert.NotNil(t, lead.Logs)
}

func TestNormalizeKeepsExistingValues(t *testing.T) {
	lead := Lead{
		ID:     "keep-me",
		Name:   "Asha",
		Status: StatusFollowUp,
		Logs:   []LogEntry{{Action: "Status change to follow-up"}},
	}
	lead.Normalize()

	assert.Equal(t, "keep-me", lead.ID)
	assert.Equal(t, "Asha", lead.Name)
	assert.Equal(t, StatusFollowUp, lead.Status)
	assert.Len(t, lead.Logs, 1)
}

func TestCloneIsIndependent(t *testing.T) {
	now := time.Now()
	lead := Lead{ID: "a", Name: "Asha", Logs: []LogEntry{{Action: "x"}}, LastUpdated: &now}

	dup := lead.Clone()
	dup.Name = "changed"
	dup.Logs[0].Action = "mutated"
	*dup.LastUpdated = now.Add(time.Hour)

	assert.Equal(t, "Asha", lead.Name)
	assert.Equal(t, "x", lead.Logs[0].Action)
	assert.Equal(t, now, *lead.LastUpdated)
}

func TestStatusValidity(t *testing.T) {
	for _, status := range AllStatuses {
		assert.True(t, status.Valid(), string(status))
	}
	assert.False(t, LeadStatus("archived").Valid())
}

func TestKnownChannel(t *testing.T) {
	assert.True(t, KnownChannel("company-announcements"))
	assert.True(t, KnownChannel("task-board"))
	assert.False(t, KnownChannel("random-channel"))
	assert.Len(t, ChannelNames(), len(Channels))
}
