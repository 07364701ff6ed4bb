package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseUsers(t *testing.T) {
	users := parseUsers("jana:secret:founder, hari:pass2 ,broken,:nopass")

	assert.Len(t, users, 2)
	assert.Equal(t, UserCredential{Username: "jana", Password: "secret", Role: "founder"}, users[0])
	assert.Equal(t, UserCredential{Username: "hari", Password: "pass2", Role: "member"}, users[1])
}

func TestParseUsersEmpty(t *testing.T) {
	assert.Empty(t, parseUsers(""))
}

func TestParseChannelWebhooks(t *testing.T) {
	hooks := parseChannelWebhooks("team-intros=https://discord.com/api/webhooks/1/a;task-board=https://discord.com/api/webhooks/2/b; broken ;=nourl")

	assert.Len(t, hooks, 2)
	assert.Equal(t, "https://discord.com/api/webhooks/1/a", hooks["team-intros"])
	assert.Equal(t, "https://discord.com/api/webhooks/2/b", hooks["task-board"])
}

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, ":8080", cfg.ListenPort)
	assert.Equal(t, "focusInLeadsData", cfg.SnapshotKey)
	assert.Equal(t, "redis", cfg.StoreBackend)
	assert.Equal(t, 587, cfg.MailPort)
}
