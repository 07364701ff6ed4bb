package discord

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Client delivers hub notifications to Discord webhooks. Each event type
// has its own webhook URL; announcements go to per-channel webhooks.
type Client struct {
	checkInURL   string
	checkOutURL  string
	summaryURL   string
	channelHooks map[string]string
	http         *http.Client
	log          *zap.Logger
}

func NewClient(checkInURL, checkOutURL, summaryURL string, channelHooks map[string]string, log *zap.Logger) *Client {
	return &Client{
		checkInURL:   checkInURL,
		checkOutURL:  checkOutURL,
		summaryURL:   summaryURL,
		channelHooks: channelHooks,
		http:         &http.Client{Timeout: 10 * time.Second},
		log:          log,
	}
}

// WebhookedChannels lists the channels an announcement can be sent to.
func (c *Client) WebhookedChannels() []string {
	names := make([]string, 0, len(c.channelHooks))
	for name := range c.channelHooks {
		names = append(names, name)
	}
	return names
}

func (c *Client) SendCheckIn(displayName string, checkInAt time.Time) error {
	payload := webhookPayload{
		Embeds: []Embed{{
			Title:       "✅ User Check-In",
			Description: fmt.Sprintf("**%s** has logged in.", displayName),
			Color:       colorGreen,
			Fields: []EmbedField{
				{Name: "⏰ Check-In Time", Value: discordTimestamp(checkInAt, "F")},
			},
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		}},
	}
	return c.send(c.checkInURL, payload)
}

func (c *Client) SendCheckOut(displayName string, checkOutAt time.Time) error {
	payload := webhookPayload{
		Embeds: []Embed{{
			Title:       "❌ User Check-Out",
			Description: fmt.Sprintf("**%s** has logged out.", displayName),
			Color:       colorRed,
			Fields: []EmbedField{
				{Name: "⏰ Check-Out Time", Value: discordTimestamp(checkOutAt, "F")},
			},
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		}},
	}
	return c.send(c.checkOutURL, payload)
}

func (c *Client) SendWorkSummary(displayName string, checkInAt, checkOutAt time.Time, workSummary string) error {
	duration := checkOutAt.Sub(checkInAt)
	hours := int(duration.Hours())
	minutes := int(duration.Minutes()) % 60
	totalHours := fmt.Sprintf("%d hours and %d minutes", hours, minutes)

	payload := webhookPayload{
		Embeds: []Embed{{
			Title:       "📝 Work Details",
			Description: fmt.Sprintf("Work summary from **%s**.", displayName),
			Color:       colorYellow,
			Fields: []EmbedField{
				{Name: "Date", Value: discordTimestamp(checkOutAt, "D"), Inline: true},
				{Name: "Total Duration", Value: totalHours, Inline: true},
				{Name: "Login Time", Value: discordTimestamp(checkInAt, "T")},
				{Name: "Logout Time", Value: discordTimestamp(checkOutAt, "T")},
				{Name: "Work Done", Value: fmt.Sprintf("```%s```", workSummary)},
			},
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		}},
	}
	return c.send(c.summaryURL, payload)
}

// PostAnnouncement delivers an approved draft to a channel's webhook.
// Channels without a configured webhook cannot receive announcements.
func (c *Client) PostAnnouncement(channel, title, message string) error {
	url, ok := c.channelHooks[channel]
	if !ok {
		return fmt.Errorf("channel %q has no configured webhook", channel)
	}

	payload := webhookPayload{
		Embeds: []Embed{{
			Title:       title,
			Description: message,
			Color:       colorBlue,
			Timestamp:   time.Now().UTC().Format(time.RFC3339),
		}},
	}
	return c.send(url, payload)
}

func (c *Client) send(url string, payload webhookPayload) error {
	if url == "" {
		c.log.Warn("discord webhook not configured, skipping notification")
		return nil
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode webhook payload: %w", err)
	}

	resp, err := c.http.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("discord webhook request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		text, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("discord webhook failed with status %d: %s", resp.StatusCode, string(text))
	}
	return nil
}

// discordTimestamp renders Discord's <t:unix:style> markup so the client
// shows the time in each viewer's locale.
func discordTimestamp(t time.Time, style string) string {
	return fmt.Sprintf("<t:%d:%s>", t.Unix(), style)
}
