package discord

// Embed colors used across the hub's notifications.
const (
	colorGreen  = 3066993  // check-in
	colorRed    = 15158332 // check-out
	colorYellow = 16705372 // work summary
	colorBlue   = 3447003  // announcements
)

type webhookPayload struct {
	Embeds []Embed `json:"embeds"`
}

type Embed struct {
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Color       int          `json:"color"`
	Fields      []EmbedField `json:"fields,omitempty"`
	Timestamp   string       `json:"timestamp,omitempty"`
}

type EmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}
