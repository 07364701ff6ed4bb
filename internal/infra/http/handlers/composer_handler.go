package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/focusin/hub/internal/entity"
	"github.com/focusin/hub/internal/infra/http/middleware"
	"github.com/focusin/hub/internal/infra/integration/gemini"
	"github.com/focusin/hub/internal/usecase"
)

type ComposerHandler struct {
	UC *usecase.ComposeUseCase
}

func NewComposerHandler(uc *usecase.ComposeUseCase) *ComposerHandler {
	return &ComposerHandler{UC: uc}
}

// Draft (POST /composer/draft) continues an iterative drafting
// conversation.
func (h *ComposerHandler) Draft(w http.ResponseWriter, r *http.Request) {
	var input gemini.DraftInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	out, err := h.UC.Draft(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

type composeRequest struct {
	Prompt string `json:"prompt"`
}

// Compose (POST /composer/compose) writes a one-shot announcement.
func (h *ComposerHandler) Compose(w http.ResponseWriter, r *http.Request) {
	var req composeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	message, err := h.UC.Compose(r.Context(), req.Prompt)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": message})
}

type adjustToneRequest struct {
	Message string `json:"message"`
	Tone    string `json:"tone"`
}

// AdjustTone (POST /composer/tone)
func (h *ComposerHandler) AdjustTone(w http.ResponseWriter, r *http.Request) {
	var req adjustToneRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	adjusted, err := h.UC.AdjustTone(r.Context(), req.Message, req.Tone)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"adjustedMessage": adjusted})
}

type suggestChannelsRequest struct {
	Message string `json:"message"`
}

// SuggestChannels (POST /composer/channels/suggest)
func (h *ComposerHandler) SuggestChannels(w http.ResponseWriter, r *http.Request) {
	var req suggestChannelsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	channels, err := h.UC.SuggestChannels(r.Context(), req.Message)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string][]string{"suggestedChannels": channels})
}

// Channels (GET /composer/channels) lists the full catalog plus which
// of them can actually receive an announcement.
func (h *ComposerHandler) Channels(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"catalog":   entity.Channels,
		"webhooked": h.UC.Channels(),
	})
}

type announceRequest struct {
	Channel string `json:"channel"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

// Announce (POST /composer/announce) posts the final message to Discord.
func (h *ComposerHandler) Announce(w http.ResponseWriter, r *http.Request) {
	var req announceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.UC.SendAnnouncement(req.Channel, req.Title, req.Message); err != nil {
		if usecase.IsTechnicalError(err) {
			middleware.RecordWebhookDelivery("announcement", "error")
		}
		writeError(w, err)
		return
	}

	middleware.RecordWebhookDelivery("announcement", "ok")
	writeJSON(w, http.StatusOK, map[string]string{"status": "posted"})
}
