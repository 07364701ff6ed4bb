// Package gemini wraps Google's Gemini API behind the small set of text
// tasks the hub needs: lead enrichment and announcement drafting. Every
// call asks for JSON output and parses it strictly; a response that does
// not match the expected shape is an error, never silently coerced.
package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/focusin/hub/internal/entity"
)

type Client struct {
	client *genai.Client
	model  string
}

func NewClient(ctx context.Context, apiKey, model string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	if model == "" {
		model = "gemini-2.5-flash"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &Client{client: client, model: model}, nil
}

const enrichPrompt = `You are an expert sales development representative for an optometry technology company called Focus-IN. Your task is to analyze a list of contacts and determine which product each contact would be most interested in.

Our products are:
- Focus AI: Advanced AI-powered diagnostic tools for optometrists.
- Focus Cast: An educational podcast series for optometry professionals and students.
- Focus Case: A platform for managing and sharing interesting patient case studies.
- Focus Clinic: A complete clinic management software suite.

Analyze each contact based on their name and institution. Assign the most relevant product interest and provide a brief reasoning for your choice. Generate a unique ID for each lead.

Respond with a JSON array only. Each element must have the fields: id, name, email, phone (optional), institution (optional), productInterest (exactly one of "Focus AI", "Focus Cast", "Focus Case", "Focus Clinic"), reasoning.

Contacts list:
%s`

// EnrichLeads classifies raw contacts into product-interest leads.
func (c *Client) EnrichLeads(ctx context.Context, contacts []entity.Contact) ([]EnrichedLead, error) {
	contactsJSON, err := json.Marshal(contacts)
	if err != nil {
		return nil, fmt.Errorf("failed to encode contacts: %w", err)
	}

	raw, err := c.generate(ctx, fmt.Sprintf(enrichPrompt, contactsJSON), 0.5)
	if err != nil {
		return nil, err
	}

	var enriched []EnrichedLead
	if err := json.Unmarshal([]byte(raw), &enriched); err != nil {
		return nil, fmt.Errorf("gemini returned unparsable lead list: %w", err)
	}
	// Unknown productInterest values are left for the caller to default;
	// only a record without an email is unusable.
	for i, lead := range enriched {
		if lead.Email == "" {
			return nil, fmt.Errorf("enriched lead %d is missing an email", i)
		}
	}
	return enriched, nil
}

const draftPrompt = `You are an expert internal communications manager acting as a conversational AI assistant. Your task is to help a user draft a professional, clear, and engaging announcement for a company-wide Discord server based on a conversation with them.

- Your first response should be a polished draft and a catchy title based on the user's initial raw message.
- For subsequent turns, refine the draft and title based on the user's feedback. Read the entire history for context. The user is in charge.
- Always create a short, catchy, and professional title for the announcement.
- Keep the message tone positive and professional.
- Correct any grammar or spelling mistakes.
- Structure the message for readability (e.g., using bullet points if necessary).
- Do not add any extra information that wasn't in the original message unless requested.
- Your output for each turn must be a complete, updated draft and title, not just the changes.

Respond with a JSON object only: {"title": "...", "draft": "..."}

%s`

// DraftMessage runs one turn of the conversational announcement composer.
func (c *Client) DraftMessage(ctx context.Context, input DraftInput) (*DraftOutput, error) {
	var conversation strings.Builder
	if input.InitialMessage != "" {
		fmt.Fprintf(&conversation, "Initial raw message:\n%s\n\n", input.InitialMessage)
	}
	if len(input.History) > 0 {
		conversation.WriteString("Conversation history:\n")
		for _, turn := range input.History {
			if turn.Role == "user" {
				fmt.Fprintf(&conversation, "User: %s\n", turn.Content)
			} else {
				fmt.Fprintf(&conversation, "AI (responded with a draft): %s\n", turn.Content)
			}
		}
	}

	raw, err := c.generate(ctx, fmt.Sprintf(draftPrompt, conversation.String()), 0)
	if err != nil {
		return nil, err
	}

	var output DraftOutput
	if err := json.Unmarshal([]byte(raw), &output); err != nil {
		return nil, fmt.Errorf("gemini returned unparsable draft: %w", err)
	}
	if output.Draft == "" {
		return nil, fmt.Errorf("gemini returned an empty draft")
	}
	return &output, nil
}

const composePrompt = `You are an expert communication assistant. Take the user's rough draft or bullet points and expand it into a well-structured message.

Respond with a JSON object only: {"message": "..."}

Input: %s`

// ComposeMessage expands bullet points into a well-structured message.
func (c *Client) ComposeMessage(ctx context.Context, input string) (string, error) {
	raw, err := c.generate(ctx, fmt.Sprintf(composePrompt, input), 0)
	if err != nil {
		return "", err
	}

	var output composeOutput
	if err := json.Unmarshal([]byte(raw), &output); err != nil {
		return "", fmt.Errorf("gemini returned unparsable message: %w", err)
	}
	return output.Message, nil
}

const adjustTonePrompt = `You are an expert at adjusting the tone of messages. Rephrase the message below to match the desired tone.

Respond with a JSON object only: {"adjustedMessage": "..."}

Message: %s
Tone: %s`

// AdjustTone rephrases a message as Formal, Standard, or Celebratory.
func (c *Client) AdjustTone(ctx context.Context, message, tone string) (string, error) {
	raw, err := c.generate(ctx, fmt.Sprintf(adjustTonePrompt, message, tone), 0)
	if err != nil {
		return "", err
	}

	var output adjustToneOutput
	if err := json.Unmarshal([]byte(raw), &output); err != nil {
		return "", fmt.Errorf("gemini returned unparsable message: %w", err)
	}
	return output.AdjustedMessage, nil
}

const suggestChannelPrompt = `Given the following message content, suggest the most appropriate Discord channels from the list below. Only suggest channels from the list and only respond with channel names.

Respond with a JSON object only: {"suggestedChannels": ["..."]}

Message content: %s

Available Discord channels:
%s`

// SuggestChannels asks the model where a message belongs. Callers should
// still filter against the known channel list; the model occasionally
// invents names.
func (c *Client) SuggestChannels(ctx context.Context, messageContent string) ([]string, error) {
	names := "- " + strings.Join(entity.ChannelNames(), "\n- ")

	raw, err := c.generate(ctx, fmt.Sprintf(suggestChannelPrompt, messageContent, names), 0)
	if err != nil {
		return nil, err
	}

	var output suggestChannelsOutput
	if err := json.Unmarshal([]byte(raw), &output); err != nil {
		return nil, fmt.Errorf("gemini returned unparsable channel list: %w", err)
	}
	return output.SuggestedChannels, nil
}

func (c *Client) generate(ctx context.Context, prompt string, temperature float32) (string, error) {
	cfg := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
	}
	if temperature > 0 {
		cfg.Temperature = genai.Ptr(temperature)
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), cfg)
	if err != nil {
		return "", fmt.Errorf("gemini request failed: %w", err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", fmt.Errorf("gemini returned no text")
	}
	return stripFences(text), nil
}

// stripFences removes a markdown code fence if the model wrapped its JSON
// despite the MIME type hint.
func stripFences(text string) string {
	if !strings.HasPrefix(text, "```") {
		return text
	}
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	return strings.TrimSpace(text)
}
