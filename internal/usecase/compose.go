package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/focusin/hub/internal/entity"
	"github.com/focusin/hub/internal/infra/integration/gemini"
)

// ComposeUseCase wraps the announcement workflow: drafting with the
// model, tone adjustment, channel suggestion and the final webhook post.
type ComposeUseCase struct {
	AI      MessageComposer
	Discord AnnouncementSender
	Log     *zap.Logger
}

func NewComposeUseCase(ai MessageComposer, discord AnnouncementSender, log *zap.Logger) *ComposeUseCase {
	return &ComposeUseCase{AI: ai, Discord: discord, Log: log}
}

func (uc *ComposeUseCase) Draft(ctx context.Context, input gemini.DraftInput) (*gemini.DraftOutput, error) {
	if len(input.History) == 0 && input.InitialMessage == "" {
		return nil, &DomainError{Code: "EMPTY_MESSAGE", Message: "a message or conversation history is required"}
	}
	out, err := uc.AI.DraftMessage(ctx, input)
	if err != nil {
		return nil, &TechnicalError{Code: "COMPOSER_FAILED", Message: err.Error()}
	}
	return out, nil
}

func (uc *ComposeUseCase) Compose(ctx context.Context, prompt string) (string, error) {
	if prompt == "" {
		return "", &DomainError{Code: "EMPTY_MESSAGE", Message: "prompt is required"}
	}
	message, err := uc.AI.ComposeMessage(ctx, prompt)
	if err != nil {
		return "", &TechnicalError{Code: "COMPOSER_FAILED", Message: err.Error()}
	}
	return message, nil
}

func (uc *ComposeUseCase) AdjustTone(ctx context.Context, message, tone string) (string, error) {
	if message == "" || tone == "" {
		return "", &DomainError{Code: "EMPTY_MESSAGE", Message: "message and tone are required"}
	}
	adjusted, err := uc.AI.AdjustTone(ctx, message, tone)
	if err != nil {
		return "", &TechnicalError{Code: "COMPOSER_FAILED", Message: err.Error()}
	}
	return adjusted, nil
}

// SuggestChannels asks the model where a message belongs and drops any
// suggestion that is not part of the server's channel catalog.
func (uc *ComposeUseCase) SuggestChannels(ctx context.Context, message string) ([]string, error) {
	if message == "" {
		return nil, &DomainError{Code: "EMPTY_MESSAGE", Message: "message is required"}
	}
	suggested, err := uc.AI.SuggestChannels(ctx, message)
	if err != nil {
		return nil, &TechnicalError{Code: "COMPOSER_FAILED", Message: err.Error()}
	}

	known := make([]string, 0, len(suggested))
	for _, name := range suggested {
		if entity.KnownChannel(name) {
			known = append(known, name)
		} else {
			uc.Log.Debug("dropping unknown channel suggestion", zap.String("channel", name))
		}
	}
	return known, nil
}

func (uc *ComposeUseCase) SendAnnouncement(channel, title, message string) error {
	if message == "" {
		return &DomainError{Code: "EMPTY_MESSAGE", Message: "message is required"}
	}
	if !entity.KnownChannel(channel) {
		return &DomainError{Code: "UNKNOWN_CHANNEL", Message: "channel is not in the server catalog: " + channel}
	}
	if err := uc.Discord.PostAnnouncement(channel, title, message); err != nil {
		return &TechnicalError{Code: "ANNOUNCEMENT_FAILED", Message: err.Error()}
	}
	uc.Log.Info("announcement posted", zap.String("channel", channel))
	return nil
}

// Channels lists the channels an announcement can actually reach.
func (uc *ComposeUseCase) Channels() []string {
	return uc.Discord.WebhookedChannels()
}
