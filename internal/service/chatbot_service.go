package service

import (
	"context"
	"fmt"
	"log/slog"

	"imagevault/internal/chat"
	"imagevault/internal/contentapi"
	app_errors "imagevault/internal/errors"
	"imagevault/internal/model"
)

// ChatbotService answers chat messages from a user's library. It keeps no
// state between messages.
type ChatbotService struct {
	content   contentapi.Client
	assembler *chat.Assembler
}

func NewChatbotService(content contentapi.Client) *ChatbotService {
	return &ChatbotService{content: content, assembler: chat.NewAssembler(content)}
}

// HandleMessage resolves message and assembles the reply with apiKey.
func (s *ChatbotService) HandleMessage(ctx context.Context, apiKey, message string) model.Reply {
	res := chat.Resolve(message)
	reply := s.assembler.Assemble(ctx, apiKey, res)

	intent := res.Intent
	if intent == chat.IntentFallback && reply.Type == model.ReplyText {
		intent = chat.IntentNoMatch
	}
	slog.Info("Answered chat message", "intent", intent, "reply_type", reply.Type)
	return reply
}

// VerifyKey asks the content service whether apiKey is accepted.
func (s *ChatbotService) VerifyKey(ctx context.Context, apiKey string) (bool, error) {
	valid, err := s.content.VerifyKey(ctx, apiKey)
	if err != nil {
		return false, fmt.Errorf("%w: could not reach content service: %v", app_errors.ErrInternal, err)
	}
	return valid, nil
}
