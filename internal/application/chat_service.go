package application

import (
	"context"
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/campusbridge/student-support-api/pkg/openai"
)

// supportPrompt keeps replies supportive and non-diagnostic.
const supportPrompt = "You are a supportive assistant for university students seeking mental health guidance. " +
	"Respond with empathy and encouragement, suggest healthy coping strategies, and point students toward " +
	"campus counseling services when appropriate. Never offer a medical diagnosis or a treatment plan."

// cannedReplies serve requests when no upstream API key is configured.
var cannedReplies = []string{
	"I understand you're going through a difficult time. Remember that it's okay to ask for help.",
	"Your feelings are valid. Consider reaching out to our counseling services for professional support.",
	"Self-care is important. Try taking some deep breaths and remember you're not alone.",
	"Have you considered talking to a counselor? They can provide personalized strategies to help you cope.",
}

// ChatService proxies student messages to a chat-completion upstream.
type ChatService struct {
	AI     *openai.Client
	Logger *logrus.Logger
}

func NewChatService(ai *openai.Client, logger *logrus.Logger) *ChatService {
	return &ChatService{AI: ai, Logger: logger}
}

// Reply forwards the message with the fixed system prompt. Without an API
// key it falls back to canned supportive responses.
func (s *ChatService) Reply(ctx context.Context, message string) (string, error) {
	if !s.AI.Configured() {
		return cannedReplies[rand.Intn(len(cannedReplies))], nil
	}
	out, err := s.AI.ChatCompletion(ctx, []openai.Message{
		{Role: "system", Content: supportPrompt},
		{Role: "user", Content: message},
	})
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).Error("chat completion upstream failed")
		}
		return "", err
	}
	return out, nil
}
