package assistant

import (
	"context"
	"fmt"

	genai "github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

// Message is one turn of the running conversation. Role is "user" or "model".
type Message struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

// Bridge forwards conversation text to a hosted Gemini model primed with the
// school's system prompt and streams the reply back in chunks.
type Bridge struct {
	model  *genai.GenerativeModel
	logger *zap.Logger
}

func NewBridge(ctx context.Context, apiKey, modelName string, logger *zap.Logger) (*Bridge, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(modelName)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(systemInstruction)},
	}

	return &Bridge{model: model, logger: logger}, nil
}

// StreamReply replays the history, sends the new message and calls emit for
// each text chunk as it arrives. The stream is abandoned when ctx is
// cancelled (widget closed); no explicit cancel is sent upstream.
func (b *Bridge) StreamReply(ctx context.Context, history []Message, message string, emit func(chunk string) error) error {
	chat := b.model.StartChat()
	chat.History = make([]*genai.Content, 0, len(history))
	for _, m := range history {
		role := m.Role
		if role != "user" {
			role = "model"
		}
		chat.History = append(chat.History, &genai.Content{
			Role:  role,
			Parts: []genai.Part{genai.Text(m.Text)},
		})
	}

	iter := chat.SendMessageStream(ctx, genai.Text(message))
	for {
		resp, err := iter.Next()
		if err == iterator.Done {
			return nil
		}
		if err != nil {
			return fmt.Errorf("gemini stream error: %w", err)
		}
		for _, cand := range resp.Candidates {
			if cand.Content == nil {
				continue
			}
			for _, part := range cand.Content.Parts {
				textPart, ok := part.(genai.Text)
				if !ok {
					continue
				}
				if err := emit(string(textPart)); err != nil {
					return err
				}
			}
		}
	}
}
