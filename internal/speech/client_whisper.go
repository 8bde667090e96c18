package speech

import (
	"context"
	"fmt"
	"log"
	"os"

	openai "github.com/sashabaranov/go-openai"
)

// WhisperClient — распознавание голосовых через OpenAI Whisper.
type WhisperClient struct {
	client *openai.Client
}

func NewWhisperClient() *WhisperClient {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		log.Fatal("OPENAI_API_KEY not set")
	}
	return &WhisperClient{
		client: openai.NewClient(apiKey),
	}
}

func (c *WhisperClient) Transcribe(ctx context.Context, filePath string) (string, error) {
	resp, err := c.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    openai.Whisper1,
		FilePath: filePath,
		Language: "ru",
	})
	if err != nil {
		return "", fmt.Errorf("whisper transcribe: %w", err)
	}
	return resp.Text, nil
}
