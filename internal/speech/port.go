package speech

import "context"

type TTSClient interface {
	Synthesize(ctx context.Context, voiceID, text string) ([]byte, error) // текст → байты mp3
}

type STTClient interface {
	Transcribe(ctx context.Context, filePath string) (string, error) // голос → текст
}

type LivenessChecker interface {
	IsAPIKeyValid(ctx context.Context) bool
}
