package session

import "context"

// Repo — хранилище выбранного голоса по telegram_id.
// Пустая строка означает, что пользователь голос ещё не выбирал.
type Repo interface {
	GetVoice(ctx context.Context, telegramID int64) (string, error)
	SetVoice(ctx context.Context, telegramID int64, voiceKey string) error
}
