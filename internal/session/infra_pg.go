package session

import (
	"context"
	"database/sql"
	"errors"
)

// pgRepo — выбор голоса в Postgres, переживает рестарты.
//
// CREATE TABLE user_voices (
//     telegram_id BIGINT PRIMARY KEY,
//     voice_key   TEXT NOT NULL,
//     updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
// );
type pgRepo struct {
	db *sql.DB
}

func NewPgRepo(db *sql.DB) Repo {
	return &pgRepo{db: db}
}

func (r *pgRepo) GetVoice(ctx context.Context, telegramID int64) (string, error) {
	var key string
	err := r.db.QueryRowContext(ctx, `
		SELECT voice_key FROM user_voices
		WHERE telegram_id = $1
	`, telegramID).Scan(&key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return key, nil
}

func (r *pgRepo) SetVoice(ctx context.Context, telegramID int64, voiceKey string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO user_voices (telegram_id, voice_key, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (telegram_id)
		DO UPDATE SET voice_key = EXCLUDED.voice_key, updated_at = now()
	`, telegramID, voiceKey)
	return err
}
