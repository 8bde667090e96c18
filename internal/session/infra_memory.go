package session

import (
	"context"
	"sync"
)

// memoryRepo — выбор голоса живёт до рестарта процесса.
type memoryRepo struct {
	mu     sync.RWMutex
	voices map[int64]string
}

func NewMemoryRepo() Repo {
	return &memoryRepo{
		voices: make(map[int64]string),
	}
}

func (r *memoryRepo) GetVoice(_ context.Context, telegramID int64) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.voices[telegramID], nil
}

func (r *memoryRepo) SetVoice(_ context.Context, telegramID int64, voiceKey string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.voices[telegramID] = voiceKey
	return nil
}
