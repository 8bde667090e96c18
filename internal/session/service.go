package session

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/Vovarama1992/voice_bot/internal/voices"
)

var ErrUnknownVoice = errors.New("voice not found")

type Service struct {
	repo     Repo
	registry *voices.Registry
}

func NewService(repo Repo, registry *voices.Registry) *Service {
	return &Service{
		repo:     repo,
		registry: registry,
	}
}

// CurrentVoice возвращает выбранный голос пользователя. Отсутствие
// выбора, ошибка хранилища или ключ, которого больше нет в реестре,
// дают дефолтный голос.
func (s *Service) CurrentVoice(ctx context.Context, telegramID int64) voices.Voice {
	key, err := s.repo.GetVoice(ctx, telegramID)
	if err != nil {
		log.Printf("[session] get voice fail tgID=%d err=%v", telegramID, err)
		return s.registry.Default()
	}
	if v, ok := s.registry.Get(key); ok {
		return v
	}
	return s.registry.Default()
}

// SelectVoice сохраняет выбор. Неизвестный ключ — ErrUnknownVoice,
// прежний выбор при этом не трогаем.
func (s *Service) SelectVoice(ctx context.Context, telegramID int64, voiceKey string) (voices.Voice, error) {
	v, ok := s.registry.Get(voiceKey)
	if !ok {
		return voices.Voice{}, ErrUnknownVoice
	}
	if err := s.repo.SetVoice(ctx, telegramID, voiceKey); err != nil {
		return voices.Voice{}, fmt.Errorf("save voice selection: %w", err)
	}
	return v, nil
}
