package speech

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/Vovarama1992/voice_bot/internal/storage"
	"github.com/google/uuid"
)

// === Единый сервис озвучки (синтез + распознавание + хранение) ===

type Service struct {
	tts    TTSClient
	stt    STTClient // nil, если распознавание не настроено
	live   LivenessChecker
	store  storage.Store
	mirror storage.Mirror // nil, если S3 не настроен
}

func NewService(tts TTSClient, stt STTClient, live LivenessChecker, store storage.Store, mirror storage.Mirror) *Service {
	return &Service{
		tts:    tts,
		stt:    stt,
		live:   live,
		store:  store,
		mirror: mirror,
	}
}

// Synthesize озвучивает текст выбранным голосом и сохраняет результат
// в voice_<timestamp>.mp3. Имя уникально с точностью до секунды,
// коллизия в одну секунду перезапишет файл.
func (s *Service) Synthesize(ctx context.Context, text, voiceID string) (string, error) {
	data, err := s.tts.Synthesize(ctx, voiceID, text)
	if err != nil {
		return "", err
	}

	name := fmt.Sprintf("voice_%s.mp3", time.Now().Format("20060102_150405"))
	path, err := s.store.Save(name, data)
	if err != nil {
		return "", fmt.Errorf("save audio: %w", err)
	}
	log.Printf("[speech] saved %s (%d bytes)", path, len(data))

	if s.mirror != nil {
		go s.mirrorUpload(name, data)
	}

	return path, nil
}

// Зеркалирование в S3 не должно задерживать и тем более ронять ответ
// пользователю, поэтому в фоне и только с логом при ошибке.
func (s *Service) mirrorUpload(name string, data []byte) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	key := fmt.Sprintf("audio/%s_%s", uuid.NewString(), name)
	url, err := s.mirror.Upload(ctx, key, data)
	if err != nil {
		log.Printf("[speech] s3 mirror fail: %v", err)
		return
	}
	log.Printf("[speech] mirrored to %s", url)
}

func (s *Service) CanTranscribe() bool {
	return s.stt != nil
}

func (s *Service) Transcribe(ctx context.Context, filePath string) (string, error) {
	if s.stt == nil {
		return "", fmt.Errorf("транскрибация не настроена")
	}
	return s.stt.Transcribe(ctx, filePath)
}

func (s *Service) IsAPIKeyValid(ctx context.Context) bool {
	return s.live.IsAPIKeyValid(ctx)
}
