package speech

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"
)

const (
	defaultBaseURL = "https://api.elevenlabs.io"

	// Мультиязычная модель, русский поддерживается.
	ttsModel = "eleven_multilingual_v2"

	synthesizeTimeout = 30 * time.Second
	probeTimeout      = 10 * time.Second
)

type VoiceSettings struct {
	Stability       float64 `json:"stability"`
	SimilarityBoost float64 `json:"similarity_boost"`
	Style           float64 `json:"style"`
	UseSpeakerBoost bool    `json:"use_speaker_boost"`
}

type synthesizeRequest struct {
	Text          string        `json:"text"`
	ModelID       string        `json:"model_id"`
	VoiceSettings VoiceSettings `json:"voice_settings"`
}

type ElevenLabsClient struct {
	apiKey   string
	baseURL  string
	settings VoiceSettings
	httpCli  *http.Client
	probeCli *http.Client
}

func NewElevenLabsClient() *ElevenLabsClient {
	key := os.Getenv("ELEVENLABS_API_KEY")
	if key == "" {
		panic("ELEVENLABS_API_KEY not set")
	}
	return NewClient(key, defaultBaseURL)
}

func NewClient(apiKey, baseURL string) *ElevenLabsClient {
	return &ElevenLabsClient{
		apiKey:  apiKey,
		baseURL: baseURL,
		settings: VoiceSettings{
			Stability:       0.5,
			SimilarityBoost: 0.75,
			Style:           0.0,
			UseSpeakerBoost: true,
		},
		httpCli:  &http.Client{Timeout: synthesizeTimeout},
		probeCli: &http.Client{Timeout: probeTimeout},
	}
}

// Synthesize — один POST без ретраев, любая ошибка терминальна
// для запроса. Возвращает байты mp3 либо *APIError.
func (c *ElevenLabsClient) Synthesize(ctx context.Context, voiceID, text string) ([]byte, error) {
	payload, err := json.Marshal(synthesizeRequest{
		Text:          text,
		ModelID:       ttsModel,
		VoiceSettings: c.settings,
	})
	if err != nil {
		return nil, unexpectedError(err)
	}

	url := fmt.Sprintf("%s/v1/text-to-speech/%s", c.baseURL, voiceID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, unexpectedError(err)
	}
	req.Header.Set("xi-api-key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "audio/mpeg")

	log.Printf("[elevenlabs] synthesize voiceID=%s chars=%d", voiceID, len([]rune(text)))

	resp, err := c.httpCli.Do(req)
	if err != nil {
		log.Printf("[elevenlabs] network fail: %v", err)
		return nil, networkError()
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, unexpectedError(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Printf("[elevenlabs] api error code=%d body=%s", resp.StatusCode, truncate(body, 200))
		return nil, classifyHTTPError(resp.StatusCode, body)
	}

	return body, nil
}

// IsAPIKeyValid — проверка ключа через /v1/user. Никогда не возвращает
// ошибку: всё, кроме 200, трактуется как невалидный ключ.
func (c *ElevenLabsClient) IsAPIKeyValid(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v1/user", nil)
	if err != nil {
		return false
	}
	req.Header.Set("xi-api-key", c.apiKey)

	resp, err := c.probeCli.Do(req)
	if err != nil {
		log.Printf("[elevenlabs] probe fail: %v", err)
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusOK {
		return true
	}

	log.Printf("[elevenlabs] probe status=%d", resp.StatusCode)
	return false
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n])
}
