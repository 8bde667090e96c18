package delivery

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/Vovarama1992/voice_bot/internal/voices"
)

// LivenessChecker — проверка ключа TTS-провайдера (ошибок не бывает,
// только да/нет).
type LivenessChecker interface {
	IsAPIKeyValid(ctx context.Context) bool
}

type HealthHandler struct {
	checker LivenessChecker
	log     *logger.ZapLogger
}

func NewHealthHandler(checker LivenessChecker, log *logger.ZapLogger) *HealthHandler {
	return &HealthHandler{
		checker: checker,
		log:     log,
	}
}

// GET /healthz
func (h *HealthHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if !h.checker.IsAPIKeyValid(r.Context()) {
		h.log.Log(logger.LogEntry{Level: "warn", Message: "elevenlabs key check failed"})
		w.WriteHeader(http.StatusServiceUnavailable)
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "degraded"})
		return
	}

	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

type VoicesHandler struct {
	registry *voices.Registry
}

func NewVoicesHandler(registry *voices.Registry) *VoicesHandler {
	return &VoicesHandler{registry: registry}
}

// GET /voices
func (h *VoicesHandler) List(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"default": h.registry.Default().Key,
		"voices":  h.registry.All(),
	})
}
