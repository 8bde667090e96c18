package speech

import (
	"encoding/json"
	"fmt"
	"strings"
)

type Kind int

const (
	KindAccountRestricted Kind = iota
	KindUnauthorized
	KindForbidden
	KindRateLimited
	KindAPI
	KindNetwork
	KindUnexpected
)

// APIError — классифицированная ошибка генерации речи.
// Message показывается пользователю как есть.
type APIError struct {
	Kind       Kind
	StatusCode int
	Message    string
}

func (e *APIError) Error() string { return e.Message }

// detail из тела ошибки ElevenLabs: {"detail": {"status": ..., "message": ...}}
type errorDetail struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type errorPayload struct {
	Detail errorDetail `json:"detail"`
}

const (
	msgAccountRestricted = "⚠️ Проблема с аккаунтом ElevenLabs:\n" +
		"обнаружена необычная активность или бесплатный тариф заблокирован.\n" +
		"Проверьте ваш аккаунт на elevenlabs.io"
	msgUnauthorized = "🔑 Ошибка авторизации:\n" +
		"неверный API ключ ElevenLabs.\n" +
		"Проверьте ELEVENLABS_API_KEY в файле .env"
	msgForbidden = "🚫 Доступ запрещен (403):\n" +
		"ваш API ключ не имеет доступа к этому ресурсу.\n" +
		"Проверьте статус аккаунта на elevenlabs.io"
	msgRateLimited = "⏱️ Превышен лимит запросов:\n" +
		"слишком много запросов к API.\n" +
		"Подождите немного и попробуйте снова"
	msgNetwork = "🌐 Ошибка сети: не удалось подключиться к ElevenLabs API. " +
		"Проверьте интернет-соединение."
)

// Правила классификации HTTP-ошибок. Порядок важен: проверка
// заблокированного аккаунта идёт раньше проверок по коду,
// первое совпадение выигрывает.
type classifyRule struct {
	match func(status int, d errorDetail) bool
	build func(status int, d errorDetail) *APIError
}

var classifyRules = []classifyRule{
	{
		match: func(_ int, d errorDetail) bool {
			return strings.Contains(strings.ToLower(d.Status), "unusual_activity") ||
				strings.Contains(strings.ToLower(d.Message), "free tier")
		},
		build: func(status int, _ errorDetail) *APIError {
			return &APIError{Kind: KindAccountRestricted, StatusCode: status, Message: msgAccountRestricted}
		},
	},
	{
		match: func(status int, _ errorDetail) bool { return status == 401 },
		build: func(status int, _ errorDetail) *APIError {
			return &APIError{Kind: KindUnauthorized, StatusCode: status, Message: msgUnauthorized}
		},
	},
	{
		match: func(status int, _ errorDetail) bool { return status == 403 },
		build: func(status int, _ errorDetail) *APIError {
			return &APIError{Kind: KindForbidden, StatusCode: status, Message: msgForbidden}
		},
	},
	{
		match: func(status int, _ errorDetail) bool { return status == 429 },
		build: func(status int, _ errorDetail) *APIError {
			return &APIError{Kind: KindRateLimited, StatusCode: status, Message: msgRateLimited}
		},
	},
}

// classifyHTTPError разбирает тело ошибки (если это JSON) и прогоняет
// статус и detail через таблицу правил. Непарсящееся тело — не ошибка:
// правила по коду работают и с пустым detail.
func classifyHTTPError(status int, body []byte) *APIError {
	var d errorDetail
	var payload errorPayload
	if err := json.Unmarshal(body, &payload); err == nil {
		d = payload.Detail
	}

	for _, rule := range classifyRules {
		if rule.match(status, d) {
			return rule.build(status, d)
		}
	}

	msg := fmt.Sprintf("Ошибка API (код %d)", status)
	if d.Message != "" {
		msg = fmt.Sprintf("Ошибка API (код %d): %s", status, d.Message)
	}
	return &APIError{Kind: KindAPI, StatusCode: status, Message: msg}
}

func networkError() *APIError {
	return &APIError{Kind: KindNetwork, Message: msgNetwork}
}

func unexpectedError(err error) *APIError {
	return &APIError{Kind: KindUnexpected, Message: fmt.Sprintf("❌ Неожиданная ошибка: %v", err)}
}
