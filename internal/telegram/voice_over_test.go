package telegram

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/Vovarama1992/voice_bot/internal/session"
	"github.com/Vovarama1992/voice_bot/internal/speech"
	"github.com/Vovarama1992/voice_bot/internal/storage"
	"github.com/Vovarama1992/voice_bot/internal/voices"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	sent   []tgbotapi.Chattable
	nextID int
}

func (f *fakeSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	f.sent = append(f.sent, c)
	f.nextID++
	return tgbotapi.Message{MessageID: f.nextID}, nil
}

func (f *fakeSender) Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error) {
	f.sent = append(f.sent, c)
	return &tgbotapi.APIResponse{Ok: true}, nil
}

type recordingTTS struct {
	calls int
	data  []byte
	err   error
}

func (r *recordingTTS) Synthesize(_ context.Context, _, _ string) ([]byte, error) {
	r.calls++
	if r.err != nil {
		return nil, r.err
	}
	return r.data, nil
}

type fakeNotify struct{ calls int }

func (f *fakeNotify) Notify(_ context.Context, _ error, _ string) error {
	f.calls++
	return nil
}

func newTestApp(t *testing.T, tts *recordingTTS) (*BotApp, *fakeSender, *fakeNotify) {
	t.Helper()

	store, err := storage.NewLocalStore(t.TempDir())
	require.NoError(t, err)

	registry := voices.NewRegistry()
	fake := &fakeSender{}
	notify := &fakeNotify{}

	app := &BotApp{
		Sessions:    session.NewService(session.NewMemoryRepo(), registry),
		Speech:      speech.NewService(tts, nil, nil, store, nil),
		Voices:      registry,
		ErrorNotify: notify,
		send:        fake,
		maxTextLen:  50,
	}
	return app, fake, notify
}

func TestVoiceOver_TooLongRejectedBeforeSynthesis(t *testing.T) {
	t.Parallel()

	tts := &recordingTTS{data: []byte("mp3")}
	app, fake, _ := newTestApp(t, tts)

	app.voiceOver(context.Background(), 10, 1, strings.Repeat("а", 51))

	// до клиента TTS дойти не должны
	assert.Equal(t, 0, tts.calls)

	require.Len(t, fake.sent, 1)
	msg, ok := fake.sent[0].(tgbotapi.MessageConfig)
	require.True(t, ok)
	assert.Contains(t, msg.Text, "слишком длинный")
	assert.Contains(t, msg.Text, "51")
}

func TestVoiceOver_ErrorEditsProcessingMessage(t *testing.T) {
	t.Parallel()

	wantErr := &speech.APIError{
		Kind:       speech.KindRateLimited,
		StatusCode: 429,
		Message:    "⏱️ Превышен лимит запросов",
	}
	tts := &recordingTTS{err: wantErr}
	app, fake, notify := newTestApp(t, tts)

	app.voiceOver(context.Background(), 10, 1, "привет")

	assert.Equal(t, 1, tts.calls)
	require.Len(t, fake.sent, 2)

	proc, ok := fake.sent[0].(tgbotapi.MessageConfig)
	require.True(t, ok)
	assert.Equal(t, msgProcessing, proc.Text)

	// "Обрабатываю..." редактируется в текст классифицированной ошибки
	edit, ok := fake.sent[1].(tgbotapi.EditMessageTextConfig)
	require.True(t, ok)
	assert.Equal(t, int64(10), edit.ChatID)
	assert.Equal(t, 1, edit.MessageID)
	assert.Equal(t, wantErr.Message, edit.Text)

	// классифицированная ошибка — не повод дёргать админа
	assert.Equal(t, 0, notify.calls)
}

func TestVoiceOver_UnexpectedErrorNotifiesAdmin(t *testing.T) {
	t.Parallel()

	tts := &recordingTTS{err: errors.New("disk full")}
	app, fake, notify := newTestApp(t, tts)

	app.voiceOver(context.Background(), 10, 1, "привет")

	require.Len(t, fake.sent, 2)
	edit, ok := fake.sent[1].(tgbotapi.EditMessageTextConfig)
	require.True(t, ok)
	assert.Contains(t, edit.Text, "Ошибка при генерации аудио")

	assert.Equal(t, 1, notify.calls)
}

func TestVoiceOver_SuccessDeletesProcessingMessage(t *testing.T) {
	t.Parallel()

	tts := &recordingTTS{data: []byte("mp3-bytes")}
	app, fake, _ := newTestApp(t, tts)

	app.voiceOver(context.Background(), 10, 1, "привет")

	require.Len(t, fake.sent, 3)

	_, ok := fake.sent[0].(tgbotapi.MessageConfig)
	require.True(t, ok)

	voiceMsg, ok := fake.sent[1].(tgbotapi.VoiceConfig)
	require.True(t, ok)
	assert.Contains(t, voiceMsg.Caption, "Bella")

	del, ok := fake.sent[2].(tgbotapi.DeleteMessageConfig)
	require.True(t, ok)
	assert.Equal(t, 1, del.MessageID)
}
