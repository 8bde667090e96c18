package telegram

import (
	"context"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"
)

// handleVoice переозвучивает голосовое: скачиваем ogg, распознаём
// через Whisper, синтезируем текст выбранным голосом.
func (app *BotApp) handleVoice(ctx context.Context, msg *tgbotapi.Message, tgID int64) {
	chatID := msg.Chat.ID

	if !app.Speech.CanTranscribe() {
		app.send.Send(tgbotapi.NewMessage(chatID, msgSTTDisabled))
		return
	}

	fileID := msg.Voice.FileID
	log.Printf("[voice] start tgID=%d fileID=%s", tgID, fileID)

	file, err := app.bot.GetFile(tgbotapi.FileConfig{FileID: fileID})
	if err != nil {
		log.Printf("[voice] get file fail tgID=%d err=%v", tgID, err)
		app.send.Send(tgbotapi.NewMessage(chatID, msgVoiceDownFail))
		return
	}

	resp, err := http.Get(file.Link(app.bot.Token))
	if err != nil {
		log.Printf("[voice] download fail tgID=%d err=%v", tgID, err)
		app.send.Send(tgbotapi.NewMessage(chatID, msgVoiceDownFail))
		return
	}
	defer resp.Body.Close()

	path, err := saveTempOgg(os.TempDir(), resp.Body)
	if err != nil {
		log.Printf("[voice] save tmp fail tgID=%d err=%v", tgID, err)
		app.send.Send(tgbotapi.NewMessage(chatID, msgVoiceDownFail))
		return
	}
	defer os.Remove(path)

	text, err := app.Speech.Transcribe(ctx, path)
	if err != nil {
		log.Printf("[voice] transcribe fail tgID=%d err=%v", tgID, err)
		app.send.Send(tgbotapi.NewMessage(chatID, msgTranscribeFail))
		if app.ErrorNotify != nil {
			_ = app.ErrorNotify.Notify(ctx, err, "transcribe")
		}
		return
	}
	log.Printf("[voice] transcribed tgID=%d: %q", tgID, text)

	app.voiceOver(ctx, chatID, tgID, text)
}

// saveTempOgg пишет скачанное голосовое во временный файл. При любом
// сбое недописанный файл подчищается сразу, наружу он не отдаётся.
func saveTempOgg(dir string, r io.Reader) (string, error) {
	path := filepath.Join(dir, uuid.NewString()+".ogg")

	out, err := os.Create(path)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(out, r); err != nil {
		out.Close()
		os.Remove(path)
		return "", err
	}
	if err := out.Close(); err != nil {
		os.Remove(path)
		return "", err
	}

	return path, nil
}
