package telegram

import (
	"context"
	"errors"
	"log"
	"path/filepath"
	"unicode/utf8"

	"github.com/Vovarama1992/voice_bot/internal/speech"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func (app *BotApp) handleText(ctx context.Context, msg *tgbotapi.Message, tgID int64) {
	app.voiceOver(ctx, msg.Chat.ID, tgID, msg.Text)
}

// Лимит считается в символах, не в байтах: кириллица в UTF-8
// двухбайтовая.
func exceedsMaxLength(text string, max int) (int, bool) {
	n := utf8.RuneCountInString(text)
	return n, n > max
}

// voiceOver — общий путь озвучки: проверка длины ДО любого похода в
// сеть, сообщение о обработке, синтез, ответ голосовым. При ошибке
// сообщение о обработке редактируется в текст классифицированной
// ошибки.
func (app *BotApp) voiceOver(ctx context.Context, chatID, tgID int64, text string) {
	if got, tooLong := exceedsMaxLength(text, app.maxTextLen); tooLong {
		app.send.Send(tgbotapi.NewMessage(chatID, lengthExceededText(app.maxTextLen, got)))
		return
	}

	processing, err := app.send.Send(tgbotapi.NewMessage(chatID, msgProcessing))
	if err != nil {
		log.Printf("[text] processing msg fail tgID=%d err=%v", tgID, err)
	}

	voice := app.Sessions.CurrentVoice(ctx, tgID)

	path, err := app.Speech.Synthesize(ctx, text, voice.ID)
	if err != nil {
		app.replyError(ctx, chatID, processing.MessageID, err)
		return
	}

	out := tgbotapi.NewVoice(chatID, tgbotapi.FilePath(path))
	out.Caption = audioCaption(voice, filepath.Base(path))
	if _, err := app.send.Send(out); err != nil {
		log.Printf("[text] send voice fail tgID=%d err=%v", tgID, err)
		app.editOrSend(chatID, processing.MessageID, msgSendAudioFail)
		return
	}

	// убираем "Обрабатываю..."
	if processing.MessageID != 0 {
		app.send.Request(tgbotapi.NewDeleteMessage(chatID, processing.MessageID))
	}

	log.Printf("[text] done tgID=%d voice=%s file=%s", tgID, voice.Key, filepath.Base(path))
}

// replyError показывает пользователю текст ошибки как есть. Только
// неожиданные (неклассифицированные) сбои уходят ещё и админу.
func (app *BotApp) replyError(ctx context.Context, chatID int64, processingID int, err error) {
	var apiErr *speech.APIError
	if errors.As(err, &apiErr) {
		app.editOrSend(chatID, processingID, apiErr.Error())
		if apiErr.Kind == speech.KindUnexpected && app.ErrorNotify != nil {
			_ = app.ErrorNotify.Notify(ctx, err, "synthesize")
		}
		return
	}

	app.editOrSend(chatID, processingID, "❌ Ошибка при генерации аудио: "+err.Error())
	if app.ErrorNotify != nil {
		_ = app.ErrorNotify.Notify(ctx, err, "synthesize")
	}
}

func (app *BotApp) editOrSend(chatID int64, msgID int, text string) {
	if msgID != 0 {
		app.send.Send(tgbotapi.NewEditMessageText(chatID, msgID, text))
		return
	}
	app.send.Send(tgbotapi.NewMessage(chatID, text))
}
