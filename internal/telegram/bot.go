package telegram

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/Vovarama1992/voice_bot/internal/session"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// runBotLoop — главный цикл получения апдейтов
func (app *BotApp) runBotLoop() {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30

	updates := app.bot.GetUpdatesChan(u)
	log.Printf("[bot_loop] started username=@%s", app.bot.Self.UserName)

	for update := range updates {
		tgID := extractTelegramID(update)
		if tgID == 0 {
			continue
		}

		log.Printf("[bot_touch] fromTG=%d updateID=%d", tgID, update.UpdateID)

		app.dispatchUpdate(context.Background(), tgID, update)
	}
}

func (app *BotApp) dispatchUpdate(ctx context.Context, tgID int64, update tgbotapi.Update) {
	switch {
	case update.Message != nil:
		app.handleMessage(ctx, update.Message, tgID)
	case update.CallbackQuery != nil:
		app.handleCallback(ctx, update.CallbackQuery, tgID)
	}
}

func (app *BotApp) handleMessage(ctx context.Context, msg *tgbotapi.Message, tgID int64) {
	switch {
	case msg.IsCommand():
		app.handleCommand(ctx, msg, tgID)
	case msg.Voice != nil:
		app.handleVoice(ctx, msg, tgID)
	case msg.Text != "":
		app.handleText(ctx, msg, tgID)
	default:
		app.send.Send(tgbotapi.NewMessage(msg.Chat.ID, msgUnsupported))
	}
}

// handleCallback — выбор голоса через inline кнопки (voice_<key>)
func (app *BotApp) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery, tgID int64) {
	// убираем "часики" на кнопке
	app.send.Request(tgbotapi.NewCallback(cb.ID, ""))

	if cb.Message == nil || !strings.HasPrefix(cb.Data, "voice_") {
		return
	}
	key := strings.TrimPrefix(cb.Data, "voice_")

	chatID := cb.Message.Chat.ID
	msgID := cb.Message.MessageID

	v, err := app.Sessions.SelectVoice(ctx, tgID, key)
	if errors.Is(err, session.ErrUnknownVoice) {
		app.send.Send(tgbotapi.NewEditMessageText(chatID, msgID, msgVoiceNotFound))
		return
	}
	if err != nil {
		log.Printf("[voice_pick] save fail tgID=%d key=%s err=%v", tgID, key, err)
		app.send.Send(tgbotapi.NewEditMessageText(chatID, msgID, msgSaveVoiceFail))
		return
	}

	app.send.Send(tgbotapi.NewEditMessageText(chatID, msgID, voiceChangedText(v)))
	log.Printf("[voice_pick] tgID=%d voice=%s", tgID, v.Name)
}

func extractTelegramID(u tgbotapi.Update) int64 {
	switch {
	case u.Message != nil && u.Message.From != nil:
		return u.Message.From.ID
	case u.CallbackQuery != nil && u.CallbackQuery.From != nil:
		return u.CallbackQuery.From.ID
	default:
		return 0
	}
}
