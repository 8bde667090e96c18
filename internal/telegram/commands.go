package telegram

import (
	"context"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func (app *BotApp) handleCommand(ctx context.Context, msg *tgbotapi.Message, tgID int64) {
	switch msg.Command() {
	case "start":
		app.handleStart(ctx, msg, tgID)
	case "help":
		app.handleHelp(ctx, msg)
	case "voice":
		app.handleVoicePicker(ctx, msg, tgID)
	case "status":
		app.handleStatus(ctx, msg, tgID)
	default:
		app.send.Send(tgbotapi.NewMessage(msg.Chat.ID, msgUnknownCommand))
	}
}

func (app *BotApp) handleStart(ctx context.Context, msg *tgbotapi.Message, tgID int64) {
	current := app.Sessions.CurrentVoice(ctx, tgID)
	app.send.Send(tgbotapi.NewMessage(msg.Chat.ID, welcomeText(current, app.maxTextLen)))
}

func (app *BotApp) handleHelp(_ context.Context, msg *tgbotapi.Message) {
	app.send.Send(tgbotapi.NewMessage(msg.Chat.ID, helpText(app.maxTextLen)))
}

func (app *BotApp) handleVoicePicker(ctx context.Context, msg *tgbotapi.Message, tgID int64) {
	current := app.Sessions.CurrentVoice(ctx, tgID)

	out := tgbotapi.NewMessage(msg.Chat.ID, voicePickerText(current, app.Voices.Len()))
	out.ReplyMarkup = BuildVoiceKeyboard(app.Voices)
	if _, err := app.send.Send(out); err != nil {
		log.Printf("[voice_menu] send fail tgID=%d err=%v", tgID, err)
	}
}

func (app *BotApp) handleStatus(ctx context.Context, msg *tgbotapi.Message, tgID int64) {
	if !app.Speech.IsAPIKeyValid(ctx) {
		app.send.Send(tgbotapi.NewMessage(msg.Chat.ID, statusFailText))
		return
	}

	current := app.Sessions.CurrentVoice(ctx, tgID)
	app.send.Send(tgbotapi.NewMessage(msg.Chat.ID, statusOKText(current)))
}
