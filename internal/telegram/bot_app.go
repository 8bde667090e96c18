package telegram

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/Vovarama1992/voice_bot/internal/error_notificator"
	"github.com/Vovarama1992/voice_bot/internal/session"
	"github.com/Vovarama1992/voice_bot/internal/speech"
	"github.com/Vovarama1992/voice_bot/internal/voices"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const defaultMaxTextLength = 5000

// sender — то, что обработчикам нужно от Telegram API для ответов.
// *tgbotapi.BotAPI ему удовлетворяет, в тестах подставляется фейк.
type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

type BotApp struct {
	Sessions    *session.Service
	Speech      *speech.Service
	Voices      *voices.Registry
	ErrorNotify error_notificator.Notificator

	bot        *tgbotapi.BotAPI
	send       sender
	maxTextLen int
}

func NewBotApp(
	sessions *session.Service,
	speechSrv *speech.Service,
	registry *voices.Registry,
	errNotify error_notificator.Notificator,
) *BotApp {
	maxLen := defaultMaxTextLength
	if raw := os.Getenv("MAX_TEXT_LENGTH"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			maxLen = n
		}
	}

	return &BotApp{
		Sessions:    sessions,
		Speech:      speechSrv,
		Voices:      registry,
		ErrorNotify: errNotify,
		maxTextLen:  maxLen,
	}
}

func (app *BotApp) InitBot() error {
	token := os.Getenv("TELEGRAM_BOT_TOKEN")
	if token == "" {
		return fmt.Errorf("TELEGRAM_BOT_TOKEN is not set")
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return fmt.Errorf("init telegram bot: %w", err)
	}

	app.bot = bot
	app.send = bot
	log.Printf("[bot_app] ready: @%s", bot.Self.UserName)

	if err := app.setupCommands(); err != nil {
		// запуску не мешаем, меню команд просто останется прежним
		log.Printf("[bot_app] setup commands fail: %v", err)
	}

	go app.runBotLoop()
	return nil
}

func (app *BotApp) GetBot() *tgbotapi.BotAPI {
	return app.bot
}

var botCommands = []tgbotapi.BotCommand{
	{Command: "start", Description: "Начать работу с ботом"},
	{Command: "help", Description: "Показать справку по использованию"},
	{Command: "voice", Description: "Выбрать голос для озвучивания"},
	{Command: "status", Description: "Проверить статус API и текущий голос"},
}

// setupCommands сверяет меню команд с ожидаемым и обновляет его
// только при расхождении.
func (app *BotApp) setupCommands() error {
	current, err := app.bot.GetMyCommands()
	if err != nil {
		return err
	}

	if commandsEqual(current, botCommands) {
		log.Printf("[bot_app] commands up to date")
		return nil
	}

	if _, err := app.bot.Request(tgbotapi.NewSetMyCommands(botCommands...)); err != nil {
		return err
	}
	log.Printf("[bot_app] commands updated: %d items", len(botCommands))
	return nil
}

func commandsEqual(current, want []tgbotapi.BotCommand) bool {
	if len(current) != len(want) {
		return false
	}
	cur := make(map[string]string, len(current))
	for _, c := range current {
		cur[c.Command] = c.Description
	}
	for _, c := range want {
		if cur[c.Command] != c.Description {
			return false
		}
	}
	return true
}
