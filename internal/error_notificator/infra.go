package error_notificator

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type Infra struct {
	mu          sync.RWMutex
	bot         *tgbotapi.BotAPI
	adminChatID int64
}

func NewInfra(bot *tgbotapi.BotAPI) *Infra {
	var adminChatID int64
	if raw := os.Getenv("ADMIN_CHAT_ID"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			log.Printf("[error_notificator] bad ADMIN_CHAT_ID: %v", err)
		} else {
			adminChatID = id
		}
	}

	return &Infra{bot: bot, adminChatID: adminChatID}
}

// SetBot — позволяет передать бота ПОСЛЕ того, как он инициализировался.
// Цикл апдейтов к этому моменту уже крутится, поэтому под замком.
func (i *Infra) SetBot(bot *tgbotapi.BotAPI) {
	i.mu.Lock()
	i.bot = bot
	i.mu.Unlock()
}

func (i *Infra) Notify(ctx context.Context, err error, details string) error {
	i.mu.RLock()
	bot := i.bot
	i.mu.RUnlock()

	if bot == nil {
		log.Printf("[error_notificator] bot not ready, dropped: %v", err)
		return fmt.Errorf("bot not ready")
	}
	if i.adminChatID == 0 {
		// админ-чат не настроен, алерты выключены
		return nil
	}

	text := fmt.Sprintf(
		"❗ Ошибка в боте\n\nОшибка: %v\n\nДетали: %s",
		err,
		details,
	)

	msg := tgbotapi.NewMessage(i.adminChatID, text)

	_, sendErr := bot.Send(msg)
	if sendErr != nil {
		log.Printf("[error_notificator] send fail: %v", sendErr)
		return sendErr
	}

	return nil
}
