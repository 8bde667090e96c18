package telegram

import (
	"github.com/Vovarama1992/voice_bot/internal/voices"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// BuildVoiceKeyboard — кнопки выбора голоса, по две в ряд,
// callback data вида voice_<key>.
func BuildVoiceKeyboard(reg *voices.Registry) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	var row []tgbotapi.InlineKeyboardButton

	for _, v := range reg.All() {
		btn := tgbotapi.NewInlineKeyboardButtonData(
			v.Name+" — "+v.Description,
			"voice_"+v.Key,
		)
		row = append(row, btn)
		if len(row) == 2 {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}
