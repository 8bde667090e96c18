package telegram

import (
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
)

func TestCommandsEqual(t *testing.T) {
	t.Parallel()

	want := []tgbotapi.BotCommand{
		{Command: "start", Description: "a"},
		{Command: "help", Description: "b"},
	}

	assert.True(t, commandsEqual([]tgbotapi.BotCommand{
		{Command: "help", Description: "b"},
		{Command: "start", Description: "a"},
	}, want), "порядок не важен")

	assert.False(t, commandsEqual(nil, want))
	assert.False(t, commandsEqual([]tgbotapi.BotCommand{
		{Command: "start", Description: "a"},
	}, want))
	assert.False(t, commandsEqual([]tgbotapi.BotCommand{
		{Command: "start", Description: "a"},
		{Command: "help", Description: "changed"},
	}, want))
}
