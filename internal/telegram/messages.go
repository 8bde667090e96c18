package telegram

import (
	"fmt"

	"github.com/Vovarama1992/voice_bot/internal/voices"
)

const (
	msgProcessing     = "⏳ Обрабатываю ваш текст... Это может занять несколько секунд."
	msgUnsupported    = "📎 Отправь текст или голосовое сообщение."
	msgUnknownCommand = "Не знаю такую команду. Попробуй /help."
	msgVoiceNotFound  = "❌ Ошибка: выбранный голос не найден."
	msgSaveVoiceFail  = "⚠️ Не удалось сохранить выбор голоса."
	msgSendAudioFail  = "⚠️ Не удалось отправить аудио."
	msgSTTDisabled    = "🔇 Озвучивание голосовых сообщений не настроено."
	msgVoiceDownFail  = "⚠️ Не удалось получить голосовое."
	msgTranscribeFail = "⚠️ Не удалось распознать голос."

	statusFailText = "❌ Проблема с API ключом ElevenLabs.\n\n" +
		"🔧 Что проверить:\n" +
		"• Правильность ELEVENLABS_API_KEY в файле .env\n" +
		"• Действительность API ключа на сайте elevenlabs.io\n" +
		"• Статус аккаунта (не заблокирован ли из-за необычной активности)"
)

func welcomeText(v voices.Voice, maxLen int) string {
	return fmt.Sprintf(
		"🎙️ Привет! Я бот для озвучивания текста на русском языке.\n\n"+
			"📝 Просто отправь мне текст, и я преобразую его в речь через ElevenLabs.\n"+
			"🎤 Текущий голос: %s — %s\n"+
			"⚠️ Максимальная длина текста: %d символов.\n\n"+
			"Команда /voice — выбрать голос\n"+
			"Команда /help — справка",
		v.Name, v.Description, maxLen,
	)
}

func helpText(maxLen int) string {
	return fmt.Sprintf(
		"📖 Справка по использованию бота:\n\n"+
			"🔹 Команды:\n"+
			"/start — начать работу с ботом\n"+
			"/help — показать эту справку\n"+
			"/voice — выбрать голос для озвучивания\n"+
			"/status — проверить статус API\n\n"+
			"💡 Как пользоваться:\n"+
			"1. Выбери голос командой /voice\n"+
			"2. Отправь любой текст на русском языке\n"+
			"3. Получишь аудиофайл с озвучкой\n"+
			"4. Файл также сохранится на сервере\n\n"+
			"⚠️ Ограничение: максимум %d символов за раз",
		maxLen,
	)
}

func lengthExceededText(maxLen, got int) string {
	return fmt.Sprintf(
		"❌ Текст слишком длинный! Максимум %d символов.\nВаш текст: %d символов.",
		maxLen, got,
	)
}

func voicePickerText(current voices.Voice, total int) string {
	return fmt.Sprintf(
		"🎤 Выбери голос для озвучивания:\n\n"+
			"Текущий голос: %s — %s\n\n"+
			"Доступно %d голосов с разными тонами:",
		current.Name, current.Description, total,
	)
}

func voiceChangedText(v voices.Voice) string {
	return fmt.Sprintf(
		"✅ Голос изменен!\n\n"+
			"🎤 Выбранный голос: %s\n"+
			"📝 Описание: %s\n\n"+
			"Теперь все тексты будут озвучиваться этим голосом.",
		v.Name, v.Description,
	)
}

func statusOKText(v voices.Voice) string {
	return fmt.Sprintf(
		"✅ API ключ ElevenLabs валиден. Бот готов к работе!\n"+
			"🎤 Текущий голос: %s\n\n"+
			"💡 Если возникают ошибки при генерации, проверьте:\n"+
			"• Лимиты вашего тарифа на elevenlabs.io\n"+
			"• Статус аккаунта (не заблокирован ли Free Tier)",
		v.Name,
	)
}

func audioCaption(v voices.Voice, fileName string) string {
	return fmt.Sprintf("🎵 Ваш текст озвучен голосом %s!\n📁 Файл: %s", v.Name, fileName)
}
