package telegram

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExceedsMaxLength(t *testing.T) {
	t.Parallel()

	got, tooLong := exceedsMaxLength(strings.Repeat("а", 5000), 5000)
	assert.Equal(t, 5000, got)
	assert.False(t, tooLong, "ровно на лимите — проходит")

	got, tooLong = exceedsMaxLength(strings.Repeat("а", 5001), 5000)
	assert.Equal(t, 5001, got)
	assert.True(t, tooLong)
}

func TestExceedsMaxLength_CountsRunesNotBytes(t *testing.T) {
	t.Parallel()

	// 3000 кириллических символов — это 6000 байт
	text := strings.Repeat("ю", 3000)
	got, tooLong := exceedsMaxLength(text, 5000)
	assert.Equal(t, 3000, got)
	assert.False(t, tooLong)
}
