package error_notificator_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/Vovarama1992/voice_bot/internal/error_notificator"
	"github.com/stretchr/testify/require"
)

func TestNotify_BotNotReady(t *testing.T) {
	t.Parallel()

	infra := error_notificator.NewInfra(nil)

	err := infra.Notify(context.Background(), errors.New("boom"), "synthesize")
	require.Error(t, err)
}

// SetBot вызывается из main уже после старта цикла апдейтов,
// поэтому гонять его параллельно с Notify должно быть безопасно
// (ловится детектором гонок).
func TestSetBot_ConcurrentWithNotify(t *testing.T) {
	t.Parallel()

	infra := error_notificator.NewInfra(nil)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			infra.SetBot(nil)
		}()
		go func() {
			defer wg.Done()
			_ = infra.Notify(context.Background(), errors.New("boom"), "synthesize")
		}()
	}
	wg.Wait()
}
