package session_test

import (
	"context"
	"testing"

	"github.com/Vovarama1992/voice_bot/internal/session"
	"github.com/Vovarama1992/voice_bot/internal/voices"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() (*session.Service, session.Repo, *voices.Registry) {
	registry := voices.NewRegistry()
	repo := session.NewMemoryRepo()
	return session.NewService(repo, registry), repo, registry
}

func TestCurrentVoice_DefaultWhenNotSelected(t *testing.T) {
	t.Parallel()

	svc, _, registry := newTestService()

	v := svc.CurrentVoice(context.Background(), 42)
	assert.Equal(t, registry.Default(), v)
}

func TestSelectVoice_KnownKey(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestService()
	ctx := context.Background()

	v, err := svc.SelectVoice(ctx, 42, "rachel")
	require.NoError(t, err)
	assert.Equal(t, "Rachel", v.Name)

	assert.Equal(t, "rachel", svc.CurrentVoice(ctx, 42).Key)
}

func TestSelectVoice_UnknownKeyKeepsPrevious(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestService()
	ctx := context.Background()

	_, err := svc.SelectVoice(ctx, 42, "domi")
	require.NoError(t, err)

	// неизвестный ключ отклоняется, прежний выбор не трогается
	_, err = svc.SelectVoice(ctx, 42, "ghost")
	require.ErrorIs(t, err, session.ErrUnknownVoice)

	assert.Equal(t, "domi", svc.CurrentVoice(ctx, 42).Key)
}

func TestCurrentVoice_StaleKeyFallsBackToDefault(t *testing.T) {
	t.Parallel()

	svc, repo, registry := newTestService()
	ctx := context.Background()

	// ключ, которого нет в реестре (например, голос убрали из конфига)
	require.NoError(t, repo.SetVoice(ctx, 42, "ghost"))

	assert.Equal(t, registry.Default(), svc.CurrentVoice(ctx, 42))
}

func TestMemoryRepo_IsolatedPerUser(t *testing.T) {
	t.Parallel()

	svc, _, registry := newTestService()
	ctx := context.Background()

	_, err := svc.SelectVoice(ctx, 1, "elli")
	require.NoError(t, err)

	assert.Equal(t, "elli", svc.CurrentVoice(ctx, 1).Key)
	assert.Equal(t, registry.Default(), svc.CurrentVoice(ctx, 2))
}
