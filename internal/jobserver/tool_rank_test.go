package jobserver

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/anatolykoptev/go_jobrank/internal/engine"
	"github.com/anatolykoptev/go_jobrank/internal/store"
)

func TestResolveProfileMissingFallsBackToEmpty(t *testing.T) {
	deps := Deps{Profiles: store.NewMemory()}

	profile, err := resolveProfile(context.Background(), deps, "ghost")
	require.NoError(t, err)
	require.Equal(t, "ghost", profile.UserID)
	require.Empty(t, profile.Skills)
}

func TestResolveProfileRequiresUserID(t *testing.T) {
	deps := Deps{Profiles: store.NewMemory()}

	_, err := resolveProfile(context.Background(), deps, "")
	require.Error(t, err)
}

func TestResolveProfileReturnsStored(t *testing.T) {
	mem := store.NewMemory()
	require.NoError(t, mem.PutProfile(context.Background(), &engine.UserProfile{
		UserID:          "u1",
		ExperienceYears: 6,
	}))
	deps := Deps{Profiles: mem}

	profile, err := resolveProfile(context.Background(), deps, "u1")
	require.NoError(t, err)
	require.InDelta(t, 6.0, profile.ExperienceYears, 1e-9)
}
