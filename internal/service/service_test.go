package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/medicore/portal/internal/domain"
	"github.com/medicore/portal/internal/idgen"
	"github.com/medicore/portal/internal/state"
	"github.com/medicore/portal/internal/store"
)

func newTestPortal(t *testing.T) *Portal {
	t.Helper()
	return &Portal{
		Store:     store.New(state.Seed()),
		IDs:       &idgen.Generator{},
		JWTSecret: []byte("test-jwt-secret"),
		Latency:   func(context.Context, time.Duration) error { return nil },
	}
}

func loginPatient(t *testing.T, p *Portal) *domain.User {
	t.Helper()
	user, err := p.Login(context.Background(), "jane@example.com", "Jane", "")
	require.NoError(t, err)
	return user
}

func loginAdmin(t *testing.T, p *Portal) *domain.User {
	t.Helper()
	user, err := p.Login(context.Background(), "admin@example.com", "", "")
	require.NoError(t, err)
	return user
}
