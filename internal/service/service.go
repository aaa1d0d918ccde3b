package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/elastic/go-elasticsearch/v9"

	"github.com/medicore/portal/internal/domain"
	"github.com/medicore/portal/internal/events"
	"github.com/medicore/portal/internal/idgen"
	"github.com/medicore/portal/internal/repo"
	"github.com/medicore/portal/internal/state"
	"github.com/medicore/portal/internal/store"
	"github.com/medicore/portal/pkg/logging"
)

var (
	ErrValidation = errors.New("validation") // 400
	ErrNotFound   = errors.New("not found")  // 404
	ErrConflict   = errors.New("conflict")   // 409
)

// Portal hosts every workflow orchestrator. Each orchestrator waits on the
// network stand-in, then validates and dispatches its actions as one burst
// under the store's exclusive section.
type Portal struct {
	Store     *store.Store
	Repo      *repo.GormRepo
	Events    *events.Publisher
	ES        *elasticsearch.Client
	IDs       *idgen.Generator
	JWTSecret []byte

	// Latency replaces the network stand-in when set; tests use a no-op.
	Latency func(ctx context.Context, d time.Duration) error

	otpMu   sync.Mutex
	pending *pendingRegistration

	call callState
}

type pendingRegistration struct {
	Email    string
	Name     string
	Mobile   string
	CodeHash string
	IssuedAt time.Time
}

type callState struct {
	mu      sync.Mutex
	seconds int
	stop    chan struct{}
	chat    []domain.ChatMessage
}

// simulate is the network stand-in: it always completes after the delay,
// unless the caller's context ends first.
func (p *Portal) simulate(ctx context.Context, d time.Duration) error {
	if p.Latency != nil {
		return p.Latency(ctx, d)
	}
	select {
	case <-time.After(d):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// publish sends a domain event best-effort; delivery failures are logged,
// never surfaced to the caller.
func (p *Portal) publish(ctx context.Context, topic, key string, event any) {
	if err := p.Events.Publish(ctx, topic, key, event); err != nil {
		logging.FromContext(ctx).Warn("event_publish_error", "topic", topic, "error", err)
	}
}

func (p *Portal) notification(title, message, typ string) state.AddNotification {
	return state.AddNotification{Notification: domain.Notification{
		ID:      p.IDs.EntityID("notif"),
		Title:   title,
		Message: message,
		Time:    p.IDs.Now(),
		Type:    typ,
	}}
}
