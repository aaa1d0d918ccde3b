package service

import (
	"context"
	"fmt"
	"time"

	"github.com/medicore/portal/internal/domain"
	"github.com/medicore/portal/internal/events"
	"github.com/medicore/portal/internal/hash"
	"github.com/medicore/portal/internal/state"
	"github.com/medicore/portal/internal/tokens"
	"github.com/medicore/portal/pkg/logging"
)

const sessionTTL = 7 * 24 * time.Hour

// Login classifies the account by its email, mints a session and emits the
// welcome notification. There is no real authentication behind this.
func (p *Portal) Login(ctx context.Context, email, name, mobile string) (*domain.User, error) {
	l := logging.FromContext(ctx).With("svc", "auth.login")

	if email == "" {
		return nil, fmt.Errorf("%w: email required", ErrValidation)
	}

	if err := p.simulate(ctx, 800*time.Millisecond); err != nil {
		return nil, err
	}

	now := p.IDs.Now()
	role := domain.RoleFor(email)
	if role == domain.RoleAdmin {
		name = "Admin User"
	} else if name == "" {
		name = "John Doe"
	}
	if mobile == "" {
		mobile = "+919876543210"
	}

	user := domain.User{
		ID:     p.IDs.EntityID("user"),
		Email:  email,
		Name:   name,
		Role:   role,
		Mobile: mobile,
		Joined: now,
	}

	token, err := tokens.NewSessionToken(p.JWTSecret, user.ID, string(role), now.Add(sessionTTL))
	if err != nil {
		l.Error("login_error", "reason", "token mint failed", "error", err)
		return nil, err
	}
	session := domain.Session{
		Token:     token,
		ExpiresAt: now.Add(sessionTTL),
		LastLogin: now,
	}

	p.Store.Dispatch(
		state.Login{User: user, Session: session},
		p.notification("Login Successful", "Welcome "+user.Name, domain.NotificationSystem),
	)

	l.Info("login_success", "user_id", user.ID, "role", role)
	p.publish(ctx, events.TopicUser, user.ID, map[string]any{
		"event": "logged_in",
		"email": email,
		"role":  role,
	})
	return &user, nil
}

// Register issues a one-time code. The notification feed stands in for the
// delivery channel; VerifyCode finishes the flow.
func (p *Portal) Register(ctx context.Context, email, name, mobile string) error {
	l := logging.FromContext(ctx).With("svc", "auth.register")

	if email == "" {
		return fmt.Errorf("%w: email required", ErrValidation)
	}

	if err := p.simulate(ctx, time.Second); err != nil {
		return err
	}

	code := p.IDs.OTP()
	codeHash, err := hash.HashCode(code)
	if err != nil {
		l.Error("register_error", "reason", "cannot hash the code", "error", err)
		return err
	}

	p.otpMu.Lock()
	p.pending = &pendingRegistration{
		Email:    email,
		Name:     name,
		Mobile:   mobile,
		CodeHash: codeHash,
		IssuedAt: p.IDs.Now(),
	}
	p.otpMu.Unlock()

	p.Store.Dispatch(
		p.notification("OTP Sent", "Your OTP is "+code, domain.NotificationSystem),
	)

	l.Info("otp_issued", "email", email)
	p.publish(ctx, events.TopicUser, email, map[string]any{"event": "otp_issued"})
	return nil
}

// VerifyCode checks the one-time code against the pending registration and
// finalizes it as a login.
func (p *Portal) VerifyCode(ctx context.Context, code string) (*domain.User, error) {
	p.otpMu.Lock()
	pending := p.pending
	p.otpMu.Unlock()

	if pending == nil {
		return nil, fmt.Errorf("%w: no pending registration", ErrValidation)
	}
	if !hash.CheckCode(pending.CodeHash, code) {
		return nil, fmt.Errorf("%w: invalid code", ErrValidation)
	}

	p.otpMu.Lock()
	p.pending = nil
	p.otpMu.Unlock()

	return p.Login(ctx, pending.Email, pending.Name, pending.Mobile)
}

func (p *Portal) Logout(ctx context.Context) {
	snap := p.Store.View()
	p.Store.Dispatch(state.Logout{})
	if snap.User != nil {
		p.publish(ctx, events.TopicUser, snap.User.ID, map[string]any{"event": "logged_out"})
	}
}

// UpdateProfile shallow-merges the set fields into the signed-in user.
func (p *Portal) UpdateProfile(ctx context.Context, name, email, mobile *string) error {
	return p.Store.Commit(func(snap state.Snapshot) ([]state.Action, error) {
		if snap.User == nil {
			return nil, fmt.Errorf("%w: not signed in", ErrValidation)
		}
		return []state.Action{state.UpdateProfile{Name: name, Email: email, Mobile: mobile}}, nil
	})
}

// Restore rehydrates the snapshot from storage at process start: the saved
// user becomes a fresh 7-day session, the saved cart replaces the empty one.
func (p *Portal) Restore(ctx context.Context) error {
	if p.Repo == nil {
		return nil
	}
	l := logging.FromContext(ctx).With("svc", "auth.restore")

	user, err := p.Repo.LoadUser(ctx)
	if err != nil {
		return err
	}
	cart, err := p.Repo.LoadCart(ctx)
	if err != nil {
		return err
	}

	var actions []state.Action
	if user != nil {
		now := p.IDs.Now()
		token, err := tokens.NewSessionToken(p.JWTSecret, user.ID, string(user.Role), now.Add(sessionTTL))
		if err != nil {
			return err
		}
		actions = append(actions, state.Login{
			User: *user,
			Session: domain.Session{
				Token:     token,
				ExpiresAt: now.Add(sessionTTL),
				LastLogin: now,
			},
		})
	}
	if len(cart) > 0 {
		actions = append(actions, state.UpdateCart{Cart: cart})
	}
	if len(actions) == 0 {
		return nil
	}

	p.Store.Dispatch(actions...)
	l.Info("restored", "user", user != nil, "cart_lines", len(cart))
	return nil
}
