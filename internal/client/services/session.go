// Package services holds the client's application logic: the session
// manager (login, signup, logout and change notification) and the feed
// service (loading, ordering and creating posts).
package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/dmitrijs2005/foorum/internal/client/directory"
	"github.com/dmitrijs2005/foorum/internal/client/metrics"
	"github.com/dmitrijs2005/foorum/internal/client/models"
	"github.com/dmitrijs2005/foorum/internal/client/persistence"
	"github.com/dmitrijs2005/foorum/internal/common"
	"github.com/dmitrijs2005/foorum/internal/logging"
)

// Result is the outcome delivered by LoginAsync and SignupAsync.
type Result struct {
	Success bool
	Error   string
}

// SessionManager owns the single active session. It is either anonymous or
// authenticated as one directory user; every transition is persisted and
// announced to subscribers.
type SessionManager struct {
	dir     *directory.Directory
	store   *persistence.Adapter
	log     logging.Logger
	metrics *metrics.Metrics

	mu   sync.RWMutex
	user *models.User

	subMu   sync.Mutex
	subs    map[int]func(*models.User)
	nextSub int
}

// NewSessionManager restores any saved session before returning, so the
// caller's first IsAuthenticated check already reflects it. An unreadable
// saved session starts the manager anonymous.
func NewSessionManager(ctx context.Context, dir *directory.Directory, store *persistence.Adapter, log logging.Logger, m *metrics.Metrics) (*SessionManager, error) {
	if log == nil {
		log = logging.Nop()
	}
	s := &SessionManager{
		dir:     dir,
		store:   store,
		log:     log,
		metrics: m,
		subs:    make(map[int]func(*models.User)),
	}

	saved, err := store.GetSession(ctx)
	if err != nil {
		return nil, fmt.Errorf("restore session: %w", err)
	}
	if saved != nil {
		s.user = saved
		log.Info(ctx, "session restored", "user_id", saved.ID)
	}
	return s, nil
}

func (s *SessionManager) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil
}

// CurrentUser returns a copy of the signed-in user.
func (s *SessionManager) CurrentUser() (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return models.User{}, false
	}
	return *s.user, true
}

// Login authenticates against the directory. Any mismatch yields
// common.ErrInvalidCredentials and leaves the session untouched.
func (s *SessionManager) Login(ctx context.Context, email, password string) error {
	u, ok := s.dir.ValidateLogin(email, password)
	if !ok {
		s.metrics.AuthAttempt(metrics.OpLogin, metrics.ResultFailure)
		s.log.Info(ctx, "login rejected")
		return common.ErrInvalidCredentials
	}

	if err := s.store.SaveSession(ctx, u); err != nil {
		s.metrics.AuthAttempt(metrics.OpLogin, metrics.ResultFailure)
		return fmt.Errorf("login: %w", err)
	}

	s.metrics.AuthAttempt(metrics.OpLogin, metrics.ResultSuccess)
	s.log.Info(ctx, "logged in", "user_id", u.ID)
	s.setUser(&u)
	return nil
}

// Signup creates a directory account and signs it in. A taken email is
// reported as common.ErrEmailExists before any field validation. The new id
// is the directory size plus one and the avatar is directory.DefaultAvatar.
func (s *SessionManager) Signup(ctx context.Context, name, email, password string) error {
	if s.dir.EmailExists(email) {
		s.metrics.AuthAttempt(metrics.OpSignup, metrics.ResultFailure)
		return common.ErrEmailExists
	}

	in := models.SignupInput{Name: name, Email: email, Password: password}
	if err := models.Validate(in); err != nil {
		s.metrics.AuthAttempt(metrics.OpSignup, metrics.ResultFailure)
		return err
	}

	u, ok := s.dir.AppendIfAbsent(email, func(count int) models.User {
		return models.User{
			ID:       strconv.Itoa(count + 1),
			Name:     name,
			Email:    email,
			Password: password,
			Avatar:   directory.DefaultAvatar,
		}
	})
	if !ok {
		s.metrics.AuthAttempt(metrics.OpSignup, metrics.ResultFailure)
		return common.ErrEmailExists
	}

	if err := s.store.SaveSession(ctx, u); err != nil {
		s.metrics.AuthAttempt(metrics.OpSignup, metrics.ResultFailure)
		return fmt.Errorf("signup: %w", err)
	}

	s.metrics.AuthAttempt(metrics.OpSignup, metrics.ResultSuccess)
	s.log.Info(ctx, "signed up", "user_id", u.ID)
	s.setUser(&u)
	return nil
}

// Logout always ends in the anonymous state. Subscribers hear about it only
// if a user was signed in. The error, if any, is from removing the saved
// session.
func (s *SessionManager) Logout(ctx context.Context) error {
	s.mu.Lock()
	was := s.user
	s.user = nil
	s.mu.Unlock()

	err := s.store.RemoveSession(ctx)

	if was != nil {
		s.log.Info(ctx, "logged out", "user_id", was.ID)
		s.notify(nil)
	}
	if err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}

// ResetLocalData signs out and wipes everything the client has stored.
// Subscribers hear about it only if a user was signed in.
func (s *SessionManager) ResetLocalData(ctx context.Context) error {
	s.mu.Lock()
	was := s.user
	s.user = nil
	s.mu.Unlock()

	err := s.store.Reset(ctx)

	if was != nil {
		s.notify(nil)
	}
	if err != nil {
		return err
	}
	s.log.Info(ctx, "local data reset")
	return nil
}

// LoginAsync runs Login and returns its outcome on a channel that is
// already resolved: the state change and persistence write are complete
// by the time the channel is returned.
func (s *SessionManager) LoginAsync(ctx context.Context, email, password string) <-chan Result {
	return resolved(s.Login(ctx, email, password))
}

// SignupAsync is the Signup counterpart of LoginAsync.
func (s *SessionManager) SignupAsync(ctx context.Context, name, email, password string) <-chan Result {
	return resolved(s.Signup(ctx, name, email, password))
}

// Subscribe registers fn to be called after every session change with the
// new user, or nil when the session became anonymous. fn runs on the
// goroutine that made the change. The returned func unsubscribes.
func (s *SessionManager) Subscribe(fn func(*models.User)) (cancel func()) {
	s.subMu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.subMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.subMu.Lock()
			delete(s.subs, id)
			s.subMu.Unlock()
		})
	}
}

func (s *SessionManager) setUser(u *models.User) {
	s.mu.Lock()
	s.user = u
	s.mu.Unlock()

	c := *u
	s.notify(&c)
}

func (s *SessionManager) notify(u *models.User) {
	s.subMu.Lock()
	fns := make([]func(*models.User), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subMu.Unlock()

	for _, fn := range fns {
		if u == nil {
			fn(nil)
			continue
		}
		c := *u
		fn(&c)
	}
}

func resolved(err error) <-chan Result {
	ch := make(chan Result, 1)
	ch <- toResult(err)
	close(ch)
	return ch
}

func toResult(err error) Result {
	if err == nil {
		return Result{Success: true}
	}
	msg := err.Error()
	switch {
	case errors.Is(err, common.ErrInvalidCredentials):
		msg = common.ErrInvalidCredentials.Error()
	case errors.Is(err, common.ErrEmailExists):
		msg = common.ErrEmailExists.Error()
	}
	return Result{Success: false, Error: msg}
}
