// Package session holds the client's authenticated identity: the current
// user record, the logged-in flag, and the bearer token presented on
// authenticated requests. The store keeps its in-memory state and the
// durable copy in step: Init restores from storage, Login and Logout write
// and clear both durable keys, profile updates rewrite the user key only.
//
// The store is an explicit, constructed dependency. It is handed to the
// api gateway as its TokenSource and to the navigation guard; nothing in
// the program reaches for it as a global.
//
// Mutating operations are not serialized across their network call: two
// in-flight mutations resolve in completion order and the last write wins.
// The mutex below only keeps individual field access torn-free. This is a
// known non-invariant, accepted because the UI never triggers two session
// mutations at once; TestStore_RefreshOverwritesLogout pins the behavior.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/ekalnins/campustrade/internal/client/api"
	"github.com/ekalnins/campustrade/internal/client/models"
	"github.com/ekalnins/campustrade/internal/client/storage"
	"github.com/ekalnins/campustrade/internal/logging"
)

// Fallback messages shown when the backend gave no error payload.
const (
	msgLoginFailed    = "login failed"
	msgLoginNoNetwork = "login failed, please check your network connection"
	msgRegisterOK     = "registration successful"
	msgRegisterFailed = "registration failed, please check your network connection"
	msgLoginOK        = "login successful"
	msgNotLoggedIn    = "user not logged in"
	msgProfileUpdated = "profile updated successfully"
	msgUpdateFailed   = "update failed"
)

// Result is the uniform outcome of a session operation. Session methods
// translate every failure into one of these instead of returning errors.
type Result struct {
	Success bool
	Message string
}

// RegisterResult additionally carries the new account's id.
type RegisterResult struct {
	Result
	UserID int64
}

// UserAPI is the slice of the gateway the session store needs.
// *api.Client satisfies it; tests substitute fakes.
type UserAPI interface {
	Login(ctx context.Context, params models.LoginParams) (*api.LoginResult, error)
	Register(ctx context.Context, params models.RegisterParams) (*api.RegisterResult, error)
	GetUser(ctx context.Context, userID int64) (*models.User, error)
	UpdateUser(ctx context.Context, userID int64, update models.UserUpdate) error
}

// Store is the session state container.
type Store struct {
	users UserAPI
	kv    storage.Store
	log   logging.Logger

	mu       sync.RWMutex
	current  *models.User
	loggedIn bool
	token    string
}

// New builds an uninitialized (logged-out) store. Call Init to restore a
// persisted session.
func New(users UserAPI, kv storage.Store, log logging.Logger) *Store {
	return &Store{
		users: users,
		kv:    kv,
		log:   log.With("component", "session"),
	}
}

// Init restores the session from durable storage. It is idempotent and
// never fails: a missing record leaves the session logged out, a malformed
// one is discarded together with both durable keys. The token key is read
// independently and may legitimately be absent even when a user is
// restored — the backend does not issue a token on every deployment, and
// such a session simply makes unauthenticated requests.
func (s *Store) Init(ctx context.Context) {
	savedUser, ok, err := s.kv.Get(ctx, storage.KeyUser)
	if err != nil {
		s.log.Warn(ctx, "failed to read persisted session", "error", err)
		return
	}

	if ok {
		var user models.User
		if err := json.Unmarshal([]byte(savedUser), &user); err != nil {
			// Self-heal: drop the whole persisted record and start clean.
			s.log.Warn(ctx, "discarding malformed persisted session", "error", err)
			s.mu.Lock()
			s.current = nil
			s.loggedIn = false
			s.token = ""
			s.mu.Unlock()
			_ = s.kv.Delete(ctx, storage.KeyUser)
			_ = s.kv.Delete(ctx, storage.KeyToken)
			return
		}
		s.mu.Lock()
		s.current = &user
		s.loggedIn = true
		s.mu.Unlock()
	}

	savedToken, _, err := s.kv.Get(ctx, storage.KeyToken)
	if err != nil {
		s.log.Warn(ctx, "failed to read persisted token", "error", err)
		savedToken = ""
	}
	s.mu.Lock()
	s.token = savedToken
	s.mu.Unlock()
}

// Login authenticates against the backend. On acceptance the user record,
// the flag and (when issued) the token are set and persisted together;
// on any failure the session is left exactly as it was.
func (s *Store) Login(ctx context.Context, params models.LoginParams) Result {
	payload, err := s.users.Login(ctx, params)
	if err != nil {
		s.log.Warn(ctx, "login failed", "error", err)
		return Result{Success: false, Message: errorMessage(err, msgLoginNoNetwork)}
	}

	if payload.User == nil {
		return Result{Success: false, Message: msgLoginFailed}
	}

	s.mu.Lock()
	s.current = payload.User
	s.loggedIn = true
	s.token = payload.Token
	s.mu.Unlock()

	s.persistUser(ctx, payload.User)
	if payload.Token != "" {
		if err := s.kv.Set(ctx, storage.KeyToken, payload.Token); err != nil {
			s.log.Warn(ctx, "failed to persist token", "error", err)
		}
	} else {
		_ = s.kv.Delete(ctx, storage.KeyToken)
	}

	message := payload.Message
	if message == "" {
		message = msgLoginOK
	}
	return Result{Success: true, Message: message}
}

// Register creates an account. It does not sign the user in and does not
// touch session state.
func (s *Store) Register(ctx context.Context, params models.RegisterParams) RegisterResult {
	payload, err := s.users.Register(ctx, params)
	if err != nil {
		s.log.Warn(ctx, "registration failed", "error", err)
		return RegisterResult{Result: Result{Success: false, Message: errorMessage(err, msgRegisterFailed)}}
	}

	message := payload.Message
	if message == "" {
		message = msgRegisterOK
	}
	return RegisterResult{Result: Result{Success: true, Message: message}, UserID: payload.UserID}
}

// Logout unconditionally clears the in-memory session and both durable
// keys. No network call is made.
func (s *Store) Logout(ctx context.Context) {
	s.mu.Lock()
	s.current = nil
	s.loggedIn = false
	s.token = ""
	s.mu.Unlock()

	_ = s.kv.Delete(ctx, storage.KeyUser)
	_ = s.kv.Delete(ctx, storage.KeyToken)
}

// UpdateUserInfo sends a partial profile update and, only after the
// backend accepted it, merges the fields into the current user and
// rewrites the durable user key. The token is untouched.
func (s *Store) UpdateUserInfo(ctx context.Context, update models.UserUpdate) Result {
	s.mu.RLock()
	current := s.current
	s.mu.RUnlock()

	if current == nil {
		return Result{Success: false, Message: msgNotLoggedIn}
	}

	if err := s.users.UpdateUser(ctx, current.UserID, update); err != nil {
		s.log.Warn(ctx, "profile update failed", "user_id", current.UserID, "error", err)
		return Result{Success: false, Message: errorMessage(err, msgUpdateFailed)}
	}

	merged := applyUpdate(*current, update)
	s.mu.Lock()
	s.current = &merged
	s.mu.Unlock()
	s.persistUser(ctx, &merged)

	return Result{Success: true, Message: msgProfileUpdated}
}

// RefreshUserInfo re-fetches the canonical user record and overwrites the
// in-memory and durable copies. Best-effort: failures are logged and
// swallowed.
func (s *Store) RefreshUserInfo(ctx context.Context) {
	s.mu.RLock()
	current := s.current
	s.mu.RUnlock()

	if current == nil {
		return
	}

	user, err := s.users.GetUser(ctx, current.UserID)
	if err != nil || user == nil {
		s.log.Warn(ctx, "user info refresh failed", "user_id", current.UserID, "error", err)
		return
	}

	s.mu.Lock()
	s.current = user
	s.mu.Unlock()
	s.persistUser(ctx, user)
}

// CurrentUser returns the current user record, nil when logged out.
// Callers must treat the record as read-only.
func (s *Store) CurrentUser() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// IsLoggedIn reports whether a user is signed in.
func (s *Store) IsLoggedIn() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loggedIn
}

// Token returns the bearer credential, "" when none is held. This is the
// api gateway's TokenSource.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Derived views, computed on read from the current snapshot. The second
// return is false when no user is signed in (and, for Avatar, when the
// user has none).

func (s *Store) UserID() (int64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return 0, false
	}
	return s.current.UserID, true
}

func (s *Store) Username() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return "", false
	}
	return s.current.Username, true
}

func (s *Store) Avatar() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil || s.current.Avatar == nil {
		return "", false
	}
	return *s.current.Avatar, true
}

func (s *Store) CreditScore() (int, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return 0, false
	}
	return s.current.CreditScore, true
}

// persistUser rewrites the durable user key. Persistence failures are
// logged, not surfaced: the in-memory session stays authoritative for the
// rest of the run.
func (s *Store) persistUser(ctx context.Context, user *models.User) {
	data, err := json.Marshal(user)
	if err != nil {
		s.log.Warn(ctx, "failed to serialize user for persistence", "error", err)
		return
	}
	if err := s.kv.Set(ctx, storage.KeyUser, string(data)); err != nil {
		s.log.Warn(ctx, "failed to persist user", "error", err)
	}
}

// errorMessage derives the user-facing message for a failed call: the
// backend's error payload when there is one, the generic connectivity
// fallback otherwise.
func errorMessage(err error, fallback string) string {
	var apiErr *api.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

// applyUpdate merges the non-nil fields of update into u.
func applyUpdate(u models.User, update models.UserUpdate) models.User {
	if update.Username != nil {
		u.Username = *update.Username
	}
	if update.RealName != nil {
		u.RealName = *update.RealName
	}
	if update.Phone != nil {
		u.Phone = *update.Phone
	}
	if update.Email != nil {
		u.Email = *update.Email
	}
	if update.Avatar != nil {
		u.Avatar = update.Avatar
	}
	return u
}
