// Package auth implements credential checking and the single current-session
// record. Sessions expire lazily: validity is evaluated on read, never by a
// timer, and an invalid or expired record is cleared by the read itself.
package auth

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/untels-dev/portal-core/internal/models"
	"github.com/untels-dev/portal-core/pkg/blobstore"
	appErrors "github.com/untels-dev/portal-core/pkg/errors"
)

const (
	sessionKey  = "auth"
	accountsKey = "auth_accounts"
)

// Config tunes a Manager. Zero values fall back to the portal defaults.
type Config struct {
	// TTL is the session lifetime, 12h when unset. Activity never extends it.
	TTL time.Duration
	// Now overrides the clock, for tests.
	Now func() time.Time
}

// Manager authenticates against one realm's credential table and owns the
// session record for that realm.
type Manager struct {
	store    blobstore.Store
	logger   *zap.Logger
	validate *validator.Validate
	now      func() time.Time
	ttl      time.Duration

	static    map[string]models.Credential
	roles     map[models.Role]bool
	guessRole func(normalized string) models.Role
}

func newManager(store blobstore.Store, logger *zap.Logger, cfg Config, realm realm) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.TTL <= 0 {
		cfg.TTL = 12 * time.Hour
	}
	roles := make(map[models.Role]bool, len(realm.roles))
	for _, role := range realm.roles {
		roles[role] = true
	}
	return &Manager{
		store:     store,
		logger:    logger,
		validate:  validator.New(),
		now:       cfg.Now,
		ttl:       cfg.TTL,
		static:    realm.static,
		roles:     roles,
		guessRole: realm.guessRole,
	}
}

// LoginInput carries the submitted credentials.
type LoginInput struct {
	Username string `validate:"required"`
	Password string `validate:"required"`
}

// Login authenticates the credentials and writes the session record. The
// username is trimmed and lowercased for the lookup; the password must match
// exactly. Failures come back as typed errors, never panics.
func (m *Manager) Login(ctx context.Context, input LoginInput) (*models.Session, error) {
	typed := strings.TrimSpace(input.Username)
	input.Username = typed
	if err := m.validate.Struct(input); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, "username and password are required")
	}

	credential, ok := m.lookup(ctx, strings.ToLower(typed))
	if !ok || credential.Password != input.Password {
		return nil, appErrors.Clone(appErrors.ErrInvalidCredentials, "")
	}

	session := models.Session{
		Username: typed,
		Role:     credential.Role,
		Ts:       m.now().UnixMilli(),
	}
	raw, err := json.Marshal(session)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "encode session")
	}
	if err := m.store.Set(ctx, sessionKey, raw); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "persist session")
	}

	m.logger.Info("session opened", zap.String("username", typed), zap.String("role", string(credential.Role)))
	return &session, nil
}

// Session returns the current session, or nil when none is valid. A
// structurally invalid or expired record is cleared as part of the read; an
// undecodable blob degrades to nil without touching the store.
func (m *Manager) Session(ctx context.Context) (*models.Session, error) {
	raw, ok, err := m.store.Get(ctx, sessionKey)
	if err != nil || !ok {
		return nil, nil
	}

	var session models.Session
	if err := json.Unmarshal(raw, &session); err != nil {
		return nil, nil
	}

	if reason := m.invalidReason(session); reason != "" {
		m.logger.Debug("clearing session", zap.String("reason", reason))
		_ = m.store.Delete(ctx, sessionKey)
		return nil, nil
	}
	return &session, nil
}

// Logout unconditionally clears the session record.
func (m *Manager) Logout(ctx context.Context) error {
	return m.store.Delete(ctx, sessionKey)
}

// PeekRole guesses the role a not-yet-submitted username would resolve to,
// for UI hinting only: the credential table first, then the realm's naming
// convention. It must never be treated as an authorization decision.
func (m *Manager) PeekRole(ctx context.Context, username string) models.Role {
	normalized := strings.ToLower(strings.TrimSpace(username))
	if normalized == "" {
		return ""
	}
	if credential, ok := m.lookup(ctx, normalized); ok {
		return credential.Role
	}
	return m.guessRole(normalized)
}

// CreateAccountInput carries a new credential row.
type CreateAccountInput struct {
	Username string `validate:"required"`
	Password string `validate:"required"`
	Role     models.Role
}

// CreateAccount inserts a credential into the realm's dynamic table. The
// normalized username must not collide with any static or dynamic entry.
func (m *Manager) CreateAccount(ctx context.Context, input CreateAccountInput) (models.Credential, error) {
	input.Username = strings.TrimSpace(input.Username)
	if err := m.validate.Struct(input); err != nil {
		return models.Credential{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, "username and password are required")
	}
	if !m.roles[input.Role] {
		return models.Credential{}, appErrors.Clone(appErrors.ErrValidation, "unknown role for this realm")
	}

	normalized := strings.ToLower(input.Username)
	if _, exists := m.lookup(ctx, normalized); exists {
		return models.Credential{}, appErrors.Clone(appErrors.ErrDuplicateUsername, "")
	}

	credential := models.Credential{Username: normalized, Password: input.Password, Role: input.Role}
	accounts := m.accounts(ctx)
	accounts = append(accounts, credential)
	raw, err := json.Marshal(accounts)
	if err != nil {
		return models.Credential{}, appErrors.Wrap(err, appErrors.ErrInternal.Code, "encode accounts")
	}
	if err := m.store.Set(ctx, accountsKey, raw); err != nil {
		return models.Credential{}, appErrors.Wrap(err, appErrors.ErrInternal.Code, "persist accounts")
	}

	m.logger.Info("account created", zap.String("username", normalized), zap.String("role", string(input.Role)))
	return credential, nil
}

// lookup resolves a normalized username against the static table first and
// the persisted dynamic table second.
func (m *Manager) lookup(ctx context.Context, normalized string) (models.Credential, bool) {
	if credential, ok := m.static[normalized]; ok {
		return credential, true
	}
	for _, credential := range m.accounts(ctx) {
		if credential.Username == normalized {
			return credential, true
		}
	}
	return models.Credential{}, false
}

// accounts loads the dynamic credential table, degrading to empty on any
// read or decode failure.
func (m *Manager) accounts(ctx context.Context) []models.Credential {
	raw, ok, err := m.store.Get(ctx, accountsKey)
	if err != nil || !ok {
		return nil
	}
	var accounts []models.Credential
	if err := json.Unmarshal(raw, &accounts); err != nil {
		return nil
	}
	return accounts
}

// invalidReason reports why a decoded session record cannot be used, or ""
// when it is valid at the current clock.
func (m *Manager) invalidReason(session models.Session) string {
	if session.Username == "" {
		return "missing username"
	}
	if !m.roles[session.Role] {
		return "unknown role"
	}
	if session.Ts <= 0 {
		return "missing timestamp"
	}
	if m.now().UnixMilli()-session.Ts >= m.ttl.Milliseconds() {
		return "expired"
	}
	return ""
}
