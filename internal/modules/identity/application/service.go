package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	busdomain "github.com/saransh1220/artistly/internal/modules/changebus/domain"
	"github.com/saransh1220/artistly/internal/modules/identity/domain"
	storageapp "github.com/saransh1220/artistly/internal/modules/storage/application"
	storagedomain "github.com/saransh1220/artistly/internal/modules/storage/domain"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// TokenIssuer signs and verifies session tokens.
type TokenIssuer interface {
	GenerateToken(s domain.Session) (string, error)
	ValidateToken(token string) (domain.Session, error)
}

type LoginRequest struct {
	Email    string      `json:"email"`
	Password string      `json:"password"`
	Role     domain.Role `json:"role"`
}

type SignupRequest struct {
	Name     string      `json:"name"`
	Email    string      `json:"email"`
	Password string      `json:"password"`
	Role     domain.Role `json:"role"`
}

// AuthResult is returned by a successful login or signup.
type AuthResult struct {
	Session domain.Session `json:"user"`
	Token   string         `json:"token"`
}

type Options struct {
	// LoginDelay is waited out before every credential check, whatever the context says.
	LoginDelay time.Duration
	BcryptCost int
}

// Service is the session and identity store: a persisted user list plus the
// single current session record.
type Service struct {
	store  storagedomain.Store
	bus    busdomain.Notifier
	tokens TokenIssuer
	logger *zap.Logger
	opts   Options

	sleep func(time.Duration)
	newID func() string
}

func NewService(store storagedomain.Store, bus busdomain.Notifier, tokens TokenIssuer, opts Options, logger *zap.Logger) *Service {
	if opts.BcryptCost == 0 {
		opts.BcryptCost = bcrypt.DefaultCost
	}
	return &Service{
		store:  store,
		bus:    bus,
		tokens: tokens,
		logger: logger.With(zap.String("component", "identity")),
		opts:   opts,
		sleep:  time.Sleep,
		newID:  uuid.NewString,
	}
}

// Login waits the simulated latency, then looks for a user matching email,
// password and role exactly. Any mismatch yields ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, req LoginRequest) (AuthResult, error) {
	s.sleep(s.opts.LoginDelay)

	users := storageapp.ReadCollection[domain.User](ctx, s.store, storagedomain.KeyUsers, s.logger)
	for _, u := range users {
		if u.Email != req.Email || u.Role != req.Role {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)) != nil {
			continue
		}
		return s.startSession(ctx, u.Session())
	}
	return AuthResult{}, domain.ErrInvalidCredentials
}

// Signup registers a new user and logs them in. The email must not already be
// registered under any role.
func (s *Service) Signup(ctx context.Context, req SignupRequest) (AuthResult, error) {
	s.sleep(s.opts.LoginDelay)

	if req.Name == "" || req.Email == "" || req.Password == "" {
		return AuthResult{}, domain.ErrMissingFields
	}
	if !req.Role.Valid() {
		return AuthResult{}, domain.ErrInvalidRole
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.opts.BcryptCost)
	if err != nil {
		return AuthResult{}, fmt.Errorf("hash password: %w", err)
	}
	user := domain.User{
		ID:           s.newID(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         req.Role,
	}

	_, err = storageapp.MutateCollection(ctx, s.store, storagedomain.KeyUsers, s.logger,
		func(users []domain.User) ([]domain.User, bool, error) {
			for _, u := range users {
				if u.Email == req.Email {
					return nil, false, domain.ErrUserAlreadyExists
				}
			}
			return append(users, user), true, nil
		})
	if err != nil {
		return AuthResult{}, err
	}
	s.bus.Publish(ctx, storagedomain.KeyUsers)
	s.logger.Info("user registered", zap.String("user_id", user.ID), zap.String("role", string(user.Role)))

	return s.startSession(ctx, user.Session())
}

// Logout clears the current session. The user list is untouched.
func (s *Service) Logout(ctx context.Context) error {
	if err := storageapp.DeleteDocument(ctx, s.store, storagedomain.KeySession); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	s.bus.Publish(ctx, storagedomain.KeySession)
	return nil
}

// Current returns the persisted session.
func (s *Service) Current(ctx context.Context) (domain.Session, error) {
	session, ok := storageapp.ReadDocument[domain.Session](ctx, s.store, storagedomain.KeySession, s.logger)
	if !ok || session.ID == "" {
		return domain.Session{}, domain.ErrNoSession
	}
	return session, nil
}

// ValidateToken resolves a bearer token to the session it was issued for.
func (s *Service) ValidateToken(token string) (domain.Session, error) {
	return s.tokens.ValidateToken(token)
}

// SeedDemoUsers writes the demo accounts when no user list exists yet.
func (s *Service) SeedDemoUsers(ctx context.Context) error {
	if _, err := s.store.Get(ctx, storagedomain.KeyUsers); err == nil {
		return nil
	} else if !errors.Is(err, storagedomain.ErrKeyNotFound) {
		return err
	}

	users := make([]domain.User, 0, len(demoUsers))
	for _, d := range demoUsers {
		hash, err := bcrypt.GenerateFromPassword([]byte(d.password), s.opts.BcryptCost)
		if err != nil {
			return fmt.Errorf("hash password: %w", err)
		}
		users = append(users, domain.User{ID: d.id, Name: d.name, Email: d.email, PasswordHash: string(hash), Role: d.role})
	}
	if err := storageapp.WriteCollection(ctx, s.store, storagedomain.KeyUsers, users); err != nil {
		return err
	}
	s.bus.Publish(ctx, storagedomain.KeyUsers)
	s.logger.Info("seeded demo users", zap.Int("count", len(users)))
	return nil
}

func (s *Service) startSession(ctx context.Context, session domain.Session) (AuthResult, error) {
	if err := storageapp.WriteDocument(ctx, s.store, storagedomain.KeySession, session); err != nil {
		return AuthResult{}, fmt.Errorf("persist session: %w", err)
	}
	s.bus.Publish(ctx, storagedomain.KeySession)

	token, err := s.tokens.GenerateToken(session)
	if err != nil {
		return AuthResult{}, fmt.Errorf("sign token: %w", err)
	}
	return AuthResult{Session: session, Token: token}, nil
}

type demoUser struct {
	id, name, email, password string
	role                      domain.Role
}

var demoUsers = []demoUser{
	{"1", "Admin User", "admin@artistly.com", "admin123", domain.RoleAdmin},
	{"2", "Manager", "manager@artistly.com", "manager123", domain.RoleManager},
	{"3", "Artist", "artist@artistly.com", "artist123", domain.RoleArtist},
	{"4", "User", "user@artistly.com", "user123", domain.RoleUser},
}
