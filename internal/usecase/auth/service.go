package auth

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"talent-screen/internal/domain/session"
	"talent-screen/internal/domain/user"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidInput       = errors.New("invalid input")
	ErrSessionCreate      = errors.New("failed to create session")
	ErrInternal           = errors.New("internal error")
)

type SignUpInput struct {
	Email    string
	Password string
	FullName string
}

type SignInInput struct {
	Email    string
	Password string
}

// Service is the session manager: it owns signup, signin, session validation
// and signout against injected stores. No process-wide state; every
// validation is a point-in-time read so a signout anywhere revokes
// immediately.
type Service struct {
	users    user.Repository
	sessions session.Repository
	ttl      time.Duration

	now func() time.Time
}

func NewService(users user.Repository, sessions session.Repository, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = 7 * 24 * time.Hour
	}
	return &Service{users: users, sessions: sessions, ttl: ttl, now: time.Now}
}

// SignUp creates the account and signs it in, returning the user and a fresh
// session token. Passwords are stored as bcrypt hashes with per-user salt.
func (s *Service) SignUp(ctx context.Context, in SignUpInput) (user.User, string, error) {
	email := normalizeEmail(in.Email)
	if email == "" || strings.TrimSpace(in.Password) == "" {
		return user.User{}, "", ErrInvalidInput
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.User{}, "", ErrInternal
	}

	u := user.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: string(hash),
		FullName:     strings.TrimSpace(in.FullName),
		Role:         user.RoleRecruiter,
	}

	if err := s.users.Create(ctx, u); err != nil {
		if errors.Is(err, user.ErrDuplicateEmail) {
			return user.User{}, "", ErrEmailTaken
		}
		return user.User{}, "", err
	}

	token, err := s.createSession(ctx, u.ID)
	if err != nil {
		return user.User{}, "", err
	}

	return sanitize(u), token, nil
}

// SignIn verifies credentials and opens a session. Unknown email and wrong
// password return the same ErrInvalidCredentials so callers cannot enumerate
// accounts.
func (s *Service) SignIn(ctx context.Context, in SignInInput) (user.User, string, error) {
	email := normalizeEmail(in.Email)
	if email == "" || in.Password == "" {
		return user.User{}, "", ErrInvalidCredentials
	}

	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, "", ErrInvalidCredentials
		}
		return user.User{}, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)); err != nil {
		return user.User{}, "", ErrInvalidCredentials
	}

	token, err := s.createSession(ctx, u.ID)
	if err != nil {
		return user.User{}, "", err
	}

	return sanitize(u), token, nil
}

// CurrentUser resolves a session token. A missing or expired session is not
// an error: it returns ok=false. Validation never extends the expiry.
func (s *Service) CurrentUser(ctx context.Context, token string) (user.User, bool, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return user.User{}, false, nil
	}

	sess, err := s.sessions.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			return user.User{}, false, nil
		}
		return user.User{}, false, err
	}

	if sess.Expired(s.now()) {
		return user.User{}, false, nil
	}

	u, err := s.users.GetByID(ctx, sess.UserID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, false, nil
		}
		return user.User{}, false, err
	}

	return sanitize(u), true, nil
}

// SignOut revokes the session. Idempotent: an unknown or already-removed
// token is not an error.
func (s *Service) SignOut(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil
	}

	if err := s.sessions.DeleteByToken(ctx, token); err != nil {
		if errors.Is(err, session.ErrNotFound) {
			return nil
		}
		return err
	}
	return nil
}

// PurgeExpired removes sessions past their expiry. Expired rows are already
// invisible to CurrentUser; this is just row hygiene.
func (s *Service) PurgeExpired(ctx context.Context) (int64, error) {
	return s.sessions.DeleteExpired(ctx)
}

// PurgeLoop runs PurgeExpired every interval until ctx is cancelled. Purge
// failures are logged and retried on the next tick.
func (s *Service) PurgeLoop(ctx context.Context, interval time.Duration, logger *log.Logger) {
	if interval <= 0 {
		interval = time.Hour
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := s.PurgeExpired(ctx)
			if err != nil {
				if logger != nil {
					logger.Printf("session purge failed | error=%v", err)
				}
				continue
			}
			if n > 0 && logger != nil {
				logger.Printf("expired sessions purged | count=%d", n)
			}
		}
	}
}

func (s *Service) createSession(ctx context.Context, userID uuid.UUID) (string, error) {
	now := s.now()
	sess := session.Session{
		Token:     uuid.NewString(),
		UserID:    userID,
		ExpiresAt: now.Add(s.ttl),
		CreatedAt: now,
	}

	// Credentials already checked: a failure here is a hard error, the
	// caller must not pretend the login succeeded.
	if err := s.sessions.Create(ctx, sess); err != nil {
		return "", ErrSessionCreate
	}
	return sess.Token, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func sanitize(u user.User) user.User {
	u.PasswordHash = ""
	return u
}
