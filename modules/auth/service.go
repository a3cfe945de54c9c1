package auth

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/studykit/studykit/pkg/session"
)

// User is the slice of the user record this module needs.
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash []byte
}

// UserStore is the external credential lookup.
type UserStore interface {
	GetUserByEmail(ctx context.Context, email string) (*User, error)
}

// Service verifies credentials and drives the session lifecycle.
type Service struct {
	users    UserStore
	sessions *session.Manager
	log      *slog.Logger
}

// NewService creates the auth service.
func NewService(users UserStore, sessions *session.Manager, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{users: users, sessions: sessions, log: log}
}

// Login verifies the credentials and, on success, initializes a session
// record and attaches the session cookie to the response.
func (s *Service) Login(ctx context.Context, w http.ResponseWriter, email, password string) (*session.Record, error) {
	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			// Burn comparable time so unknown emails are not distinguishable
			// from wrong passwords by response latency.
			_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	record, err := s.sessions.Login(ctx, w, user.ID)
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "user logged in", "user_id", user.ID.String())
	return record, nil
}

// Logout destroys the session attached to the request.
func (s *Service) Logout(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	return s.sessions.Destroy(ctx, w, r)
}

// HashPassword produces a bcrypt hash suitable for User.PasswordHash.
func HashPassword(password string) ([]byte, error) {
	return bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
}

// dummyHash is a valid bcrypt hash of an unguessable value, used only for
// timing equalization.
var dummyHash = func() []byte {
	h, err := bcrypt.GenerateFromPassword([]byte(uuid.NewString()), bcrypt.DefaultCost)
	if err != nil {
		panic(err)
	}
	return h
}()
