// Package app holds the application services and business logic.
package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"companion/internal/domain"
)

const minPasswordLength = 8

// anonymousEmailDomain hosts the synthetic addresses given to anonymous
// accounts. Nothing is ever delivered there.
const anonymousEmailDomain = "companion.local"

// AuthService owns user credentials and the bearer-token lifecycle: it
// registers users, verifies passwords, and issues and resolves signed
// tokens.
type AuthService struct {
	users    domain.UserRepository
	secret   []byte
	tokenTTL time.Duration
}

// NewAuthService creates an AuthService signing tokens with secret and the
// given time-to-live.
func NewAuthService(users domain.UserRepository, secret []byte, tokenTTL time.Duration) *AuthService {
	return &AuthService{users: users, secret: secret, tokenTTL: tokenTTL}
}

// Register creates a user with a bcrypt-hashed password. The plaintext
// password is never stored.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*domain.User, error) {
	if name == "" || email == "" || password == "" {
		return nil, fmt.Errorf("%w: name, email, and password are required", domain.ErrInvalidInput)
	}
	if !strings.Contains(email, "@") {
		return nil, fmt.Errorf("%w: malformed email", domain.ErrInvalidInput)
	}
	if len(password) < minPasswordLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters", domain.ErrInvalidInput, minPasswordLength)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	u := &domain.User{
		ID:           domain.NewID(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// RegisterAnonymous creates a trial account with a synthetic unique email and
// no usable credential. Anonymous accounts can never log in with a password.
func (s *AuthService) RegisterAnonymous(ctx context.Context) (*domain.User, error) {
	now := time.Now().UTC()
	id := domain.NewID()
	u := &domain.User{
		ID:        id,
		Name:      "Anonymous User",
		Email:     fmt.Sprintf("anonymous-%s@%s", id, anonymousEmailDomain),
		Anonymous: true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// Login verifies credentials and returns a signed bearer token. Unknown
// email, anonymous account, and wrong password all fail with the same
// ErrUnauthorized.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return "", domain.ErrUnauthorized
	}
	// An empty hash never verifies; anonymous accounts hold no credential.
	if u.Anonymous || u.PasswordHash == "" {
		return "", domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return "", domain.ErrUnauthorized
	}

	if err := s.users.TouchLastLogin(ctx, u.ID, time.Now().UTC()); err != nil {
		return "", fmt.Errorf("record login: %w", err)
	}
	return s.issueToken(u.ID)
}

// Resolve validates a bearer token and loads the user it identifies. Any
// failure along the way, including a well-formed subject with no matching
// record, is ErrUnauthorized.
func (s *AuthService) Resolve(ctx context.Context, token string) (*domain.User, error) {
	id, err := s.validateToken(token)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}
	return u, nil
}

// issueToken creates a signed HS256 JWT for the given subject.
func (s *AuthService) issueToken(userID uuid.UUID) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(s.secret)
}

func (s *AuthService) validateToken(token string) (uuid.UUID, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return uuid.Nil, domain.ErrUnauthorized
	}

	sub, err := parsed.Claims.GetSubject()
	if err != nil {
		return uuid.Nil, domain.ErrUnauthorized
	}
	id, err := uuid.FromString(sub)
	if err != nil {
		return uuid.Nil, domain.ErrUnauthorized
	}
	return id, nil
}
