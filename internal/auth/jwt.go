package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	issuer       = "otychat-server"
	RoleAdmin    = "admin"
	storeTimeout = 2 * time.Second
)

// ErrRevoked is returned for a token whose session was revoked
var ErrRevoked = errors.New("token revoked")

// Config holds admin authentication settings. AdminCodeHash wins over
// AdminCode when both are set.
type Config struct {
	Secret        string        `env:"JWT_SECRET" envDefault:"your-secret-key-change-in-production"`
	AdminTokenTTL time.Duration `env:"ADMIN_TOKEN_TTL" envDefault:"12h"`
	AdminCode     string        `env:"ADMIN_CODE" envDefault:"otyadmin"`
	AdminCodeHash string        `env:"ADMIN_CODE_HASH"`
}

// LoadConfigFromEnv loads auth configuration from environment variables
func LoadConfigFromEnv() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse auth config: %w", err)
	}
	return cfg, nil
}

// AdminClaims represents the JWT claims of an admin console token
type AdminClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// SessionStore remembers issued tokens by id so they can be revoked
type SessionStore interface {
	Track(ctx context.Context, id, subject string, expiresAt time.Time) error
	Active(ctx context.Context, id string) (bool, error)
	Revoke(ctx context.Context, id string) error
}

// Authenticator checks admin codes and issues admin tokens
type Authenticator struct {
	secret   []byte
	ttl      time.Duration
	codeHash []byte
	now      func() time.Time
	sessions SessionStore
}

// New builds an Authenticator. A plain admin code is hashed once here so
// comparisons always go through bcrypt.
func New(cfg *Config) (*Authenticator, error) {
	if cfg.Secret == "" {
		return nil, errors.New("jwt secret is required")
	}
	hash := []byte(cfg.AdminCodeHash)
	if len(hash) == 0 {
		if cfg.AdminCode == "" {
			return nil, errors.New("admin code or admin code hash is required")
		}
		var err error
		hash, err = bcrypt.GenerateFromPassword([]byte(cfg.AdminCode), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash admin code: %w", err)
		}
	} else if _, err := bcrypt.Cost(hash); err != nil {
		return nil, fmt.Errorf("invalid admin code hash: %w", err)
	}

	ttl := cfg.AdminTokenTTL
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	return &Authenticator{secret: []byte(cfg.Secret), ttl: ttl, codeHash: hash, now: time.Now}, nil
}

// VerifyCode reports whether code is the admin code
func (a *Authenticator) VerifyCode(code string) bool {
	return bcrypt.CompareHashAndPassword(a.codeHash, []byte(code)) == nil
}

// UseSessions makes issued tokens revocable through store
func (a *Authenticator) UseSessions(store SessionStore) {
	a.sessions = store
}

// GenerateAdminToken creates a new admin console token
func (a *Authenticator) GenerateAdminToken(subject string) (string, error) {
	now := a.now()
	expires := now.Add(a.ttl)
	claims := AdminClaims{
		Role: RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(expires),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    issuer,
			Subject:   subject,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(a.secret)
	if err != nil {
		return "", err
	}

	if a.sessions != nil {
		ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
		defer cancel()
		if err := a.sessions.Track(ctx, claims.ID, subject, expires); err != nil {
			return "", fmt.Errorf("failed to track admin session: %w", err)
		}
	}

	return tokenString, nil
}

// ValidateToken validates an admin token and returns the claims
func (a *Authenticator) ValidateToken(tokenString string) (*AdminClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AdminClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Validate the signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return a.secret, nil
	}, jwt.WithIssuer(issuer), jwt.WithTimeFunc(a.now))

	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*AdminClaims)
	if !ok || !token.Valid || claims.Role != RoleAdmin {
		return nil, errors.New("invalid token")
	}

	if a.sessions != nil {
		ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
		defer cancel()
		active, err := a.sessions.Active(ctx, claims.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to check admin session: %w", err)
		}
		if !active {
			return nil, ErrRevoked
		}
	}

	return claims, nil
}

// Revoke ends the session behind a token. Without a session store tokens
// cannot be revoked and simply run out.
func (a *Authenticator) Revoke(ctx context.Context, tokenString string) error {
	claims, err := a.ValidateToken(tokenString)
	if err != nil {
		return err
	}
	if a.sessions == nil {
		return errors.New("token revocation is not configured")
	}
	return a.sessions.Revoke(ctx, claims.ID)
}
