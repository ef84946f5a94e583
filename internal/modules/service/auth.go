package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/vimco/vimco-api/internal/pkg/utils"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

// Revoker is satisfied by cache.TokenRevocations.
type Revoker interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

type Token struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}

type Claims struct {
	jwt.RegisteredClaims
}

type AuthService interface {
	Login(ctx context.Context, email, password string) (*Token, error)
	Verify(ctx context.Context, raw string) (*Claims, error)
	Logout(ctx context.Context, claims *Claims) error
}

type AuthOptions struct {
	AdminEmail        string
	AdminPassword     string
	AdminPasswordHash string // bcrypt; preferred over AdminPassword when set
	Secret            []byte
	Issuer            string
	TTL               time.Duration
}

type authService struct {
	opt     AuthOptions
	revoker Revoker
	log     *zap.Logger
	now     func() time.Time
}

// NewAuthService issues HS256 admin tokens. revoker may be nil, in which case
// logout only discards the token client side.
func NewAuthService(opt AuthOptions, revoker Revoker, log *zap.Logger) (AuthService, error) {
	if len(opt.Secret) == 0 {
		return nil, errors.New("auth: jwt secret is required")
	}
	if opt.AdminPassword == "" && opt.AdminPasswordHash == "" {
		return nil, errors.New("auth: admin password or password hash is required")
	}
	return &authService{opt: opt, revoker: revoker, log: log, now: time.Now}, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*Token, error) {
	if !strings.EqualFold(strings.TrimSpace(email), s.opt.AdminEmail) || !s.checkPassword(password) {
		s.log.Warn("admin login rejected", zap.String("email", email))
		return nil, ErrInvalidCredentials
	}

	jti, err := utils.TokenID()
	if err != nil {
		return nil, fmt.Errorf("generate token id: %w", err)
	}
	now := s.now()
	exp := now.Add(s.opt.TTL)
	claims := Claims{RegisteredClaims: jwt.RegisteredClaims{
		ID:        jti,
		Subject:   s.opt.AdminEmail,
		Issuer:    s.opt.Issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(exp),
	}}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.opt.Secret)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}
	return &Token{AccessToken: signed, TokenType: "Bearer", ExpiresAt: exp.UTC()}, nil
}

func (s *authService) Verify(ctx context.Context, raw string) (*Claims, error) {
	claims := new(Claims)
	_, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		return s.opt.Secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.opt.Issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, ErrInvalidToken
	}

	if s.revoker != nil {
		revoked, err := s.revoker.IsRevoked(ctx, claims.ID)
		if err != nil {
			return nil, fmt.Errorf("check revocation: %w", err)
		}
		if revoked {
			return nil, ErrInvalidToken
		}
	}
	return claims, nil
}

func (s *authService) Logout(ctx context.Context, claims *Claims) error {
	if s.revoker == nil || claims == nil || claims.ExpiresAt == nil {
		return nil
	}
	if err := s.revoker.Revoke(ctx, claims.ID, claims.ExpiresAt.Sub(s.now())); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}

func (s *authService) checkPassword(password string) bool {
	if s.opt.AdminPasswordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(s.opt.AdminPasswordHash), []byte(password)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(password), []byte(s.opt.AdminPassword)) == 1
}
