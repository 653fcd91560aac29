package account

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	apperrors "github.com/yanqian/medifind/pkg/errors"
	"github.com/yanqian/medifind/pkg/util"
)

const (
	defaultLoginName  = "Rahim Ahmed"
	defaultSignupName = "New User"
)

// AuthProvider issues and validates session tokens.
type AuthProvider interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
	ValidateToken(ctx context.Context, token string) (Claims, error)
}

// LocalAuthProvider fabricates a profile from the submitted form without
// checking credentials and signs it into an HS256 token.
type LocalAuthProvider struct {
	cfg    Config
	logger *slog.Logger
	now    func() time.Time
}

// NewLocalAuthProvider constructs the provider.
func NewLocalAuthProvider(cfg Config, logger *slog.Logger) *LocalAuthProvider {
	return &LocalAuthProvider{
		cfg:    cfg,
		logger: logger.With("component", "account.auth"),
		now:    util.NowUTC,
	}
}

func (p *LocalAuthProvider) Login(_ context.Context, req LoginRequest) (LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" {
		return LoginResponse{}, apperrors.Wrap(apperrors.CodeInvalidInput, "email cannot be empty", nil)
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = defaultLoginName
		if req.Signup {
			name = defaultSignupName
		}
	}
	profile := Profile{
		ID:    uuid.NewSHA1(uuid.NameSpaceURL, []byte("mailto:"+email)).String(),
		Name:  name,
		Email: email,
	}

	expires := p.now().Add(p.cfg.TokenTTL)
	token, err := p.sign(profile, expires)
	if err != nil {
		return LoginResponse{}, err
	}
	p.logger.Info("session issued", "user_id", profile.ID, "signup", req.Signup)
	return LoginResponse{Token: token, ExpiresAt: expires, User: profile}, nil
}

func (p *LocalAuthProvider) ValidateToken(_ context.Context, token string) (Claims, error) {
	if strings.TrimSpace(token) == "" {
		return Claims{}, apperrors.Wrap(apperrors.CodeInvalidToken, "token missing", nil)
	}
	parsed, err := jwt.ParseWithClaims(token, &sessionClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %s", t.Method.Alg())
		}
		return []byte(p.cfg.Secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(p.now))
	if err != nil {
		return Claims{}, apperrors.Wrap(apperrors.CodeInvalidToken, "token validation failed", err)
	}
	claims, ok := parsed.Claims.(*sessionClaims)
	if !ok || !parsed.Valid {
		return Claims{}, apperrors.Wrap(apperrors.CodeInvalidToken, "token invalid", nil)
	}
	if claims.ExpiresAt == nil {
		return Claims{}, apperrors.Wrap(apperrors.CodeInvalidToken, "token missing expiry", nil)
	}
	return Claims{
		Profile:   Profile{ID: claims.Subject, Name: claims.Name, Email: claims.Email},
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

func (p *LocalAuthProvider) sign(profile Profile, expires time.Time) (string, error) {
	claims := sessionClaims{
		Name:  profile.Name,
		Email: profile.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   profile.ID,
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(p.now()),
			ExpiresAt: jwt.NewNumericDate(expires),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(p.cfg.Secret))
	if err != nil {
		return "", apperrors.Wrap("auth_error", "failed to sign token", err)
	}
	return signed, nil
}

type sessionClaims struct {
	jwt.RegisteredClaims
	Name  string `json:"name"`
	Email string `json:"email"`
}
