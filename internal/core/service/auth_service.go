package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/staffdesk/employee-api/internal/core/domain"
	"github.com/staffdesk/employee-api/internal/core/ports"
)

// TokenDenylist abstracts the revocation store (Redis in production).
type TokenDenylist interface {
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
}

// AuthService implements registration, login and token validation.
type AuthService struct {
	repo      ports.IdentityRepository
	denylist  TokenDenylist
	jwtSecret string
	tokenTTL  time.Duration
	log       zerolog.Logger
}

func NewAuthService(repo ports.IdentityRepository, denylist TokenDenylist, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{repo: repo, denylist: denylist, jwtSecret: jwtSecret, tokenTTL: tokenTTL, log: log}
}

// Register persists a new identity. The email is stored as given
// (case-sensitive) and becomes visible to logins immediately.
func (s *AuthService) Register(ctx context.Context, email, password, role string) (*domain.Identity, error) {
	if email == "" || password == "" || !domain.ValidRole(role) {
		return nil, domain.ErrValidation
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	identity := &domain.Identity{
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.Role(role),
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, identity)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("email", created.Email).Str("role", string(created.Role)).Msg("identity registered")
	return created, nil
}

// Login verifies credentials and issues a signed token. Unknown email and
// wrong password both surface as ErrInvalidCredentials so callers cannot
// probe which emails are registered.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", domain.ErrInvalidCredentials
	}

	identity, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return "", domain.ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(identity.PasswordHash), []byte(password)) != nil {
		return "", domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(identity)
	if err != nil {
		return "", err
	}

	s.log.Info().Str("email", identity.Email).Msg("login succeeded")
	return token, nil
}

// Validate resolves a token to its bound principal. It rejects empty,
// malformed, expired and revoked tokens, and never touches the credential or
// employee stores.
func (s *AuthService) Validate(ctx context.Context, token string) (*domain.Principal, error) {
	if token == "" {
		return nil, domain.ErrInvalidToken
	}

	claims, err := s.parseClaims(token)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}

	email, _ := claims["sub"].(string)
	role, _ := claims["role"].(string)
	tokenID, _ := claims["jti"].(string)
	if email == "" || tokenID == "" || !domain.ValidRole(role) {
		return nil, domain.ErrInvalidToken
	}

	revoked, err := s.denylist.IsRevoked(ctx, tokenID)
	if err != nil {
		// Fail closed: an unreachable denylist must not let revoked
		// tokens through.
		s.log.Error().Err(err).Msg("denylist check failed")
		return nil, domain.ErrInvalidToken
	}
	if revoked {
		return nil, domain.ErrInvalidToken
	}

	return &domain.Principal{Email: email, Role: domain.Role(role), TokenID: tokenID}, nil
}

// Revoke denylists the token until its natural expiry.
func (s *AuthService) Revoke(ctx context.Context, token string) error {
	claims, err := s.parseClaims(token)
	if err != nil {
		return domain.ErrInvalidToken
	}

	tokenID, _ := claims["jti"].(string)
	if tokenID == "" {
		return domain.ErrInvalidToken
	}

	ttl := s.tokenTTL
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		ttl = time.Until(exp.Time)
	}
	if ttl <= 0 {
		// Already expired; nothing to deny.
		return nil
	}

	return s.denylist.Revoke(ctx, tokenID, ttl)
}

func (s *AuthService) generateToken(identity *domain.Identity) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  identity.Email,
		"role": string(identity.Role),
		"jti":  uuid.NewString(),
		"iat":  now.Unix(),
		"exp":  now.Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

func (s *AuthService) parseClaims(token string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !tkn.Valid {
		return nil, domain.ErrInvalidToken
	}
	return claims, nil
}
