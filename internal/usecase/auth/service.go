package auth

import (
	"context"
	"crypto/subtle"
	"strings"

	domcart "example.com/forever-shop/backend/internal/domain/cart"
	domuser "example.com/forever-shop/backend/internal/domain/user"
)

type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash string, password string) error
}

type TokenService interface {
	GenerateUserToken(userID string) (string, error)
	ParseUserToken(token string) (string, error)
	GenerateAdminToken(email, password string) (string, error)
	VerifyAdminToken(token, email, password string) error
}

type Service struct {
	userRepo      domuser.Repository
	hasher        PasswordHasher
	tokens        TokenService
	adminEmail    string
	adminPassword string
}

func NewService(userRepo domuser.Repository, hasher PasswordHasher, tokens TokenService, adminEmail, adminPassword string) *Service {
	return &Service{
		userRepo:      userRepo,
		hasher:        hasher,
		tokens:        tokens,
		adminEmail:    adminEmail,
		adminPassword: adminPassword,
	}
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

type AuthResult struct {
	Token string
	User  *domuser.User
}

func (s *Service) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	email := strings.TrimSpace(strings.ToLower(in.Email))

	if _, err := s.userRepo.GetByEmail(ctx, email); err == nil {
		return nil, domuser.ErrEmailAlreadyUsed
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	u := &domuser.User{
		Name:         in.Name,
		Email:        email,
		PasswordHash: hash,
		Cart:         domcart.New(),
	}
	if err := s.userRepo.Create(ctx, u); err != nil {
		return nil, err
	}

	token, err := s.tokens.GenerateUserToken(u.ID)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: token, User: u}, nil
}

func (s *Service) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return nil, domuser.ErrInvalidCredential
	}

	u, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, domuser.ErrUnauthorized
	}
	if err := s.hasher.Compare(u.PasswordHash, password); err != nil {
		return nil, domuser.ErrUnauthorized
	}

	token, err := s.tokens.GenerateUserToken(u.ID)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: token, User: u}, nil
}

// AdminLogin compares against the configured admin credential pair. The
// issued token authenticates "whoever configured the server", not a stored
// admin identity.
func (s *Service) AdminLogin(ctx context.Context, email, password string) (string, error) {
	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(s.adminEmail)) == 1
	passwordOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.adminPassword)) == 1
	if !emailOK || !passwordOK {
		return "", domuser.ErrUnauthorized
	}
	return s.tokens.GenerateAdminToken(s.adminEmail, s.adminPassword)
}

// ParseUserToken resolves a caller identity from a bearer credential.
func (s *Service) ParseUserToken(token string) (string, error) {
	userID, err := s.tokens.ParseUserToken(token)
	if err != nil {
		return "", domuser.ErrUnauthorized
	}
	return userID, nil
}

func (s *Service) VerifyAdminToken(token string) error {
	if err := s.tokens.VerifyAdminToken(token, s.adminEmail, s.adminPassword); err != nil {
		return domuser.ErrUnauthorized
	}
	return nil
}
