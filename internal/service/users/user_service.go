package users

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Domenick1991/airport/internal/auth"
	"github.com/Domenick1991/airport/internal/domain"
	"github.com/Domenick1991/airport/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

type UserUseCase interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	CreateStaff(ctx context.Context, input RegisterInput) (*domain.User, error)
	Login(ctx context.Context, input LoginInput) (auth.TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (string, error)
	Me(ctx context.Context, identity domain.Identity) (*domain.User, error)
}

type RegisterInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UserService struct {
	repo       repository.UserRepository
	tokens     *auth.TokenIssuer
	bcryptCost int
}

func NewUserService(repo repository.UserRepository, tokens *auth.TokenIssuer, bcryptCost int) *UserService {
	if bcryptCost < bcrypt.MinCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &UserService{repo: repo, tokens: tokens, bcryptCost: bcryptCost}
}

func (s *UserService) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	return s.create(ctx, input, false)
}

// CreateStaff registers a user with admin privileges. Only reachable from the
// createadmin command.
func (s *UserService) CreateStaff(ctx context.Context, input RegisterInput) (*domain.User, error) {
	return s.create(ctx, input, true)
}

func (s *UserService) create(ctx context.Context, input RegisterInput, staff bool) (*domain.User, error) {
	email := strings.TrimSpace(input.Email)
	if err := domain.ValidateRegistration(input.Username, email, input.Password); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		Username:     strings.TrimSpace(input.Username),
		Email:        email,
		PasswordHash: hash,
		IsStaff:      staff,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) Login(ctx context.Context, input LoginInput) (auth.TokenPair, error) {
	user, err := s.repo.GetByEmail(ctx, strings.TrimSpace(input.Email))
	if errors.Is(err, domain.ErrNotFound) {
		return auth.TokenPair{}, domain.ErrInvalidCredentials
	}
	if err != nil {
		return auth.TokenPair{}, err
	}
	if !auth.VerifyPassword(user.PasswordHash, input.Password) {
		return auth.TokenPair{}, domain.ErrInvalidCredentials
	}
	return s.tokens.IssuePair(user)
}

func (s *UserService) Refresh(_ context.Context, refreshToken string) (string, error) {
	return s.tokens.Refresh(refreshToken)
}

func (s *UserService) Me(ctx context.Context, identity domain.Identity) (*domain.User, error) {
	if !identity.Authenticated() {
		return nil, domain.ErrUnauthorized
	}
	return s.repo.GetByID(ctx, identity.UserID)
}

var _ UserUseCase = (*UserService)(nil)
