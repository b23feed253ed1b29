package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"courseplatform/internal/domain"
	"courseplatform/internal/infrastructure/security"
)

// TokenCache хранит выданные refresh-токены (Redis)
type TokenCache interface {
	SaveRefresh(ctx context.Context, userID string, refreshToken string) error
	CheckRefresh(ctx context.Context, refreshToken string) (string, error)
	DeleteRefresh(ctx context.Context, refreshToken string) error
}

type AuthUseCase struct {
	users        domain.UserRepository
	tokens       TokenCache
	hasher       *security.PasswordHasher
	tokenManager *security.TokenManager
}

func NewAuthUseCase(
	users domain.UserRepository,
	tokens TokenCache,
	hasher *security.PasswordHasher,
	tokenManager *security.TokenManager,
) *AuthUseCase {
	return &AuthUseCase{
		users:        users,
		tokens:       tokens,
		hasher:       hasher,
		tokenManager: tokenManager,
	}
}

func (uc *AuthUseCase) Register(ctx context.Context, name, email, password string) (*domain.User, error) {
	if name == "" || email == "" || password == "" {
		return nil, domain.NewValidation("Please enter all fields")
	}

	if existing, _ := uc.users.GetByEmail(ctx, email); existing != nil {
		return nil, domain.NewConflict("User already exists")
	}

	hash, err := uc.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:       uuid.New(),
		Name:     name,
		Email:    email,
		Password: hash,
		Role:     domain.RoleUser,
	}

	if err := uc.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (uc *AuthUseCase) Login(ctx context.Context, email, password string) (string, string, error) {
	user, err := uc.users.GetByEmail(ctx, email)
	if err != nil {
		return "", "", domain.NewUnauthorized("Incorrect Email or Password")
	}
	if err := uc.hasher.Compare(user.Password, password); err != nil {
		return "", "", domain.NewUnauthorized("Incorrect Email or Password")
	}

	return uc.generateAndSaveTokens(ctx, user.ID.String())
}

func (uc *AuthUseCase) Refresh(ctx context.Context, oldRefreshToken string) (string, string, error) {
	userID, err := uc.tokenManager.ValidateRefreshToken(oldRefreshToken)
	if err != nil {
		return "", "", domain.NewUnauthorized("Invalid refresh token")
	}

	cachedID, err := uc.tokens.CheckRefresh(ctx, oldRefreshToken)
	if err != nil || cachedID != userID {
		return "", "", domain.NewUnauthorized("Token revoked")
	}
	// Старый токен одноразовый
	_ = uc.tokens.DeleteRefresh(ctx, oldRefreshToken)

	return uc.generateAndSaveTokens(ctx, userID)
}

func (uc *AuthUseCase) Logout(ctx context.Context, refreshToken string) error {
	return uc.tokens.DeleteRefresh(ctx, refreshToken)
}

func (uc *AuthUseCase) GetProfile(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	return uc.users.GetByID(ctx, userID)
}

func (uc *AuthUseCase) generateAndSaveTokens(ctx context.Context, userID string) (string, string, error) {
	access, refresh, err := uc.tokenManager.Generate(userID)
	if err != nil {
		return "", "", err
	}
	if err := uc.tokens.SaveRefresh(ctx, userID, refresh); err != nil {
		return "", "", errors.New("failed to save refresh token")
	}
	return access, refresh, nil
}
