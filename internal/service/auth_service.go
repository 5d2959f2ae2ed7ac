package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/selfhq/internal/error_values"
	"github.com/limbo/selfhq/internal/repository"
	"github.com/limbo/selfhq/pkg/entity"
	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	repo repository.UsersRepositoryI
	now  func() time.Time
}

func NewAuthService(usersRepo repository.UsersRepositoryI) *AuthService {
	return NewAuthServiceWithClock(usersRepo, time.Now)
}

func NewAuthServiceWithClock(usersRepo repository.UsersRepositoryI, now func() time.Time) *AuthService {
	if usersRepo == nil {
		log.Fatal("provided nil usersRepo")
	}
	return &AuthService{
		repo: usersRepo,
		now:  now,
	}
}

func (as *AuthService) SignUp(ctx context.Context, req *SignUpRequest) (*entity.User, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	passwordHash, err := Hash(req.Password)
	if err != nil {
		return nil, errors.New("hashing password error: " + err.Error())
	}
	username := strings.ToLower(req.Username)
	if username == "" {
		username = generateUsername()
	}
	user := entity.User{
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: passwordHash,
	}
	profile := entity.UserProfile{
		Username:  username,
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
	}
	id, err := as.repo.CreateWithProfile(ctx, &user, &profile)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserExists) || errors.Is(err, errorvalues.ErrUsernameTaken) ||
			errors.Is(err, errorvalues.ErrValidation) {
			return nil, err
		}
		return nil, fmt.Errorf("users repository error: %w", err)
	}
	created, err := as.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("users repository error: %w", err)
	}
	return created, nil
}

func (as *AuthService) SignIn(ctx context.Context, email, password string) (*entity.User, error) {
	user, err := as.repo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("users repository error: %w", err)
	}
	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, errorvalues.ErrWrongCredentials
	}
	return user, nil
}

func (as *AuthService) SignOut(ctx context.Context, jti string, expiresAt time.Time) error {
	if jti == "" {
		return errorvalues.ErrInvalidToken
	}
	if err := as.repo.RevokeToken(ctx, jti, expiresAt); err != nil {
		return fmt.Errorf("users repository error: %w", err)
	}
	return nil
}

func (as *AuthService) IsTokenRevoked(ctx context.Context, jti string) (bool, error) {
	revoked, err := as.repo.IsTokenRevoked(ctx, jti)
	if err != nil {
		return false, fmt.Errorf("users repository error: %w", err)
	}
	return revoked, nil
}

func (as *AuthService) CurrentUser(ctx context.Context, uid uuid.UUID) (*entity.User, error) {
	user, err := as.repo.FindByID(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("users repository error: %w", err)
	}
	return user, nil
}

func (as *AuthService) DeleteAccount(ctx context.Context, uid uuid.UUID, password string) error {
	user, err := as.CurrentUser(ctx, uid)
	if err != nil {
		return err
	}
	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return errorvalues.ErrWrongCredentials
	}
	if err = as.repo.Delete(ctx, user.ID); err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return err
		}
		return fmt.Errorf("users repository error: %w", err)
	}
	return nil
}

func (as *AuthService) PurgeRevokedTokens(ctx context.Context) (int64, error) {
	n, err := as.repo.PurgeRevokedTokens(ctx, as.now())
	if err != nil {
		return 0, fmt.Errorf("users repository error: %w", err)
	}
	return n, nil
}

func Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// generateUsername gives accounts that signed up without a username a
// placeholder of the form user_<8 hex digits>.
func generateUsername() string {
	return "user_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}
