package users

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"shortage-tracker/feature/users/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	// ErrInvalidCredentials is returned when the username or password is wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUserNotFound is returned when no user matches the given username.
	ErrUserNotFound = errors.New("user not found")
	// ErrUsernameTaken is returned when creating a user with an existing username.
	ErrUsernameTaken = errors.New("username already taken")
	// ErrInvalidRole is returned for roles outside admin, user and reader.
	ErrInvalidRole = errors.New("invalid role")
	// ErrReadOnly is returned when a reader attempts a write.
	ErrReadOnly = errors.New("account is read-only")
)

// Service manages user accounts and credentials.
type Service struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewService creates a new users service.
func NewService(db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{db: db, logger: logger}
}

// Login verifies the credentials and returns the matching user.
func (s *Service) Login(ctx context.Context, username, password string) (models.User, error) {
	user, err := s.find(ctx, username)
	if errors.Is(err, ErrUserNotFound) {
		// Run a dummy compare so unknown usernames cost the same as bad
		// passwords.
		_ = bcrypt.CompareHashAndPassword([]byte("$2a$10$N9qo8uLOickgx2ZMRZoMye"), []byte(password))
		return models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		return models.User{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return models.User{}, ErrInvalidCredentials
	}

	s.logger.Info("User logged in", zap.String("username", user.Username), zap.String("role", string(user.Role)))
	return user, nil
}

// Create registers a new user with a bcrypt-hashed password.
func (s *Service) Create(ctx context.Context, username, password string, role models.Role) (models.User, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	if username == "" || password == "" {
		return models.User{}, ErrInvalidCredentials
	}
	if !models.IsValidRole(role) {
		return models.User{}, fmt.Errorf("%w: %s", ErrInvalidRole, role)
	}

	if _, err := s.find(ctx, username); err == nil {
		return models.User{}, ErrUsernameTaken
	} else if !errors.Is(err, ErrUserNotFound) {
		return models.User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, fmt.Errorf("hashing password: %w", err)
	}

	user := models.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		return models.User{}, fmt.Errorf("creating user: %w", err)
	}

	s.logger.Info("User created", zap.String("username", username), zap.String("role", string(role)))
	return user, nil
}

// List returns all users ordered by username.
func (s *Service) List(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := s.db.WithContext(ctx).Order("username ASC").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}
	return users, nil
}

// SetPassword replaces the user's password with a fresh bcrypt hash.
func (s *Service) SetPassword(ctx context.Context, username, password string) error {
	user, err := s.find(ctx, username)
	if err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}

	if err := s.db.WithContext(ctx).Model(&user).Update("password_hash", string(hash)).Error; err != nil {
		return fmt.Errorf("updating password: %w", err)
	}
	return nil
}

// SetRole changes the user's role.
func (s *Service) SetRole(ctx context.Context, username string, role models.Role) error {
	if !models.IsValidRole(role) {
		return fmt.Errorf("%w: %s", ErrInvalidRole, role)
	}

	user, err := s.find(ctx, username)
	if err != nil {
		return err
	}
	if err := s.db.WithContext(ctx).Model(&user).Update("role", role).Error; err != nil {
		return fmt.Errorf("updating role: %w", err)
	}
	return nil
}

// Delete removes the user account.
func (s *Service) Delete(ctx context.Context, username string) error {
	user, err := s.find(ctx, username)
	if err != nil {
		return err
	}
	if err := s.db.WithContext(ctx).Delete(&user).Error; err != nil {
		return fmt.Errorf("deleting user: %w", err)
	}

	s.logger.Info("User deleted", zap.String("username", username))
	return nil
}

// AuthorizeWrite implements the inventory write gate: readers and unknown
// users may not modify records.
func (s *Service) AuthorizeWrite(ctx context.Context, username string) error {
	user, err := s.find(ctx, username)
	if err != nil {
		return err
	}
	if user.Role == models.RoleReader {
		return ErrReadOnly
	}
	return nil
}

func (s *Service) find(ctx context.Context, username string) (models.User, error) {
	username = strings.ToLower(strings.TrimSpace(username))

	var user models.User
	err := s.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("loading user %q: %w", username, err)
	}
	return user, nil
}
