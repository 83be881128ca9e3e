package services

import (
	"context"
	"fmt"

	"dbvaultapi/models"
	"dbvaultapi/pkg/logger"
	"dbvaultapi/pkg/token"
	"dbvaultapi/repository"
	"dbvaultapi/utils"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword hashes a plaintext password with bcrypt at the default cost.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

// VerifyPassword reports whether the plaintext matches the bcrypt hash.
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// LoginResult is the token payload returned on successful login.
type LoginResult struct {
	Status      string `json:"status"`
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// AuthService handles registration, authentication and token issuance.
type AuthService interface {
	Register(ctx context.Context, email, password string) error
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	Authenticate(ctx context.Context, email, password string) (*models.User, error)
	ResolveCurrentUser(ctx context.Context, tokenString string) (*models.User, error)
}

type authService struct {
	userRepo repository.Repository[models.User]
	tokens   *token.Manager
}

// NewAuthService creates an auth service bound to the global database connection.
func NewAuthService(tokens *token.Manager) AuthService {
	return &authService{
		userRepo: repository.NewRepository[models.User](),
		tokens:   tokens,
	}
}

// NewAuthServiceWithDeps creates an auth service with injected dependencies.
// Used for dependency injection in tests.
func NewAuthServiceWithDeps(userRepo repository.Repository[models.User], tokens *token.Manager) AuthService {
	return &authService{userRepo: userRepo, tokens: tokens}
}

// Register creates a new user with a hashed password.
// Returns a conflict error when the email is already taken.
func (s *authService) Register(ctx context.Context, email, password string) error {
	existing, err := s.userRepo.GetOneByFilter(nil, map[string]interface{}{"email": email})
	if err != nil {
		return fmt.Errorf("failed to look up user by email: %w", err)
	}
	if existing != nil {
		return utils.ErrConflict(utils.EmailAlreadyExist)
	}

	hashed, err := HashPassword(password)
	if err != nil {
		return err
	}

	user := &models.User{Email: email, Password: hashed}

	tx := s.userRepo.Begin()
	if err := s.userRepo.Create(tx, user); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to create user: %w", err)
	}
	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("failed to commit user creation: %w", err)
	}

	logger.Infof("Registered new user %s", user.ID)
	return nil
}

// Authenticate looks up the user by email and verifies the password.
// Both an unknown email and a wrong password yield (nil, nil) so callers
// cannot distinguish them.
func (s *authService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.userRepo.GetOneByFilter(nil, map[string]interface{}{"email": email})
	if err != nil {
		return nil, fmt.Errorf("failed to look up user by email: %w", err)
	}
	if user == nil || !VerifyPassword(password, user.Password) {
		return nil, nil
	}
	return user, nil
}

// Login authenticates the user and issues an access token.
func (s *authService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	user, err := s.Authenticate(ctx, email, password)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, utils.ErrUnauthorized(utils.IncorrectEmailPassword)
	}

	accessToken, err := s.tokens.Generate(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to issue access token: %w", err)
	}

	return &LoginResult{
		Status:      utils.Success,
		AccessToken: accessToken,
		TokenType:   "bearer",
	}, nil
}

// ResolveCurrentUser verifies the token and loads the user named by its email
// claim. Any token or lookup failure yields the same authentication error.
func (s *authService) ResolveCurrentUser(ctx context.Context, tokenString string) (*models.User, error) {
	claims, err := s.tokens.Verify(tokenString)
	if err != nil {
		logger.Warnf("Token verification failed: %v", err)
		return nil, utils.ErrUnauthorized(utils.InvalidCredentials)
	}

	user, err := s.userRepo.GetOneByFilter(nil, map[string]interface{}{"email": claims.Email})
	if err != nil {
		return nil, fmt.Errorf("failed to look up user by email: %w", err)
	}
	if user == nil {
		return nil, utils.ErrUnauthorized(utils.InvalidCredentials)
	}
	return user, nil
}
