package services

import (
	"context"
	"fmt"

	"dbvaultapi/models"
	"dbvaultapi/pkg/logger"
	"dbvaultapi/repository"
	"dbvaultapi/utils"
)

// CredentialService handles the per-user vault of database credentials.
// A credential is only ever readable by its owning user; an ownership miss is
// reported exactly like a missing record.
type CredentialService interface {
	Create(ctx context.Context, userID string, cred models.DBCredential) (*models.DBCredential, error)
	GetAllForUser(ctx context.Context, userID string) ([]models.DBCredential, error)
	GetOwned(ctx context.Context, userID, credentialID string) (*models.DBCredential, error)
}

type credentialService struct {
	credRepo repository.Repository[models.DBCredential]
}

// NewCredentialService creates a credential service bound to the global database connection.
func NewCredentialService() CredentialService {
	return &credentialService{
		credRepo: repository.NewRepository[models.DBCredential](),
	}
}

// NewCredentialServiceWithDeps creates a credential service with an injected repository.
// Used for dependency injection in tests.
func NewCredentialServiceWithDeps(credRepo repository.Repository[models.DBCredential]) CredentialService {
	return &credentialService{credRepo: credRepo}
}

func (s *credentialService) Create(ctx context.Context, userID string, cred models.DBCredential) (*models.DBCredential, error) {
	cred.UserID = userID

	tx := s.credRepo.Begin()
	if err := s.credRepo.Create(tx, &cred); err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to create database credentials: %w", err)
	}
	if err := tx.Commit().Error; err != nil {
		return nil, fmt.Errorf("failed to commit credential creation: %w", err)
	}

	logger.Infof("Created database credentials %s for user %s", cred.ID, userID)
	return &cred, nil
}

func (s *credentialService) GetAllForUser(ctx context.Context, userID string) ([]models.DBCredential, error) {
	creds, err := s.credRepo.GetAllByFilter(nil, map[string]interface{}{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("failed to list database credentials: %w", err)
	}
	if len(creds) == 0 {
		return nil, utils.ErrNotFound(utils.NoCredentialsFound)
	}
	return creds, nil
}

func (s *credentialService) GetOwned(ctx context.Context, userID, credentialID string) (*models.DBCredential, error) {
	cred, err := s.credRepo.GetByID(nil, credentialID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch database credentials: %w", err)
	}
	if cred == nil || cred.UserID != userID {
		return nil, utils.ErrNotFound(utils.CredentialsNotFound)
	}
	return cred, nil
}
