// Package services contains server-side business logic. This file implements
// UserService, which handles account registration, credential verification,
// access-token issuance, and password changes.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/hrostami/taskkeeper/internal/common"
	"github.com/hrostami/taskkeeper/internal/dbx"
	"github.com/hrostami/taskkeeper/internal/server/auth"
	"github.com/hrostami/taskkeeper/internal/server/config"
	"github.com/hrostami/taskkeeper/internal/server/models"
	"github.com/hrostami/taskkeeper/internal/server/repositories/repomanager"
)

// UserService provides authentication-related operations:
//   - Register: create accounts with a hashed password
//   - Authenticate: verify credentials without minting anything
//   - Login: verify credentials and mint an access token
//   - ChangePassword: rotate the stored hash after checking the current password
type UserService struct {
	db             *sql.DB
	repomanager    repomanager.RepositoryManager
	jwtSecret      []byte
	accessTokenTTL time.Duration
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:             db,
		repomanager:    m,
		jwtSecret:      []byte(cfg.SecretKey),
		accessTokenTTL: cfg.AccessTokenTTL,
	}
}

// Register creates a new active account. The plaintext password is hashed
// here and never stored.
func (s *UserService) Register(ctx context.Context, user *models.User, password string) (*models.User, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user.PasswordHash = hash
	user.IsActive = true

	repo := s.repomanager.Users(s.db)
	u, err := repo.Create(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("error creating user: %w", err)
	}
	return u, nil
}

// Authenticate verifies username/password against the credential store.
// Unknown usernames and wrong passwords both return ErrorUnauthorized so
// callers cannot enumerate accounts.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	repo := s.repomanager.Users(s.db)
	user, err := repo.GetUserByLogin(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, common.ErrorInternal
	}
	if !auth.CheckPassword(password, user.PasswordHash) {
		return nil, common.ErrorUnauthorized
	}
	return user, nil
}

// Login authenticates and, on success, mints an access token carrying the
// account's username, id, and role.
func (s *UserService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.Authenticate(ctx, username, password)
	if err != nil {
		return "", err
	}

	token, err := auth.GenerateToken(user.Username, user.ID, user.Role, s.jwtSecret, s.accessTokenTTL)
	if err != nil {
		return "", common.ErrorInternal
	}
	return token, nil
}

// GetUser returns the account with the given id.
func (s *UserService) GetUser(ctx context.Context, id int64) (*models.User, error) {
	repo := s.repomanager.Users(s.db)
	return repo.GetUserByID(ctx, id)
}

// ChangePassword verifies the current password and stores a hash of the new
// one, inside a single transaction so the check and the write see the same
// row. A wrong current password yields ErrorForbidden and leaves the stored
// hash untouched.
func (s *UserService) ChangePassword(ctx context.Context, userID int64, currentPassword, newPassword string) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Users(tx)

		user, err := repo.GetUserByID(ctx, userID)
		if err != nil {
			return err
		}

		if !auth.CheckPassword(currentPassword, user.PasswordHash) {
			return common.ErrorForbidden
		}

		hash, err := auth.HashPassword(newPassword)
		if err != nil {
			return fmt.Errorf("error hashing password: %w", err)
		}

		return repo.UpdatePasswordHash(ctx, userID, hash)
	})
}
