package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/o-magnata69/back-end-api/internal/domain"
	"github.com/o-magnata69/back-end-api/internal/platform/logger"
	"github.com/o-magnata69/back-end-api/internal/service/auth"
	"github.com/o-magnata69/back-end-api/internal/store"
)

// UserService provides the operations behind the /usuarios routes.
type UserService interface {
	// ListUsers returns every stored user.
	ListUsers(ctx context.Context) ([]*domain.User, error)

	// GetUser retrieves a user by id.
	GetUser(ctx context.Context, id int64) (*domain.User, error)

	// CreateUser hashes senha and inserts a new user, returning it with its id.
	CreateUser(ctx context.Context, nome, email, senha string) (*domain.User, error)

	// UpdateUser merges the truthy fields of payload onto the stored user.
	// The lookup and the write happen in one transaction with the row locked.
	UpdateUser(ctx context.Context, id int64, payload domain.Payload) error

	// DeleteUser removes a user after confirming it exists, in one transaction.
	DeleteUser(ctx context.Context, id int64) error
}

// UserServiceImpl implements the UserService interface
type UserServiceImpl struct {
	userStore store.UserStore
	txr       store.Transactor
	hasher    auth.PasswordHasher
	logger    *slog.Logger
}

// NewUserService creates a new UserService
func NewUserService(
	userStore store.UserStore,
	txr store.Transactor,
	hasher auth.PasswordHasher,
	logger *slog.Logger,
) UserService {
	if logger == nil {
		logger = slog.Default()
	}
	return &UserServiceImpl{
		userStore: userStore,
		txr:       txr,
		hasher:    hasher,
		logger:    logger.With("component", "user_service"),
	}
}

// ListUsers implements UserService.
func (s *UserServiceImpl) ListUsers(ctx context.Context) ([]*domain.User, error) {
	users, err := s.userStore.List(ctx)
	if err != nil {
		return nil, NewServiceError("list users", err)
	}
	return users, nil
}

// GetUser implements UserService.
func (s *UserServiceImpl) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	user, err := s.userStore.GetByID(ctx, id)
	if err != nil {
		if !store.IsNotFoundError(err) {
			log.Error("failed to retrieve user", "error", err, "user_id", id)
		}
		return nil, fmt.Errorf("failed to retrieve user: %w", err)
	}

	return user, nil
}

// CreateUser implements UserService.
func (s *UserServiceImpl) CreateUser(ctx context.Context, nome, email, senha string) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	user, err := domain.NewUser(nome, email, senha)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	if err := s.hashCredential(user); err != nil {
		log.Error("failed to hash credential for new user", "error", err)
		return nil, err
	}

	if err := s.userStore.Create(ctx, user); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			log.Debug("attempted to create duplicate user")
		} else {
			log.Error("failed to save user to database", "error", err)
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	log.Info("user created successfully", "user_id", user.ID)
	return user, nil
}

// UpdateUser implements UserService.
func (s *UserServiceImpl) UpdateUser(ctx context.Context, id int64, payload domain.Payload) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	err := s.txr.RunInTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		txStore := s.userStore.WithTx(tx)

		user, err := txStore.GetByIDForUpdate(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to retrieve user for update: %w", err)
		}

		if err := user.Merge(payload); err != nil {
			return err
		}

		if user.Senha != "" {
			if err := s.hashCredential(user); err != nil {
				return err
			}
		}

		return txStore.Update(ctx, user)
	})
	if err != nil {
		if isClientError(err) {
			log.Debug("user update rejected", "error", err, "user_id", id)
		} else {
			log.Error("failed to update user", "error", err, "user_id", id)
		}
		return fmt.Errorf("failed to update user: %w", err)
	}

	log.Info("user updated successfully", "user_id", id)
	return nil
}

// DeleteUser implements UserService.
func (s *UserServiceImpl) DeleteUser(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	err := s.txr.RunInTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		txStore := s.userStore.WithTx(tx)

		if _, err := txStore.GetByIDForUpdate(ctx, id); err != nil {
			return fmt.Errorf("failed to retrieve user for deletion: %w", err)
		}

		return txStore.Delete(ctx, id)
	})
	if err != nil {
		if isClientError(err) {
			log.Debug("user delete rejected", "error", err, "user_id", id)
		} else {
			log.Error("failed to delete user", "error", err, "user_id", id)
		}
		return fmt.Errorf("failed to delete user: %w", err)
	}

	log.Info("user deleted successfully", "user_id", id)
	return nil
}

// hashCredential replaces the pending plaintext Senha with its hash.
func (s *UserServiceImpl) hashCredential(user *domain.User) error {
	hashed, err := s.hasher.Hash(user.Senha)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrCredentialHash, err)
	}
	user.SenhaHash = hashed
	user.Senha = ""
	return nil
}

// isClientError reports whether err was caused by the request rather than
// by the system, so it is logged at DEBUG instead of ERROR.
func isClientError(err error) bool {
	return store.IsNotFoundError(err) ||
		errors.Is(err, store.ErrDuplicate) ||
		errors.Is(err, domain.ErrValidation)
}
