package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/doug-martin/goqu/v9"

	"github.com/faithfinder/backend/internal/domain/entities"
	"github.com/faithfinder/backend/internal/domain/repositories"
	"github.com/faithfinder/backend/internal/infrastructure/clients/postgres"
	apperrors "github.com/faithfinder/backend/pkg/errors"
)

const usersTable = "users"

var userColumns = []interface{}{
	"id", "email", "password_hash", "first_name", "last_name",
	"faith", "location", "user_type", "faith_practice",
	"created_at", "updated_at",
}

// UserAdapter implements the UserRepository interface on PostgreSQL
type UserAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewUserAdapter creates a new user adapter
func NewUserAdapter(client *postgres.Client) repositories.UserRepository {
	return &UserAdapter{
		client: client,
		db:     client.Goqu(),
	}
}

// Create inserts a user. Emails are stored lower-cased.
func (a *UserAdapter) Create(ctx context.Context, user *entities.User) error {
	record := goqu.Record{
		"id":             user.ID,
		"email":          strings.ToLower(user.Email),
		"password_hash":  user.PasswordHash,
		"first_name":     user.FirstName,
		"last_name":      user.LastName,
		"faith":          user.Faith,
		"location":       user.Location,
		"user_type":      user.UserType,
		"faith_practice": user.FaithPractice,
		"created_at":     user.CreatedAt,
		"updated_at":     user.UpdatedAt,
	}

	query, args, err := a.db.Insert(usersTable).Rows(record).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build insert query", err)
	}

	if _, err := a.client.DB().ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return apperrors.NewConflictError("Email already exists")
		}
		return apperrors.NewInternalError("failed to create user", err)
	}
	return nil
}

// GetByID retrieves a user by ID
func (a *UserAdapter) GetByID(ctx context.Context, id string) (*entities.User, error) {
	return a.getOne(ctx, goqu.Ex{"id": id}, fmt.Sprintf("user with id %s not found", id))
}

// GetByEmail retrieves a user by email
func (a *UserAdapter) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	return a.getOne(ctx, goqu.Ex{"email": strings.ToLower(email)}, "user not found")
}

func (a *UserAdapter) getOne(ctx context.Context, where goqu.Ex, notFound string) (*entities.User, error) {
	query, args, err := a.db.Select(userColumns...).
		From(usersTable).
		Where(where).
		Limit(1).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	u := &entities.User{}
	err = a.client.DB().QueryRowContext(ctx, query, args...).Scan(
		&u.ID,
		&u.Email,
		&u.PasswordHash,
		&u.FirstName,
		&u.LastName,
		&u.Faith,
		&u.Location,
		&u.UserType,
		&u.FaithPractice,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NewNotFoundError(notFound)
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get user", err)
	}
	return u, nil
}
