package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/lib/pq"

	"github.com/faithfinder/backend/internal/domain/entities"
	"github.com/faithfinder/backend/internal/domain/repositories"
	"github.com/faithfinder/backend/internal/infrastructure/clients/postgres"
	apperrors "github.com/faithfinder/backend/pkg/errors"
)

const faithGroupsTable = "faith_groups"

// uniqueViolation is the PostgreSQL SQLSTATE for unique_violation
const uniqueViolation = "23505"

var faithGroupColumns = []interface{}{
	"id", "name", "religion", "denomination", "description", "long_description",
	"address", "city", "state", "zip_code", "latitude", "longitude",
	"phone", "email", "website", "rating", "review_count", "service_times",
	"is_open", "google_place_id", "created_at", "updated_at",
}

// FaithGroupAdapter implements the FaithGroupRepository interface on PostgreSQL
type FaithGroupAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewFaithGroupAdapter creates a new faith group adapter
func NewFaithGroupAdapter(client *postgres.Client) repositories.FaithGroupRepository {
	return &FaithGroupAdapter{
		client: client,
		db:     client.Goqu(),
	}
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanFaithGroup(row rowScanner) (*entities.FaithGroup, error) {
	g := &entities.FaithGroup{}
	var denomination, longDescription, phone, email, website, placeID sql.NullString
	var serviceTimes []byte

	err := row.Scan(
		&g.ID,
		&g.Name,
		&g.Religion,
		&denomination,
		&g.Description,
		&longDescription,
		&g.Address,
		&g.City,
		&g.State,
		&g.ZipCode,
		&g.Latitude,
		&g.Longitude,
		&phone,
		&email,
		&website,
		&g.Rating,
		&g.ReviewCount,
		&serviceTimes,
		&g.IsOpen,
		&placeID,
		&g.CreatedAt,
		&g.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	g.Denomination = nullStringPtr(denomination)
	g.LongDescription = nullStringPtr(longDescription)
	g.Phone = nullStringPtr(phone)
	g.Email = nullStringPtr(email)
	g.Website = nullStringPtr(website)
	g.GooglePlaceID = nullStringPtr(placeID)

	g.ServiceTimes = []entities.ServiceTime{}
	if len(serviceTimes) > 0 {
		if err := json.Unmarshal(serviceTimes, &g.ServiceTimes); err != nil {
			return nil, fmt.Errorf("decode service_times: %w", err)
		}
	}
	return g, nil
}

func faithGroupRecord(g *entities.FaithGroup) (goqu.Record, error) {
	times := g.ServiceTimes
	if times == nil {
		times = []entities.ServiceTime{}
	}
	serviceTimes, err := json.Marshal(times)
	if err != nil {
		return nil, err
	}

	return goqu.Record{
		"id":               g.ID,
		"name":             g.Name,
		"religion":         g.Religion,
		"denomination":     ptrNullString(g.Denomination),
		"description":      g.Description,
		"long_description": ptrNullString(g.LongDescription),
		"address":          g.Address,
		"city":             g.City,
		"state":            g.State,
		"zip_code":         g.ZipCode,
		"latitude":         g.Latitude,
		"longitude":        g.Longitude,
		"phone":            ptrNullString(g.Phone),
		"email":            ptrNullString(g.Email),
		"website":          ptrNullString(g.Website),
		"rating":           g.Rating,
		"review_count":     g.ReviewCount,
		"service_times":    string(serviceTimes),
		"is_open":          string(g.IsOpen),
		"google_place_id":  ptrNullString(g.GooglePlaceID),
		"created_at":       g.CreatedAt,
		"updated_at":       g.UpdatedAt,
	}, nil
}

// GetAll returns every faith group ordered by creation time
func (a *FaithGroupAdapter) GetAll(ctx context.Context) ([]*entities.FaithGroup, error) {
	query, args, err := a.db.Select(faithGroupColumns...).
		From(faithGroupsTable).
		Order(goqu.I("created_at").Asc(), goqu.I("id").Asc()).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list faith groups", err)
	}
	defer rows.Close()

	groups := []*entities.FaithGroup{}
	for rows.Next() {
		g, err := scanFaithGroup(rows)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan faith group", err)
		}
		groups = append(groups, g)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("error iterating faith groups", err)
	}

	return groups, nil
}

// GetByID retrieves a faith group by ID
func (a *FaithGroupAdapter) GetByID(ctx context.Context, id string) (*entities.FaithGroup, error) {
	return a.getOne(ctx, goqu.Ex{"id": id}, fmt.Sprintf("faith group with id %s not found", id))
}

// GetByPlaceID retrieves a faith group by its imported place ID
func (a *FaithGroupAdapter) GetByPlaceID(ctx context.Context, placeID string) (*entities.FaithGroup, error) {
	return a.getOne(ctx, goqu.Ex{"google_place_id": placeID}, fmt.Sprintf("faith group with place id %s not found", placeID))
}

func (a *FaithGroupAdapter) getOne(ctx context.Context, where goqu.Ex, notFound string) (*entities.FaithGroup, error) {
	query, args, err := a.db.Select(faithGroupColumns...).
		From(faithGroupsTable).
		Where(where).
		Limit(1).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	g, err := scanFaithGroup(a.client.DB().QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NewNotFoundError(notFound)
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get faith group", err)
	}
	return g, nil
}

// Create inserts a new faith group
func (a *FaithGroupAdapter) Create(ctx context.Context, group *entities.FaithGroup) error {
	record, err := faithGroupRecord(group)
	if err != nil {
		return apperrors.NewInternalError("failed to encode faith group", err)
	}

	query, args, err := a.db.Insert(faithGroupsTable).Rows(record).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build insert query", err)
	}

	if _, err := a.client.DB().ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return apperrors.NewConflictError("faith group already exists")
		}
		return apperrors.NewInternalError("failed to create faith group", err)
	}
	return nil
}

// Update replaces a stored faith group
func (a *FaithGroupAdapter) Update(ctx context.Context, group *entities.FaithGroup) error {
	record, err := faithGroupRecord(group)
	if err != nil {
		return apperrors.NewInternalError("failed to encode faith group", err)
	}
	delete(record, "id")
	delete(record, "created_at")

	query, args, err := a.db.Update(faithGroupsTable).
		Set(record).
		Where(goqu.Ex{"id": group.ID}).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build update query", err)
	}

	result, err := a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.NewConflictError("faith group already exists")
		}
		return apperrors.NewInternalError("failed to update faith group", err)
	}

	return requireAffected(result, fmt.Sprintf("faith group with id %s not found", group.ID))
}

// Delete removes a faith group
func (a *FaithGroupAdapter) Delete(ctx context.Context, id string) error {
	query, args, err := a.db.Delete(faithGroupsTable).
		Where(goqu.Ex{"id": id}).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build delete query", err)
	}

	result, err := a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError("failed to delete faith group", err)
	}

	return requireAffected(result, fmt.Sprintf("faith group with id %s not found", id))
}

func requireAffected(result sql.Result, notFound string) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.NewInternalError("failed to get rows affected", err)
	}
	if rowsAffected == 0 {
		return apperrors.NewNotFoundError(notFound)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

func nullStringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	v := ns.String
	return &v
}

func ptrNullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
