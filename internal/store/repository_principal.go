package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/learngate/learngate/internal/logger"
	"github.com/learngate/learngate/models"
)

// principalRepository is the PostgreSQL-backed implementation of
// [PrincipalRepository]. It handles account creation, lookup, and mutation
// against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type principalRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewPrincipalRepository constructs a [PrincipalRepository] backed by the
// provided database connection and logger.
func NewPrincipalRepository(db *DB, logger *logger.Logger) PrincipalRepository {
	logger.Debug().Msg("creating principal repository")
	return &principalRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new account and returns the fully populated
// [models.User] with server-assigned fields (UserID, CreatedAt).
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrEmailAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
//   - Scan failure → wrapped [ErrScanningRow].
func (r *principalRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser, user.Email, user.Name, user.PasswordHash, user.Role)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*principalRepository.CreateUser").Msg("error: row is nil")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrEmailAlreadyExists
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	created, err := scanUser(row)
	if err != nil {
		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.User{}, ErrEmailAlreadyExists
		}
		log.Err(err).Str("func", "*principalRepository.CreateUser").Msg("error: scanning error")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return created, nil
}

// FindUserByID retrieves an account by its internal id.
//
// Returns [ErrNoUserWasFound] when no row matches.
func (r *principalRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	return r.findUser(ctx, findUserByID, userID)
}

// FindUserByEmail retrieves an account by its normalized email.
//
// Returns [ErrNoUserWasFound] when no row matches.
func (r *principalRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findUser(ctx, findUserByEmail, email)
}

func (r *principalRepository) findUser(ctx context.Context, query string, arg any) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, query, arg)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*principalRepository.findUser").Msg("error: row is nil")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	found, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*principalRepository.findUser").Msg("error: scanning error")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return found, nil
}

// SaveUser updates the mutable fields of an existing account and returns the
// stored representation.
//
// Error handling:
//   - No matching row → [ErrNoUserWasFound].
//   - PostgreSQL unique_violation (email collision) → [ErrEmailAlreadyExists].
func (r *principalRepository) SaveUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, saveUser, user.Email, user.Name, user.PasswordHash, user.Role, user.Blocked, user.UserID)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*principalRepository.SaveUser").Msg("error: row is nil")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrEmailAlreadyExists
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	saved, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*principalRepository.SaveUser").Msg("error: scanning error")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return saved, nil
}

// DeleteUser removes an account by id. Reset codes referencing the account
// cascade at the schema level.
func (r *principalRepository) DeleteUser(ctx context.Context, userID int64) error {
	log := logger.FromContext(ctx)

	res, err := r.db.ExecContext(ctx, deleteUser, userID)
	if err != nil {
		log.Err(err).Str("func", "*principalRepository.DeleteUser").Msg("error: delete failed")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return ErrNoUserWasFound
	}

	return nil
}

// TouchActivity sets last_activity_at for an account. Callers treat failures
// as non-fatal: activity tracking must never block an authenticated request.
func (r *principalRepository) TouchActivity(ctx context.Context, userID int64, at time.Time) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, touchActivity, at, userID); err != nil {
		log.Err(err).Str("func", "*principalRepository.TouchActivity").Msg("error: update failed")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// ListUsers returns every account ordered by id.
func (r *principalRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listUsers)
	if err != nil {
		log.Err(err).Str("func", "*principalRepository.ListUsers").Msg("error: query failed")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.UserID, &u.Email, &u.Name, &u.PasswordHash, &u.Role, &u.Blocked, &u.LastActivityAt, &u.CreatedAt); err != nil {
			log.Err(err).Str("func", "*principalRepository.ListUsers").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return users, nil
}

// scanUser reads one user row into a models.User.
func scanUser(row *sql.Row) (models.User, error) {
	var u models.User
	err := row.Scan(&u.UserID, &u.Email, &u.Name, &u.PasswordHash, &u.Role, &u.Blocked, &u.LastActivityAt, &u.CreatedAt)
	return u, err
}
