package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/learngate/learngate/internal/logger"
	"github.com/learngate/learngate/models"
)

// resetCodeRepository is the PostgreSQL-backed implementation of
// [ResetCodeRepository] over the "password_reset_codes" table.
//
// The table carries a UNIQUE(user_id) constraint, so the upsert path can
// never leave two live codes for the same account.
type resetCodeRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewResetCodeRepository constructs a [ResetCodeRepository] backed by the
// provided database connection and logger.
func NewResetCodeRepository(db *DB, logger *logger.Logger) ResetCodeRepository {
	logger.Debug().Msg("creating reset code repository")
	return &resetCodeRepository{
		db:     db,
		logger: logger,
	}
}

// UpsertResetCode inserts the record, atomically replacing any previous
// record for the same owner via ON CONFLICT, and returns the stored row.
func (r *resetCodeRepository) UpsertResetCode(ctx context.Context, code models.ResetCode) (models.ResetCode, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpsertResetCode(code)
	if err != nil {
		log.Err(err).Str("func", "*resetCodeRepository.UpsertResetCode").Msg("error: building query")
		return models.ResetCode{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*resetCodeRepository.UpsertResetCode").Msg("error: row is nil")
		return models.ResetCode{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	stored, err := scanResetCode(row)
	if err != nil {
		log.Err(err).Str("func", "*resetCodeRepository.UpsertResetCode").Msg("error: scanning error")
		return models.ResetCode{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return stored, nil
}

// FindLiveResetCode looks up a record matching email and code whose expiry is
// strictly in the future. Expired or absent records both come back as
// [ErrResetCodeNotFound].
func (r *resetCodeRepository) FindLiveResetCode(ctx context.Context, email, code string, now time.Time) (models.ResetCode, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindLiveResetCode(email, code, now)
	if err != nil {
		log.Err(err).Str("func", "*resetCodeRepository.FindLiveResetCode").Msg("error: building query")
		return models.ResetCode{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.findResetCode(ctx, query, args)
}

// FindResetCodeByOwner looks up the record for an account regardless of
// expiry. Used by the issuing path for diagnostics and by tests.
func (r *resetCodeRepository) FindResetCodeByOwner(ctx context.Context, userID int64) (models.ResetCode, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindResetCodeByOwner(userID)
	if err != nil {
		log.Err(err).Str("func", "*resetCodeRepository.FindResetCodeByOwner").Msg("error: building query")
		return models.ResetCode{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.findResetCode(ctx, query, args)
}

func (r *resetCodeRepository) findResetCode(ctx context.Context, query string, args []any) (models.ResetCode, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*resetCodeRepository.findResetCode").Msg("error: row is nil")
		return models.ResetCode{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	found, err := scanResetCode(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.ResetCode{}, ErrResetCodeNotFound
		}
		log.Err(err).Str("func", "*resetCodeRepository.findResetCode").Msg("error: scanning error")
		return models.ResetCode{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return found, nil
}

// DeleteResetCode removes the record by id. A missing record is not an error:
// a concurrent reset may already have consumed it.
func (r *resetCodeRepository) DeleteResetCode(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteResetCode(id)
	if err != nil {
		log.Err(err).Str("func", "*resetCodeRepository.DeleteResetCode").Msg("error: building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*resetCodeRepository.DeleteResetCode").Msg("error: delete failed")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// scanResetCode reads one reset code row into a models.ResetCode.
func scanResetCode(row *sql.Row) (models.ResetCode, error) {
	var c models.ResetCode
	err := row.Scan(&c.ID, &c.UserID, &c.Email, &c.Code, &c.ExpiresAt, &c.CreatedAt)
	return c, err
}
