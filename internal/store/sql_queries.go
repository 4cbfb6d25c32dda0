package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/learngate/learngate/models"
)

const (
	createUser = `INSERT INTO users (email, name, password_hash, role)
    VALUES ($1, $2, $3, $4)
    RETURNING user_id, email, name, password_hash, role, blocked, last_activity_at, created_at;`

	findUserByID = `SELECT user_id, email, name, password_hash, role, blocked, last_activity_at, created_at
    FROM users
    WHERE user_id = $1;`

	findUserByEmail = `SELECT user_id, email, name, password_hash, role, blocked, last_activity_at, created_at
    FROM users
    WHERE email = $1;`

	saveUser = `UPDATE users
    SET email = $1, name = $2, password_hash = $3, role = $4, blocked = $5
    WHERE user_id = $6
    RETURNING user_id, email, name, password_hash, role, blocked, last_activity_at, created_at;`

	deleteUser = `DELETE FROM users WHERE user_id = $1;`

	touchActivity = `UPDATE users SET last_activity_at = $1 WHERE user_id = $2;`

	listUsers = `SELECT user_id, email, name, password_hash, role, blocked, last_activity_at, created_at
    FROM users
    ORDER BY user_id;`
)

// psql builds queries with PostgreSQL-style $N placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var resetCodeColumns = []string{"id", "user_id", "email", "code", "expires_at", "created_at"}

// buildUpsertResetCode builds the atomic insert-or-replace for a reset code.
// The ON CONFLICT clause keyed by owner makes the last writer win without a
// window where two live records coexist.
func buildUpsertResetCode(code models.ResetCode) (string, []any, error) {
	return psql.Insert(code.TableName()).
		Columns(resetCodeColumns...).
		Values(code.ID, code.UserID, code.Email, code.Code, code.ExpiresAt, code.CreatedAt).
		Suffix(`ON CONFLICT (user_id) DO UPDATE
            SET id = EXCLUDED.id,
                email = EXCLUDED.email,
                code = EXCLUDED.code,
                expires_at = EXCLUDED.expires_at,
                created_at = EXCLUDED.created_at
            RETURNING id, user_id, email, code, expires_at, created_at`).
		ToSql()
}

// buildFindLiveResetCode builds an expiry-filtered lookup by email and code.
// The strict "expires_at > now" comparison is applied at query time, so an
// expired record never matches even when it is still physically present.
func buildFindLiveResetCode(email, code string, now time.Time) (string, []any, error) {
	return psql.Select(resetCodeColumns...).
		From(models.ResetCode{}.TableName()).
		Where(sq.Eq{"email": email}).
		Where(sq.Eq{"code": code}).
		Where(sq.Gt{"expires_at": now}).
		ToSql()
}

// buildFindResetCodeByOwner builds a lookup by the owning account id.
func buildFindResetCodeByOwner(userID int64) (string, []any, error) {
	return psql.Select(resetCodeColumns...).
		From(models.ResetCode{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

// buildDeleteResetCode builds the delete-by-id statement.
func buildDeleteResetCode(id string) (string, []any, error) {
	return psql.Delete(models.ResetCode{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
}
