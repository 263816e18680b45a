package queries

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"staffing/internal/core/domain/model/kernel"
)

const userColumns = `
	id,
	name,
	email,
	password_hash,
	role,
	verified,
	created_at
`

func scanUserByEmail(ctx context.Context, db *gorm.DB, email string) (UserResponse, string, error) {
	rows, err := db.WithContext(ctx).Raw(`
		SELECT `+userColumns+`
		FROM users
		WHERE email = ?
	`, email).Rows()
	if err != nil {
		return UserResponse{}, "", err
	}

	return scanOneUser(rows)
}

func scanUserByID(ctx context.Context, db *gorm.DB, id kernel.UUID) (UserResponse, string, error) {
	rows, err := db.WithContext(ctx).Raw(`
		SELECT `+userColumns+`
		FROM users
		WHERE id = ?
	`, id.Bytes()).Rows()
	if err != nil {
		return UserResponse{}, "", err
	}

	return scanOneUser(rows)
}

// scanOneUser drains a single-row user select. The password hash is returned
// separately so callers that do not need it never put it in a response.
func scanOneUser(rows *sql.Rows) (UserResponse, string, error) {
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return UserResponse{}, "", err
		}
		return UserResponse{}, "", gorm.ErrRecordNotFound
	}

	var account UserResponse
	var id uuid.UUID
	var hash string

	err := rows.Scan(
		&id,
		&account.Name,
		&account.Email,
		&hash,
		&account.Role,
		&account.Verified,
		&account.CreatedAt,
	)
	if err != nil {
		return UserResponse{}, "", err
	}

	account.ID, err = kernel.UUIDFromBytes(id[:])
	if err != nil {
		return UserResponse{}, "", err
	}

	return account, hash, nil
}
