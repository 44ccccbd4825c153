package userrepo

import (
	"context"
	"errors"

	"github.com/GlebRadaev/parking/internal/domain"
	"github.com/GlebRadaev/parking/internal/pg"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

const uniqueViolation = "23505"

const userColumns = "id, email, uname, password_hash, role, active, created_at"

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanUser(row pgx.Row, user *domain.User) error {
	return row.Scan(&user.ID, &user.Email, &user.Uname, &user.PasswordHash, &user.Role, &user.Active, &user.CreatedAt)
}

func (repo *Repository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	err := scanUser(repo.db.QueryRow(ctx, "SELECT "+userColumns+" FROM users WHERE email = $1", email), &user)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (repo *Repository) FindByID(ctx context.Context, id int) (*domain.User, error) {
	var user domain.User
	err := scanUser(repo.db.QueryRow(ctx, "SELECT "+userColumns+" FROM users WHERE id = $1", id), &user)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find user by id", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (repo *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (email, uname, password_hash, role)
		VALUES ($1, $2, $3, $4)
		RETURNING id, active, created_at
	`
	err := repo.db.QueryRow(ctx, query, user.Email, user.Uname, user.PasswordHash, user.Role).
		Scan(&user.ID, &user.Active, &user.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, domain.ErrUserExists
		}
		zap.L().Error("can't save user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

// LockByID takes a row lock on the user for the rest of the transaction,
// serializing session changes of one user.
func (repo *Repository) LockByID(ctx context.Context, id int) error {
	var lockedID int
	err := repo.db.QueryRow(ctx, "SELECT id FROM users WHERE id = $1 FOR UPDATE", id).Scan(&lockedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		zap.L().Error("can't lock user", zap.Error(err))
		return err
	}
	return nil
}

func (repo *Repository) ListByRole(ctx context.Context, role string) ([]domain.User, error) {
	rows, err := repo.db.Query(ctx, "SELECT "+userColumns+" FROM users WHERE role = $1 ORDER BY id", role)
	if err != nil {
		zap.L().Error("can't list users", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var user domain.User
		if err := scanUser(rows, &user); err != nil {
			zap.L().Error("can't scan user row", zap.Error(err))
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

func (repo *Repository) ListWithStatus(ctx context.Context) ([]domain.UserStatus, error) {
	query := `
		SELECT u.id, u.uname, u.email, r.spot_id
		FROM users u
		LEFT JOIN reservations r ON r.user_id = u.id AND r.ended_at IS NULL
		WHERE u.role = 'user'
		ORDER BY u.id
	`
	rows, err := repo.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't list user statuses", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var users []domain.UserStatus
	for rows.Next() {
		var status domain.UserStatus
		if err := rows.Scan(&status.ID, &status.Uname, &status.Email, &status.CurrentSpot); err != nil {
			zap.L().Error("can't scan user status row", zap.Error(err))
			return nil, err
		}
		users = append(users, status)
	}
	return users, rows.Err()
}
