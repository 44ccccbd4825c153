package pg

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var readCommitted = pgx.TxOptions{IsoLevel: pgx.ReadCommitted}

func TestTXManager_Begin(t *testing.T) {
	tests := []struct {
		name      string
		mockSetup func(mock pgxmock.PgxPoolIface)
		fn        func(db *DB) TransactionalFn
		expectErr bool
	}{
		{
			name: "Commit on success",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBeginTx(readCommitted)
				mock.ExpectExec(regexp.QuoteMeta("UPDATE parking_spots SET status = 'A' WHERE id = $1")).
					WithArgs(1).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
				mock.ExpectCommit()
			},
			fn: func(db *DB) TransactionalFn {
				return func(ctx context.Context) error {
					_, err := db.Exec(ctx, "UPDATE parking_spots SET status = 'A' WHERE id = $1", 1)
					return err
				}
			},
		},
		{
			name: "Rollback on error",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBeginTx(readCommitted)
				mock.ExpectRollback()
			},
			fn: func(db *DB) TransactionalFn {
				return func(ctx context.Context) error {
					return errors.New("domain rule violated")
				}
			},
			expectErr: true,
		},
		{
			name: "Begin failure",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBeginTx(readCommitted).WillReturnError(errors.New("connection refused"))
			},
			fn: func(db *DB) TransactionalFn {
				return func(ctx context.Context) error {
					t.Error("fn must not run without a transaction")
					return nil
				}
			},
			expectErr: true,
		},
		{
			name: "Commit failure",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBeginTx(readCommitted)
				mock.ExpectCommit().WillReturnError(errors.New("serialization failure"))
			},
			fn: func(db *DB) TransactionalFn {
				return func(ctx context.Context) error { return nil }
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, err := pgxmock.NewPool()
			require.NoError(t, err)
			defer mock.Close()

			tt.mockSetup(mock)
			db := New(mock)
			manager := NewTXManager(mock)

			err = manager.Begin(context.Background(), tt.fn(db))
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestTXManager_NestedBeginJoinsOuter(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectBeginTx(readCommitted)
	mock.ExpectCommit()

	manager := NewTXManager(mock)
	calls := 0
	err = manager.Begin(context.Background(), func(ctx context.Context) error {
		return manager.Begin(ctx, func(ctx context.Context) error {
			calls++
			_, ok := txFromContext(ctx)
			assert.True(t, ok)
			return nil
		})
	})

	assert.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTXManager_BeginnerMock(t *testing.T) {
	ctrl := gomock.NewController(t)
	beginner := NewMockTxBeginner(ctrl)
	beginner.EXPECT().BeginTx(gomock.Any(), readCommitted).Return(nil, errors.New("pool closed"))

	err := NewTXManager(beginner).Begin(context.Background(), func(ctx context.Context) error { return nil })
	assert.ErrorContains(t, err, "pool closed")
}

func TestDB_UsesPoolWithoutTransaction(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT 1")).
		WillReturnRows(pgxmock.NewRows([]string{"one"}).AddRow(1))

	var one int
	err = New(mock).QueryRow(context.Background(), "SELECT 1").Scan(&one)

	assert.NoError(t, err)
	assert.Equal(t, 1, one)
	assert.NoError(t, mock.ExpectationsWereMet())
}
