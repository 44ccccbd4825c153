package deliveryrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	t.Cleanup(mockDB.Close)

	return New(mockDB), mockDB
}

func TestRepository_ListDelivered(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta("SELECT user_id FROM mail_deliveries WHERE kind = $1 AND period = $2")

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    []int
	}{
		{
			name: "Delivered users",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs("monthly_report", "2024-02").
					WillReturnRows(pgxmock.NewRows([]string{"user_id"}).AddRow(2).AddRow(5))
			},
			result: []int{2, 5},
		},
		{
			name: "Nothing delivered",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs("monthly_report", "2024-02").
					WillReturnRows(pgxmock.NewRows([]string{"user_id"}))
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs("monthly_report", "2024-02").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.ListDelivered(context.Background(), "monthly_report", "2024-02")

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_MarkDelivered(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta("ON CONFLICT (kind, period, user_id) DO NOTHING")

	mock.ExpectExec(query).WithArgs("daily_reminder", 2, "2024-03-04").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	assert.NoError(t, repo.MarkDelivered(context.Background(), "daily_reminder", 2, "2024-03-04"))

	mock.ExpectExec(query).WithArgs("daily_reminder", 2, "2024-03-04").
		WillReturnError(errors.New("database error"))
	assert.Error(t, repo.MarkDelivered(context.Background(), "daily_reminder", 2, "2024-03-04"))

	assert.NoError(t, mock.ExpectationsWereMet())
}
