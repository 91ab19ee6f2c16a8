//go:build unit

package repository

import (
	"context"
	"errors"
	"testing"

	"tourbook/internal/domain/customer"
	"tourbook/internal/infra"
	sqlc "tourbook/internal/infra/sqlc/generated"
	repositorymock "tourbook/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func buildDomainCustomer(t *testing.T) *customer.Customer {
	t.Helper()

	email, err := customer.NewEmail("ana.silva@example.com")
	require.NoError(t, err)

	cust, err := customer.NewCustomer("Ana Silva", email, nil, nil)
	require.NoError(t, err)
	return cust
}

func customerRow(id uuid.UUID) sqlc.Customers {
	return sqlc.Customers{
		ID:    id,
		Name:  "Ana Silva",
		Email: "ana.silva@example.com",
	}
}

// =============================================================================
// Create Customer Tests
// =============================================================================

func TestCustomerRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockCustomerWriteQueries, sqlc.DBTX)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: customer created successfully",
			setupMock: func(mock *repositorymock.MockCustomerWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().CreateCustomer(ctx, tx, gomock.Any()).Return(customerRow(uuid.New()), nil)
			},
			expectedError: false,
		},
		{
			name: "error: duplicate email",
			setupMock: func(mock *repositorymock.MockCustomerWriteQueries, tx sqlc.DBTX) {
				dup := &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"}
				mock.EXPECT().CreateCustomer(ctx, tx, gomock.Any()).Return(sqlc.Customers{}, dup)
			},
			expectedError: true,
			expectKind:    infra.KindDuplicateKey,
		},
		{
			name: "error: database error occurs",
			setupMock: func(mock *repositorymock.MockCustomerWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().CreateCustomer(ctx, tx, gomock.Any()).Return(sqlc.Customers{}, errors.New("database connection error"))
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockCustomerWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := &CustomerRepository{queries: mockQueries, db: mockDB}

			tc.setupMock(mockQueries, mockDB)

			snapshot, actualError := repo.Create(ctx, buildDomainCustomer(t))

			if tc.expectedError {
				require.Error(t, actualError)
				if tc.expectKind != "" {
					assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, actualError, actualError)
				}
				assert.Nil(t, snapshot)
			} else {
				assert.NoError(t, actualError)
				require.NotNil(t, snapshot)
				assert.Equal(t, "ana.silva@example.com", snapshot.Email)
			}
		})
	}
}

// =============================================================================
// Find Customer Tests
// =============================================================================

func TestCustomerRepository_FindByEmail(t *testing.T) {
	ctx := context.Background()

	t.Run("success: returns snapshot for known email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockCustomerWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := &CustomerRepository{queries: mockQueries, db: mockDB}

		id := uuid.New()
		mockQueries.EXPECT().GetCustomerByEmail(ctx, mockDB, "ana.silva@example.com").
			Return(customerRow(id), nil)

		snapshot, err := repo.FindByEmail(ctx, "ana.silva@example.com")
		require.NoError(t, err)
		assert.Equal(t, id, snapshot.ID)
	})

	t.Run("error: unknown email maps to not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockCustomerWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := &CustomerRepository{queries: mockQueries, db: mockDB}

		mockQueries.EXPECT().GetCustomerByEmail(ctx, mockDB, "nobody@example.com").
			Return(sqlc.Customers{}, pgx.ErrNoRows)

		_, err := repo.FindByEmail(ctx, "nobody@example.com")
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestCustomerRepository_FindByID(t *testing.T) {
	ctx := context.Background()

	t.Run("error: unknown id maps to not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockCustomerWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := &CustomerRepository{queries: mockQueries, db: mockDB}

		id := uuid.New()
		mockQueries.EXPECT().GetCustomerByID(ctx, mockDB, id).
			Return(sqlc.Customers{}, pgx.ErrNoRows)

		_, err := repo.FindByID(ctx, id)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}
