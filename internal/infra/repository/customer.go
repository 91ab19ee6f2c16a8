package repository

import (
	"context"

	"tourbook/internal/domain/customer"
	"tourbook/internal/infra"
	"tourbook/internal/infra/repository/converter"
	sqlc "tourbook/internal/infra/sqlc/generated"
	"tourbook/internal/pkg/pgconv"
	"tourbook/internal/usecase/commands"

	"github.com/google/uuid"
)

type CustomerWriteQueries interface {
	CreateCustomer(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateCustomerParams) (sqlc.Customers, error)
	GetCustomerByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Customers, error)
	GetCustomerByEmail(ctx context.Context, db sqlc.DBTX, email string) (sqlc.Customers, error)
}

type CustomerRepository struct {
	queries CustomerWriteQueries
	db      sqlc.DBTX
}

func NewCustomerRepository(queries *sqlc.Queries, db sqlc.DBTX) *CustomerRepository {
	return &CustomerRepository{
		queries: queries,
		db:      db,
	}
}

func (r *CustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (*commands.CustomerSnapshot, error) {
	row, err := r.queries.GetCustomerByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("customer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find customer by ID", err)
	}
	return rowToCustomerSnapshot(row), nil
}

func (r *CustomerRepository) FindByEmail(ctx context.Context, email string) (*commands.CustomerSnapshot, error) {
	row, err := r.queries.GetCustomerByEmail(ctx, r.db, email)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("customer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find customer by email", err)
	}
	return rowToCustomerSnapshot(row), nil
}

func (r *CustomerRepository) Create(ctx context.Context, cust *customer.Customer) (*commands.CustomerSnapshot, error) {
	row, err := r.queries.CreateCustomer(ctx, r.db, converter.CustomerToCreateParams(cust))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create customer", err)
	}
	return rowToCustomerSnapshot(row), nil
}

func rowToCustomerSnapshot(row sqlc.Customers) *commands.CustomerSnapshot {
	return &commands.CustomerSnapshot{
		ID:      row.ID,
		Name:    row.Name,
		Email:   row.Email,
		Phone:   pgconv.StringPtrFromPgtype(row.Phone),
		Country: pgconv.StringPtrFromPgtype(row.Country),
	}
}
