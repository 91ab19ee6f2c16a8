package converter

import (
	"tourbook/internal/domain/customer"
	sqlc "tourbook/internal/infra/sqlc/generated"
	"tourbook/internal/pkg/pgconv"
)

func CustomerToCreateParams(c *customer.Customer) sqlc.CreateCustomerParams {
	return sqlc.CreateCustomerParams{
		Name:    c.Name(),
		Email:   c.Email().Value(),
		Phone:   pgconv.StringPtrToPgtype(c.Phone()),
		Country: pgconv.StringPtrToPgtype(c.Country()),
	}
}
