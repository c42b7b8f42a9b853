package commands

import (
	"ordering/internal/pkg/errs"
)

// Request errors reported back to the client verbatim.
var (
	ErrCustomerNotFound     = errs.NewBusinessRuleError("Customer not found")
	ErrEmailAlreadyUsed     = errs.NewBusinessRuleError("This email is already in use")
	ErrProductAlreadyExists = errs.NewBusinessRuleError("Product already exists")
)
