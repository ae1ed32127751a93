package domain

import "errors"

// Domain errors
var (
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrBudgetNotFound      = errors.New("budget not found")
	ErrInvalidCategory     = errors.New("invalid category")
	ErrDescriptionRequired = errors.New("description is required")
	ErrDateRequired        = errors.New("date is required")
	ErrInvalidMonth        = errors.New("month must be between 1 and 12")
	ErrInvalidYear         = errors.New("invalid year")
)
