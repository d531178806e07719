package errors

import "errors"

var (
	ErrAlreadyExists      = errors.New("already exists")
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidInput       = errors.New("invalid input")

	ErrItemNotFound      = errors.New("menu item not found")
	ErrOrderNotFound     = errors.New("order not found")
	ErrEmptyCart         = errors.New("cart is empty")
	ErrInvalidQuantity   = errors.New("invalid quantity")
	ErrInvalidAssignee   = errors.New("assignee is not delivery crew")
	ErrInvalidStatus     = errors.New("invalid order status")
	ErrForbidden         = errors.New("forbidden")
	ErrTransactionFailed = errors.New("transaction failed")
)
