package entity

import "errors"

var (
	ErrTicketNotFound    = errors.New("ticket not found")
	ErrTicketNotPending  = errors.New("ticket is not in pendiente state")
	ErrEmptyCart         = errors.New("cart must have at least one item")
	ErrNonPositiveTotal  = errors.New("total must be greater than 0")
	ErrPaymentRequired   = errors.New("payment method is required")
	ErrConfirmRequired   = errors.New("confirmation is required for this action")
	ErrTicketStoreDown   = errors.New("could not reach the ticket store")
)
