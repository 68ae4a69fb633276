package entity

import "errors"

var (
	ErrProductIDRequired   = errors.New("product_id is required")
	ErrDescriptionRequired = errors.New("description is required")
	ErrInvalidPrice        = errors.New("unit_price must be greater than or equal to 0")
	ErrInvalidStock        = errors.New("available_stock must be greater than or equal to 0")
	ErrInvalidQuantity     = errors.New("quantity must be greater than 0")
	ErrInsufficientStock   = errors.New("quantity exceeds available stock")
	ErrDuplicateProduct    = errors.New("product is already in the cart")
	ErrItemIndexOutOfRange = errors.New("item index out of range")

	// Descuentos
	ErrNegativeDiscount        = errors.New("discount value must be greater than or equal to 0")
	ErrPercentageOverLimit     = errors.New("percentage discount must not exceed 100")
	ErrDiscountExceedsSubtotal = errors.New("amount discount must not exceed the subtotal")
	ErrInvalidDiscountKind     = errors.New("discount kind must be percentage or amount")
)
