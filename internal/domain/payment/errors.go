package payment

import "errors"

// Payment domain errors
var (
	ErrPaymentNotFound = errors.New("payment record not found")
)
