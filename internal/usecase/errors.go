package usecase

import (
	"errors"
	"fmt"
)

var ErrOriginNotAllowed = errors.New("origin_url is not on the checkout allow-list")
var ErrUnsupportedProvider = errors.New("unsupported payment provider")

type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func IsDomainError(err error) bool {
	var de *DomainError
	return errors.As(err, &de)
}

// PaymentProviderError wraps an upstream payment-provider failure. No partial
// ledger state exists when one of these is returned from StartCheckout.
type PaymentProviderError struct {
	Provider string
	Message  string
	Err      error
}

func (e *PaymentProviderError) Error() string {
	return fmt.Sprintf("%s: %s", e.Provider, e.Message)
}

func (e *PaymentProviderError) Unwrap() error {
	return e.Err
}

func IsProviderError(err error) bool {
	var pe *PaymentProviderError
	return errors.As(err, &pe)
}
