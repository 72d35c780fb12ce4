package common

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/awesomegic/bankledger/pkg/domain/ledger"
)

// ErrorToStatusCode maps domain errors to HTTP status codes.
func ErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, ledger.ErrAccountNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, ledger.ErrInsufficientFunds):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, ledger.ErrFirstTransactionMustBeDeposit):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, ledger.ErrRateOutOfRange):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, ledger.ErrAmountMustBePositive),
		errors.Is(err, ledger.ErrEmptyAccountNumber),
		errors.Is(err, ledger.ErrEmptyRuleID),
		errors.Is(err, ledger.ErrInvalidKind):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}
