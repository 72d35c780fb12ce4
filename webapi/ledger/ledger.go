// Package ledger exposes the ledger operations over HTTP.
package ledger

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	domain "github.com/awesomegic/bankledger/pkg/domain/ledger"
	ledgersvc "github.com/awesomegic/bankledger/pkg/service/ledger"
	"github.com/awesomegic/bankledger/webapi/common"
)

// Routes registers the ledger endpoints:
//
//   - POST /transactions                       : record a deposit or withdrawal.
//   - POST /interest-rules                     : define an interest rule.
//   - GET  /accounts/:number/statement         : monthly statement (period=YYYYMM);
//     posts the period's interest as part of the call.
func Routes(app *fiber.App, svc *ledgersvc.Service) {
	app.Post("/transactions", RecordTransaction(svc))
	app.Post("/interest-rules", DefineRule(svc))
	app.Get("/accounts/:number/statement", GetStatement(svc))
}

// RecordTransaction handles POST /transactions.
func RecordTransaction(svc *ledgersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[RecordTransactionRequest](c)
		if input == nil {
			return err
		}
		date, err := domain.ParseDate(input.Date)
		if err != nil {
			return common.ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid date", err.Error())
		}
		kind, err := domain.ParseKind(input.Type)
		if err != nil {
			return common.ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid transaction type", err.Error())
		}
		amount, err := decimal.NewFromString(input.Amount)
		if err != nil {
			return common.ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid amount", err.Error())
		}

		acct, err := svc.RecordTransaction(c.Context(), input.Account, date, kind, amount)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to record transaction", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Transaction recorded", toAccountDTO(acct))
	}
}

// DefineRule handles POST /interest-rules.
func DefineRule(svc *ledgersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[DefineRuleRequest](c)
		if input == nil {
			return err
		}
		date, err := domain.ParseDate(input.Date)
		if err != nil {
			return common.ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid date", err.Error())
		}
		rate, err := decimal.NewFromString(input.Rate)
		if err != nil {
			return common.ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid rate", err.Error())
		}

		rules, err := svc.DefineInterestRule(c.Context(), date, input.RuleID, rate)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to define interest rule", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Interest rule defined", toRuleDTOs(rules))
	}
}

// GetStatement handles GET /accounts/:number/statement?period=YYYYMM.
func GetStatement(svc *ledgersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		period, err := domain.ParsePeriod(c.Query("period"))
		if err != nil {
			return common.ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid period", err.Error())
		}

		rows, err := svc.Statement(c.Context(), c.Params("number"), period)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to build statement", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Statement", toStatementDTOs(rows))
	}
}
