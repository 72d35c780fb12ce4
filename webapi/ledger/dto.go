package ledger

import (
	domain "github.com/awesomegic/bankledger/pkg/domain/ledger"
)

// RecordTransactionRequest is the body for POST /transactions. Dates use the
// canonical YYYYMMDD form; amounts are decimal strings.
type RecordTransactionRequest struct {
	Account string `json:"account" validate:"required"`
	Date    string `json:"date" validate:"required,len=8,numeric"`
	Type    string `json:"type" validate:"required,oneof=D W d w"`
	Amount  string `json:"amount" validate:"required"`
}

// DefineRuleRequest is the body for POST /interest-rules.
type DefineRuleRequest struct {
	Date   string `json:"date" validate:"required,len=8,numeric"`
	RuleID string `json:"rule_id" validate:"required"`
	Rate   string `json:"rate" validate:"required"`
}

// TransactionDTO is the API representation of one transaction record.
type TransactionDTO struct {
	ID      string `json:"id"`
	Date    string `json:"date"`
	Account string `json:"account"`
	Type    string `json:"type"`
	Amount  string `json:"amount"`
}

// AccountDTO is the API representation of an account snapshot.
type AccountDTO struct {
	Account      string           `json:"account"`
	Balance      string           `json:"balance"`
	Transactions []TransactionDTO `json:"transactions"`
}

// RuleDTO is the API representation of one interest rule.
type RuleDTO struct {
	Date   string `json:"date"`
	RuleID string `json:"rule_id"`
	Rate   string `json:"rate"`
}

// StatementRowDTO is one line of a monthly statement.
type StatementRowDTO struct {
	Date    string `json:"date"`
	ID      string `json:"id,omitempty"`
	Type    string `json:"type"`
	Amount  string `json:"amount"`
	Balance string `json:"balance"`
}

func toTransactionDTO(tx domain.TransactionRecord) TransactionDTO {
	return TransactionDTO{
		ID:      tx.ID,
		Date:    domain.FormatDate(tx.Date),
		Account: tx.Account,
		Type:    string(tx.Kind),
		Amount:  tx.Amount.StringFixed(2),
	}
}

func toAccountDTO(acct *domain.Account) AccountDTO {
	dto := AccountDTO{
		Account:      acct.Number,
		Balance:      acct.Balance.StringFixed(2),
		Transactions: make([]TransactionDTO, 0, len(acct.Transactions)),
	}
	for _, tx := range acct.Transactions {
		dto.Transactions = append(dto.Transactions, toTransactionDTO(tx))
	}
	return dto
}

func toRuleDTOs(rules []domain.InterestRule) []RuleDTO {
	out := make([]RuleDTO, 0, len(rules))
	for _, r := range rules {
		out = append(out, RuleDTO{
			Date:   domain.FormatDate(r.EffectiveDate),
			RuleID: r.ID,
			Rate:   r.Rate.StringFixed(2),
		})
	}
	return out
}

func toStatementDTOs(rows []domain.StatementRow) []StatementRowDTO {
	out := make([]StatementRowDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, StatementRowDTO{
			Date:    domain.FormatDate(row.Date),
			ID:      row.ID,
			Type:    string(row.Kind),
			Amount:  row.Amount.StringFixed(2),
			Balance: row.Balance.StringFixed(2),
		})
	}
	return out
}
