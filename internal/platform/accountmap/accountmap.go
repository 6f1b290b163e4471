// Package accountmap resolves business categories and payment methods to
// chart-of-accounts codes for the transaction recorder.
package accountmap

import (
	"fmt"
	"os"
	"strings"

	"github.com/SscSPs/pos_finance_manager/internal/apperrors"
	"github.com/SscSPs/pos_finance_manager/internal/core/domain"
	"gopkg.in/yaml.v3"
)

// Config is the on-disk shape of the mapping file.
type Config struct {
	PaymentMethods        map[string]string `yaml:"payment_methods"`
	DefaultPaymentAccount string            `yaml:"default_payment_account"`
	Income                map[string]string `yaml:"income"`
	Expense               map[string]string `yaml:"expense"`
}

// DefaultConfig matches the seeded chart of accounts.
func DefaultConfig() Config {
	return Config{
		PaymentMethods: map[string]string{
			"cash":      "1111",
			"bank":      "1112",
			"inventory": "1131",
		},
		DefaultPaymentAccount: "1112",
		Income: map[string]string{
			"Service Revenue": "4120",
			"Sales Revenue":   "4110",
		},
		Expense: map[string]string{
			"Payroll":            "6110",
			"Cost of Goods Sold": "5110",
			"Inventory Purchase": "1131",
			"Operational":        "6190",
			"Utilities":          "6190",
			"Rent":               "6190",
			"Other Expense":      "6190",
		},
	}
}

// Mapper answers which two accounts a financial record books against.
type Mapper struct {
	payment        map[string]string
	defaultPayment string
	income         map[string]string
	expense        map[string]string
}

// Posting is the debit/credit account pair for a two-line journal.
type Posting struct {
	DebitAccountCode  string
	CreditAccountCode string
}

// New builds a Mapper, rejecting configs that would leave records unmappable.
func New(cfg Config) (*Mapper, error) {
	if cfg.DefaultPaymentAccount == "" {
		return nil, fmt.Errorf("account mapping: default_payment_account is required")
	}
	m := &Mapper{
		payment:        normalizeKeys(cfg.PaymentMethods),
		defaultPayment: cfg.DefaultPaymentAccount,
		income:         normalizeKeys(cfg.Income),
		expense:        normalizeKeys(cfg.Expense),
	}
	return m, nil
}

// Load reads a YAML mapping file. An empty path yields the defaults; keys
// present in the file extend or override them.
func Load(path string) (*Mapper, error) {
	cfg := DefaultConfig()
	if path == "" {
		return New(cfg)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read account mapping file: %w", err)
	}

	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("failed to parse account mapping YAML: %w", err)
	}

	merge(cfg.PaymentMethods, fileCfg.PaymentMethods)
	merge(cfg.Income, fileCfg.Income)
	merge(cfg.Expense, fileCfg.Expense)
	if fileCfg.DefaultPaymentAccount != "" {
		cfg.DefaultPaymentAccount = fileCfg.DefaultPaymentAccount
	}
	return New(cfg)
}

// PaymentAccount returns the cash-side account for a payment method.
// Unknown or missing methods settle through the default (bank) account.
func (m *Mapper) PaymentAccount(paymentMethod *string) string {
	if paymentMethod != nil {
		if code, ok := m.payment[normalize(*paymentMethod)]; ok {
			return code
		}
	}
	return m.defaultPayment
}

// Resolve returns the posting for a record, or a *apperrors.ValidationError
// when the category or transfer accounts cannot be determined.
func (m *Mapper) Resolve(recordType domain.RecordType, category string, paymentMethod, sourceCode, destinationCode *string) (Posting, error) {
	switch recordType {
	case domain.RecordIncome:
		revenue, ok := m.income[normalize(category)]
		if !ok {
			return Posting{}, apperrors.NewValidationError("no revenue account mapped for income category %q", category)
		}
		return Posting{DebitAccountCode: m.PaymentAccount(paymentMethod), CreditAccountCode: revenue}, nil

	case domain.RecordExpense:
		expense, ok := m.expense[normalize(category)]
		if !ok {
			return Posting{}, apperrors.NewValidationError("no expense account mapped for expense category %q", category)
		}
		return Posting{DebitAccountCode: expense, CreditAccountCode: m.PaymentAccount(paymentMethod)}, nil

	case domain.RecordTransfer:
		if sourceCode == nil || *sourceCode == "" || destinationCode == nil || *destinationCode == "" {
			return Posting{}, apperrors.NewValidationError("transfer requires sourceAccountCode and destinationAccountCode")
		}
		if *sourceCode == *destinationCode {
			return Posting{}, apperrors.NewValidationError("transfer source and destination must differ")
		}
		return Posting{DebitAccountCode: *destinationCode, CreditAccountCode: *sourceCode}, nil
	}
	return Posting{}, apperrors.NewValidationError("unsupported record type %q", recordType)
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func normalizeKeys(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[normalize(k)] = v
	}
	return out
}

// merge copies src into dst; a src key replaces any dst key that differs only in case.
func merge(dst, src map[string]string) {
	for k, v := range src {
		for existing := range dst {
			if normalize(existing) == normalize(k) {
				delete(dst, existing)
			}
		}
		dst[k] = v
	}
}
