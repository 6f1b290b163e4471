package dto

import (
	"fmt"
	"time"

	"github.com/SscSPs/pos_finance_manager/internal/core/domain"
)

// ParseOptionalDate parses a YYYY-MM-DD string. Empty input yields nil.
func ParseOptionalDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", s, err)
	}
	return &t, nil
}
