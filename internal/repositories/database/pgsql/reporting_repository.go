package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/pos_finance_manager/internal/core/domain"
	portsrepo "github.com/SscSPs/pos_finance_manager/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxReportingRepository implements the ReportingRepository interface using PostgreSQL
type PgxReportingRepository struct {
	BaseRepository
}

// newReportingRepository creates a new reporting repository
func newReportingRepository(pool *pgxpool.Pool) *PgxReportingRepository {
	return &PgxReportingRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ReportingRepository = (*PgxReportingRepository)(nil)

// GetAccountActivity replays posted lines per account. The date filter sits
// in the join so accounts without activity still come back with zeros.
func (r *PgxReportingRepository) GetAccountActivity(ctx context.Context, types []domain.AccountType, from, to *time.Time) ([]domain.AccountActivity, error) {
	typeNames := make([]string, len(types))
	for i, t := range types {
		typeNames[i] = string(t)
	}

	query := `
		SELECT
			a.account_id, a.code, a.name, a.account_type, a.subtype, a.normal_balance, a.balance, a.is_active,
			COALESCE(SUM(l.debit_amount), 0) AS debit_total,
			COALESCE(SUM(l.credit_amount), 0) AS credit_total
		FROM accounts a
		LEFT JOIN journal_entry_lines l ON l.account_id = a.account_id
			AND EXISTS (
				SELECT 1 FROM journal_entries j
				WHERE j.journal_entry_id = l.journal_entry_id
				  AND j.status = 'POSTED'
				  AND ($2::date IS NULL OR j.entry_date >= $2::date)
				  AND ($3::date IS NULL OR j.entry_date <= $3::date)
			)
		WHERE a.is_active = TRUE
		  AND a.account_type = ANY($1)
		GROUP BY a.account_id, a.code, a.name, a.account_type, a.subtype, a.normal_balance, a.balance, a.is_active
		ORDER BY a.code;
	`
	rows, err := r.Pool.Query(ctx, query, typeNames, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query account activity: %w", err)
	}
	defer rows.Close()

	activity := make([]domain.AccountActivity, 0)
	for rows.Next() {
		var a domain.AccountActivity
		if err := rows.Scan(
			&a.AccountID, &a.Code, &a.Name, &a.AccountType, &a.Subtype, &a.NormalBalance, &a.Balance, &a.IsActive,
			&a.DebitTotal, &a.CreditTotal,
		); err != nil {
			return nil, fmt.Errorf("failed to scan account activity row: %w", err)
		}
		activity = append(activity, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account activity rows: %w", err)
	}
	return activity, nil
}

// GetInventoryValuation sums stock at average cost over active products;
// negative stock is excluded rather than netted.
func (r *PgxReportingRepository) GetInventoryValuation(ctx context.Context) (domain.InventoryValuation, error) {
	query := `
		SELECT COALESCE(SUM(stock * average_cost), 0), COALESCE(SUM(stock), 0)
		FROM products
		WHERE is_active = TRUE AND stock >= 0;
	`
	var v domain.InventoryValuation
	if err := r.Pool.QueryRow(ctx, query).Scan(&v.Value, &v.Count); err != nil {
		return domain.InventoryValuation{}, fmt.Errorf("failed to compute inventory valuation: %w", err)
	}
	return v, nil
}
