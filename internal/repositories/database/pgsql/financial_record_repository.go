package pgsql

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/SscSPs/pos_finance_manager/internal/apperrors"
	"github.com/SscSPs/pos_finance_manager/internal/core/domain"
	portsrepo "github.com/SscSPs/pos_finance_manager/internal/core/ports/repositories"
	"github.com/SscSPs/pos_finance_manager/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const recordColumns = `record_id, record_type, category, subcategory, amount, description, reference, reference_type,
	payment_method, tags, source_account_code, destination_account_code, status, journal_entry_id,
	idempotency_key, created_by, created_at`

const defaultRecordPageSize = 50

// createdDayUTC is the calendar day of created_at on the same UTC clock
// that dates journal entries, independent of the session time zone.
const createdDayUTC = `(created_at AT TIME ZONE 'UTC')::date`

type PgxFinancialRecordRepository struct {
	BaseRepository
}

func newPgxFinancialRecordRepository(pool *pgxpool.Pool) *PgxFinancialRecordRepository {
	return &PgxFinancialRecordRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.FinancialRecordRepositoryFacade = (*PgxFinancialRecordRepository)(nil)

func scanRecord(row pgx.Row) (domain.FinancialRecord, error) {
	var rec domain.FinancialRecord
	err := row.Scan(
		&rec.RecordID,
		&rec.Type,
		&rec.Category,
		&rec.Subcategory,
		&rec.Amount,
		&rec.Description,
		&rec.Reference,
		&rec.ReferenceType,
		&rec.PaymentMethod,
		&rec.Tags,
		&rec.SourceAccountCode,
		&rec.DestinationAccountCode,
		&rec.Status,
		&rec.JournalEntryID,
		&rec.IdempotencyKey,
		&rec.CreatedBy,
		&rec.CreatedAt,
	)
	return rec, err
}

func collectRecords(rows pgx.Rows) ([]domain.FinancialRecord, error) {
	defer rows.Close()
	records := make([]domain.FinancialRecord, 0)
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan financial record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating financial records: %w", err)
	}
	return records, nil
}

// InsertRecord relies on the unique idempotency_key column: a conflicting
// insert affects no rows and reports inserted=false.
func (r *PgxFinancialRecordRepository) InsertRecord(ctx context.Context, rec domain.FinancialRecord) (bool, error) {
	tags := rec.Tags
	if tags == nil {
		tags = []string{}
	}
	query := `
		INSERT INTO financial_records (` + recordColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		ON CONFLICT (idempotency_key) DO NOTHING;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		rec.RecordID,
		rec.Type,
		rec.Category,
		rec.Subcategory,
		rec.Amount,
		rec.Description,
		rec.Reference,
		rec.ReferenceType,
		rec.PaymentMethod,
		tags,
		rec.SourceAccountCode,
		rec.DestinationAccountCode,
		rec.Status,
		rec.JournalEntryID,
		rec.IdempotencyKey,
		rec.CreatedBy,
		rec.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return false, fmt.Errorf("%w: financial record %s", apperrors.ErrDuplicate, rec.RecordID)
		}
		return false, fmt.Errorf("failed to insert financial record %s: %w", rec.RecordID, err)
	}
	return cmdTag.RowsAffected() == 1, nil
}

func (r *PgxFinancialRecordRepository) FindRecordByID(ctx context.Context, recordID string) (*domain.FinancialRecord, error) {
	query := `SELECT ` + recordColumns + ` FROM financial_records WHERE record_id = $1;`
	rec, err := scanRecord(r.Pool.QueryRow(ctx, query, recordID))
	if err != nil {
		return nil, notFoundOr(err, "failed to find financial record %s", recordID)
	}
	return &rec, nil
}

func (r *PgxFinancialRecordRepository) FindRecordByIdempotencyKey(ctx context.Context, key string) (*domain.FinancialRecord, error) {
	query := `SELECT ` + recordColumns + ` FROM financial_records WHERE idempotency_key = $1;`
	rec, err := scanRecord(r.Pool.QueryRow(ctx, query, key))
	if err != nil {
		return nil, notFoundOr(err, "failed to find financial record by key %s", key)
	}
	return &rec, nil
}

// LinkJournalEntry only links unlinked records so a repost cannot double-book.
func (r *PgxFinancialRecordRepository) LinkJournalEntry(ctx context.Context, recordID, journalEntryID string) error {
	query := `
		UPDATE financial_records
		SET journal_entry_id = $2
		WHERE record_id = $1 AND journal_entry_id IS NULL;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, recordID, journalEntryID)
	if err != nil {
		return fmt.Errorf("failed to link record %s to journal %s: %w", recordID, journalEntryID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: record %s is missing or already linked", apperrors.ErrConflict, recordID)
	}
	return nil
}

// ListRecords pages newest first using a (created_at, record_id) cursor.
func (r *PgxFinancialRecordRepository) ListRecords(ctx context.Context, filter domain.TransactionFilter) ([]domain.FinancialRecord, *string, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = defaultRecordPageSize
	}

	var (
		conds []string
		args  []any
	)
	add := func(cond string, arg any) {
		args = append(args, arg)
		conds = append(conds, strings.ReplaceAll(cond, "?", "$"+strconv.Itoa(len(args))))
	}

	if filter.Type != nil {
		add("record_type = ?", *filter.Type)
	}
	if filter.Category != nil {
		add("category = ?", *filter.Category)
	}
	if filter.ReferenceType != nil {
		add("reference_type = ?", *filter.ReferenceType)
	}
	if filter.StartDate != nil {
		add(createdDayUTC+" >= ?::date", *filter.StartDate)
	}
	if filter.EndDate != nil {
		add(createdDayUTC+" <= ?::date", *filter.EndDate)
	}
	if filter.UnlinkedOnly {
		conds = append(conds, "journal_entry_id IS NULL")
	}
	if filter.NextToken != nil && *filter.NextToken != "" {
		cursorTime, cursorID, err := pagination.DecodeCursor(*filter.NextToken)
		if err != nil {
			return nil, nil, apperrors.NewValidationError("invalid nextToken: %v", err)
		}
		args = append(args, cursorTime, cursorID)
		conds = append(conds, fmt.Sprintf("(created_at, record_id) < ($%d, $%d)", len(args)-1, len(args)))
	}

	query := `SELECT ` + recordColumns + ` FROM financial_records`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	args = append(args, limit+1)
	query += fmt.Sprintf(" ORDER BY created_at DESC, record_id DESC LIMIT $%d;", len(args))

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list financial records: %w", err)
	}
	records, err := collectRecords(rows)
	if err != nil {
		return nil, nil, err
	}

	var nextToken *string
	if len(records) > limit {
		records = records[:limit]
		last := records[len(records)-1]
		token := pagination.EncodeCursor(last.CreatedAt, last.RecordID)
		nextToken = &token
	}
	return records, nextToken, nil
}

// ListConfirmedRecords feeds the summary report; dates compare on the
// UTC calendar day of created_at, both bounds inclusive.
func (r *PgxFinancialRecordRepository) ListConfirmedRecords(ctx context.Context, startDate, endDate *time.Time) ([]domain.FinancialRecord, error) {
	query := `
		SELECT ` + recordColumns + `
		FROM financial_records
		WHERE status = $1
		  AND ($2::date IS NULL OR ` + createdDayUTC + ` >= $2::date)
		  AND ($3::date IS NULL OR ` + createdDayUTC + ` <= $3::date)
		ORDER BY created_at;
	`
	rows, err := r.Pool.Query(ctx, query, domain.RecordConfirmed, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to list confirmed financial records: %w", err)
	}
	return collectRecords(rows)
}
