package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/pos_finance_manager/internal/core/domain"
	portsrepo "github.com/SscSPs/pos_finance_manager/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const journalColumns = `journal_entry_id, journal_number, entry_date, description, reference, reference_type,
	total_amount, status, created_by, created_at`

type PgxJournalRepository struct {
	BaseRepository
}

// newPgxJournalRepository creates a new repository for journal entries and their lines.
func newPgxJournalRepository(pool *pgxpool.Pool) *PgxJournalRepository {
	return &PgxJournalRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.JournalRepositoryWithTx = (*PgxJournalRepository)(nil)

func scanJournal(row pgx.Row) (domain.JournalEntry, error) {
	var je domain.JournalEntry
	err := row.Scan(
		&je.JournalEntryID,
		&je.JournalNumber,
		&je.Date,
		&je.Description,
		&je.Reference,
		&je.ReferenceType,
		&je.TotalAmount,
		&je.Status,
		&je.CreatedBy,
		&je.CreatedAt,
	)
	return je, err
}

// InsertJournalEntryInTx writes the header then batches the lines.
func (r *PgxJournalRepository) InsertJournalEntryInTx(ctx context.Context, tx pgx.Tx, entry domain.JournalEntry, lines []domain.JournalEntryLine) error {
	headerQuery := `
		INSERT INTO journal_entries (` + journalColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := tx.Exec(ctx, headerQuery,
		entry.JournalEntryID,
		entry.JournalNumber,
		entry.Date,
		entry.Description,
		entry.Reference,
		entry.ReferenceType,
		entry.TotalAmount,
		entry.Status,
		entry.CreatedBy,
		entry.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("journal number %s already used: %w", entry.JournalNumber, err)
		}
		return fmt.Errorf("failed to insert journal entry %s: %w", entry.JournalEntryID, err)
	}

	lineQuery := `
		INSERT INTO journal_entry_lines (line_id, journal_entry_id, account_id, description, debit_amount, credit_amount, line_order)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	batch := &pgx.Batch{}
	for i, line := range lines {
		batch.Queue(lineQuery, line.LineID, entry.JournalEntryID, line.AccountID, line.Description, line.DebitAmount, line.CreditAmount, i)
	}

	br := tx.SendBatch(ctx, batch)
	defer br.Close()
	for _, line := range lines {
		if _, err := br.Exec(); err != nil {
			return fmt.Errorf("failed to insert journal line %s: %w", line.LineID, err)
		}
	}
	return br.Close()
}

// FindJournalEntryByID loads the header and its lines in entry order.
func (r *PgxJournalRepository) FindJournalEntryByID(ctx context.Context, journalEntryID string) (*domain.JournalEntry, error) {
	query := `SELECT ` + journalColumns + ` FROM journal_entries WHERE journal_entry_id = $1;`
	je, err := scanJournal(r.Pool.QueryRow(ctx, query, journalEntryID))
	if err != nil {
		return nil, notFoundOr(err, "failed to find journal entry %s", journalEntryID)
	}

	linesQuery := `
		SELECT l.line_id, l.journal_entry_id, l.account_id, a.code, l.description, l.debit_amount, l.credit_amount
		FROM journal_entry_lines l
		JOIN accounts a ON a.account_id = l.account_id
		WHERE l.journal_entry_id = $1
		ORDER BY l.line_order;
	`
	rows, err := r.Pool.Query(ctx, linesQuery, journalEntryID)
	if err != nil {
		return nil, fmt.Errorf("failed to query lines of journal entry %s: %w", journalEntryID, err)
	}
	defer rows.Close()

	je.Lines = make([]domain.JournalEntryLine, 0, 2)
	for rows.Next() {
		var line domain.JournalEntryLine
		if err := rows.Scan(&line.LineID, &line.JournalEntryID, &line.AccountID, &line.AccountCode, &line.Description, &line.DebitAmount, &line.CreditAmount); err != nil {
			return nil, fmt.Errorf("failed to scan journal line: %w", err)
		}
		je.Lines = append(je.Lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating journal lines: %w", err)
	}
	return &je, nil
}

// ListJournalEntriesByReference returns headers for one business reference, oldest first.
func (r *PgxJournalRepository) ListJournalEntriesByReference(ctx context.Context, referenceType, reference string) ([]domain.JournalEntry, error) {
	query := `
		SELECT ` + journalColumns + `
		FROM journal_entries
		WHERE reference_type = $1 AND reference = $2
		ORDER BY entry_date, created_at;
	`
	rows, err := r.Pool.Query(ctx, query, referenceType, reference)
	if err != nil {
		return nil, fmt.Errorf("failed to list journal entries for %s/%s: %w", referenceType, reference, err)
	}
	defer rows.Close()

	entries := make([]domain.JournalEntry, 0)
	for rows.Next() {
		je, err := scanJournal(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan journal entry: %w", err)
		}
		entries = append(entries, je)
	}
	return entries, rows.Err()
}
