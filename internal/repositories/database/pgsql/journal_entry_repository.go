package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/andinosoft/contabilidad-api/internal/apperrors"
	"github.com/andinosoft/contabilidad-api/internal/core/domain"
	portsrepo "github.com/andinosoft/contabilidad-api/internal/core/ports/repositories"
	"github.com/andinosoft/contabilidad-api/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxJournalEntryRepository persists asiento headers and their lines.
type PgxJournalEntryRepository struct {
	BaseRepository
}

func newPgxJournalEntryRepository(pool *pgxpool.Pool) portsrepo.JournalEntryRepositoryFacade {
	return &PgxJournalEntryRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.JournalEntryRepositoryFacade = (*PgxJournalEntryRepository)(nil)

const entryColumns = `
	id, empresa_id, periodo_id, numero_asiento, secuencia, fecha, glosa, libro,
	origen, estado, moneda, tipo_cambio, total_debe, total_haber, diferencia,
	esta_cuadrado, aprobado_por, fecha_aprobacion, fecha_anulacion,
	created_at, created_by, last_updated_at, last_updated_by`

func scanEntry(row pgx.Row) (*domain.JournalEntry, error) {
	var e domain.JournalEntry
	err := row.Scan(
		&e.ID, &e.CompanyID, &e.PeriodID, &e.EntryNumber, &e.Sequence, &e.EntryDate,
		&e.Description, &e.Book, &e.Origin, &e.Status, &e.CurrencyCode, &e.ExchangeRate,
		&e.TotalDebit, &e.TotalCredit, &e.Difference, &e.IsBalanced,
		&e.ApprovedBy, &e.ApprovedAt, &e.AnnulledAt,
		&e.CreatedAt, &e.CreatedBy, &e.LastUpdatedAt, &e.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan journal entry: %w", err)
	}
	return &e, nil
}

// insertLines batch-inserts the entry's lines within the given transaction.
func insertLines(ctx context.Context, tx pgx.Tx, entryID int64, lines []domain.JournalLine) error {
	if len(lines) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	lineQuery := `
		INSERT INTO asiento_contable_detalle (
			asiento_id, numero_linea, cuenta_id, codigo_cuenta, nombre_cuenta,
			glosa, debe, haber, moneda, tipo_cambio
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);`
	for _, line := range lines {
		batch.Queue(lineQuery,
			entryID, line.LineNumber, line.AccountID, line.AccountCode, line.AccountName,
			line.Description, line.Debit, line.Credit, line.CurrencyCode, line.ExchangeRate,
		)
	}
	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to insert entry lines: %w", err)
	}
	return nil
}

// SaveEntry inserts a new entry and its lines atomically, assigning the
// next numero_asiento for the company/book pair.
func (r *PgxJournalEntryRepository) SaveEntry(ctx context.Context, entry domain.JournalEntry) (*domain.JournalEntry, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	// Per-company/book numbering. Concurrent creates can read the same max;
	// the UNIQUE constraint on (empresa_id, libro, numero_asiento) catches the
	// loser, which surfaces as a conflict below.
	err = tx.QueryRow(ctx, `
		SELECT COALESCE(MAX(numero_asiento), 0) + 1
		FROM asiento_contable
		WHERE empresa_id = $1 AND libro = $2`,
		entry.CompanyID, entry.Book,
	).Scan(&entry.EntryNumber)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to assign entry number", err)
	}

	err = tx.QueryRow(ctx, `
		INSERT INTO asiento_contable (
			empresa_id, periodo_id, numero_asiento, secuencia, fecha, glosa, libro,
			origen, estado, moneda, tipo_cambio, total_debe, total_haber, diferencia,
			esta_cuadrado, created_at, created_by, last_updated_at, last_updated_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
		RETURNING id`,
		entry.CompanyID, entry.PeriodID, entry.EntryNumber, entry.Sequence, entry.EntryDate,
		entry.Description, entry.Book, entry.Origin, entry.Status, entry.CurrencyCode,
		entry.ExchangeRate, entry.TotalDebit, entry.TotalCredit, entry.Difference,
		entry.IsBalanced, entry.CreatedAt, entry.CreatedBy, entry.LastUpdatedAt, entry.LastUpdatedBy,
	).Scan(&entry.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: numero_asiento %d already taken for empresa %d libro %s",
				apperrors.ErrConflict, entry.EntryNumber, entry.CompanyID, entry.Book)
		}
		return nil, apperrors.NewAppError(500, "failed to insert journal entry", err)
	}

	if err := insertLines(ctx, tx, entry.ID, entry.Lines); err != nil {
		return nil, apperrors.NewAppError(500, "failed to insert journal entry lines", err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return &entry, nil
}

// UpdateEntry replaces the header fields and the full line set of an entry.
func (r *PgxJournalEntryRepository) UpdateEntry(ctx context.Context, entry domain.JournalEntry) (*domain.JournalEntry, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	tag, err := tx.Exec(ctx, `
		UPDATE asiento_contable SET
			fecha = $1, glosa = $2, moneda = $3, tipo_cambio = $4,
			total_debe = $5, total_haber = $6, diferencia = $7, esta_cuadrado = $8,
			last_updated_at = $9, last_updated_by = $10
		WHERE id = $11`,
		entry.EntryDate, entry.Description, entry.CurrencyCode, entry.ExchangeRate,
		entry.TotalDebit, entry.TotalCredit, entry.Difference, entry.IsBalanced,
		entry.LastUpdatedAt, entry.LastUpdatedBy, entry.ID,
	)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to update journal entry", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, apperrors.ErrNotFound
	}

	if _, err := tx.Exec(ctx, `DELETE FROM asiento_contable_detalle WHERE asiento_id = $1`, entry.ID); err != nil {
		return nil, apperrors.NewAppError(500, "failed to clear journal entry lines", err)
	}
	if err := insertLines(ctx, tx, entry.ID, entry.Lines); err != nil {
		return nil, apperrors.NewAppError(500, "failed to insert journal entry lines", err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return &entry, nil
}

// UpdateEntryStatus transitions the entry's status, stamping approval or
// annulment metadata depending on the target status.
func (r *PgxJournalEntryRepository) UpdateEntryStatus(ctx context.Context, entryID int64, status domain.EntryStatus, approvedBy *int64, updatedBy int64, updatedAt time.Time) error {
	var tag pgconn.CommandTag
	var err error
	switch status {
	case domain.EntryApproved:
		tag, err = r.Pool.Exec(ctx, `
			UPDATE asiento_contable SET
				estado = $1, aprobado_por = $2, fecha_aprobacion = $3,
				last_updated_at = $3, last_updated_by = $4
			WHERE id = $5`,
			status, approvedBy, updatedAt, updatedBy, entryID)
	case domain.EntryAnnulled:
		tag, err = r.Pool.Exec(ctx, `
			UPDATE asiento_contable SET
				estado = $1, fecha_anulacion = $2,
				last_updated_at = $2, last_updated_by = $3
			WHERE id = $4`,
			status, updatedAt, updatedBy, entryID)
	default:
		tag, err = r.Pool.Exec(ctx, `
			UPDATE asiento_contable SET
				estado = $1, last_updated_at = $2, last_updated_by = $3
			WHERE id = $4`,
			status, updatedAt, updatedBy, entryID)
	}
	if err != nil {
		return apperrors.NewAppError(500, "failed to update journal entry status", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteEntry hard-deletes an entry and its lines.
func (r *PgxJournalEntryRepository) DeleteEntry(ctx context.Context, entryID int64) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if _, err := tx.Exec(ctx, `DELETE FROM asiento_contable_detalle WHERE asiento_id = $1`, entryID); err != nil {
		return apperrors.NewAppError(500, "failed to delete journal entry lines", err)
	}
	tag, err := tx.Exec(ctx, `DELETE FROM asiento_contable WHERE id = $1`, entryID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete journal entry", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return r.Commit(ctx, tx)
}

// FindEntryByID retrieves an entry with its lines ordered by line number.
func (r *PgxJournalEntryRepository) FindEntryByID(ctx context.Context, entryID int64) (*domain.JournalEntry, error) {
	entry, err := scanEntry(r.Pool.QueryRow(ctx,
		`SELECT `+entryColumns+` FROM asiento_contable WHERE id = $1`, entryID))
	if err != nil {
		return nil, err
	}

	rows, err := r.Pool.Query(ctx, `
		SELECT id, numero_linea, cuenta_id, codigo_cuenta, nombre_cuenta, glosa,
			debe, haber, moneda, tipo_cambio
		FROM asiento_contable_detalle
		WHERE asiento_id = $1
		ORDER BY numero_linea`, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to query entry lines: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var l domain.JournalLine
		if err := rows.Scan(&l.ID, &l.LineNumber, &l.AccountID, &l.AccountCode, &l.AccountName,
			&l.Description, &l.Debit, &l.Credit, &l.CurrencyCode, &l.ExchangeRate); err != nil {
			return nil, fmt.Errorf("failed to scan entry line: %w", err)
		}
		entry.Lines = append(entry.Lines, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read entry lines: %w", err)
	}
	return entry, nil
}

// ListEntriesByCompany retrieves a page of entries ordered (fecha DESC, id
// DESC) using an opaque cursor. Lines are not populated in listings.
func (r *PgxJournalEntryRepository) ListEntriesByCompany(ctx context.Context, companyID int64, periodID *int64, limit int, nextToken *string) ([]domain.JournalEntry, *string, error) {
	query := `SELECT ` + entryColumns + ` FROM asiento_contable WHERE empresa_id = $1`
	args := []interface{}{companyID}

	if periodID != nil {
		args = append(args, *periodID)
		query += fmt.Sprintf(" AND periodo_id = $%d", len(args))
	}
	if nextToken != nil && *nextToken != "" {
		afterDate, afterID, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		args = append(args, afterDate, afterID)
		query += fmt.Sprintf(" AND (fecha, id) < ($%d, $%d)", len(args)-1, len(args))
	}
	// Fetch one extra row to know whether another page exists.
	args = append(args, limit+1)
	query += fmt.Sprintf(" ORDER BY fecha DESC, id DESC LIMIT $%d", len(args))

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query journal entries: %w", err)
	}
	defer rows.Close()

	entries := make([]domain.JournalEntry, 0, limit)
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, nil, err
		}
		entries = append(entries, *entry)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("failed to read journal entries: %w", err)
	}

	var token *string
	if len(entries) > limit {
		entries = entries[:limit]
		last := entries[len(entries)-1]
		t := pagination.EncodeToken(last.EntryDate, last.ID)
		token = &t
	}
	return entries, token, nil
}
