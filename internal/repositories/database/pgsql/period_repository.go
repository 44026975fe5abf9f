package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/andinosoft/contabilidad-api/internal/apperrors"
	"github.com/andinosoft/contabilidad-api/internal/core/domain"
	portsrepo "github.com/andinosoft/contabilidad-api/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxPeriodRepository persists accounting periods.
type PgxPeriodRepository struct {
	BaseRepository
}

func newPgxPeriodRepository(pool *pgxpool.Pool) portsrepo.PeriodRepositoryFacade {
	return &PgxPeriodRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PeriodRepositoryFacade = (*PgxPeriodRepository)(nil)

const periodColumns = `
	id, empresa_id, anio, mes, nombre, fecha_inicio, fecha_fin, estado,
	cerrado_por, fecha_cierre, reabierto_por, fecha_reapertura, motivo_reapertura,
	bloqueado_por, fecha_bloqueo, motivo_bloqueo,
	created_at, created_by, last_updated_at, last_updated_by`

func scanPeriod(row pgx.Row) (*domain.AccountingPeriod, error) {
	var p domain.AccountingPeriod
	err := row.Scan(
		&p.ID, &p.CompanyID, &p.Year, &p.Month, &p.Name, &p.StartDate, &p.EndDate, &p.Status,
		&p.ClosedBy, &p.ClosedAt, &p.ReopenedBy, &p.ReopenedAt, &p.ReopenReason,
		&p.BlockedBy, &p.BlockedAt, &p.BlockReason,
		&p.CreatedAt, &p.CreatedBy, &p.LastUpdatedAt, &p.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan accounting period: %w", err)
	}
	return &p, nil
}

func (r *PgxPeriodRepository) SavePeriod(ctx context.Context, period domain.AccountingPeriod) (*domain.AccountingPeriod, error) {
	err := r.Pool.QueryRow(ctx, `
		INSERT INTO periodo_contable (
			empresa_id, anio, mes, nombre, fecha_inicio, fecha_fin, estado,
			created_at, created_by, last_updated_at, last_updated_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`,
		period.CompanyID, period.Year, period.Month, period.Name,
		period.StartDate, period.EndDate, period.Status,
		period.CreatedAt, period.CreatedBy, period.LastUpdatedAt, period.LastUpdatedBy,
	).Scan(&period.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.ErrDuplicate
		}
		return nil, apperrors.NewAppError(500, "failed to insert accounting period", err)
	}
	return &period, nil
}

func (r *PgxPeriodRepository) UpdatePeriod(ctx context.Context, period domain.AccountingPeriod) error {
	tag, err := r.Pool.Exec(ctx, `
		UPDATE periodo_contable SET
			anio = $1, mes = $2, nombre = $3, fecha_inicio = $4, fecha_fin = $5,
			estado = $6,
			cerrado_por = $7, fecha_cierre = $8,
			reabierto_por = $9, fecha_reapertura = $10, motivo_reapertura = $11,
			bloqueado_por = $12, fecha_bloqueo = $13, motivo_bloqueo = $14,
			last_updated_at = $15, last_updated_by = $16
		WHERE id = $17`,
		period.Year, period.Month, period.Name, period.StartDate, period.EndDate,
		period.Status,
		period.ClosedBy, period.ClosedAt,
		period.ReopenedBy, period.ReopenedAt, period.ReopenReason,
		period.BlockedBy, period.BlockedAt, period.BlockReason,
		period.LastUpdatedAt, period.LastUpdatedBy, period.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return apperrors.NewAppError(500, "failed to update accounting period", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxPeriodRepository) FindPeriodByID(ctx context.Context, periodID int64) (*domain.AccountingPeriod, error) {
	return scanPeriod(r.Pool.QueryRow(ctx,
		`SELECT `+periodColumns+` FROM periodo_contable WHERE id = $1`, periodID))
}

func (r *PgxPeriodRepository) FindPeriodByMonth(ctx context.Context, companyID int64, year int, month int) (*domain.AccountingPeriod, error) {
	return scanPeriod(r.Pool.QueryRow(ctx,
		`SELECT `+periodColumns+` FROM periodo_contable
		WHERE empresa_id = $1 AND anio = $2 AND mes = $3`,
		companyID, year, month))
}

func (r *PgxPeriodRepository) ListPeriodsByCompany(ctx context.Context, companyID int64) ([]domain.AccountingPeriod, error) {
	rows, err := r.Pool.Query(ctx,
		`SELECT `+periodColumns+` FROM periodo_contable
		WHERE empresa_id = $1
		ORDER BY anio DESC, mes DESC`, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounting periods: %w", err)
	}
	defer rows.Close()

	var periods []domain.AccountingPeriod
	for rows.Next() {
		p, err := scanPeriod(rows)
		if err != nil {
			return nil, err
		}
		periods = append(periods, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read accounting periods: %w", err)
	}
	return periods, nil
}
