package pgsql

import (
	"context"
	"fmt"

	"github.com/andinosoft/contabilidad-api/internal/core/domain"
	portsrepo "github.com/andinosoft/contabilidad-api/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxReportingRepository runs aggregate queries backing accounting reports.
type PgxReportingRepository struct {
	BaseRepository
}

func newPgxReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingReader {
	return &PgxReportingRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ReportingReader = (*PgxReportingRepository)(nil)

// TrialBalance sums debits and credits per account over the period's
// APPROVED entries. Pending and annulled entries never reach the report.
func (r *PgxReportingRepository) TrialBalance(ctx context.Context, periodID int64) ([]domain.TrialBalanceRow, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT d.cuenta_id, d.codigo_cuenta, d.nombre_cuenta,
			COALESCE(SUM(d.debe), 0), COALESCE(SUM(d.haber), 0)
		FROM asiento_contable_detalle d
		JOIN asiento_contable a ON a.id = d.asiento_id
		WHERE a.periodo_id = $1 AND a.estado = $2
		GROUP BY d.cuenta_id, d.codigo_cuenta, d.nombre_cuenta
		ORDER BY d.codigo_cuenta`,
		periodID, domain.EntryApproved)
	if err != nil {
		return nil, fmt.Errorf("failed to query trial balance: %w", err)
	}
	defer rows.Close()

	var result []domain.TrialBalanceRow
	for rows.Next() {
		var row domain.TrialBalanceRow
		if err := rows.Scan(&row.AccountID, &row.AccountCode, &row.AccountName,
			&row.TotalDebit, &row.TotalCredit); err != nil {
			return nil, fmt.Errorf("failed to scan trial balance row: %w", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read trial balance: %w", err)
	}
	return result, nil
}
