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

// PgxAccountRepository reads the chart of accounts. The chart is maintained
// by a separate ERP module, so this repository is read-only.
type PgxAccountRepository struct {
	BaseRepository
}

func newPgxAccountRepository(pool *pgxpool.Pool) portsrepo.AccountRepositoryFacade {
	return &PgxAccountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

const accountColumns = `
	id, empresa_id, codigo, nombre, nivel, padre_id, naturaleza, es_imputable,
	requiere_centro_costo, requiere_entidad, requiere_proyecto, activo,
	created_at, created_by, last_updated_at, last_updated_by`

func scanAccount(row pgx.Row) (*domain.ChartAccount, error) {
	var a domain.ChartAccount
	err := row.Scan(
		&a.ID, &a.CompanyID, &a.Code, &a.Name, &a.Level, &a.ParentID, &a.Nature,
		&a.IsPostable, &a.RequiresCostCenter, &a.RequiresEntity, &a.RequiresProject, &a.IsActive,
		&a.CreatedAt, &a.CreatedBy, &a.LastUpdatedAt, &a.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan chart account: %w", err)
	}
	return &a, nil
}

func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID int64) (*domain.ChartAccount, error) {
	return scanAccount(r.Pool.QueryRow(ctx,
		`SELECT `+accountColumns+` FROM plan_cuentas WHERE id = $1`, accountID))
}

// FindAccountsByIDs returns the accounts found keyed by ID. Missing IDs are
// simply absent from the map; callers decide whether that is an error.
func (r *PgxAccountRepository) FindAccountsByIDs(ctx context.Context, accountIDs []int64) (map[int64]domain.ChartAccount, error) {
	accounts := make(map[int64]domain.ChartAccount, len(accountIDs))
	if len(accountIDs) == 0 {
		return accounts, nil
	}

	rows, err := r.Pool.Query(ctx,
		`SELECT `+accountColumns+` FROM plan_cuentas WHERE id = ANY($1)`, accountIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query chart accounts: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		accounts[a.ID] = *a
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read chart accounts: %w", err)
	}
	return accounts, nil
}

func (r *PgxAccountRepository) ListAccountsByCompany(ctx context.Context, companyID int64) ([]domain.ChartAccount, error) {
	rows, err := r.Pool.Query(ctx,
		`SELECT `+accountColumns+` FROM plan_cuentas
		WHERE empresa_id = $1
		ORDER BY codigo`, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query chart accounts: %w", err)
	}
	defer rows.Close()

	var accounts []domain.ChartAccount
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read chart accounts: %w", err)
	}
	return accounts, nil
}
