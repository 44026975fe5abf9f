package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/andinosoft/contabilidad-api/internal/apperrors"
	"github.com/andinosoft/contabilidad-api/internal/core/domain"
	portsrepo "github.com/andinosoft/contabilidad-api/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxCompanyRepository reads the company catalog.
type PgxCompanyRepository struct {
	BaseRepository
}

func newPgxCompanyRepository(pool *pgxpool.Pool) portsrepo.CompanyReader {
	return &PgxCompanyRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CompanyReader = (*PgxCompanyRepository)(nil)

func scanCompany(row pgx.Row) (*domain.Company, error) {
	var c domain.Company
	err := row.Scan(&c.ID, &c.RUC, &c.Name, &c.IsActive,
		&c.CreatedAt, &c.CreatedBy, &c.LastUpdatedAt, &c.LastUpdatedBy)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan company: %w", err)
	}
	return &c, nil
}

func (r *PgxCompanyRepository) FindCompanyByID(ctx context.Context, companyID int64) (*domain.Company, error) {
	return scanCompany(r.Pool.QueryRow(ctx, `
		SELECT id, ruc, razon_social, activo,
			created_at, created_by, last_updated_at, last_updated_by
		FROM empresa WHERE id = $1`, companyID))
}

func (r *PgxCompanyRepository) ListCompanies(ctx context.Context) ([]domain.Company, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT id, ruc, razon_social, activo,
			created_at, created_by, last_updated_at, last_updated_by
		FROM empresa ORDER BY razon_social`)
	if err != nil {
		return nil, fmt.Errorf("failed to query companies: %w", err)
	}
	defer rows.Close()

	var companies []domain.Company
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, err
		}
		companies = append(companies, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read companies: %w", err)
	}
	return companies, nil
}

// PgxCurrencyRepository reads the currency catalog.
type PgxCurrencyRepository struct {
	BaseRepository
}

func newPgxCurrencyRepository(pool *pgxpool.Pool) portsrepo.CurrencyReader {
	return &PgxCurrencyRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CurrencyReader = (*PgxCurrencyRepository)(nil)

func scanCurrency(row pgx.Row) (*domain.Currency, error) {
	var c domain.Currency
	err := row.Scan(&c.Code, &c.Name, &c.Symbol, &c.Precision,
		&c.CreatedAt, &c.CreatedBy, &c.LastUpdatedAt, &c.LastUpdatedBy)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan currency: %w", err)
	}
	return &c, nil
}

func (r *PgxCurrencyRepository) FindCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error) {
	return scanCurrency(r.Pool.QueryRow(ctx, `
		SELECT codigo, nombre, simbolo, precision,
			created_at, created_by, last_updated_at, last_updated_by
		FROM moneda WHERE codigo = $1`, code))
}

func (r *PgxCurrencyRepository) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT codigo, nombre, simbolo, precision,
			created_at, created_by, last_updated_at, last_updated_by
		FROM moneda ORDER BY codigo`)
	if err != nil {
		return nil, fmt.Errorf("failed to query currencies: %w", err)
	}
	defer rows.Close()

	var currencies []domain.Currency
	for rows.Next() {
		c, err := scanCurrency(rows)
		if err != nil {
			return nil, err
		}
		currencies = append(currencies, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read currencies: %w", err)
	}
	return currencies, nil
}

// PgxExchangeRateRepository reads published exchange rates.
type PgxExchangeRateRepository struct {
	BaseRepository
}

func newPgxExchangeRateRepository(pool *pgxpool.Pool) portsrepo.ExchangeRateReader {
	return &PgxExchangeRateRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ExchangeRateReader = (*PgxExchangeRateRepository)(nil)

func (r *PgxExchangeRateRepository) FindRate(ctx context.Context, currencyCode string, date time.Time) (*domain.ExchangeRate, error) {
	var e domain.ExchangeRate
	err := r.Pool.QueryRow(ctx, `
		SELECT id, moneda, fecha, compra, venta,
			created_at, created_by, last_updated_at, last_updated_by
		FROM tipo_cambio WHERE moneda = $1 AND fecha = $2`,
		currencyCode, date,
	).Scan(&e.ID, &e.CurrencyCode, &e.RateDate, &e.BuyRate, &e.SellRate,
		&e.CreatedAt, &e.CreatedBy, &e.LastUpdatedAt, &e.LastUpdatedBy)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan exchange rate: %w", err)
	}
	return &e, nil
}
