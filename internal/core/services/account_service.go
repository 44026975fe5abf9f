package services

import (
	"context"
	"fmt"

	"github.com/andinosoft/contabilidad-api/internal/core/domain"
	portsrepo "github.com/andinosoft/contabilidad-api/internal/core/ports/repositories"
	portssvc "github.com/andinosoft/contabilidad-api/internal/core/ports/services"
	"github.com/andinosoft/contabilidad-api/internal/dto"
)

// accountService exposes the plan de cuentas maintained by the ERP's
// configuration module. This service only reads it.
type accountService struct {
	accountRepo portsrepo.AccountRepositoryFacade
}

// NewAccountService creates a new chart-of-accounts service.
func NewAccountService(accountRepo portsrepo.AccountRepositoryFacade) portssvc.AccountSvcFacade {
	return &accountService{accountRepo: accountRepo}
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

func (s *accountService) GetAccountByID(ctx context.Context, accountID int64) (*domain.ChartAccount, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to find account %d: %w", accountID, err)
	}
	return account, nil
}

func (s *accountService) GetAccountsByIDs(ctx context.Context, accountIDs []int64) (map[int64]domain.ChartAccount, error) {
	accounts, err := s.accountRepo.FindAccountsByIDs(ctx, accountIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to find accounts: %w", err)
	}
	return accounts, nil
}

// ListAccounts retrieves the company's chart, optionally restricted to
// postable active accounts for line-entry dropdowns.
func (s *accountService) ListAccounts(ctx context.Context, params dto.ListAccountsParams) ([]domain.ChartAccount, error) {
	accounts, err := s.accountRepo.ListAccountsByCompany(ctx, params.EmpresaID)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	if !params.SoloImputables {
		return accounts, nil
	}
	postable := accounts[:0]
	for _, acc := range accounts {
		if acc.Selectable() {
			postable = append(postable, acc)
		}
	}
	return postable, nil
}
