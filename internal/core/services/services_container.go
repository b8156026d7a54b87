package services

import (
	portsrepo "github.com/qrasickz/vovabank_backend/internal/core/ports/repositories"
	portssvc "github.com/qrasickz/vovabank_backend/internal/core/ports/services"
	"github.com/qrasickz/vovabank_backend/internal/platform/config"
)

// NewServiceContainer wires every service over the shared repository
// provider. The casino and the job loop never touch balances directly;
// both settle through the transaction engine.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	userSvc := NewUserService(repos.UserRepo, cfg.SignupBonus, cfg.AdminStartingBalance)
	engine := NewTransactionService(repos.UserRepo, repos.CardRepo, repos.LedgerRepo)

	return &portssvc.ServiceContainer{
		User:        userSvc,
		Card:        NewCardService(repos.CardRepo, repos.UserRepo),
		Ledger:      NewLedgerService(repos.LedgerRepo),
		Transaction: engine,
		Casino:      NewCasinoService(engine),
		Job:         NewJobService(userSvc, engine),
	}
}
