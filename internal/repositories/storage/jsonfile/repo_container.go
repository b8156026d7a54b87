package jsonfile

import (
	portsrepo "github.com/qrasickz/vovabank_backend/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every repository to the same snapshot store.
func NewRepositoryProvider(store *Store) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:   NewUserRepository(store),
		CardRepo:   NewCardRepository(store),
		LedgerRepo: NewLedgerRepository(store),
	}
}
