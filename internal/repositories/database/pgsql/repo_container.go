package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/smbanking/onboarding_backend/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every pgsql repository against the shared pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		CheckingRepo:     newPgxCheckingRepository(dbPool),
		LendingRepo:      newPgxLendingRepository(dbPool),
		NotificationRepo: newPgxNotificationRepository(dbPool),
	}
}
