package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/journey-app/journey/internal/database/postgres"
)

// Repositories holds the Postgres implementations used by the services
type Repositories struct {
	Activity    *postgres.ActivityRepository
	Ledger      *postgres.LedgerRepository
	Mission     *postgres.MissionRepository
	Raffle      *postgres.RaffleRepository
	Leaderboard *postgres.LeaderboardRepository
}

// InitializeRepositories creates all repository implementations on one pool
func InitializeRepositories(dbPool *pgxpool.Pool) *Repositories {
	return &Repositories{
		Activity:    postgres.NewActivityRepository(dbPool),
		Ledger:      postgres.NewLedgerRepository(dbPool),
		Mission:     postgres.NewMissionRepository(dbPool),
		Raffle:      postgres.NewRaffleRepository(dbPool),
		Leaderboard: postgres.NewLeaderboardRepository(dbPool),
	}
}
