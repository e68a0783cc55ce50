package economy

import (
	"context"
	"fmt"

	"github.com/journey-app/journey/internal/domain"
	"github.com/journey-app/journey/internal/logger"
	"github.com/journey-app/journey/internal/metrics"
	"github.com/journey-app/journey/internal/repository"
)

// Service is the Spirit XP ledger. Grants only happen inside a caller-owned
// transaction so they commit or roll back with the record that earned them.
type Service interface {
	Grant(ctx context.Context, tx repository.LedgerTx, userID string, amount int64, reason, ref string) (int64, error)
	Balance(ctx context.Context, userID string) (int64, error)
}

type service struct {
	repo repository.Ledger
}

// NewService creates a new ledger service
func NewService(repo repository.Ledger) Service {
	return &service{repo: repo}
}

func (s *service) Grant(ctx context.Context, tx repository.LedgerTx, userID string, amount int64, reason, ref string) (int64, error) {
	if userID == "" {
		return 0, fmt.Errorf(ErrMsgMissingUserID, domain.ErrInvalidInput)
	}
	if amount <= 0 {
		return 0, fmt.Errorf(ErrMsgInvalidAmountFmt, amount, domain.ErrInvalidInput)
	}
	if reason == "" {
		return 0, fmt.Errorf(ErrMsgMissingReason, domain.ErrInvalidInput)
	}

	balance, err := tx.AddSpiritXP(ctx, userID, amount, reason, ref)
	if err != nil {
		return 0, fmt.Errorf(ErrMsgGrantFailed, err)
	}

	metrics.SpiritXPGrantedTotal.WithLabelValues(reason).Add(float64(amount))
	logger.FromContext(ctx).Debug(LogMsgSpiritXPGranted, "user_id", userID, "amount", amount, "reason", reason, "ref", ref, "balance", balance)
	return balance, nil
}

func (s *service) Balance(ctx context.Context, userID string) (int64, error) {
	balance, err := s.repo.GetBalance(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf(ErrMsgGetBalanceFailed, err)
	}
	return balance, nil
}
