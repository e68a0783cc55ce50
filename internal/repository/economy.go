package repository

import "context"

// Ledger defines read access to Spirit XP balances
type Ledger interface {
	GetBalance(ctx context.Context, userID string) (int64, error)
}

// LedgerTx is the write half of the ledger. It only exists inside a transaction
// so a reward can never be granted without the record that justifies it.
type LedgerTx interface {
	// AddSpiritXP increments the balance, appends a ledger row and returns the new balance
	AddSpiritXP(ctx context.Context, userID string, amount int64, reason, ref string) (int64, error)
}
