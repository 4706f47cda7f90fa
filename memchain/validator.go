package memchain

import (
	"context"

	"github.com/andrei2312/waves-consensus/chain"
	"github.com/andrei2312/waves-consensus/inter"
	"github.com/andrei2312/waves-consensus/opera"
)

// PermissiveValidator is a chain.TransactionValidator that accepts every
// transaction it is given. It stands in for the external, leveled
// transaction validator spec.md treats as an oracle the consensus core
// never implements — the launcher's forge dry-run command and tests that
// don't care about transaction-level rules use it as a default.
type PermissiveValidator struct{}

var _ chain.TransactionValidator = PermissiveValidator{}

// Validate accepts every transaction in txs unconditionally.
func (PermissiveValidator) Validate(ctx context.Context, settings opera.Settings, s chain.State, txs []inter.Transaction, atHeight *uint64, nowMs inter.Timestamp) (rejected, accepted []inter.Transaction, err error) {
	return nil, txs, nil
}
