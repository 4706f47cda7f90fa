package inter

import "github.com/andrei2312/waves-consensus/account"

// Transaction is the core-visible slice of a transaction (spec.md §3): the
// consensus core reads ID, Timestamp, Fee, and Sender to order and age-out
// pool entries, and passes Payload through untouched to the external
// TransactionValidator, which alone knows how to interpret it.
type Transaction struct {
	ID        TxID
	Timestamp Timestamp
	Fee       uint64
	Sender    account.PublicKey
	Payload   []byte
}

// EstimateSize returns an approximate wire-size estimate in bytes.
func (tx Transaction) EstimateSize() int {
	const (
		idSize        = 32
		timestampSize = 8
		feeSize       = 8
	)
	return idSize + timestampSize + feeSize + account.KeySize + len(tx.Payload)
}

// FeePerByte is the sort key PoolOrdering ranks transactions by (descending).
// Returns 0 rather than dividing by zero if EstimateSize is not positive;
// the fixed-size fields make EstimateSize at least 80 bytes, even for a
// zero-value Transaction{}, so that guard does not trigger in practice.
func (tx Transaction) FeePerByte() float64 {
	size := tx.EstimateSize()
	if size <= 0 {
		return 0
	}
	return float64(tx.Fee) / float64(size)
}
