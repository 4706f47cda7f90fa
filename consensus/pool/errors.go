package pool

import "errors"

// ErrPackReentrant is returned by Pack when it is called again on the same
// Pool instance while a prior call is still in flight (spec.md §5: "pack
// must not be re-entered on the same Pool instance").
var ErrPackReentrant = errors.New("pool: pack is already running on this pool")

// ErrTransactionRejected is returned by TryAdd when the external validator
// rejects the candidate transaction outright.
var ErrTransactionRejected = errors.New("pool: transaction rejected by validator")
