package forger

import "errors"

// ErrChainTipVanished signals the "last block vanished mid-call" stale-view
// condition (spec.md §7): a BlockBuilder implementation may return this
// when the parent it was asked to extend has been reorganized away between
// TryGenerateNextBlock's initial read and the build call. The Forger
// recovers from it silently rather than propagating it as a fatal error.
var ErrChainTipVanished = errors.New("forger: chain tip vanished mid-build")
