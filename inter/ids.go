package inter

import "github.com/Fantom-foundation/lachesis-base/hash"

// BlockID is a block's content-hash identifier: 32 bytes, produced by the
// external BlockBuilder collaborator (spec.md §3). Reusing lachesis-base's
// hash.Event keeps the identifier shape consistent with the teacher's own
// event/block identifiers instead of introducing a parallel hash type.
type BlockID = hash.Event

// TxID is a transaction's content-hash identifier: 32 bytes.
type TxID = hash.Hash
