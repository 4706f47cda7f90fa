// Package inter defines the consensus core's data model: blocks,
// transactions, timestamps, and the identifiers that tie them together.
// Unlike the teacher's inter package (which bridges Lachesis DAG events
// into Ethereum-compatible EVM blocks), this package models an Nxt/Waves-
// style Proof-of-Stake block directly: one generator, one consensus-data
// pair, one ordered transaction list.
package inter

import "github.com/andrei2312/waves-consensus/account"

// Block is the slice of a forged block the consensus core touches
// (spec.md §3). Everything else — signatures, wire encoding, gossip — is
// the BlockBuilder collaborator's concern.
type Block struct {
	// ID is the block's content-hash identifier, produced by BlockBuilder.
	ID BlockID
	// ParentID is the predecessor block's ID.
	ParentID BlockID
	// Timestamp is milliseconds since a fixed epoch, monotonic per chain.
	Timestamp Timestamp
	// Generator is the forger's public key.
	Generator account.PublicKey
	// Consensus carries base_target and generation_signature.
	Consensus ConsensusData
	// Transactions is the ordered sequence of transactions in the block.
	Transactions []Transaction
	// Score is a monotone fork-weight computed by a higher layer; the
	// consensus core only reads it (spec.md §4.5, sibling ordering).
	Score uint64
}

// EstimateSize returns an approximate wire-size estimate in bytes: the
// fixed-size block fields plus Transaction.EstimateSize of every
// transaction.
//
// Adapted from the teacher's inter/block.go EstimateSize: that version
// summed 32-byte hash references (Events, Txs, Atropos, Root); this one
// sums the fields this data model actually carries.
func (b *Block) EstimateSize() int {
	const (
		idSize        = 32 // BlockID
		parentIDSize  = 32 // ParentID
		timestampSize = 8
		generatorSize = account.KeySize
		baseTargetSz  = 8
		genSigSize    = 32
		scoreSize     = 8
	)

	fixed := idSize + parentIDSize + timestampSize + generatorSize +
		baseTargetSz + genSigSize + scoreSize

	txsSize := 0
	for _, tx := range b.Transactions {
		txsSize += tx.EstimateSize()
	}

	return fixed + txsSize
}
