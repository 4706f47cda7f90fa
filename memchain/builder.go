package memchain

import (
	"encoding/binary"

	"github.com/andrei2312/waves-consensus/account"
	"github.com/andrei2312/waves-consensus/digest"
	"github.com/andrei2312/waves-consensus/inter"
)

// Builder is an in-memory implementation of chain.BlockBuilder: it derives
// a block's ID by digesting its fields and leaves the signature implicit in
// the Generator field, which is sufficient for tests and the launcher's
// forge dry-run command where no wire format or network needs to verify a
// real signature.
//
// Grounded on digest.Sum, the same primitive the kernel package uses to
// chain generation signatures — this keeps block identification and
// generation-signature chaining on one hash primitive rather than
// introducing a second one just for the reference builder.
type Builder struct{}

// BuildAndSign assembles a block and stamps its ID.
func (Builder) BuildAndSign(version uint16, timestamp inter.Timestamp, parentID inter.BlockID, cons inter.ConsensusData, txs []inter.Transaction, signer account.PrivateKey) (*inter.Block, error) {
	b := &inter.Block{
		ParentID:     parentID,
		Timestamp:    timestamp,
		Generator:    signer.Public,
		Consensus:    cons,
		Transactions: txs,
	}

	var versionBytes, tsBytes [8]byte
	binary.BigEndian.PutUint16(versionBytes[:2], version)
	binary.BigEndian.PutUint64(tsBytes[:], uint64(timestamp))

	parts := [][]byte{versionBytes[:], tsBytes[:], parentID[:], signer.Public[:], cons.GenerationSignature[:]}
	for _, tx := range txs {
		parts = append(parts, tx.ID[:])
	}

	b.ID = inter.BlockID(digest.Sum(parts...))
	return b, nil
}
