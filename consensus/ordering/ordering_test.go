package ordering

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/andrei2312/waves-consensus/account"
	"github.com/andrei2312/waves-consensus/inter"
)

func txWith(fee uint64, payloadLen int, id byte) inter.Transaction {
	tx := inter.Transaction{Fee: fee, Payload: make([]byte, payloadLen)}
	tx.ID[0] = id
	return tx
}

func TestPoolOrderingDescendingFeePerByte(t *testing.T) {
	require := require.New(t)
	txs := []inter.Transaction{
		txWith(10, 100, 1), // 0.1/byte
		txWith(50, 100, 2), // 0.5/byte
		txWith(30, 100, 3), // 0.3/byte
	}

	PoolOrdering(txs)
	require.Equal(byte(2), txs[0].ID[0])
	require.Equal(byte(3), txs[1].ID[0])
	require.Equal(byte(1), txs[2].ID[0])
}

func TestPoolOrderingTieBreaksByID(t *testing.T) {
	require := require.New(t)
	txs := []inter.Transaction{
		txWith(10, 100, 5),
		txWith(10, 100, 2),
	}

	PoolOrdering(txs)
	require.Equal(byte(2), txs[0].ID[0])
	require.Equal(byte(5), txs[1].ID[0])
}

func TestBlockOrderingDeterministicAndTotal(t *testing.T) {
	require := require.New(t)
	a := account.FakeKey(1).Public
	b := account.FakeKey(2).Public

	txs := []inter.Transaction{
		{Sender: b, Timestamp: 1, ID: inter.TxID{1}},
		{Sender: a, Timestamp: 2, ID: inter.TxID{2}},
		{Sender: a, Timestamp: 1, ID: inter.TxID{3}},
	}

	BlockOrdering(txs)
	require.True(IsBlockOrdered(txs))
	// a's txs sort before b's; within a, timestamp 1 sorts before 2.
	require.Equal(a, txs[0].Sender)
	require.Equal(inter.Timestamp(1), txs[0].Timestamp)
	require.Equal(a, txs[1].Sender)
	require.Equal(b, txs[2].Sender)
}

func TestIsBlockOrderedDetectsUnsorted(t *testing.T) {
	require := require.New(t)
	a := account.FakeKey(1).Public
	b := account.FakeKey(2).Public
	txs := []inter.Transaction{
		{Sender: b, ID: inter.TxID{1}},
		{Sender: a, ID: inter.TxID{2}},
	}
	require.False(IsBlockOrdered(txs))
}

type fakeHistory struct {
	heights map[inter.BlockID]uint64
}

func (f *fakeHistory) LastBlock() (*inter.Block, bool)                { return nil, false }
func (f *fakeHistory) BlockByID(id inter.BlockID) (*inter.Block, bool) { return nil, false }
func (f *fakeHistory) HeightOf(id inter.BlockID) (uint64, bool)       { h, ok := f.heights[id]; return h, ok }
func (f *fakeHistory) Height() uint64                                  { return 0 }
func (f *fakeHistory) Parent(b *inter.Block, depth uint64) (*inter.Block, bool) {
	return nil, false
}

type fakeState struct {
	balances map[account.PublicKey]uint64
}

func (f *fakeState) EffectiveBalanceWithConfirmations(acc account.PublicKey, atHeight, depth uint64) uint64 {
	return f.balances[acc]
}

func TestNextBlockGenerationTimeZeroBalanceIsUndefined(t *testing.T) {
	require := require.New(t)
	var parentID inter.BlockID
	parentID[0] = 1
	parent := &inter.Block{ID: parentID, Timestamp: 0, Consensus: inter.ConsensusData{BaseTarget: 100}}
	h := &fakeHistory{heights: map[inter.BlockID]uint64{parentID: 1}}
	s := &fakeState{balances: map[account.PublicKey]uint64{}}

	_, ok := NextBlockGenerationTime(h, s, 1000, parent, account.FakeKey(1).Public)
	require.False(ok)
}

func TestNextBlockGenerationTimeDefinedWithBalance(t *testing.T) {
	require := require.New(t)
	var parentID inter.BlockID
	parentID[0] = 1
	parent := &inter.Block{ID: parentID, Timestamp: 1000, Consensus: inter.ConsensusData{BaseTarget: 153722867, GenerationSignature: [32]byte{1}}}
	h := &fakeHistory{heights: map[inter.BlockID]uint64{parentID: 1}}
	acc := account.FakeKey(3).Public
	s := &fakeState{balances: map[account.PublicKey]uint64{acc: 1_000_000_000_000}}

	tm, ok := NextBlockGenerationTime(h, s, 1000, parent, acc)
	require.True(ok)
	require.True(int64(tm) >= int64(parent.Timestamp))
}

// Scenario S7 (spec.md §8): two sibling blocks with equal score, b1
// projected 500ms earlier than b2, must compare with b1 preferred.
func TestScenarioS7SiblingOrderingPrefersEarlierProjection(t *testing.T) {
	require := require.New(t)
	var parentID inter.BlockID
	parentID[0] = 1
	parent := &inter.Block{ID: parentID, Timestamp: 0}
	h := &fakeHistory{heights: map[inter.BlockID]uint64{}}
	s := &fakeState{}

	acc1 := account.FakeKey(1).Public
	acc2 := account.FakeKey(2).Public
	b1 := &inter.Block{Generator: acc1, Timestamp: 1000, Score: 5}
	b2 := &inter.Block{Generator: acc2, Timestamp: 1500, Score: 5}

	// The parent has no registered height (and neither generator has a
	// balance), so NextBlockGenerationTime is undefined for both and the comparison
	// falls back to each block's own Timestamp, exercising the same
	// "projected == timestamp when undefined" rule spec.md §4.5 describes.
	require.True(Compare(h, s, 1000, parent, b1, b2) > 0)
	require.True(Compare(h, s, 1000, parent, b2, b1) < 0)
}

func TestCompareOrdersByScoreFirst(t *testing.T) {
	require := require.New(t)
	h := &fakeHistory{heights: map[inter.BlockID]uint64{}}
	s := &fakeState{}
	parent := &inter.Block{}
	b1 := &inter.Block{Score: 1, Timestamp: 100}
	b2 := &inter.Block{Score: 2, Timestamp: 50}

	require.True(Compare(h, s, 1000, parent, b2, b1) > 0, "higher score wins regardless of timestamp")
}
