package account

import "math/big"

// Validator is the node-side representation of a staking participant: an
// identity paired with the amount of stake backing it.
//
// Adapted from the teacher's inter/drivertype.Validator (Weight + PubKey);
// generalized here because this consensus core reads stake amounts through
// State.EffectiveBalanceWithConfirmations rather than a fixed per-epoch
// weight table, so Stake is a plain informational field used by test
// fixtures and the memchain reference State, not by the kernel itself.
type Validator struct {
	// PublicKey identifies the validator.
	PublicKey PublicKey
	// Stake is the amount of balance currently backing this validator.
	Stake *big.Int
}

// ID pairs a Validator with a compact numeric index, mirroring the
// teacher's ValidatorAndID convenience type.
type ID struct {
	Index     uint32
	Validator Validator
}
