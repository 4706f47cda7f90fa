package inter

// ConsensusData carries the per-block parameters the consensus core reads
// and writes (spec.md §3, "ConsensusData invariants"):
//
//   - BaseTarget must be > 0 and <= MAX_BASE_TARGET (math.MaxInt64 /
//     average_block_delay_seconds); see consensus/kernel.MaxBaseTarget.
//   - GenerationSignature must equal
//     Digest(parent.Consensus.GenerationSignature || generator.PublicKey);
//     this is the sole derivation rule, enforced by
//     consensus/kernel.GeneratorSignature and checked by
//     consensus/validator.Validator.IsValid.
type ConsensusData struct {
	BaseTarget          uint64
	GenerationSignature [32]byte
}
