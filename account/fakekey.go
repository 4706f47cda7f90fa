package account

import (
	"math/rand"

	"github.com/ethereum/go-ethereum/crypto"
)

// FakeKey deterministically derives a PrivateKey for tests and fake
// networks. Given the same seed n it always produces the same key, so test
// fixtures (forger/validator scenarios) stay reproducible across runs.
//
// Adapted from evmcore's FakeKey: the secp256k1 secret is the first 32 bytes
// of a PRNG seeded with n, then its public point is folded down to the fixed
// 32-byte PublicKey this package expects.
func FakeKey(n int) PrivateKey {
	reader := rand.New(rand.NewSource(int64(n)))
	seed := make([]byte, 32)
	reader.Read(seed)
	key, err := crypto.ToECDSA(seed)
	if err != nil {
		panic(err)
	}

	uncompressed := crypto.FromECDSAPub(&key.PublicKey)
	digest := crypto.Keccak256(uncompressed[1:])

	var pub PublicKey
	copy(pub[:], digest[:KeySize])

	return PrivateKey{
		Public: pub,
		Secret: crypto.FromECDSA(key),
	}
}
