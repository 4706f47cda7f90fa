package account

// PrivateKey holds a PublicKey plus the secret material needed by the block
// builder collaborator to sign a forged block. The consensus core treats it
// as an opaque capability: it reads Public to compute hit/target/generator
// signature, and passes the whole value through to BlockBuilder.BuildAndSign
// without ever touching Secret.
type PrivateKey struct {
	Public PublicKey
	Secret []byte
}

// Empty reports whether sk carries neither a public key nor secret material.
func (sk PrivateKey) Empty() bool {
	return sk.Public.Empty() && len(sk.Secret) == 0
}
