package proof

import (
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"encoding/hex"
)

// KeyBits is the RSA modulus size used by GenerateKey.
const KeyBits = 2048

// GenerateKey creates a fresh RSA key pair for signing proofs.
func GenerateKey() (*rsa.PrivateKey, error) {
	key, err := rsa.GenerateKey(rand.Reader, KeyBits)
	if err != nil {
		return nil, &ErrCryptoKey{Reason: err.Error()}
	}
	return key, nil
}

// EncodePrivateKeyHex encodes priv in PKCS8 DER, hex-at-the-boundary, per
// spec.md's "keys are carried as hex strings at module boundaries."
func EncodePrivateKeyHex(priv *rsa.PrivateKey) (string, error) {
	der, err := x509.MarshalPKCS8PrivateKey(priv)
	if err != nil {
		return "", &ErrCryptoKey{Reason: err.Error()}
	}
	return hex.EncodeToString(der), nil
}

// DecodePrivateKeyHex parses a hex-encoded PKCS8 DER private key.
func DecodePrivateKeyHex(hexKey string) (*rsa.PrivateKey, error) {
	der, err := hex.DecodeString(hexKey)
	if err != nil {
		return nil, &ErrCryptoKey{Reason: "private key is not valid hex"}
	}
	key, err := x509.ParsePKCS8PrivateKey(der)
	if err != nil {
		return nil, &ErrCryptoKey{Reason: err.Error()}
	}
	rsaKey, ok := key.(*rsa.PrivateKey)
	if !ok {
		return nil, &ErrCryptoKey{Reason: "key is not an RSA private key"}
	}
	return rsaKey, nil
}

// EncodePublicKeyHex encodes pub in PKIX DER, hex-at-the-boundary.
func EncodePublicKeyHex(pub *rsa.PublicKey) (string, error) {
	der, err := x509.MarshalPKIXPublicKey(pub)
	if err != nil {
		return "", &ErrCryptoKey{Reason: err.Error()}
	}
	return hex.EncodeToString(der), nil
}

// DecodePublicKeyHex parses a hex-encoded PKIX DER public key.
func DecodePublicKeyHex(hexKey string) (*rsa.PublicKey, error) {
	der, err := hex.DecodeString(hexKey)
	if err != nil {
		return nil, &ErrCryptoKey{Reason: "public key is not valid hex"}
	}
	key, err := x509.ParsePKIXPublicKey(der)
	if err != nil {
		return nil, &ErrCryptoKey{Reason: err.Error()}
	}
	rsaKey, ok := key.(*rsa.PublicKey)
	if !ok {
		return nil, &ErrCryptoKey{Reason: "key is not an RSA public key"}
	}
	return rsaKey, nil
}

// sign computes signature = sign(privateKey, stateHashBytes) where
// stateHashBytes is the ASCII/UTF-8 bytes of the hex stateHash string,
// per spec.md §4.1's deliberate "sign over the hex, not the raw digest"
// contract. RSA PKCS1v15 requires a fixed-size digest, so the ASCII
// bytes are hashed with SHA-256 before signing; this digest is computed
// over the hex text, never over the original 32-byte binary digest.
func sign(priv *rsa.PrivateKey, stateHash string) (string, error) {
	h := sha256.Sum256([]byte(stateHash))
	sig, err := rsa.SignPKCS1v15(rand.Reader, priv, crypto.SHA256, h[:])
	if err != nil {
		return "", &ErrCryptoOp{Op: "sign", Reason: err.Error()}
	}
	return hex.EncodeToString(sig), nil
}

// Verify checks signature against stateHash under pub, using the same
// hex-bytes-then-SHA-256 contract as sign.
func Verify(pub *rsa.PublicKey, stateHash, signatureHex string) bool {
	sig, err := hex.DecodeString(signatureHex)
	if err != nil {
		return false
	}
	h := sha256.Sum256([]byte(stateHash))
	return rsa.VerifyPKCS1v15(pub, crypto.SHA256, h[:], sig) == nil
}
