package driver

import (
	"crypto/sha256"

	"cstyle/internal/style"
	"cstyle/internal/version"
)

// Digest is a SHA-256 cache key.
type Digest [32]byte

// CacheKey: H(version || policy || verify || content). Любое изменение правил
// или самого форматтера даёт новый ключ.
func CacheKey(content []byte, pol style.Policy, verify bool) Digest {
	h := sha256.New()
	_, _ = h.Write([]byte(version.Version))
	_, _ = h.Write([]byte{0})
	_, _ = h.Write([]byte(pol.Fingerprint()))
	_, _ = h.Write([]byte{0})
	if verify {
		_, _ = h.Write([]byte{1})
	} else {
		_, _ = h.Write([]byte{0})
	}
	_, _ = h.Write(content)
	var out Digest
	copy(out[:], h.Sum(nil))
	return out
}

// IsZero reports whether d was never computed.
func (d Digest) IsZero() bool {
	return d == Digest{}
}
