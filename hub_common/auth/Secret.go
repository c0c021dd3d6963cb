package auth

// Secret holds the JWT signing key shared with the hub. It never leaves this
// package: its formatted representations are redacted and it is excluded from
// serialization by construction.
type Secret struct {
	bytes []byte
}

func NewSecret(key []byte) *Secret {
	copied := make([]byte, len(key))
	copy(copied, key)
	return &Secret{bytes: copied}
}

func NewSecretFromString(key string) *Secret {
	return NewSecret([]byte(key))
}

func (s *Secret) String() string {
	return "[REDACTED]"
}

func (s *Secret) GoString() string {
	return "[REDACTED]"
}

// Wipe zeroes the key bytes. Best effort only since earlier copies may
// survive garbage collection.
func (s *Secret) Wipe() {
	for i := range s.bytes {
		s.bytes[i] = 0
	}
}

func (s *Secret) expose() []byte {
	return s.bytes
}
