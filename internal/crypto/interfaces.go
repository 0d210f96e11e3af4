package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher turns plaintext passwords into self-describing one-way
// hashes and checks candidates against them.
type PasswordHasher interface {
	// Hash returns an encoded hash of password, including a fresh random
	// salt and the cost parameters used.
	Hash(password string) (string, error)

	// Verify reports whether password matches encoded. It returns
	// ErrInvalidHash if encoded cannot be decoded.
	Verify(password, encoded string) (bool, error)
}
