package utils

import "golang.org/x/crypto/bcrypt"

// HashPassword returns a bcrypt hash of plain. Costs outside bcrypt's valid
// range fall back to the library default rather than erroring, so a
// misconfigured BCRYPT_COST cannot block registration. bcrypt salts every
// call, so hashing the same password twice yields different digests.
func HashPassword(plain string, cost int) (string, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	b, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// VerifyPassword reports whether plain matches the stored bcrypt hash.
// The comparison is constant time inside bcrypt itself.
func VerifyPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
