package password

import "golang.org/x/crypto/bcrypt"

const hashCost = 10

// dummyHash is compared against when the principal does not exist, so
// the login path costs the same whether or not the username is known.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

func Hash(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), hashCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func Compare(hashed, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)) == nil
}

// CompareDummy burns a bcrypt comparison against a fixed hash. It always
// returns false.
func CompareDummy(plain string) bool {
	_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(plain))
	return false
}
