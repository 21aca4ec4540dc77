package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHash_AndCompare(t *testing.T) {
	hashed, err := Hash("s3cret-password")
	assert.NoError(t, err)
	assert.NotEmpty(t, hashed)
	assert.NotEqual(t, "s3cret-password", hashed)

	assert.True(t, Compare(hashed, "s3cret-password"))
	assert.False(t, Compare(hashed, "wrong-password"))
}

func TestHash_SaltsEachCall(t *testing.T) {
	first, err := Hash("same-input")
	assert.NoError(t, err)
	second, err := Hash("same-input")
	assert.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestCompare_InvalidHash(t *testing.T) {
	assert.False(t, Compare("not-a-bcrypt-hash", "anything"))
}

func TestCompareDummy_AlwaysFalse(t *testing.T) {
	assert.False(t, CompareDummy(""))
	assert.False(t, CompareDummy("password"))
	assert.False(t, CompareDummy("correct horse battery staple"))
}
