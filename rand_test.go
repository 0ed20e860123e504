package ftkit_test

import (
	"testing"

	"github.com/nils-mathieu/ftkit"
)

// Smoke test only: the underlying generator is a seeded CSPRNG, so the
// most this can assert is that draws are not constant.
func TestRandomNumberVaries(t *testing.T) {
	const draws = 32
	seen := make(map[int32]struct{}, draws)
	for range draws {
		seen[ftkit.RandomNumber()] = struct{}{}
	}
	if len(seen) < 2 {
		t.Fatalf("all %d draws produced the same value", draws)
	}
}
