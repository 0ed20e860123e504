package ftkit

import "github.com/decred/dcrd/crypto/rand"

// RandomNumber returns a uniformly distributed random int32. All 32 bits
// are random, so negative results are exactly as likely as positive ones.
func RandomNumber() int32 {
	return int32(rand.Uint32())
}
