package crypto

// Wipe zeroizes b. Use it on secret keys, seeds, and KEM shared secrets
// once they are no longer needed.
func Wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
