package xor

import (
	"crypto/rand"
	"fmt"
	"io"
)

// GenKey will generate a Key from the OS entropy pool.
// Note that a single byte key only has 256 possible values, so this just saves a person from picking one.
func GenKey() (Key, error) {
	var buf [1]byte
	if _, err := io.ReadFull(rand.Reader, buf[:]); err != nil {
		return 0, fmt.Errorf("failed to read random key byte: %w", err)
	}
	return Key(buf[0]), nil
}
