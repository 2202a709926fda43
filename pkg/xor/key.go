package xor

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
)

var (
	ErrInvalidKey = errors.New("invalid key")
)

var byteMask = big.NewInt(0xff)

// Key is the single byte that every unit is screened with.
type Key byte

// KeyFromInt reduces n to its low 8 bits, using two's complement for negative values.
func KeyFromInt(n int) Key {
	return Key(n & 0xff)
}

// ParseKey parses a base 10 integer of any size and reduces it to a Key like KeyFromInt.
func ParseKey(s string) (Key, error) {
	trimmed := strings.TrimSpace(s)
	if len(trimmed) == 0 {
		return 0, fmt.Errorf("%w: empty key, please enter an integer", ErrInvalidKey)
	}
	n, ok := new(big.Int).SetString(trimmed, 10)
	if !ok {
		return 0, fmt.Errorf("%w: '%s' is not an integer", ErrInvalidKey, trimmed)
	}
	return Key(n.And(n, byteMask).Uint64()), nil
}

func (k Key) String() string {
	return fmt.Sprintf("%d (0x%02x)", byte(k), byte(k))
}
