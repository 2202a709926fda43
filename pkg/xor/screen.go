package xor

// Unit is a single screenable value, like a file byte or a color channel sample.
type Unit interface {
	~uint8
}

// Apply screens every unit in place.
func Apply[U Unit](units []U, key Key) {
	k := U(key)
	for i := range units {
		units[i] ^= k
	}
}

// Bytes returns a screened copy of data, leaving data untouched.
func Bytes(data []byte, key Key) []byte {
	out := make([]byte, len(data))
	copy(out, data)
	Apply(out, key)
	return out
}
