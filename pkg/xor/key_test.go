package xor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKey(t *testing.T) {
	tests := map[string]struct {
		given     string
		expected  Key
		expectErr bool
	}{
		"Zero": {
			given:    "0",
			expected: 0,
		},
		"In range": {
			given:    "5",
			expected: 5,
		},
		"Max byte": {
			given:    "255",
			expected: 255,
		},
		"Wraps above 255": {
			given:    "261",
			expected: 5,
		},
		"Negative uses two's complement": {
			given:    "-1",
			expected: 255,
		},
		"Surrounding whitespace": {
			given:    "  42\n",
			expected: 42,
		},
		"Explicit plus sign": {
			given:    "+7",
			expected: 7,
		},
		"Larger than int64": {
			given:    "18446744073709551621",
			expected: 5,
		},
		"Empty": {
			given:     "",
			expectErr: true,
		},
		"Not a number": {
			given:     "abc",
			expectErr: true,
		},
		"Float": {
			given:     "1.5",
			expectErr: true,
		},
		"Hex is not accepted": {
			given:     "0x10",
			expectErr: true,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			key, err := ParseKey(tc.given)
			if tc.expectErr {
				assert.ErrorIs(t, err, ErrInvalidKey)
				t.Log(err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, key)
		})
	}
}

func TestKeyFromInt(t *testing.T) {
	assert.Equal(t, Key(5), KeyFromInt(5))
	assert.Equal(t, Key(5), KeyFromInt(261))
	assert.Equal(t, Key(255), KeyFromInt(-1))
	assert.Equal(t, Key(0), KeyFromInt(1024))
}

func TestKey_String(t *testing.T) {
	assert.Equal(t, "255 (0xff)", Key(255).String())
}
