package htable

import (
	"fmt"
	"strings"
)

// Mode is the collision resolution strategy used by a Table
type Mode uint8

const (
	LinearProbing Mode = iota
	DoubleHashing
)

func (m Mode) valid() bool {
	return m == LinearProbing || m == DoubleHashing
}

// String returns the title used in statistics reports
func (m Mode) String() string {
	switch m {
	case LinearProbing:
		return "Linear Probing"
	case DoubleHashing:
		return "Double Hashing"
	}
	return fmt.Sprintf("Mode(%d)", uint8(m))
}

// ParseMode accepts "linear", "double" and the long forms
// "linear-probing" and "double-hashing", in any case.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "linear", "linear-probing", "linear probing":
		return LinearProbing, nil
	case "double", "double-hashing", "double hashing":
		return DoubleHashing, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadMode, s)
}

func (m Mode) MarshalText() ([]byte, error) {
	switch m {
	case LinearProbing:
		return []byte("linear"), nil
	case DoubleHashing:
		return []byte("double"), nil
	}
	return nil, ErrBadMode
}

func (m *Mode) UnmarshalText(text []byte) error {
	mode, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = mode
	return nil
}
