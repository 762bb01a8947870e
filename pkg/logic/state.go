package logic

import (
	"fmt"
	"strings"
)

// Bit is a single four-valued logic bit.
type Bit uint8

const (
	Bit0 Bit = iota
	Bit1
	BitZ
	BitX
)

func bitFromPlanes(p0, p1 bool) Bit {
	switch {
	case !p0 && !p1:
		return Bit0
	case p0 && !p1:
		return Bit1
	case !p0 && p1:
		return BitZ
	default:
		return BitX
	}
}

func (b Bit) planes() (p0, p1 bool) {
	switch b {
	case Bit0:
		return false, false
	case Bit1:
		return true, false
	case BitZ:
		return false, true
	default:
		return true, true
	}
}

// Defined reports whether b is Logic0 or Logic1 (not Z and not X).
func (b Bit) Defined() bool {
	return b == Bit0 || b == Bit1
}

func (b Bit) String() string {
	switch b {
	case Bit0:
		return "0"
	case Bit1:
		return "1"
	case BitZ:
		return "Z"
	default:
		return "X"
	}
}

// ParseBit parses a single character from the alphabet {0,1,Z,X}.
func ParseBit(c byte) (Bit, error) {
	switch c {
	case '0':
		return Bit0, nil
	case '1':
		return Bit1, nil
	case 'Z', 'z':
		return BitZ, nil
	case 'X', 'x':
		return BitX, nil
	default:
		return 0, fmt.Errorf("logic: invalid bit character %q", c)
	}
}

// LogicState is a fixed-width vector of four-valued bits, stored as two
// equal-length planes of 32-bit words. Bits at or beyond Width within the
// final word are always 0 in both planes.
type LogicState struct {
	Width  BitWidth
	Plane0 []uint32
	Plane1 []uint32
}

func newPlanes(width BitWidth) (p0, p1 []uint32) {
	n := width.WordLen()
	return make([]uint32, n), make([]uint32, n)
}

// Zero returns the all-Logic-0 state of the given width.
func Zero(width BitWidth) LogicState {
	p0, p1 := newPlanes(width)
	return LogicState{Width: width, Plane0: p0, Plane1: p1}
}

// One returns the all-Logic-1 state of the given width.
func One(width BitWidth) LogicState {
	s := Zero(width)
	for i := range s.Plane0 {
		s.Plane0[i] = 0xFFFFFFFF
	}
	s.mask()
	return s
}

// HighZ returns the all-high-impedance state of the given width.
func HighZ(width BitWidth) LogicState {
	s := Zero(width)
	for i := range s.Plane1 {
		s.Plane1[i] = 0xFFFFFFFF
	}
	s.mask()
	return s
}

// Undefined returns the all-X state of the given width.
func Undefined(width BitWidth) LogicState {
	s := Zero(width)
	for i := range s.Plane0 {
		s.Plane0[i] = 0xFFFFFFFF
		s.Plane1[i] = 0xFFFFFFFF
	}
	s.mask()
	return s
}

// FromUint64 returns the value's bits as Logic0/Logic1, zero-extended or
// truncated to width.
func FromUint64(value uint64, width BitWidth) LogicState {
	s := Zero(width)
	for i := range s.Plane0 {
		s.Plane0[i] = uint32(value)
		value >>= 32
	}
	s.mask()
	return s
}

// FromBit returns a width-1 state carrying a single bit.
func FromBit(b Bit) LogicState {
	s := Zero(1)
	p0, p1 := b.planes()
	if p0 {
		s.Plane0[0] = 1
	}
	if p1 {
		s.Plane1[0] = 1
	}
	return s
}

// Clone returns an independent copy of s.
func (s LogicState) Clone() LogicState {
	p0 := make([]uint32, len(s.Plane0))
	p1 := make([]uint32, len(s.Plane1))
	copy(p0, s.Plane0)
	copy(p1, s.Plane1)
	return LogicState{Width: s.Width, Plane0: p0, Plane1: p1}
}

// mask clears bits at or beyond Width in the final word of both planes.
func (s LogicState) mask() {
	if len(s.Plane0) == 0 {
		return
	}
	last := len(s.Plane0) - 1
	m := s.Width.LastWordMask()
	s.Plane0[last] &= m
	s.Plane1[last] &= m
}

// Bit returns the four-valued bit at index i (0 = LSB).
func (s LogicState) Bit(i uint32) Bit {
	if i >= uint32(s.Width) {
		return Bit0
	}
	word, off := i/32, i%32
	p0 := s.Plane0[word]&(1<<off) != 0
	p1 := s.Plane1[word]&(1<<off) != 0
	return bitFromPlanes(p0, p1)
}

// SetBit sets the bit at index i to b.
func (s LogicState) SetBit(i uint32, b Bit) {
	if i >= uint32(s.Width) {
		return
	}
	word, off := i/32, i%32
	p0, p1 := b.planes()
	if p0 {
		s.Plane0[word] |= 1 << off
	} else {
		s.Plane0[word] &^= 1 << off
	}
	if p1 {
		s.Plane1[word] |= 1 << off
	} else {
		s.Plane1[word] &^= 1 << off
	}
}

// Equal reports whether s and o carry the same width and the same bits
// below that width.
func (s LogicState) Equal(o LogicState) bool {
	if s.Width != o.Width {
		return false
	}
	for i := range s.Plane0 {
		if s.Plane0[i] != o.Plane0[i] || s.Plane1[i] != o.Plane1[i] {
			return false
		}
	}
	return true
}

// IsFullyDefined reports whether every bit is Logic0 or Logic1.
func (s LogicState) IsFullyDefined() bool {
	for _, w := range s.Plane1 {
		if w != 0 {
			return false
		}
	}
	return true
}

// FirstInvalidBit returns the index of the lowest bit that is Z or X, or
// int(s.Width) if every bit is defined.
func (s LogicState) FirstInvalidBit() int {
	for wi, w := range s.Plane1 {
		if wi == len(s.Plane1)-1 {
			w &= s.Width.LastWordMask()
		}
		if w != 0 {
			return wi*32 + trailingZeros32(w)
		}
	}
	return int(s.Width)
}

func trailingZeros32(w uint32) int {
	n := 0
	for w&1 == 0 {
		w >>= 1
		n++
	}
	return n
}

// String renders s MSB-first using the alphabet {0,1,Z,X}.
func (s LogicState) String() string {
	var b strings.Builder
	b.Grow(int(s.Width))
	for i := int(s.Width) - 1; i >= 0; i-- {
		b.WriteString(s.Bit(uint32(i)).String())
	}
	return b.String()
}

// ParseState parses a String()-format string into a state of the given
// width. The string must contain exactly width characters from {0,1,Z,X}.
func ParseState(str string, width BitWidth) (LogicState, error) {
	if len(str) != int(width) {
		return LogicState{}, fmt.Errorf("logic: expected %d characters, got %d", width, len(str))
	}
	s := Zero(width)
	for i := 0; i < len(str); i++ {
		b, err := ParseBit(str[i])
		if err != nil {
			return LogicState{}, err
		}
		s.SetBit(uint32(len(str)-1-i), b)
	}
	return s, nil
}

// MarshalText implements encoding.TextMarshaler, encoding the width
// alongside the bits so gob-based checkpointing (see pkg/sim) can
// round-trip a state without external width bookkeeping.
func (s LogicState) MarshalText() ([]byte, error) {
	return []byte(fmt.Sprintf("%d:%s", s.Width, s.String())), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *LogicState) UnmarshalText(text []byte) error {
	parts := strings.SplitN(string(text), ":", 2)
	if len(parts) != 2 {
		return fmt.Errorf("logic: malformed state text %q", text)
	}
	var width int
	if _, err := fmt.Sscanf(parts[0], "%d", &width); err != nil {
		return fmt.Errorf("logic: malformed width in %q: %w", text, err)
	}
	bw, err := NewBitWidth(width)
	if err != nil {
		return err
	}
	parsed, err := ParseState(parts[1], bw)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
