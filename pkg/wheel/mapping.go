package wheel

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrOrderLength = errors.New("order must have exactly 4 entries")
	ErrOrderToken  = errors.New("order entry is not an integer")
	ErrOrderRange  = errors.New("order entry out of range")
)

// Mapping binds each Direction to a Choice, indexed by Direction
type Mapping [4]Choice

// IdentityMapping puts choice i on direction i
var IdentityMapping = Mapping{ChoiceNone, ChoiceShaded, ChoiceWireframe, ChoiceShadedWireframe}

// For returns the choice bound to a direction
func (m Mapping) For(d Direction) Choice {
	if d < Left || d > Up {
		return ChoiceNone
	}
	return m[d]
}

// String encodes the mapping as the persisted "a,b,c,d" form
func (m Mapping) String() string {
	parts := make([]string, len(m))
	for i, c := range m {
		parts[i] = strconv.Itoa(int(c))
	}
	return strings.Join(parts, ",")
}

// ParseMapping decodes a persisted order string. The returned mapping is
// always usable: a wrong entry count or a non-integer entry yields the
// identity mapping, while an out-of-range entry only resets its own slot.
func ParseMapping(s string) (Mapping, error) {
	parts := strings.Split(s, ",")
	if len(parts) != len(Mapping{}) {
		return IdentityMapping, fmt.Errorf("%w: got %d in %q", ErrOrderLength, len(parts), s)
	}

	m := IdentityMapping
	var errs []error
	for i, part := range parts {
		index, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return IdentityMapping, fmt.Errorf("%w: %q", ErrOrderToken, part)
		}
		if c := Choice(index); c.Valid() {
			m[i] = c
		} else {
			errs = append(errs, fmt.Errorf("%w: %s=%d", ErrOrderRange, Direction(i), index))
		}
	}
	return m, errors.Join(errs...)
}
