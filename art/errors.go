package art

import "github.com/pkg/errors"

// ErrValueOutOfRange is returned by Insert when the value does not fit
// in the 63-bit range the tree's tagged leaf representation can carry.
var ErrValueOutOfRange = errors.New("art: value out of range, must fit in 63 bits")

// Allocation failure has no dedicated sentinel: spec.md §7 classifies it
// as fatal rather than recoverable, and this package never attempts to
// recover from it — a genuine Go runtime allocation failure panics, same
// as the rest of the program.

const maxValue = 1<<63 - 1
