package menulayout

import (
	"errors"
	"fmt"
	"strings"
)

// Arrangement errors. They degrade a single group and never stop a pass.
var (
	ErrMissingElement = errors.New("missing element")
	ErrMissingParent  = errors.New("missing parent group")
	ErrParentCycle    = errors.New("cyclic parent chain")
)

// Load errors, returned while reading or building a layout configuration.
var (
	ErrUnknownAlignment            = errors.New("unknown alignment")
	ErrUnknownLayoutType           = errors.New("unknown layout type")
	ErrDuplicateGroup              = errors.New("duplicate group")
	ErrDuplicateElement            = errors.New("duplicate element")
	ErrElementInGroups             = errors.New("element belongs to more than one group")
	ErrOuterAlignmentWithoutParent = errors.New("parent alignment without parent group")
	ErrEmptyID                     = errors.New("empty id")
)

// ConfigError reports a malformed layout graph found during arrangement.
// Err is one of ErrMissingElement, ErrMissingParent or ErrParentCycle.
type ConfigError struct {
	Group string   // Group being arranged
	Ref   string   // Element or parent group that could not be used
	Chain []string // Groups forming the cycle, for ErrParentCycle
	Err   error
}

func (e *ConfigError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "layout group %q: %v %q", e.Group, e.Err, e.Ref)
	if len(e.Chain) > 0 {
		fmt.Fprintf(&b, " (%s -> %s)", strings.Join(e.Chain, " -> "), e.Chain[0])
	}
	return b.String()
}

func (e *ConfigError) Unwrap() error { return e.Err }
