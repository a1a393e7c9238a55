// Package ops evaluates the bit operations by name, for the CLI and batch processing.
// Operands and results travel as uint64 and are narrowed to the requested width.
package ops

import (
	"errors"
	"fmt"

	"github.com/pdok/bitlib/interleave"
	"github.com/pdok/bitlib/mathhelp"
)

var (
	ErrUnknownOp    = errors.New("unknown operation")
	ErrArity        = errors.New("wrong number of operands")
	ErrVariant      = errors.New("variant not available")
	ErrOverflow     = errors.New("operand does not fit the width")
	ErrPrecondition = errors.New("precondition violated")
)

// Evaluate validates req and runs the requested operation. Defaults are not applied here: start
// from NewRequest or decode from JSON, a zero width or empty variant is rejected.
// The returned Result identifies the request, also when an error is returned.
func Evaluate(req Request) (Result, error) {
	result := Result{ID: req.ID, Op: req.Op, Width: req.Width}
	op, ok := registry.Get(req.Op)
	if !ok {
		return result, fmt.Errorf("%w: %q", ErrUnknownOp, req.Op)
	}
	if len(req.Args) != op.arity {
		return result, fmt.Errorf("%w: %s takes %d, got %d", ErrArity, req.Op, op.arity, len(req.Args))
	}
	if err := req.Validate(); err != nil {
		return result, fmt.Errorf("invalid request: %w", err)
	}
	impls, ok := op.variants[req.Variant]
	if !ok {
		return result, fmt.Errorf("%w: %s has no %q variant", ErrVariant, req.Op, req.Variant)
	}
	for i, arg := range req.Args {
		if req.Width < 64 && arg>>req.Width != 0 {
			return result, fmt.Errorf("%w: operand %d (%#x) is wider than %d bits", ErrOverflow, i, arg, req.Width)
		}
	}
	if req.Strict {
		if err := op.precondition.check(req.Width, req.Args); err != nil {
			return result, err
		}
	}
	result.Values = impls[req.Width](req.Args)
	return result, nil
}

// precondition is the domain restriction on the operands of an operation.
// Only checked for strict requests: the operations themselves never check.
type precondition int

const (
	none       precondition = iota
	halves                  // every operand fits a 2-way component
	scattered               // the operand only has bits 0, 2, 4, ... set
	thirds                  // operand i fits 3-way component i
	scattered3              // the operand only has bits 0, 3, 6, ... set
)

func (p precondition) String() string {
	switch p {
	case halves:
		return "half the width"
	case scattered:
		return "bits 0, 2, 4, ..."
	case thirds:
		return "its third of the width"
	case scattered3:
		return "bits 0, 3, 6, ..."
	default:
		return "anything"
	}
}

func (p precondition) check(width uint, args []uint64) error {
	var i int
	var ok bool
	switch width {
	case 8:
		i, ok = holds[uint8](p, args)
	case 16:
		i, ok = holds[uint16](p, args)
	case 32:
		i, ok = holds[uint32](p, args)
	default:
		i, ok = holds[uint64](p, args)
	}
	if !ok {
		return fmt.Errorf("%w: operand %d (%#x) does not stay within %s of a %d bit word", ErrPrecondition, i, args[i], p, width)
	}
	return nil
}

// holds returns the index of the first operand violating p, if any.
func holds[T mathhelp.Word](p precondition, args []uint64) (int, bool) {
	for i, arg := range args {
		x := T(arg)
		var ok bool
		switch p {
		case halves:
			ok = interleave.FitsHalf(x)
		case scattered:
			ok = interleave.IsScattered(x)
		case thirds:
			ok = interleave.FitsThird(x, i)
		case scattered3:
			ok = interleave.IsScattered3(x)
		default:
			ok = true
		}
		if !ok {
			return i, false
		}
	}
	return 0, true
}
