package ops

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strconv"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/perimeterx/marshmallow"
)

const (
	VariantDefault = "default"
	VariantMul     = "mul"
	VariantIter    = "iter"
	VariantNWE     = "nwe"
)

// Request asks for one operation on up to three operands of the given width.
// Operands that do not fit the width are rejected, never truncated.
type Request struct {
	ID      string   `json:"id,omitempty"`
	Op      string   `json:"op" validate:"required"`
	Width   uint     `json:"width" default:"64" validate:"oneof=8 16 32 64"`
	Variant string   `json:"variant" default:"default" validate:"oneof=default mul iter nwe"`
	Args    []uint64 `json:"args" validate:"min=1,max=3"`
	// Strict checks the domain preconditions of the operation (e.g. merge operands fit half the width)
	Strict bool `json:"strict,omitempty"`
	// DecodeErr is set by a Source for input that could not be decoded into a request
	DecodeErr error `json:"-" validate:"-"`
}

type Result struct {
	ID     string   `json:"id,omitempty"`
	Op     string   `json:"op"`
	Width  uint     `json:"width"`
	Values []uint64 `json:"values,omitempty"`
	Error  string   `json:"error,omitempty"`
}

// operandKeys hold the operands: either "args", or named as "m" for a code or "x", "y", "z" for
// components, e.g. {"op":"morton","x":3,"y":5}.
var (
	operandKeys   = []string{"args", "m", "x", "y", "z"}
	componentKeys = []string{"x", "y", "z"}
)

// NewRequest returns a request for op with the default width and variant.
func NewRequest(op string, args ...uint64) Request {
	r := Request{Op: op, Args: args}
	_ = defaults.Set(&r)
	return r
}

// UnmarshalJSON fills in the defaults before decoding, so explicit zero values stay zero and are
// rejected by Validate. Operands are JSON integers or strings in Go integer syntax ("0xff"), both
// decoded exactly over the full uint64 range.
func (r *Request) UnmarshalJSON(data []byte) error {
	err := defaults.Set(r)
	if err != nil {
		return err
	}
	var fields map[string]json.RawMessage
	if err = json.Unmarshal(data, &fields); err != nil {
		return err
	}
	// operands bypass marshmallow, its numbers pass through float64
	operands := make(map[string]json.RawMessage)
	for _, key := range operandKeys {
		if raw, ok := fields[key]; ok {
			operands[key] = raw
			delete(fields, key)
		}
	}
	rest, err := json.Marshal(fields)
	if err != nil {
		return err
	}
	type plain Request // not a Request, because it would recurse into this function
	specials, err := marshmallow.Unmarshal(rest, (*plain)(r), marshmallow.WithExcludeKnownFieldsFromMap(true))
	if err != nil {
		return err
	}
	if len(specials) > 0 {
		return fmt.Errorf("request %q: unexpected keys %v", r.ID, keysOf(specials))
	}
	args, err := operandsFromJSON(operands)
	if err != nil {
		return fmt.Errorf("request %q: %w", r.ID, err)
	}
	r.Args = args
	return nil
}

func operandsFromJSON(operands map[string]json.RawMessage) ([]uint64, error) {
	if raw, ok := operands["args"]; ok {
		if len(operands) > 1 {
			return nil, errors.New(`both "args" and named operands given`)
		}
		var elements []json.RawMessage
		if err := json.Unmarshal(raw, &elements); err != nil {
			return nil, fmt.Errorf("args: %w", err)
		}
		args := make([]uint64, len(elements))
		for i, element := range elements {
			arg, err := operandFromJSON(element)
			if err != nil {
				return nil, fmt.Errorf("args[%d]: %w", i, err)
			}
			args[i] = arg
		}
		return args, nil
	}
	if raw, ok := operands["m"]; ok {
		if len(operands) > 1 {
			return nil, errors.New(`both "m" and components given`)
		}
		arg, err := operandFromJSON(raw)
		if err != nil {
			return nil, fmt.Errorf("operand m: %w", err)
		}
		return []uint64{arg}, nil
	}
	var args []uint64
	for _, key := range componentKeys {
		raw, ok := operands[key]
		if !ok {
			break
		}
		arg, err := operandFromJSON(raw)
		if err != nil {
			return nil, fmt.Errorf("operand %s: %w", key, err)
		}
		args = append(args, arg)
	}
	if len(args) != len(operands) {
		return nil, errors.New("components must be given in the order x, y, z")
	}
	return args, nil
}

func operandFromJSON(raw json.RawMessage) (uint64, error) {
	if len(raw) > 0 && raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return 0, err
		}
		return strconv.ParseUint(s, 0, 64)
	}
	// only plain decimal integers, no sign, fraction or exponent
	return strconv.ParseUint(string(raw), 10, 64)
}

func keysOf(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Validate checks the request fields that do not depend on the operation.
func (r *Request) Validate() error {
	validate := validator.New(validator.WithRequiredStructEnabled())
	return validate.Struct(r)
}
