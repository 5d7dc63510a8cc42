package component

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Kind identifies one of the closed set of numeric kinds a numeric
// component may carry. A component never changes kind after creation.
type Kind uint8

const (
	// KindI32 is a signed 32-bit integer.
	KindI32 Kind = iota
	// KindI64 is a signed 64-bit integer.
	KindI64
	// KindF32 is a 32-bit float.
	KindF32
	// KindF64 is a 64-bit float.
	KindF64
	// KindUint is an unsigned machine-word integer.
	KindUint
)

func (k Kind) String() string {
	switch k {
	case KindI32:
		return "i32"
	case KindI64:
		return "i64"
	case KindF32:
		return "f32"
	case KindF64:
		return "f64"
	case KindUint:
		return "uint"
	default:
		return "invalid"
	}
}

func kindFromString(s string) (Kind, error) {
	switch s {
	case "i32":
		return KindI32, nil
	case "i64":
		return KindI64, nil
	case "f32":
		return KindF32, nil
	case "f64":
		return KindF64, nil
	case "uint":
		return KindUint, nil
	}
	return 0, fmt.Errorf("unknown scalar kind %q", s)
}

// Number constrains the Go types that map onto the closed kind set.
// The set is exact: a numeric component is monomorphic over one of
// these kinds for its whole lifetime.
type Number interface {
	int32 | int64 | float32 | float64 | uint
}

// Scalar is a numeric value tagged with its kind. It is the wire and
// storage representation of every numeric component value; typed access
// goes through ScalarOf and NumberOf.
type Scalar struct {
	kind Kind
	i    int64
	u    uint64
	f    float64
}

// ScalarOf wraps a typed numeric value into a Scalar of the matching kind.
func ScalarOf[T Number](v T) Scalar {
	switch val := any(v).(type) {
	case int32:
		return Scalar{kind: KindI32, i: int64(val)}
	case int64:
		return Scalar{kind: KindI64, i: val}
	case float32:
		return Scalar{kind: KindF32, f: float64(val)}
	case float64:
		return Scalar{kind: KindF64, f: val}
	case uint:
		return Scalar{kind: KindUint, u: uint64(val)}
	default:
		panic(fmt.Sprintf("component: unsupported scalar type %T", v))
	}
}

// NumberOf extracts the typed value from a Scalar. The requested type
// must match the scalar's kind; a mismatch means control and
// presentation disagree about a component's type and is a contract
// violation.
func NumberOf[T Number](s Scalar) T {
	var zero T
	switch any(zero).(type) {
	case int32:
		s.mustBe(KindI32)
		return T(int32(s.i))
	case int64:
		s.mustBe(KindI64)
		return T(s.i)
	case float32:
		s.mustBe(KindF32)
		return T(float32(s.f))
	case float64:
		s.mustBe(KindF64)
		return T(s.f)
	case uint:
		s.mustBe(KindUint)
		return T(uint(s.u))
	default:
		panic(fmt.Sprintf("component: unsupported scalar type %T", zero))
	}
}

func (s Scalar) mustBe(k Kind) {
	if s.kind != k {
		panic(fmt.Sprintf("component: scalar kind mismatch: have %s, want %s", s.kind, k))
	}
}

// Kind returns the scalar's numeric kind.
func (s Scalar) Kind() Kind {
	return s.kind
}

// Float returns the value converted to float64, regardless of kind.
// Used for display and slider geometry, not for round-tripping.
func (s Scalar) Float() float64 {
	switch s.kind {
	case KindI32, KindI64:
		return float64(s.i)
	case KindUint:
		return float64(s.u)
	default:
		return s.f
	}
}

// Equal reports whether two scalars have the same kind and value.
func (s Scalar) Equal(o Scalar) bool {
	return s == o
}

// Less reports whether s < o. Both scalars must have the same kind.
func (s Scalar) Less(o Scalar) bool {
	s.mustBe(o.kind)
	switch s.kind {
	case KindI32, KindI64:
		return s.i < o.i
	case KindUint:
		return s.u < o.u
	default:
		return s.f < o.f
	}
}

func (s Scalar) String() string {
	switch s.kind {
	case KindI32, KindI64:
		return strconv.FormatInt(s.i, 10)
	case KindUint:
		return strconv.FormatUint(s.u, 10)
	default:
		return strconv.FormatFloat(s.f, 'g', -1, 64)
	}
}

type scalarJSON struct {
	Kind  string      `json:"kind"`
	Value json.Number `json:"value"`
}

// MarshalJSON encodes the scalar as {"kind": ..., "value": ...}. The
// kind tag is part of the wire compatibility surface.
func (s Scalar) MarshalJSON() ([]byte, error) {
	var v string
	switch s.kind {
	case KindI32, KindI64:
		v = strconv.FormatInt(s.i, 10)
	case KindUint:
		v = strconv.FormatUint(s.u, 10)
	case KindF32:
		v = strconv.FormatFloat(s.f, 'g', -1, 32)
	case KindF64:
		v = strconv.FormatFloat(s.f, 'g', -1, 64)
	default:
		return nil, fmt.Errorf("invalid scalar kind %d", s.kind)
	}
	return json.Marshal(scalarJSON{Kind: s.kind.String(), Value: json.Number(v)})
}

// UnmarshalJSON decodes the tagged scalar representation.
func (s *Scalar) UnmarshalJSON(data []byte) error {
	var raw scalarJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	kind, err := kindFromString(raw.Kind)
	if err != nil {
		return err
	}
	out := Scalar{kind: kind}
	switch kind {
	case KindI32, KindI64:
		out.i, err = raw.Value.Int64()
	case KindUint:
		out.u, err = strconv.ParseUint(raw.Value.String(), 10, 64)
	case KindF32:
		// Store the f32 value exactly as ScalarOf does, so a decoded
		// scalar compares equal to the one that was encoded.
		out.f, err = raw.Value.Float64()
		out.f = float64(float32(out.f))
	default:
		out.f, err = raw.Value.Float64()
	}
	if err != nil {
		return fmt.Errorf("scalar value %q: %w", raw.Value, err)
	}
	*s = out
	return nil
}
