// Package ops provides the algebra layer of the GraphBLAS core: typed
// unary/binary operators, monoids, semirings, and the named operator
// registry used for user-defined algebras.
package ops

// Value is a constraint for supported container element types.
// It uses Go generics to ensure compile-time type safety.
type Value interface {
	~bool | ~int32 | ~int64 | ~uint8 | ~float32 | ~float64
}

// DataType represents runtime type information for containers and
// registered operators.
type DataType int

// Supported data types.
const (
	Bool DataType = iota
	Int32
	Int64
	Uint8
	Float32
	Float64
)

// Size returns the byte size of the data type.
func (dt DataType) Size() int {
	switch dt {
	case Bool, Uint8:
		return 1
	case Int32, Float32:
		return 4
	case Int64, Float64:
		return 8
	default:
		panic("unknown data type")
	}
}

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Bool:
		return "bool"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case Uint8:
		return "uint8"
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	default:
		return "unknown"
	}
}

// TypeOf infers the DataType of a generic type T.
func TypeOf[T Value]() DataType {
	var dummy T
	switch any(dummy).(type) {
	case bool:
		return Bool
	case int32:
		return Int32
	case int64:
		return Int64
	case uint8:
		return Uint8
	case float32:
		return Float32
	case float64:
		return Float64
	default:
		panic("unsupported type")
	}
}
