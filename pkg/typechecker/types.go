package typechecker

import (
	"strconv"
	"strings"
)

// Type represents a type understood by the checker.
type Type interface {
	Name() string
}

type PrimitiveKind string

const (
	PrimitiveBool   PrimitiveKind = "boolean"
	PrimitiveString PrimitiveKind = "string"
)

type PrimitiveType struct {
	Kind PrimitiveKind
}

func (p PrimitiveType) Name() string { return string(p.Kind) }

// IntegerType is a fixed-width integer such as i32 or u8.
type IntegerType struct {
	Bits   int
	Signed bool
}

func (i IntegerType) Name() string {
	prefix := "u"
	if i.Signed {
		prefix = "i"
	}
	return prefix + strconv.Itoa(i.Bits)
}

// Min and Max bound the values representable by i.
func (i IntegerType) Min() float64 {
	if !i.Signed {
		return 0
	}
	return -float64(uint64(1) << (i.Bits - 1))
}

func (i IntegerType) Max() float64 {
	if i.Signed {
		return float64(uint64(1)<<(i.Bits-1)) - 1
	}
	return float64(uint64(1)<<i.Bits) - 1
}

// UntypedIntegerType is the type of an integer constant that has not been
// given a concrete width yet. Value holds the constant when Known.
type UntypedIntegerType struct {
	Value float64
	Known bool
}

func (u UntypedIntegerType) Name() string {
	if u.Known {
		return "untyped integer " + formatConstant(u.Value)
	}
	return "untyped integer"
}

// TupleType with no members is the unit type.
type TupleType struct {
	Members []Type
}

func (t TupleType) Name() string {
	return "(" + joinNames(t.Members, ", ") + ")"
}

type FunctionType struct {
	Params []Type
	Return Type
}

func (f FunctionType) Name() string {
	ret := "()"
	if f.Return != nil {
		ret = f.Return.Name()
	}
	return "fn(" + joinNames(f.Params, ", ") + ") -> " + ret
}

// UnresolvedType marks a variable declared with neither a type nor an
// initializer. Its first assignment decides the type.
type UnresolvedType struct{}

func (UnresolvedType) Name() string { return "unresolved" }

// UnknownType is produced after an error so it does not cascade.
type UnknownType struct{}

func (UnknownType) Name() string { return "unknown" }

var (
	unitType   = TupleType{}
	boolType   = PrimitiveType{Kind: PrimitiveBool}
	stringType = PrimitiveType{Kind: PrimitiveString}
	defaultInt = IntegerType{Bits: 32, Signed: true}
)

// builtinTypes maps the names usable in type annotations.
var builtinTypes = map[string]Type{
	"boolean": boolType,
	"string":  stringType,
	"i8":      IntegerType{Bits: 8, Signed: true},
	"i16":     IntegerType{Bits: 16, Signed: true},
	"i32":     IntegerType{Bits: 32, Signed: true},
	"u8":      IntegerType{Bits: 8},
	"u16":     IntegerType{Bits: 16},
	"u32":     IntegerType{Bits: 32},
}

func joinNames(types []Type, sep string) string {
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = typeName(t)
	}
	return strings.Join(names, sep)
}
