package typechecker

func typeName(t Type) string {
	if t == nil {
		return "<nil>"
	}
	return t.Name()
}

func isUnknownType(t Type) bool {
	if t == nil {
		return true
	}
	_, ok := t.(UnknownType)
	return ok
}

func isUntypedInteger(t Type) bool {
	_, ok := t.(UntypedIntegerType)
	return ok
}

// isIntegerType reports whether t is a sized or untyped integer.
func isIntegerType(t Type) bool {
	switch t.(type) {
	case IntegerType, UntypedIntegerType:
		return true
	}
	return false
}

func isBoolType(t Type) bool {
	p, ok := t.(PrimitiveType)
	return ok && p.Kind == PrimitiveBool
}

func isStringType(t Type) bool {
	p, ok := t.(PrimitiveType)
	return ok && p.Kind == PrimitiveString
}

// sameType compares types structurally. Integers match only on identical
// width and signedness.
func sameType(a, b Type) bool {
	switch av := a.(type) {
	case PrimitiveType:
		bv, ok := b.(PrimitiveType)
		return ok && av.Kind == bv.Kind
	case IntegerType:
		bv, ok := b.(IntegerType)
		return ok && av == bv
	case UntypedIntegerType:
		_, ok := b.(UntypedIntegerType)
		return ok
	case TupleType:
		bv, ok := b.(TupleType)
		return ok && sameTypes(av.Members, bv.Members)
	case FunctionType:
		bv, ok := b.(FunctionType)
		return ok && sameTypes(av.Params, bv.Params) && sameType(av.Return, bv.Return)
	}
	return false
}

func sameTypes(a, b []Type) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !sameType(a[i], b[i]) {
			return false
		}
	}
	return true
}

// defaultType gives an untyped constant its concrete type; other types are
// returned unchanged.
func defaultType(t Type) Type {
	if isUntypedInteger(t) {
		return defaultInt
	}
	return t
}

// containsUnknown reports whether an earlier error left a hole anywhere in t.
func containsUnknown(t Type) bool {
	switch tv := t.(type) {
	case nil, UnknownType:
		return true
	case TupleType:
		for _, member := range tv.Members {
			if containsUnknown(member) {
				return true
			}
		}
	case FunctionType:
		for _, param := range tv.Params {
			if containsUnknown(param) {
				return true
			}
		}
		return containsUnknown(tv.Return)
	}
	return false
}
