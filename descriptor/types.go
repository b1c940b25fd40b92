package descriptor

import "strings"

// Kind discriminates the Type variants.
type Kind uint8

const (
	KindByte Kind = iota
	KindChar
	KindDouble
	KindFloat
	KindInt
	KindLong
	KindShort
	KindBoolean
	KindVoid // return position only
	KindClass
	KindArray
	KindMethod
)

// Type is a parsed descriptor. Kind discriminates the variant; only the
// fields belonging to that variant are set. Types are produced by Parse and
// never mutated.
type Type struct {
	Kind   Kind
	Name   string // KindClass: binary name, e.g. "java/lang/String"
	Dims   int    // KindArray: number of dimensions
	Elem   *Type  // KindArray: element type
	Params []Type // KindMethod: argument types in order
	Return *Type  // KindMethod
}

var primitiveNames = map[Kind]string{
	KindByte:    "byte",
	KindChar:    "char",
	KindDouble:  "double",
	KindFloat:   "float",
	KindInt:     "int",
	KindLong:    "long",
	KindShort:   "short",
	KindBoolean: "boolean",
	KindVoid:    "void",
}

// String renders the Java-like source form: "int", "java.lang.String",
// "long[][]", "(int, boolean) int".
func (t Type) String() string {
	switch t.Kind {
	case KindClass:
		return strings.ReplaceAll(t.Name, "/", ".")
	case KindArray:
		return t.Elem.String() + strings.Repeat("[]", t.Dims)
	case KindMethod:
		parts := make([]string, len(t.Params))
		for i, p := range t.Params {
			parts[i] = p.String()
		}
		return "(" + strings.Join(parts, ", ") + ") " + t.Return.String()
	default:
		if name, ok := primitiveNames[t.Kind]; ok {
			return name
		}
		return "unknown"
	}
}
