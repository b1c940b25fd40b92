package descriptor_test

import (
	stderrors "errors"
	"testing"

	"github.com/jvmkit/classreader/descriptor"
	"github.com/jvmkit/classreader/errors"
)

func TestParsePrimitives(t *testing.T) {
	tests := []struct {
		in   string
		kind descriptor.Kind
	}{
		{"B", descriptor.KindByte},
		{"C", descriptor.KindChar},
		{"D", descriptor.KindDouble},
		{"F", descriptor.KindFloat},
		{"I", descriptor.KindInt},
		{"J", descriptor.KindLong},
		{"S", descriptor.KindShort},
		{"Z", descriptor.KindBoolean},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := descriptor.Parse(tt.in)
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.in, err)
			}
			if got.Kind != tt.kind {
				t.Errorf("Parse(%q).Kind = %v, want %v", tt.in, got.Kind, tt.kind)
			}
		})
	}
}

func TestParseClass(t *testing.T) {
	got, err := descriptor.Parse("Ljava/lang/String;")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got.Kind != descriptor.KindClass {
		t.Fatalf("Kind = %v, want KindClass", got.Kind)
	}
	if got.Name != "java/lang/String" {
		t.Errorf("Name = %q, want java/lang/String", got.Name)
	}
}

func TestParseArray(t *testing.T) {
	got, err := descriptor.Parse("[[I")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got.Kind != descriptor.KindArray {
		t.Fatalf("Kind = %v, want KindArray", got.Kind)
	}
	if got.Dims != 2 {
		t.Errorf("Dims = %d, want 2", got.Dims)
	}
	if got.Elem == nil || got.Elem.Kind != descriptor.KindInt {
		t.Errorf("Elem = %v, want int", got.Elem)
	}
}

func TestParseArrayOfClass(t *testing.T) {
	got, err := descriptor.Parse("[Ljava/lang/Object;")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got.Kind != descriptor.KindArray || got.Dims != 1 {
		t.Fatalf("got %+v, want 1-dim array", got)
	}
	if got.Elem.Kind != descriptor.KindClass || got.Elem.Name != "java/lang/Object" {
		t.Errorf("Elem = %+v, want java/lang/Object", got.Elem)
	}
}

func TestParseMethodSignature(t *testing.T) {
	got, err := descriptor.Parse("(IZI)I")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got.Kind != descriptor.KindMethod {
		t.Fatalf("Kind = %v, want KindMethod", got.Kind)
	}
	wantParams := []descriptor.Kind{descriptor.KindInt, descriptor.KindBoolean, descriptor.KindInt}
	if len(got.Params) != len(wantParams) {
		t.Fatalf("len(Params) = %d, want %d", len(got.Params), len(wantParams))
	}
	for i, k := range wantParams {
		if got.Params[i].Kind != k {
			t.Errorf("Params[%d].Kind = %v, want %v", i, got.Params[i].Kind, k)
		}
	}
	if got.Return.Kind != descriptor.KindInt {
		t.Errorf("Return.Kind = %v, want KindInt", got.Return.Kind)
	}
}

func TestParseVoidMethod(t *testing.T) {
	got, err := descriptor.Parse("()V")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got.Kind != descriptor.KindMethod {
		t.Fatalf("Kind = %v, want KindMethod", got.Kind)
	}
	if len(got.Params) != 0 {
		t.Errorf("len(Params) = %d, want 0", len(got.Params))
	}
	if got.Return.Kind != descriptor.KindVoid {
		t.Errorf("Return.Kind = %v, want KindVoid", got.Return.Kind)
	}
}

func TestParseMixedMethod(t *testing.T) {
	got, err := descriptor.Parse("([Ljava/lang/String;)V")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(got.Params) != 1 {
		t.Fatalf("len(Params) = %d, want 1", len(got.Params))
	}
	p := got.Params[0]
	if p.Kind != descriptor.KindArray || p.Elem.Kind != descriptor.KindClass {
		t.Errorf("Params[0] = %+v, want String[]", p)
	}
}

func TestParseErrors(t *testing.T) {
	syntax := &errors.Error{Phase: errors.PhaseDescriptor, Kind: errors.KindSyntax}

	tests := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"unterminated method", "(I"},
		{"unterminated class", "Ljava/lang/String"},
		{"empty class name", "L;"},
		{"unknown character", "Q"},
		{"void as field", "V"},
		{"void as parameter", "(V)I"},
		{"trailing garbage", "II"},
		{"trailing garbage after method", "()VX"},
		{"bare array", "["},
		{"missing return", "()"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := descriptor.Parse(tt.in)
			if err == nil {
				t.Fatalf("Parse(%q) succeeded, want syntax error", tt.in)
			}
			if !stderrors.Is(err, syntax) {
				t.Errorf("Parse(%q) = %v, want syntax kind", tt.in, err)
			}
		})
	}
}

func TestParseMethodRejectsFieldDescriptor(t *testing.T) {
	if _, err := descriptor.ParseMethod("I"); err == nil {
		t.Error("ParseMethod(\"I\") should fail")
	}
}

func TestSyntaxErrorPosition(t *testing.T) {
	_, err := descriptor.Parse("(IQ)V")
	var e *errors.Error
	if !stderrors.As(err, &e) {
		t.Fatalf("error type = %T, want *errors.Error", err)
	}
	if e.Position != 2 {
		t.Errorf("Position = %d, want 2", e.Position)
	}
}

func TestTypeString(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"I", "int"},
		{"Ljava/lang/String;", "java.lang.String"},
		{"[[J", "long[][]"},
		{"(IZ)V", "(int, boolean) void"},
		{"([Ljava/lang/String;)I", "(java.lang.String[]) int"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			typ, err := descriptor.Parse(tt.in)
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.in, err)
			}
			if got := typ.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}
