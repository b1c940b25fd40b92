package errors

import (
	"errors"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:  PhaseResolve,
				Kind:   KindInvalidReference,
				Path:   []string{"method", "name"},
				Detail: "not a Utf8 entry",
			},
			contains: []string{"[resolve]", "invalid_reference", "method.name", "not a Utf8 entry"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseDecode,
				Kind:  KindEOF,
			},
			contains: []string{"[decode]", "unexpected_eof"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseDecode,
				Kind:   KindInvalidData,
				Detail: "constant pool",
				Cause:  errors.New("underlying error"),
			},
			contains: []string{"[decode]", "invalid_data", "constant pool", "caused by", "underlying error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !containsSubstring(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &Error{
		Phase: PhaseDecode,
		Kind:  KindInvalidData,
		Cause: cause,
	}

	if !errors.Is(err.Unwrap(), cause) {
		t.Error("Unwrap did not return cause")
	}

	// Test with errors.Unwrap
	if !errors.Is(errors.Unwrap(err), cause) {
		t.Error("errors.Unwrap did not return cause")
	}
}

func TestError_Is(t *testing.T) {
	err := &Error{
		Phase: PhaseDecode,
		Kind:  KindMagicMismatch,
		Path:  []string{"header"},
	}

	// Same phase and kind
	if !err.Is(&Error{Phase: PhaseDecode, Kind: KindMagicMismatch}) {
		t.Error("Is should match same phase and kind")
	}

	// Different phase
	if err.Is(&Error{Phase: PhaseResolve, Kind: KindMagicMismatch}) {
		t.Error("Is should not match different phase")
	}

	// Different kind
	if err.Is(&Error{Phase: PhaseDecode, Kind: KindEOF}) {
		t.Error("Is should not match different kind")
	}

	// Test with errors.Is
	target := &Error{Phase: PhaseDecode, Kind: KindMagicMismatch}
	if !errors.Is(err, target) {
		t.Error("errors.Is should match")
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("root")
	err := New(PhaseDecode, KindInvalidData).
		Path("field", "attributes").
		Position(42).
		Cause(cause).
		Detail("expected %s, got %s", "Utf8", "Class").
		Build()

	if err.Phase != PhaseDecode {
		t.Errorf("Phase = %v, want %v", err.Phase, PhaseDecode)
	}
	if err.Kind != KindInvalidData {
		t.Errorf("Kind = %v, want %v", err.Kind, KindInvalidData)
	}
	if len(err.Path) != 2 || err.Path[0] != "field" || err.Path[1] != "attributes" {
		t.Errorf("Path = %v, want [field attributes]", err.Path)
	}
	if err.Position != 42 {
		t.Errorf("Position = %v, want 42", err.Position)
	}
	if !errors.Is(err.Cause, cause) {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
	if err.Detail != "expected Utf8, got Class" {
		t.Errorf("Detail = %v, want 'expected Utf8, got Class'", err.Detail)
	}
}

func TestConvenienceConstructors(t *testing.T) {
	t.Run("UnexpectedEOF", func(t *testing.T) {
		err := UnexpectedEOF(PhaseDecode, 10, 4, 2)
		if err.Kind != KindEOF {
			t.Errorf("Kind = %v, want %v", err.Kind, KindEOF)
		}
		if err.Position != 10 {
			t.Errorf("Position = %v, want 10", err.Position)
		}
		if !containsSubstring(err.Detail, "need 4") {
			t.Errorf("Detail = %v, should contain byte deficit", err.Detail)
		}
	})

	t.Run("MagicMismatch", func(t *testing.T) {
		err := MagicMismatch(0xDEADBEEF, 0xCAFEBABE)
		if err.Kind != KindMagicMismatch {
			t.Errorf("Kind = %v, want %v", err.Kind, KindMagicMismatch)
		}
		if !containsSubstring(err.Detail, "DEADBEEF") || !containsSubstring(err.Detail, "CAFEBABE") {
			t.Errorf("Detail = %v, should contain both values", err.Detail)
		}
	})

	t.Run("UnsupportedTag", func(t *testing.T) {
		err := UnsupportedTag(99, 3)
		if err.Kind != KindUnsupportedTag {
			t.Errorf("Kind = %v, want %v", err.Kind, KindUnsupportedTag)
		}
		if err.Tag != 99 {
			t.Errorf("Tag = %v, want 99", err.Tag)
		}
		if err.Index != 3 {
			t.Errorf("Index = %v, want 3", err.Index)
		}
	})

	t.Run("InvalidReference", func(t *testing.T) {
		err := InvalidReference(0, "index 0 is never valid")
		if err.Kind != KindInvalidReference {
			t.Errorf("Kind = %v, want %v", err.Kind, KindInvalidReference)
		}
		if err.Index != 0 {
			t.Errorf("Index = %v, want 0", err.Index)
		}
	})

	t.Run("InvalidUTF8", func(t *testing.T) {
		data := []byte{0xff, 0xfe}
		err := InvalidUTF8(5, data)
		if err.Kind != KindInvalidUTF8 {
			t.Errorf("Kind = %v, want %v", err.Kind, KindInvalidUTF8)
		}
		if !containsSubstring(err.Detail, "fffe") {
			t.Errorf("Detail = %v, should contain hex preview", err.Detail)
		}
	})

	t.Run("LengthMismatch", func(t *testing.T) {
		err := LengthMismatch("Code", 12, 10)
		if err.Kind != KindLengthMismatch {
			t.Errorf("Kind = %v, want %v", err.Kind, KindLengthMismatch)
		}
		if err.Expected != 12 || err.Actual != 10 {
			t.Errorf("Expected=%v Actual=%v, want 12/10", err.Expected, err.Actual)
		}
		if len(err.Path) != 1 || err.Path[0] != "Code" {
			t.Errorf("Path = %v, want [Code]", err.Path)
		}
	})

	t.Run("Syntax", func(t *testing.T) {
		err := Syntax(2, "unterminated class name")
		if err.Kind != KindSyntax {
			t.Errorf("Kind = %v, want %v", err.Kind, KindSyntax)
		}
		if err.Position != 2 {
			t.Errorf("Position = %v, want 2", err.Position)
		}
		if err.Phase != PhaseDescriptor {
			t.Errorf("Phase = %v, want %v", err.Phase, PhaseDescriptor)
		}
	})

	t.Run("LimitExceeded", func(t *testing.T) {
		err := LimitExceeded("attribute", 1 << 30, 1 << 20)
		if err.Kind != KindLimitExceeded {
			t.Errorf("Kind = %v, want %v", err.Kind, KindLimitExceeded)
		}
	})
}

func TestInvalidUTF8_TruncatesPreview(t *testing.T) {
	data := make([]byte, 100)
	err := InvalidUTF8(0, data)
	// Preview is capped at 32 bytes = 64 hex chars
	if len(err.Detail) > 120 {
		t.Errorf("Detail too long: %d chars", len(err.Detail))
	}
}

func containsSubstring(s, substr string) bool {
	return len(s) >= len(substr) && (s == substr || len(substr) == 0 ||
		(len(s) > 0 && containsSubstringHelper(s, substr)))
}

func containsSubstringHelper(s, substr string) bool {
	for i := 0; i <= len(s)-len(substr); i++ {
		if s[i:i+len(substr)] == substr {
			return true
		}
	}
	return false
}
