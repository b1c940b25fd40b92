package descriptor

import (
	"fmt"

	"github.com/jvmkit/classreader/errors"
)

// Parse parses a descriptor string: a field descriptor, or a method
// descriptor when the input starts with '('. The whole input must be
// consumed; trailing characters after a complete descriptor are an error.
func Parse(s string) (Type, error) {
	p := &parser{input: s}

	var t Type
	var err error
	if p.peek() == '(' {
		t, err = p.parseMethod()
	} else {
		t, err = p.parseField()
	}
	if err != nil {
		return Type{}, err
	}
	if p.pos != len(s) {
		return Type{}, errors.Syntax(p.pos, "trailing characters after descriptor")
	}
	return t, nil
}

// ParseMethod parses a method descriptor: '(' field descriptors ')' followed
// by a field descriptor or 'V'.
func ParseMethod(s string) (Type, error) {
	if len(s) == 0 || s[0] != '(' {
		return Type{}, errors.Syntax(0, "method descriptor must start with '('")
	}
	return Parse(s)
}

// parser is a cursor over the descriptor string. The grammar is LL(1) on the
// leading character, so a single forward pass suffices.
type parser struct {
	input string
	pos   int
}

func (p *parser) peek() byte {
	if p.pos < len(p.input) {
		return p.input[p.pos]
	}
	return 0
}

func (p *parser) next() (byte, bool) {
	if p.pos >= len(p.input) {
		return 0, false
	}
	c := p.input[p.pos]
	p.pos++
	return c, true
}

func (p *parser) parseField() (Type, error) {
	c, ok := p.next()
	if !ok {
		return Type{}, errors.Syntax(p.pos, "unexpected end of descriptor")
	}

	switch c {
	case 'B':
		return Type{Kind: KindByte}, nil
	case 'C':
		return Type{Kind: KindChar}, nil
	case 'D':
		return Type{Kind: KindDouble}, nil
	case 'F':
		return Type{Kind: KindFloat}, nil
	case 'I':
		return Type{Kind: KindInt}, nil
	case 'J':
		return Type{Kind: KindLong}, nil
	case 'S':
		return Type{Kind: KindShort}, nil
	case 'Z':
		return Type{Kind: KindBoolean}, nil

	case 'L':
		start := p.pos
		for {
			c, ok := p.next()
			if !ok {
				return Type{}, errors.Syntax(start - 1, "unterminated class name")
			}
			if c == ';' {
				break
			}
		}
		name := p.input[start : p.pos-1]
		if name == "" {
			return Type{}, errors.Syntax(start, "empty class name")
		}
		return Type{Kind: KindClass, Name: name}, nil

	case '[':
		dims := 1
		for p.peek() == '[' {
			p.pos++
			dims++
		}
		elem, err := p.parseField()
		if err != nil {
			return Type{}, err
		}
		return Type{Kind: KindArray, Dims: dims, Elem: &elem}, nil

	case 'V':
		return Type{}, errors.Syntax(p.pos-1, "void is only valid as a return type")

	default:
		return Type{}, errors.Syntax(p.pos-1, fmt.Sprintf("unknown descriptor character %q", c))
	}
}

func (p *parser) parseMethod() (Type, error) {
	// Caller guarantees the leading '('
	p.pos++

	var params []Type
	for p.peek() != ')' {
		if p.pos >= len(p.input) {
			return Type{}, errors.Syntax(p.pos, "unterminated parameter list")
		}
		t, err := p.parseField()
		if err != nil {
			return Type{}, err
		}
		params = append(params, t)
	}
	p.pos++ // ')'

	ret, err := p.parseReturn()
	if err != nil {
		return Type{}, err
	}
	return Type{Kind: KindMethod, Params: params, Return: &ret}, nil
}

func (p *parser) parseReturn() (Type, error) {
	if p.peek() == 'V' {
		p.pos++
		return Type{Kind: KindVoid}, nil
	}
	return p.parseField()
}
