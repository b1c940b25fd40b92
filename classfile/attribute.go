package classfile

import (
	stderrors "errors"

	"github.com/jvmkit/classreader/classfile/internal/binary"
	"github.com/jvmkit/classreader/errors"
)

var eofKind = &errors.Error{Phase: errors.PhaseDecode, Kind: errors.KindEOF}

// parseAttributes reads a u16 count and then that many name/length-prefixed
// attribute records. Known names get their specialized decoder over a
// sub-reader bounded to the declared length; unknown names keep the payload
// verbatim. Either way an attribute must consume exactly its declared length.
func parseAttributes(r *binary.Reader, pool *ConstantPool, cfg *config) ([]Attribute, error) {
	count, err := r.ReadU16()
	if err != nil {
		return nil, err
	}

	var attrs []Attribute
	for i := uint16(0); i < count; i++ {
		nameIndex, err := r.ReadU16()
		if err != nil {
			return nil, err
		}
		length, err := r.ReadU32()
		if err != nil {
			return nil, err
		}
		if cfg.maxAttributeLength > 0 && int(length) > cfg.maxAttributeLength {
			return nil, errors.LimitExceeded("attribute", int(length), cfg.maxAttributeLength)
		}

		name, err := pool.Utf8At(nameIndex)
		if err != nil {
			return nil, err
		}

		payload, err := r.ReadBytes(int(length))
		if err != nil {
			return nil, err
		}

		attr, err := decodeAttribute(name, payload, pool, cfg)
		if err != nil {
			return nil, err
		}
		attrs = append(attrs, attr)
	}
	return attrs, nil
}

// decodeAttribute dispatches on the resolved attribute name. The payload
// slice is exactly the declared length, so a decoder that runs past its end
// or leaves bytes behind has contradicted the declared length.
func decodeAttribute(name string, payload []byte, pool *ConstantPool, cfg *config) (Attribute, error) {
	attr := Attribute{Name: name}
	sub := binary.NewReader(payload)

	var err error
	switch name {
	case AttrConstantValue:
		attr.ConstantValue, err = decodeConstantValue(sub)
	case AttrCode:
		attr.Code, err = decodeCode(sub, pool, cfg)
	case AttrLineNumberTable:
		attr.LineNumbers, err = decodeLineNumberTable(sub)
	default:
		// Unrecognized attributes are self-delimiting: preserve and skip,
		// never reject.
		attr.Data = payload
		return attr, nil
	}

	if err != nil {
		if stderrors.Is(err, eofKind) {
			// The decoder ran out of payload: the declared length is short
			return Attribute{}, errors.New(errors.PhaseDecode, errors.KindLengthMismatch).
				Path(name).
				Detail("declared length %d too short", len(payload)).
				Cause(err).
				Build()
		}
		return Attribute{}, err
	}
	if sub.Remaining() != 0 {
		return Attribute{}, errors.LengthMismatch(name, len(payload), len(payload)-sub.Remaining())
	}
	return attr, nil
}

func decodeConstantValue(r *binary.Reader) (*ConstantValueAttr, error) {
	valueIndex, err := r.ReadU16()
	if err != nil {
		return nil, err
	}
	return &ConstantValueAttr{ValueIndex: valueIndex}, nil
}

// decodeCode reads a Code attribute: sizes, raw instruction bytes, the
// exception table, and a nested attribute table. The nesting terminates
// because every nested attribute is bounded by this attribute's own length.
func decodeCode(r *binary.Reader, pool *ConstantPool, cfg *config) (*CodeAttr, error) {
	maxStack, err := r.ReadU16()
	if err != nil {
		return nil, err
	}
	maxLocals, err := r.ReadU16()
	if err != nil {
		return nil, err
	}

	codeLength, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	if cfg.maxCodeLength > 0 && int(codeLength) > cfg.maxCodeLength {
		return nil, errors.LimitExceeded("code", int(codeLength), cfg.maxCodeLength)
	}
	code, err := r.ReadBytes(int(codeLength))
	if err != nil {
		return nil, err
	}

	excCount, err := r.ReadU16()
	if err != nil {
		return nil, err
	}
	table := make([]ExceptionTableEntry, excCount)
	for i := range table {
		if table[i].StartPC, err = r.ReadU16(); err != nil {
			return nil, err
		}
		if table[i].EndPC, err = r.ReadU16(); err != nil {
			return nil, err
		}
		if table[i].HandlerPC, err = r.ReadU16(); err != nil {
			return nil, err
		}
		if table[i].CatchType, err = r.ReadU16(); err != nil {
			return nil, err
		}
	}

	nested, err := parseAttributes(r, pool, cfg)
	if err != nil {
		return nil, err
	}

	return &CodeAttr{
		MaxStack:       maxStack,
		MaxLocals:      maxLocals,
		Code:           code,
		ExceptionTable: table,
		Attributes:     nested,
	}, nil
}

func decodeLineNumberTable(r *binary.Reader) (*LineNumberTableAttr, error) {
	count, err := r.ReadU16()
	if err != nil {
		return nil, err
	}
	entries := make([]LineNumberEntry, count)
	for i := range entries {
		if entries[i].StartPC, err = r.ReadU16(); err != nil {
			return nil, err
		}
		if entries[i].LineNumber, err = r.ReadU16(); err != nil {
			return nil, err
		}
	}
	return &LineNumberTableAttr{Entries: entries}, nil
}
