package classfile

import (
	"fmt"

	"github.com/jvmkit/classreader/classfile/internal/binary"
	"github.com/jvmkit/classreader/errors"
)

// PoolEntry is one constant pool entry. Tag discriminates the variant;
// only the fields belonging to that variant are meaningful.
//
// Entries with tags the decoder does not model (String, Integer, Float,
// Long, Double, Fieldref, MethodType, Dynamic, InvokeDynamic) keep their
// undecoded payload in Raw so the stream stays aligned. A Long or Double
// occupies two pool slots; the second slot carries tag 0 and is not
// addressable.
type PoolEntry struct {
	Tag              uint8
	NameIndex        uint16 // Class, NameAndType
	ClassIndex       uint16 // Methodref, InterfaceMethodref
	NameAndTypeIndex uint16 // Methodref, InterfaceMethodref
	DescriptorIndex  uint16 // NameAndType
	ReferenceKind    uint8  // MethodHandle
	ReferenceIndex   uint16 // MethodHandle
	Utf8             string // Utf8
	Raw              []byte // placeholder tags
}

// ConstantPool is the class file's 1-indexed table of shared constants.
// Index 0 is never valid.
type ConstantPool struct {
	entries []PoolEntry
}

// Count returns the declared constant_pool_count: one more than the number
// of slots, matching the on-disk field.
func (p *ConstantPool) Count() int {
	return len(p.entries)
}

// Entry returns the entry at the given 1-based index. Index 0, indices past
// the end, and the hidden second slot of a Long or Double are invalid
// references.
func (p *ConstantPool) Entry(index uint16) (*PoolEntry, error) {
	if index == 0 || int(index) >= len(p.entries) {
		return nil, errors.InvalidReference(index, fmt.Sprintf("index out of range [1, %d)", len(p.entries)))
	}
	e := &p.entries[index]
	if e.Tag == 0 {
		return nil, errors.InvalidReference(index, "index points into the second slot of an 8-byte constant")
	}
	return e, nil
}

// Utf8At returns the string of the Utf8 entry at index.
func (p *ConstantPool) Utf8At(index uint16) (string, error) {
	e, err := p.Entry(index)
	if err != nil {
		return "", err
	}
	if e.Tag != TagUtf8 {
		return "", errors.InvalidReference(index, fmt.Sprintf("tag %d is not Utf8", e.Tag))
	}
	return e.Utf8, nil
}

// ClassNameAt resolves a Class entry at index to its name: the entry's
// name_index must point at a Utf8 entry.
func (p *ConstantPool) ClassNameAt(index uint16) (string, error) {
	e, err := p.Entry(index)
	if err != nil {
		return "", err
	}
	if e.Tag != TagClass {
		return "", errors.InvalidReference(index, fmt.Sprintf("tag %d is not Class", e.Tag))
	}
	return p.Utf8At(e.NameIndex)
}

// FindUtf8 returns the 1-based index of the first Utf8 entry equal to needle.
// The scan is linear; the pool carries no name index and this is not an
// optimization target.
func (p *ConstantPool) FindUtf8(needle string) (uint16, bool) {
	for i := 1; i < len(p.entries); i++ {
		e := &p.entries[i]
		if e.Tag == TagUtf8 && e.Utf8 == needle {
			return uint16(i), true
		}
	}
	return 0, false
}

// placeholderWidth gives the payload byte width of known tags the decoder
// keeps as raw placeholders. Tags absent from this table and from the
// modeled set are unsupported: their width is unknown and the stream
// cannot safely continue.
var placeholderWidth = map[uint8]int{
	TagInteger:       4,
	TagFloat:         4,
	TagLong:          8,
	TagDouble:        8,
	TagString:        2,
	TagFieldref:      4,
	TagMethodType:    2,
	TagDynamic:       4,
	TagInvokeDynamic: 4,
}

// parsePool reads the constant_pool_count and then count-1 tag-prefixed
// entries. The returned pool is 1-indexed; slot 0 stays empty.
func parsePool(r *binary.Reader) (*ConstantPool, error) {
	count, err := r.ReadU16()
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, errors.InvalidData(errors.PhaseDecode, []string{"constant pool"}, "constant_pool_count is 0")
	}

	entries := make([]PoolEntry, count)
	for i := uint16(1); i < count; i++ {
		tag, err := r.ReadU8()
		if err != nil {
			return nil, err
		}

		switch tag {
		case TagUtf8:
			length, err := r.ReadU16()
			if err != nil {
				return nil, err
			}
			raw, err := r.ReadBytes(int(length))
			if err != nil {
				return nil, err
			}
			s, err := binary.DecodeModifiedUTF8(raw)
			if err != nil {
				return nil, err
			}
			entries[i] = PoolEntry{Tag: tag, Utf8: s}

		case TagClass:
			nameIndex, err := r.ReadU16()
			if err != nil {
				return nil, err
			}
			entries[i] = PoolEntry{Tag: tag, NameIndex: nameIndex}

		case TagMethodref, TagInterfaceMethodref:
			classIndex, err := r.ReadU16()
			if err != nil {
				return nil, err
			}
			natIndex, err := r.ReadU16()
			if err != nil {
				return nil, err
			}
			entries[i] = PoolEntry{Tag: tag, ClassIndex: classIndex, NameAndTypeIndex: natIndex}

		case TagNameAndType:
			nameIndex, err := r.ReadU16()
			if err != nil {
				return nil, err
			}
			descIndex, err := r.ReadU16()
			if err != nil {
				return nil, err
			}
			entries[i] = PoolEntry{Tag: tag, NameIndex: nameIndex, DescriptorIndex: descIndex}

		case TagMethodHandle:
			kind, err := r.ReadU8()
			if err != nil {
				return nil, err
			}
			refIndex, err := r.ReadU16()
			if err != nil {
				return nil, err
			}
			entries[i] = PoolEntry{Tag: tag, ReferenceKind: kind, ReferenceIndex: refIndex}

		default:
			width, ok := placeholderWidth[tag]
			if !ok {
				return nil, errors.UnsupportedTag(tag, i)
			}
			raw, err := r.ReadBytes(width)
			if err != nil {
				return nil, err
			}
			entries[i] = PoolEntry{Tag: tag, Raw: raw}
			if tag == TagLong || tag == TagDouble {
				// 8-byte constants take two slots; the next index stays empty
				i++
			}
		}
	}

	return &ConstantPool{entries: entries}, nil
}
