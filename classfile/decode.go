package classfile

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/jvmkit/classreader/classfile/internal/binary"
	"github.com/jvmkit/classreader/errors"
)

type config struct {
	maxAttributeLength int
	maxCodeLength      int
}

// Option configures decoding limits.
type Option func(*config)

// WithMaxAttributeLength bounds the declared length of any single attribute.
// Zero disables the bound. The default is 16 MiB.
func WithMaxAttributeLength(n int) Option {
	return func(c *config) { c.maxAttributeLength = n }
}

// WithMaxCodeLength bounds the declared code_length of a Code attribute.
// Zero disables the bound. The default is 16 MiB.
func WithMaxCodeLength(n int) Option {
	return func(c *config) { c.maxCodeLength = n }
}

func defaultConfig() config {
	return config{
		maxAttributeLength: 16 << 20,
		maxCodeLength:      16 << 20,
	}
}

// Parse decodes a class file from the given bytes.
func Parse(data []byte) (*Class, error) {
	return ParseWithOptions(data)
}

// ParseFile reads and decodes the class file at path. The file handle is
// released before decoding begins.
func ParseFile(path string, opts ...Option) (*Class, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseWithOptions(data, opts...)
}

// ParseWithOptions decodes a class file with the given limits applied.
// Decoding is strictly forward: the first error encountered is returned
// and no partial structure is produced.
func ParseWithOptions(data []byte, opts ...Option) (*Class, error) {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}

	r := binary.NewReader(data)

	magic, err := r.ReadU32()
	if err != nil {
		return nil, r.WrapError("header", err)
	}
	if magic != Magic {
		return nil, errors.MagicMismatch(magic, Magic)
	}

	c := &Class{}

	// Version range is not validated; callers that care check MajorVersion.
	if c.MinorVersion, err = r.ReadU16(); err != nil {
		return nil, r.WrapError("header", err)
	}
	if c.MajorVersion, err = r.ReadU16(); err != nil {
		return nil, r.WrapError("header", err)
	}

	if c.Pool, err = parsePool(r); err != nil {
		return nil, fmt.Errorf("constant pool: %w", err)
	}

	if c.AccessFlags, err = r.ReadU16(); err != nil {
		return nil, r.WrapError("access flags", err)
	}
	if c.ThisClass, err = r.ReadU16(); err != nil {
		return nil, r.WrapError("this_class", err)
	}
	if c.SuperClass, err = r.ReadU16(); err != nil {
		return nil, r.WrapError("super_class", err)
	}

	interfacesCount, err := r.ReadU16()
	if err != nil {
		return nil, r.WrapError("interfaces", err)
	}
	c.Interfaces = make([]uint16, interfacesCount)
	for i := range c.Interfaces {
		if c.Interfaces[i], err = r.ReadU16(); err != nil {
			return nil, r.WrapError("interfaces", err)
		}
	}

	if c.Fields, err = parseMembers(r, c.Pool, &cfg); err != nil {
		return nil, fmt.Errorf("fields: %w", err)
	}
	if c.Methods, err = parseMembers(r, c.Pool, &cfg); err != nil {
		return nil, fmt.Errorf("methods: %w", err)
	}

	// Class-level attributes trail the method table
	if c.Attributes, err = parseAttributes(r, c.Pool, &cfg); err != nil {
		return nil, fmt.Errorf("class attributes: %w", err)
	}

	Logger().Debug("class file decoded",
		zap.Uint16("major", c.MajorVersion),
		zap.Int("constants", c.Pool.Count()),
		zap.Int("fields", len(c.Fields)),
		zap.Int("methods", len(c.Methods)))

	return c, nil
}

// parseMembers reads a u16 count and then that many field or method records;
// the two tables share a layout.
func parseMembers(r *binary.Reader, pool *ConstantPool, cfg *config) ([]Member, error) {
	count, err := r.ReadU16()
	if err != nil {
		return nil, err
	}
	members := make([]Member, count)
	for i := range members {
		if members[i].AccessFlags, err = r.ReadU16(); err != nil {
			return nil, err
		}
		if members[i].NameIndex, err = r.ReadU16(); err != nil {
			return nil, err
		}
		if members[i].DescriptorIndex, err = r.ReadU16(); err != nil {
			return nil, err
		}
		if members[i].Attributes, err = parseAttributes(r, pool, cfg); err != nil {
			return nil, err
		}
	}
	return members, nil
}

// ThisClassName resolves the decoded class's own name.
func (c *Class) ThisClassName() (string, error) {
	return c.Pool.ClassNameAt(c.ThisClass)
}

// HasSuperClass reports whether the class has a super class. Only the root
// of the hierarchy has super_class 0.
func (c *Class) HasSuperClass() bool {
	return c.SuperClass != 0
}

// SuperClassName resolves the super class name. ok is false when the class
// is the root of the hierarchy (super_class index 0).
func (c *Class) SuperClassName() (name string, ok bool, err error) {
	if !c.HasSuperClass() {
		return "", false, nil
	}
	name, err = c.Pool.ClassNameAt(c.SuperClass)
	if err != nil {
		return "", false, err
	}
	return name, true, nil
}

// InterfaceNames resolves the names of all directly implemented interfaces,
// in declaration order.
func (c *Class) InterfaceNames() ([]string, error) {
	names := make([]string, len(c.Interfaces))
	for i, idx := range c.Interfaces {
		name, err := c.Pool.ClassNameAt(idx)
		if err != nil {
			return nil, err
		}
		names[i] = name
	}
	return names, nil
}

// FindMethod returns the first method whose name matches, or nil.
// The name is located in the constant pool first, then methods are scanned
// by name index, so an absent name costs one pool scan.
func (c *Class) FindMethod(name string) *Member {
	return findMember(c.Methods, c.Pool, name)
}

// FindField returns the first field whose name matches, or nil.
func (c *Class) FindField(name string) *Member {
	return findMember(c.Fields, c.Pool, name)
}

func findMember(members []Member, pool *ConstantPool, name string) *Member {
	idx, ok := pool.FindUtf8(name)
	if !ok {
		return nil
	}
	for i := range members {
		if members[i].NameIndex == idx {
			return &members[i]
		}
	}
	return nil
}

// CodeOf returns the raw instruction bytes of the member's Code attribute,
// or nil if it has none.
func (c *Class) CodeOf(m *Member) []byte {
	if m == nil {
		return nil
	}
	if code := m.Code(); code != nil {
		return code.Code
	}
	return nil
}
