package classreader

import (
	"github.com/jvmkit/classreader/classfile"
	"github.com/jvmkit/classreader/descriptor"
)

// Decode parses a class file from the given bytes.
func Decode(data []byte) (*classfile.Class, error) {
	return classfile.Parse(data)
}

// DecodeFile reads and parses the class file at path.
func DecodeFile(path string, opts ...classfile.Option) (*classfile.Class, error) {
	return classfile.ParseFile(path, opts...)
}

// ParseDescriptor parses a field or method descriptor string.
func ParseDescriptor(s string) (descriptor.Type, error) {
	return descriptor.Parse(s)
}
