package classfile

// Magic is the fixed four-byte prefix of every class file.
const Magic uint32 = 0xCAFEBABE

// Constant pool tags.
const (
	TagUtf8               uint8 = 1
	TagInteger            uint8 = 3
	TagFloat              uint8 = 4
	TagLong               uint8 = 5
	TagDouble             uint8 = 6
	TagClass              uint8 = 7
	TagString             uint8 = 8
	TagFieldref           uint8 = 9
	TagMethodref          uint8 = 10
	TagInterfaceMethodref uint8 = 11
	TagNameAndType        uint8 = 12
	TagMethodHandle       uint8 = 15
	TagMethodType         uint8 = 16
	TagDynamic            uint8 = 17
	TagInvokeDynamic      uint8 = 18
)

// Attribute names with dedicated decoders. Any other name is preserved
// as an opaque payload.
const (
	AttrConstantValue   = "ConstantValue"
	AttrCode            = "Code"
	AttrLineNumberTable = "LineNumberTable"
)

// Access flags for classes, fields, and methods.
const (
	AccPublic     uint16 = 0x0001
	AccPrivate    uint16 = 0x0002
	AccProtected  uint16 = 0x0004
	AccStatic     uint16 = 0x0008
	AccFinal      uint16 = 0x0010
	AccSuper      uint16 = 0x0020 // class; same bit as ACC_SYNCHRONIZED on methods
	AccVolatile   uint16 = 0x0040 // field
	AccTransient  uint16 = 0x0080 // field
	AccNative     uint16 = 0x0100 // method
	AccInterface  uint16 = 0x0200 // class
	AccAbstract   uint16 = 0x0400
	AccStrict     uint16 = 0x0800 // method
	AccSynthetic  uint16 = 0x1000
	AccAnnotation uint16 = 0x2000 // class
	AccEnum       uint16 = 0x4000
)

var flagNames = []struct {
	bit  uint16
	name string
}{
	{AccPublic, "public"},
	{AccPrivate, "private"},
	{AccProtected, "protected"},
	{AccStatic, "static"},
	{AccFinal, "final"},
	{AccAbstract, "abstract"},
	{AccNative, "native"},
	{AccInterface, "interface"},
	{AccSynthetic, "synthetic"},
	{AccEnum, "enum"},
}

// FlagNames returns the human-readable modifier names set in flags,
// in declaration order. Used by callers rendering summaries.
func FlagNames(flags uint16) []string {
	var names []string
	for _, f := range flagNames {
		if flags&f.bit != 0 {
			names = append(names, f.name)
		}
	}
	return names
}
