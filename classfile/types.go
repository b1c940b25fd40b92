package classfile

// Class is a fully decoded class file. It is constructed once by Parse and
// immutable thereafter.
type Class struct {
	MinorVersion uint16
	MajorVersion uint16
	AccessFlags  uint16
	ThisClass    uint16
	SuperClass   uint16
	Interfaces   []uint16
	Fields       []Member
	Methods      []Member
	Attributes   []Attribute
	Pool         *ConstantPool
}

// Member is a field or method entry. Name and descriptor are constant pool
// indices; resolution is done lazily through the pool.
type Member struct {
	AccessFlags     uint16
	NameIndex       uint16
	DescriptorIndex uint16
	Attributes      []Attribute
}

// Name resolves the member's name through the constant pool.
func (m *Member) Name(pool *ConstantPool) (string, error) {
	return pool.Utf8At(m.NameIndex)
}

// Descriptor resolves the member's descriptor string through the constant pool.
func (m *Member) Descriptor(pool *ConstantPool) (string, error) {
	return pool.Utf8At(m.DescriptorIndex)
}

// Code returns the member's Code attribute, or nil if it has none
// (abstract and native methods, and all fields).
func (m *Member) Code() *CodeAttr {
	for i := range m.Attributes {
		if m.Attributes[i].Code != nil {
			return m.Attributes[i].Code
		}
	}
	return nil
}

// Attribute is one decoded attribute record. Known names decode into the
// corresponding typed payload field; anything else keeps its raw payload
// in Data so the record survives verbatim.
type Attribute struct {
	Name          string
	ConstantValue *ConstantValueAttr
	Code          *CodeAttr
	LineNumbers   *LineNumberTableAttr
	Data          []byte
}

// ConstantValueAttr holds the pool index of a field's constant initial value.
// The value itself is resolved by the caller based on the field's descriptor.
type ConstantValueAttr struct {
	ValueIndex uint16
}

// CodeAttr holds a method body: stack/local sizes, raw instruction bytes,
// the exception table, and nested attributes.
type CodeAttr struct {
	MaxStack       uint16
	MaxLocals      uint16
	Code           []byte
	ExceptionTable []ExceptionTableEntry
	Attributes     []Attribute
}

// LineNumberTable returns the nested LineNumberTable attribute, or nil.
func (c *CodeAttr) LineNumberTable() *LineNumberTableAttr {
	for i := range c.Attributes {
		if c.Attributes[i].LineNumbers != nil {
			return c.Attributes[i].LineNumbers
		}
	}
	return nil
}

// HandlerFor returns the first exception table entry covering pc whose catch
// type matches catchType or is the catch-all entry (catch_type 0).
func (c *CodeAttr) HandlerFor(pc uint16, catchType uint16) (ExceptionTableEntry, bool) {
	for _, e := range c.ExceptionTable {
		if pc >= e.StartPC && pc < e.EndPC && (e.CatchType == 0 || e.CatchType == catchType) {
			return e, true
		}
	}
	return ExceptionTableEntry{}, false
}

// ExceptionTableEntry describes one handler range. The handler covers program
// counters in [StartPC, EndPC). CatchType 0 means catch-all.
type ExceptionTableEntry struct {
	StartPC   uint16
	EndPC     uint16
	HandlerPC uint16
	CatchType uint16
}

// LineNumberTableAttr maps bytecode offsets to source line numbers.
// Entries keep their file order; intervals run from one StartPC to the next.
type LineNumberTableAttr struct {
	Entries []LineNumberEntry
}

// LineNumberEntry associates the bytecode at StartPC with a source line.
type LineNumberEntry struct {
	StartPC    uint16
	LineNumber uint16
}

// LineFor returns the source line for the interval containing pc.
// It reports false when pc precedes the first entry or the table is empty.
// Entries are usually sorted by StartPC but the format does not require it,
// so the lookup tracks the greatest StartPC not exceeding pc.
func (t *LineNumberTableAttr) LineFor(pc uint16) (uint16, bool) {
	var line, best uint16
	found := false
	for _, e := range t.Entries {
		if e.StartPC <= pc && (!found || e.StartPC >= best) {
			best = e.StartPC
			line = e.LineNumber
			found = true
		}
	}
	return line, found
}
