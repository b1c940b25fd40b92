// Package classfile decodes JVM class files into an in-memory structure.
//
// The format is big-endian and strictly sequential: a magic/version header,
// the constant pool, class-level indices, the interface list, field and
// method tables, and a trailing attribute table. Every later section
// references the constant pool by 1-based index.
//
// # Parsing
//
// Decode a class file from bytes or from a path:
//
//	data, _ := os.ReadFile("Main.class")
//	class, err := classfile.Parse(data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	name, _ := class.ThisClassName()
//	if super, ok, _ := class.SuperClassName(); ok {
//	    fmt.Println(name, "extends", super)
//	}
//
// Decoding is forward-only and returns the first error encountered; a
// truncated or corrupted input never produces a partial Class.
//
// # Attributes
//
// Attributes are self-delimiting name + length + payload records. The
// decoder understands ConstantValue, Code, and LineNumberTable; any other
// attribute is preserved verbatim with its raw payload, so forward-format
// extensions never break decoding. A decoder consuming more or fewer bytes
// than an attribute's declared length is reported as a length mismatch.
//
// # Constant pool
//
// The pool models Class, Methodref, InterfaceMethodref, MethodHandle,
// NameAndType, and Utf8 entries. Other known tags are retained as raw
// placeholders of the correct byte width; Long and Double placeholders
// occupy two pool slots as the format requires. Strings use the JVM's
// modified UTF-8, including surrogate-pair encoding of supplementary
// code points.
//
// # Limits
//
// Declared length fields from untrusted input can be bounded:
//
//	class, err := classfile.ParseWithOptions(data,
//	    classfile.WithMaxAttributeLength(1<<20))
package classfile
