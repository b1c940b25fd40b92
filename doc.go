// Package classreader decodes JVM class files into navigable Go structures.
//
// The decoder reads the big-endian class file format: magic and version,
// the self-referential constant pool, access flags, the class hierarchy
// references, field and method tables, and the recursive attribute records
// attached at every level.
//
// # Architecture Overview
//
// The library is organized into packages with distinct responsibilities:
//
//	classreader/         Root package with the convenience entry points
//	├── classfile/       Class file decoding, constant pool, attributes
//	├── descriptor/      Field and method descriptor parsing
//	└── errors/          Structured error types for debugging
//
// # Quick Start
//
// Decode a class file and look up a method body:
//
//	c, err := classreader.Decode(data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	name, _ := c.ThisClassName()
//	fmt.Println(name)
//
//	if m := c.FindMethod("main"); m != nil {
//	    fmt.Printf("% x\n", c.CodeOf(m))
//	}
//
// Turn a descriptor string into a structured type:
//
//	t, err := classreader.ParseDescriptor("([Ljava/lang/String;)V")
//	fmt.Println(t) // "(java.lang.String[]) void"
//
// # Error Model
//
// Every failure is a *errors.Error carrying the processing phase and an
// error kind, matchable with errors.Is against a Phase/Kind target. Decoding
// is strictly forward: the first malformed byte aborts the parse and no
// partial structure is returned.
//
// # Unknown Input
//
// Attributes with unrecognized names are preserved verbatim rather than
// rejected; the format is forward-extensible and every attribute record is
// self-delimiting. Constant pool tags outside the supported set abort the
// parse, because their byte width is unknown and the stream cannot be
// realigned past them.
package classreader
