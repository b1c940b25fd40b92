package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/jvmkit/classreader/classfile"
	"github.com/jvmkit/classreader/descriptor"
)

func main() {
	var (
		classPath   = flag.String("class", "", "Path to .class file")
		methodName  = flag.String("method", "", "Dump the bytecode of the named method")
		descString  = flag.String("desc", "", "Parse a descriptor string and exit")
		maxAttr     = flag.Int("max-attr", 0, "Maximum attribute length in bytes (0 = default)")
		verbose     = flag.Bool("v", false, "Verbose logging")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()
		classfile.SetLogger(logger)
	}

	if *descString != "" {
		t, err := descriptor.Parse(*descString)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(t.String())
		return
	}

	if *classPath == "" {
		fmt.Fprintln(os.Stderr, "Usage: javadump -class <file.class> [-method name]")
		fmt.Fprintln(os.Stderr, "       javadump -class <file.class> -i  (interactive mode)")
		fmt.Fprintln(os.Stderr, "       javadump -desc <descriptor>")
		os.Exit(1)
	}

	if *interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode needs a terminal")
			os.Exit(1)
		}
		if err := runInteractive(*classPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(*classPath, *methodName, *maxAttr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(classPath, methodName string, maxAttr int) error {
	var opts []classfile.Option
	if maxAttr > 0 {
		opts = append(opts, classfile.WithMaxAttributeLength(maxAttr))
	}

	c, err := classfile.ParseFile(classPath, opts...)
	if err != nil {
		return fmt.Errorf("parse: %w", err)
	}

	name, err := c.ThisClassName()
	if err != nil {
		return fmt.Errorf("class name: %w", err)
	}

	fmt.Printf("Class:   %s\n", name)
	fmt.Printf("Version: %d.%d\n", c.MajorVersion, c.MinorVersion)
	fmt.Printf("Flags:   %s\n", strings.Join(classfile.FlagNames(c.AccessFlags), " "))

	if super, ok, err := c.SuperClassName(); err != nil {
		return fmt.Errorf("super class: %w", err)
	} else if ok {
		fmt.Printf("Super:   %s\n", super)
	}

	ifaces, err := c.InterfaceNames()
	if err != nil {
		return fmt.Errorf("interfaces: %w", err)
	}
	if len(ifaces) > 0 {
		fmt.Printf("Implements: %s\n", strings.Join(ifaces, ", "))
	}
	fmt.Printf("Constants: %d\n", c.Pool.Count())

	if len(c.Fields) > 0 {
		fmt.Printf("\nFields:\n")
		for i := range c.Fields {
			fmt.Printf("  %s\n", memberSignature(&c.Fields[i], c.Pool))
		}
	}

	if len(c.Methods) > 0 {
		fmt.Printf("\nMethods:\n")
		for i := range c.Methods {
			fmt.Printf("  %s\n", memberSignature(&c.Methods[i], c.Pool))
		}
	}

	if methodName == "" {
		return nil
	}

	m := c.FindMethod(methodName)
	if m == nil {
		return fmt.Errorf("no method named %q", methodName)
	}
	return dumpMethod(c, m, methodName)
}

func dumpMethod(c *classfile.Class, m *classfile.Member, name string) error {
	code := m.Code()
	if code == nil {
		return fmt.Errorf("method %q has no Code attribute", name)
	}

	fmt.Printf("\nCode of %s (max_stack=%d, max_locals=%d, %d bytes):\n",
		name, code.MaxStack, code.MaxLocals, len(code.Code))
	hexDump(os.Stdout, code.Code)

	if len(code.ExceptionTable) > 0 {
		fmt.Printf("\nException table:\n")
		for _, e := range code.ExceptionTable {
			catch := "any"
			if e.CatchType != 0 {
				if cn, err := c.Pool.ClassNameAt(e.CatchType); err == nil {
					catch = cn
				}
			}
			fmt.Printf("  [%d, %d) -> %d  catch %s\n", e.StartPC, e.EndPC, e.HandlerPC, catch)
		}
	}

	if lnt := code.LineNumberTable(); lnt != nil {
		fmt.Printf("\nLine numbers:\n")
		for _, e := range lnt.Entries {
			fmt.Printf("  pc %4d  line %d\n", e.StartPC, e.LineNumber)
		}
	}
	return nil
}

// memberSignature renders "flags type name(params)" with descriptors turned
// back into source-level types; a descriptor that fails to parse is shown raw.
func memberSignature(m *classfile.Member, pool *classfile.ConstantPool) string {
	name, err := m.Name(pool)
	if err != nil {
		name = "<unresolved>"
	}
	desc, err := m.Descriptor(pool)
	if err != nil {
		desc = ""
	}

	flags := strings.Join(classfile.FlagNames(m.AccessFlags), " ")
	rendered := desc
	if t, err := descriptor.Parse(desc); err == nil {
		rendered = t.String()
	}

	if flags == "" {
		return fmt.Sprintf("%s %s", rendered, name)
	}
	return fmt.Sprintf("%s %s %s", flags, rendered, name)
}

func hexDump(w *os.File, data []byte) {
	for off := 0; off < len(data); off += 16 {
		end := off + 16
		if end > len(data) {
			end = len(data)
		}
		fmt.Fprintf(w, "  %04x:", off)
		for _, b := range data[off:end] {
			fmt.Fprintf(w, " %02x", b)
		}
		fmt.Fprintln(w)
	}
}
