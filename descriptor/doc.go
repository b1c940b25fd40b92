// Package descriptor parses JVM type and method descriptor strings.
//
// Field descriptors use single-letter primitive codes (B, C, D, F, I, J, S,
// Z), "L<name>;" for class references, and a leading '[' per array
// dimension. Method descriptors wrap parameter descriptors in parentheses
// followed by a return descriptor, where 'V' (void) is valid only in return
// position.
//
//	t, err := descriptor.Parse("(ILjava/lang/String;)V")
//	// t.Kind == descriptor.KindMethod
//	// t.Params: [int, java.lang.String], t.Return: void
//
// The grammar is LL(1) on the leading character, so parsing is a single
// forward pass with no backtracking. Malformed input fails with a syntax
// error carrying the offset and reason; a partial or default type is never
// returned.
package descriptor
