package cfgattrs

import "strings"

// emit serializes the rewritten attribute list immediately ahead of the
// item's remaining tokens. The item itself is never altered.
//
// Because the attribute list is emitted as a prefix, attributes produced here
// always precede attributes the item already carried, whatever their original
// textual interleaving. That ordering loss is inherent to expanding the
// wrapper separately from its siblings and is documented rather than worked
// around.
func emit(attrs []string, item string) string {
	var out strings.Builder
	for _, attr := range attrs {
		out.WriteString(attr)
		out.WriteString("\n")
	}
	out.WriteString(item)
	return out.String()
}
