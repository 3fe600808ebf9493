package cfgattrs

import (
	"fmt"

	"github.com/alecthomas/repr"
)

func (e *Expander) traceEntries(entries []Entry) {
	for _, entry := range entries {
		fmt.Fprintf(e.trace, "%s: %s\n", entry.Position(), repr.String(entry))
	}
}
