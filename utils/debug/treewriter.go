package debug

import (
	"fmt"
	"strconv"
	"strings"
)

type TreeWriter struct {
	w *strings.Builder
}

func NewTreeWriter() *TreeWriter {
	return &TreeWriter{
		w: &strings.Builder{},
	}
}

func (tw TreeWriter) String() string {
	return tw.w.String()
}

func (tw TreeWriter) Line(depth int, format string, args ...any) {
	for range depth {
		tw.w.WriteString("  ")
	}
	fmt.Fprintf(tw.w, format, args...)
	tw.w.WriteByte('\n')
}

// Text writes a quoted leaf value at the given depth. Whitespace-only values
// are skipped so indentation leaves do not clutter the dump.
func (tw TreeWriter) Text(depth int, value string) {
	if strings.TrimSpace(value) == "" {
		return
	}
	for range depth {
		tw.w.WriteString("  ")
	}
	tw.w.WriteString(strconv.Quote(value))
	tw.w.WriteByte('\n')
}

// FormatAttrs renders key=value pairs for inclusion on an element line.
func FormatAttrs(pairs [][2]string) string {
	if len(pairs) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, p := range pairs {
		sb.WriteByte(' ')
		sb.WriteString(p[0])
		sb.WriteByte('=')
		sb.WriteString(strconv.Quote(p[1]))
	}
	return sb.String()
}
