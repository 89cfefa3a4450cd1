package output

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

const sectionWidth = 61 // inner width between │ and line end

// Section renders a box-drawing framed output section.
type Section struct {
	w    io.Writer
	name string
}

// NewSection creates a section and writes its header.
func NewSection(w io.Writer, name string) *Section {
	s := &Section{w: w, name: name}
	s.writeHeader()
	return s
}

// Row writes a content line inside the section frame.
// An empty line is written without trailing whitespace.
func (s *Section) Row(format string, args ...any) {
	line := fmt.Sprintf(format, args...)
	if line == "" {
		fmt.Fprintln(s.w, "    │")
		return
	}
	fmt.Fprintf(s.w, "    │ %s\n", line)
}

// Separator writes a mid-section divider.
func (s *Section) Separator() {
	fmt.Fprintf(s.w, "    ├%s\n", strings.Repeat("─", sectionWidth))
}

// Close writes the section footer.
func (s *Section) Close() {
	fmt.Fprintf(s.w, "    └%s\n", strings.Repeat("─", sectionWidth))
}

// writeHeader renders: ── Name ──────────────────────────
func (s *Section) writeHeader() {
	label := fmt.Sprintf("── %s ", s.name)
	suffix := "──"

	// Width is counted in runes; the rule characters are multi-byte.
	fill := HeaderWidth - utf8.RuneCountInString(label) - utf8.RuneCountInString(suffix)
	if fill < 1 {
		fill = 1
	}

	fmt.Fprintf(s.w, "\n    %s%s%s\n", label, strings.Repeat("─", fill), suffix)
}

// HeaderWidth is the rune width of a section header after its indent.
const HeaderWidth = sectionWidth + 4

// MaxRowWidth is the longest row text that stays inside the header width.
const MaxRowWidth = HeaderWidth - 2
