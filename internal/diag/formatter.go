package diag

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// Formatter renders diagnostics for humans. It caches loaded source files so
// that printing many diagnostics against the same file only reads it once.
type Formatter struct {
	sourceCache map[string]string
}

// NewFormatter creates a new diagnostic formatter.
func NewFormatter() *Formatter {
	return &Formatter{sourceCache: make(map[string]string)}
}

// LoadSource loads source code for a file, caching the result.
func (f *Formatter) LoadSource(filename string) (string, error) {
	if filename == "" {
		return "", nil
	}
	if src, ok := f.sourceCache[filename]; ok {
		return src, nil
	}
	data, err := os.ReadFile(filename)
	if err != nil {
		return "", err
	}
	src := string(data)
	f.sourceCache[filename] = src
	return src, nil
}

// FormatCompact writes every diagnostic in the bag as a single
// "file:line:col: severity: message" line per the external interface's
// wrapper contract, in source order.
func FormatCompact(w io.Writer, diags []Diagnostic) {
	for _, d := range diags {
		fmt.Fprintln(w, d.String())
	}
}

// FormatRich prints a diagnostic with an underlined source snippet, in the
// style of a modern compiler's terminal output. It falls back to the simple
// one-line form when the source file cannot be loaded or the location is
// invalid.
func (f *Formatter) FormatRich(w io.Writer, d Diagnostic) {
	if !d.Location.IsValid() {
		f.formatSimple(w, d)
		return
	}
	src, err := f.LoadSource(d.Location.File)
	if err != nil {
		f.formatSimple(w, d)
		return
	}
	f.printHeader(w, d)
	f.printSnippet(w, d.Location.File, src, d.Location)
	for _, note := range d.Notes {
		fmt.Fprintf(w, "\n  = note: %s\n", note)
	}
}

func (f *Formatter) printHeader(w io.Writer, d Diagnostic) {
	if d.Code != "" {
		fmt.Fprintf(w, "%s[%s]: %s\n", d.Severity, d.Code, d.Message)
	} else {
		fmt.Fprintf(w, "%s: %s\n", d.Severity, d.Message)
	}
}

func (f *Formatter) printSnippet(w io.Writer, filename, src string, loc Location) {
	lines := strings.Split(src, "\n")
	if loc.Line <= 0 || loc.Line > len(lines) {
		return
	}
	contextStart := max(1, loc.Line-2)
	contextEnd := min(len(lines), loc.Line+2)
	lineNumWidth := len(fmt.Sprintf("%d", contextEnd))

	fmt.Fprintf(w, "  --> %s:%d:%d\n", filename, loc.Line, loc.Column)
	fmt.Fprintf(w, "   %s |\n", strings.Repeat(" ", lineNumWidth))

	for lineNum := contextStart; lineNum <= contextEnd; lineNum++ {
		content := lines[lineNum-1]
		fmt.Fprintf(w, " %*d | %s\n", lineNumWidth, lineNum, content)
		if lineNum == loc.Line {
			f.printUnderline(w, lineNumWidth, content, loc)
		}
	}
	fmt.Fprintf(w, "   %s |\n", strings.Repeat(" ", lineNumWidth))
}

func (f *Formatter) printUnderline(w io.Writer, lineNumWidth int, content string, loc Location) {
	start := max(0, loc.Column-1)
	width := 1
	if loc.EndColumn > loc.Column {
		width = loc.EndColumn - loc.Column
	}
	end := min(len(content), start+width)
	underline := make([]byte, len(content))
	for i := range underline {
		underline[i] = ' '
	}
	for i := start; i < end; i++ {
		underline[i] = '^'
	}
	fmt.Fprintf(w, "   %s | %s\n", strings.Repeat(" ", lineNumWidth), string(underline))
}

func (f *Formatter) formatSimple(w io.Writer, d Diagnostic) {
	f.printHeader(w, d)
	if d.Location.IsValid() {
		fmt.Fprintf(w, "  --> %s\n", d.Location.String())
	}
}

// FormatAllRich renders every diagnostic in source order using FormatRich,
// separated by a blank line.
func (f *Formatter) FormatAllRich(w io.Writer, diags []Diagnostic) {
	sorted := make([]Diagnostic, len(diags))
	copy(sorted, diags)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Location.File != sorted[j].Location.File {
			return sorted[i].Location.File < sorted[j].Location.File
		}
		return sorted[i].Location.Line < sorted[j].Location.Line
	})
	for i, d := range sorted {
		if i > 0 {
			fmt.Fprintln(w)
		}
		f.FormatRich(w, d)
	}
}
