package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"github.com/salgue441/logo-dialect-analyzer/internal/diag"
	"github.com/salgue441/logo-dialect-analyzer/internal/source"
)

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	infoColor    = color.New(color.FgCyan, color.Bold)
	caretColor   = color.New(color.FgGreen, color.Bold)
	pathColor    = color.New(color.Bold)
)

// Pretty renders diagnostics in a human-readable form. It walks bag.Items()
// (callers are expected to bag.Sort() beforehand). Each diagnostic prints as
//
//	<path>:<line>:<col>: <SEV> <CODE>: <message>
//	    <source line>
//	    ^~~~
//
// followed by its notes in the same shape when ShowNotes is set.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		writeHeader(w, fs, d.Primary, d.Severity, d.Code.ID(), d.Message, opts)
		if !opts.NoContext {
			writeContext(w, fs, d.Primary, opts)
		}

		if opts.ShowNotes {
			for _, note := range d.Notes {
				writeHeader(w, fs, note.Span, diag.SevInfo, "note", note.Msg, opts)
				if !opts.NoContext {
					writeContext(w, fs, note.Span, opts)
				}
			}
		}
	}
}

func writeHeader(w io.Writer, fs *source.FileSet, sp source.Span, sev diag.Severity, code, msg string, opts PrettyOpts) {
	f := fs.Get(sp.File)
	pos := f.Pos(sp.Start)
	loc := fmt.Sprintf("%s:%d:%d", formatPath(f, fs, opts.PathMode), pos.Line, pos.Col)
	sevText := sev.String()

	if opts.Color {
		loc = pathColor.Sprint(loc)
		sevText = severityColor(sev).Sprint(sevText)
	}

	fmt.Fprintf(w, "%s: %s %s: %s\n", loc, sevText, code, msg)
}

// writeContext prints the offending source line with a caret underline.
func writeContext(w io.Writer, fs *source.FileSet, sp source.Span, opts PrettyOpts) {
	f := fs.Get(sp.File)
	pos := f.Pos(sp.Start)
	line := f.GetLine(pos.Line)
	if line == "" && sp.Len() == 0 {
		return
	}

	fmt.Fprintf(w, "    %s\n", line)

	// Column math is byte-based; pad by the display width of the prefix so
	// the caret lands under the right glyph even with tabs.
	prefix := line
	if int(pos.Col-1) <= len(line) {
		prefix = line[:pos.Col-1]
	}
	pad := strings.Repeat(" ", runewidth.StringWidth(strings.ReplaceAll(prefix, "\t", "    ")))

	underlineLen := int(sp.Len())
	if underlineLen < 1 {
		underlineLen = 1
	}
	if rest := len(line) - len(prefix); underlineLen > rest && rest > 0 {
		underlineLen = rest
	}

	caret := "^" + strings.Repeat("~", underlineLen-1)
	if opts.Color {
		caret = caretColor.Sprint(caret)
	}
	fmt.Fprintf(w, "    %s%s\n", pad, caret)
}

func severityColor(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return errorColor
	case diag.SevWarning:
		return warningColor
	default:
		return infoColor
	}
}

func formatPath(f *source.File, fs *source.FileSet, mode PathMode) string {
	switch mode {
	case PathModeAbsolute:
		return f.FormatPath("absolute", "")
	case PathModeRelative:
		return f.FormatPath("relative", fs.BaseDir())
	case PathModeBasename:
		return f.FormatPath("basename", "")
	default:
		return f.FormatPath("auto", "")
	}
}
