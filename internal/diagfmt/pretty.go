package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"surge/internal/diag"
	"surge/internal/source"
)

const tabWidth = 8

// visualWidthUpTo returns the on-screen column width of s up to byteCol
// (1-based byte offset), expanding tabs and accounting for double-width
// runes, so underlines line up under multi-byte source text.
func visualWidthUpTo(s string, byteCol uint32) int {
	if byteCol <= 1 {
		return 0
	}
	bytePos, visualPos := 0, 0
	for _, r := range s {
		if bytePos >= int(byteCol-1) {
			break
		}
		if r == '\t' {
			visualPos = (visualPos + tabWidth) / tabWidth * tabWidth
		} else {
			visualPos += runewidth.RuneWidth(r)
		}
		bytePos += len(string(r))
	}
	return visualPos
}

func (opts PrettyOpts) formatPath(f *source.File, fs *source.FileSet) string {
	switch opts.PathMode {
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

// Pretty writes bag's diagnostics (expected pre-sorted via bag.Sort) to
// w in the compiler's conventional "path:line:col: SEVERITY CODE:
// message" form, followed by a source-context snippet with a
// tilde-and-caret underline under the primary span.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	errorColor := color.New(color.FgRed, color.Bold)
	warnColor := color.New(color.FgYellow, color.Bold)
	infoColor := color.New(color.FgCyan, color.Bold)
	pathColor := color.New(color.FgWhite, color.Bold)
	codeColor := color.New(color.FgMagenta)
	lineNumColor := color.New(color.FgBlue)
	underlineColor := color.New(color.FgRed, color.Bold)

	prevNoColor := color.NoColor
	defer func() { color.NoColor = prevNoColor }()
	color.NoColor = !opts.Color

	context := opts.Context
	if context <= 0 {
		context = 1
	}

	for idx, d := range bag.Items() {
		if idx > 0 {
			fmt.Fprintln(w)
		}

		start, end := fs.Resolve(d.Primary)
		f := fs.Get(d.Primary.File)
		if f == nil {
			continue
		}

		var sev string
		switch d.Severity {
		case diag.SevError:
			sev = errorColor.Sprint(d.Severity.String())
		case diag.SevWarning:
			sev = warnColor.Sprint(d.Severity.String())
		default:
			sev = infoColor.Sprint(d.Severity.String())
		}

		fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n",
			pathColor.Sprint(opts.formatPath(f, fs)), start.Line, start.Col,
			sev, codeColor.Sprint(d.Code.ID()), d.Message)

		totalLines := uint32(len(f.LineIdx)) + 1
		if len(f.LineIdx) == 0 && len(f.Content) > 0 {
			totalLines = 1
		}

		ctxU := uint32(context)
		startLine := uint32(1)
		if start.Line > ctxU {
			startLine = start.Line - ctxU
		}
		endLine := start.Line + ctxU
		if endLine > totalLines {
			endLine = totalLines
		}

		if startLine > 1 {
			fmt.Fprintln(w, "...")
		}

		lineNumWidth := len(fmt.Sprintf("%d", endLine))
		if lineNumWidth < 3 {
			lineNumWidth = 3
		}

		for lineNum := startLine; lineNum <= endLine; lineNum++ {
			lineText := f.GetLine(lineNum)
			gutter := fmt.Sprintf("%s | ", lineNumColor.Sprint(fmt.Sprintf("%*d", lineNumWidth, lineNum)))
			fmt.Fprint(w, gutter)
			fmt.Fprintln(w, lineText)

			if lineNum != start.Line {
				continue
			}
			endCol := end.Col
			if end.Line > start.Line {
				endCol = uint32(len(lineText)) + 1
			}
			visualStart := visualWidthUpTo(lineText, start.Col)
			visualEnd := visualWidthUpTo(lineText, endCol)

			var underline strings.Builder
			underline.WriteString(strings.Repeat(" ", lineNumWidth+3+visualStart))
			spanLen := visualEnd - visualStart
			if spanLen <= 0 {
				underline.WriteByte('^')
			} else {
				underline.WriteString(strings.Repeat("~", spanLen-1))
				underline.WriteByte('^')
			}
			fmt.Fprintln(w, underlineColor.Sprint(underline.String()))
		}

		if endLine < totalLines {
			fmt.Fprintln(w, "...")
		}

		if opts.ShowNotes {
			for _, note := range d.Notes {
				nf := fs.Get(note.Span.File)
				if nf == nil {
					continue
				}
				noteStart, _ := fs.Resolve(note.Span)
				fmt.Fprintf(w, "  %s: %s:%d:%d: %s\n",
					infoColor.Sprint("note"), pathColor.Sprint(opts.formatPath(nf, fs)),
					noteStart.Line, noteStart.Col, note.Msg)
			}
		}
	}
}
