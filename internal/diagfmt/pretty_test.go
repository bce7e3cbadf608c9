package diagfmt

import (
	"bytes"
	"strings"
	"testing"

	"surge/internal/diag"
	"surge/internal/source"
)

func TestPrettyPathModes(t *testing.T) {
	fs := source.NewFileSet()
	content := []byte("let x: u8 = 300\n")
	fileID := fs.AddVirtual("/home/user/project/src/test.sg", content)
	fs.SetBaseDir("/home/user/project")

	bag := diag.NewBag(10)
	d := diag.NewError(diag.CTypeMismatch, source.Span{File: fileID, Start: 12, End: 15}, "cannot assign u16 to u8")
	bag.Add(&d)

	tests := []struct {
		name     string
		mode     PathMode
		contains string
	}{
		{"absolute", PathModeAbsolute, "/home/user/project/src/test.sg"},
		{"relative", PathModeRelative, "src/test.sg"},
		{"basename", PathModeBasename, "test.sg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			Pretty(&buf, bag, fs, PrettyOpts{PathMode: tt.mode, Context: 1})
			if !strings.Contains(buf.String(), tt.contains) {
				t.Errorf("output %q does not contain %q", buf.String(), tt.contains)
			}
		})
	}
}

func TestPrettyIncludesCodeAndUnderline(t *testing.T) {
	fs := source.NewFileSet()
	content := []byte("let x: u8 = 300\n")
	fileID := fs.AddVirtual("test.sg", content)

	bag := diag.NewBag(10)
	d := diag.NewError(diag.CTypeMismatch, source.Span{File: fileID, Start: 12, End: 15}, "cannot assign u16 to u8")
	bag.Add(&d)

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{PathMode: PathModeBasename, Context: 1})
	out := buf.String()

	if !strings.Contains(out, "C051") {
		t.Errorf("expected code C051 in output, got %q", out)
	}
	if !strings.Contains(out, "cannot assign u16 to u8") {
		t.Errorf("expected message in output, got %q", out)
	}
	if !strings.Contains(out, "^") {
		t.Errorf("expected underline caret in output, got %q", out)
	}
}

func TestPrettyMultipleDiagnosticsSeparated(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.sg", []byte("a\nb\n"))

	bag := diag.NewBag(10)
	d1 := diag.NewError(diag.CUnresolvedIdentifier, source.Span{File: fileID, Start: 0, End: 1}, "first")
	d2 := diag.NewError(diag.CUnresolvedIdentifier, source.Span{File: fileID, Start: 2, End: 3}, "second")
	bag.Add(&d1)
	bag.Add(&d2)

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{PathMode: PathModeBasename, Context: 0})
	out := buf.String()
	if !strings.Contains(out, "first") || !strings.Contains(out, "second") {
		t.Fatalf("expected both diagnostics, got %q", out)
	}
}
