// Package config loads session options from a TOML manifest, mirroring
// the project manifest the command-line driver reads (cmd/surge's
// project_manifest.go "[package]"/"[run]" tables), but for the
// options the session itself consumes (§6).
package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"surge/internal/trace"
)

// Options is the session configuration named in §6: "the session
// accepts options {allocator, heap_size, stack_size, ffi_heap_size,
// debugger_enabled, output_ast_graphs, dom_graph_file,
// compile_callback, verbose}", plus the tracing/liveness knobs that
// control the session's ambient trace.Tracer (§5).
type Options struct {
	Allocator       string `toml:"allocator"`
	HeapSize        int64  `toml:"heap_size"`
	StackSize       int64  `toml:"stack_size"`
	FFIHeapSize     int64  `toml:"ffi_heap_size"`
	DebuggerEnabled bool   `toml:"debugger_enabled"`
	OutputASTGraphs bool   `toml:"output_ast_graphs"`
	DomGraphFile    string `toml:"dom_graph_file"`
	CompileCallback string `toml:"compile_callback"`
	Verbose         bool   `toml:"verbose"`

	// TraceLevel selects the session's tracer verbosity ("off", "error",
	// "phase", "detail", "debug"); "off" leaves the session on trace.Nop.
	TraceLevel string `toml:"trace_level"`
	// TraceMode selects where trace events go: "ring" (in-memory,
	// queryable via Session.TraceSnapshot/DumpTrace), "stream" (written
	// immediately to TraceOutputPath), or "both".
	TraceMode string `toml:"trace_mode"`
	// TraceFormat selects the stream/dump encoding ("auto", "text",
	// "ndjson", "chrome").
	TraceFormat string `toml:"trace_format"`
	// TraceOutputPath is where a "stream"/"both" tracer writes ("-" or
	// empty means stderr).
	TraceOutputPath string `toml:"trace_output_path"`
	// TraceRingSize bounds the in-memory ring buffer's event capacity.
	TraceRingSize int `toml:"trace_ring_size"`
	// HeartbeatIntervalMS, when positive, starts a trace.Heartbeat
	// alongside the tracer so a hung compile still emits liveness
	// events (0 disables the heartbeat).
	HeartbeatIntervalMS int64 `toml:"heartbeat_interval_ms"`
}

// Defaults returns the option set a session falls back to when no
// manifest is supplied.
func Defaults() Options {
	return Options{
		Allocator:     "system",
		HeapSize:      1 << 24,
		StackSize:     1 << 20,
		TraceLevel:    "off",
		TraceMode:     "ring",
		TraceFormat:   "auto",
		TraceRingSize: 4096,
	}
}

type manifest struct {
	Session Options `toml:"session"`
}

// Load reads and validates a "[session]" TOML table from path, merging
// it onto Defaults() so every field the manifest omits keeps its
// default value.
func Load(path string) (Options, error) {
	opts := Defaults()
	var m manifest
	m.Session = opts
	meta, err := toml.DecodeFile(path, &m)
	if err != nil {
		return Options{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("session") {
		return Options{}, fmt.Errorf("%s: missing [session]", path)
	}
	if meta.IsDefined("session", "allocator") && strings.TrimSpace(m.Session.Allocator) == "" {
		return Options{}, fmt.Errorf("%s: [session].allocator must not be empty", path)
	}
	if m.Session.HeapSize <= 0 {
		return Options{}, fmt.Errorf("%s: [session].heap_size must be positive", path)
	}
	if m.Session.StackSize <= 0 {
		return Options{}, fmt.Errorf("%s: [session].stack_size must be positive", path)
	}
	if _, err := trace.ParseLevel(m.Session.TraceLevel); err != nil {
		return Options{}, fmt.Errorf("%s: [session].trace_level: %w", path, err)
	}
	if _, err := trace.ParseMode(m.Session.TraceMode); err != nil {
		return Options{}, fmt.Errorf("%s: [session].trace_mode: %w", path, err)
	}
	if _, err := trace.ParseFormat(m.Session.TraceFormat); err != nil {
		return Options{}, fmt.Errorf("%s: [session].trace_format: %w", path, err)
	}
	return m.Session, nil
}
