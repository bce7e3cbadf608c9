// Package session orchestrates one compilation end to end: it owns the
// registry, scope manager, builder, evaluator, semantic pipeline, and
// emitter, and drives them in the phase order the original driver's
// compile() method uses (source file -> element graph -> fixed-point
// semantic pipeline -> instruction emission), adding the module cache
// and import-cycle guard from §8 scenario 6.
package session

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"surge/internal/builder"
	"surge/internal/cache"
	"surge/internal/config"
	"surge/internal/ctxstack"
	"surge/internal/diag"
	"surge/internal/element"
	"surge/internal/emit"
	"surge/internal/evaluator"
	"surge/internal/observ"
	"surge/internal/pipeline"
	"surge/internal/scope"
	"surge/internal/source"
	"surge/internal/trace"
)

// defaultDiagnosticCapacity bounds how many diagnostics a session
// accumulates before Bag.Add starts refusing further entries.
const defaultDiagnosticCapacity = 4096

// Loader parses one module's source into the evaluator's external AST
// shape. The parser itself is out of scope (§1); a session is handed
// whatever Loader its host process wants to drive. Load must be safe to
// call concurrently for distinct paths: resolveImports prefetches
// sibling imports in parallel the same way the original driver
// parallelizes per-file tokenize/parse (golang.org/x/sync/errgroup)
// before falling back to the session's single-threaded evaluation order.
type Loader interface {
	Load(path string) (root *evaluator.Node, file source.FileID, src []byte, err error)
}

// loadResult is one Loader.Load call's outcome, cached by path so a
// prefetch and its later sequential consumer never call Load twice.
type loadResult struct {
	root *evaluator.Node
	file source.FileID
	src  []byte
	err  error
}

// Session is one compilation: every element, scope, diagnostic, and
// instruction it produces belongs to exactly this Session.
type Session struct {
	Options config.Options

	Registry *element.Registry
	Scope    *scope.Manager
	Builder  *builder.Builder
	Eval     *evaluator.Evaluator
	Bag      *diag.Bag
	Reporter diag.Reporter
	Timer    *observ.Timer
	Stack    *ctxstack.Stack
	Cache    *cache.Cache
	Tracer   trace.Tracer

	loader Loader

	modules  map[string]*element.Module
	inFlight map[string]bool

	prefetchMu sync.Mutex
	prefetched map[string]loadResult

	program *element.Program
}

// New constructs a Session ready to load and compile modules.
func New(opts config.Options, loader Loader, diskCache *cache.Cache) *Session {
	reg := element.NewRegistry()
	sc := scope.NewManager()
	b := builder.New(reg, sc)
	bag := diag.NewBag(defaultDiagnosticCapacity)
	return &Session{
		Options:  opts,
		Registry: reg,
		Scope:    sc,
		Builder:  b,
		Eval:     evaluator.New(b, bag),
		Bag:      bag,
		Reporter: diag.NewDedupReporter(diag.BagReporter{Bag: bag}),
		Timer:    observ.NewTimer(),
		Stack:    ctxstack.New(),
		Cache:      diskCache,
		Tracer:     buildTracer(opts),
		loader:     loader,
		modules:    make(map[string]*element.Module),
		inFlight:   make(map[string]bool),
		prefetched: make(map[string]loadResult),
	}
}

// buildTracer constructs the session's tracer from its configured
// level/mode/format, falling back to trace.Nop when tracing is off or
// the configuration is malformed (config.Load already validates these
// fields; a Session built directly from a hand-rolled Options skips
// that and degrades to Nop instead of panicking).
func buildTracer(opts config.Options) trace.Tracer {
	level, err := trace.ParseLevel(opts.TraceLevel)
	if err != nil || level == trace.LevelOff {
		return trace.Nop
	}
	mode, err := trace.ParseMode(opts.TraceMode)
	if err != nil {
		mode = trace.ModeRing
	}
	format, err := trace.ParseFormat(opts.TraceFormat)
	if err != nil {
		format = trace.FormatAuto
	}
	t, err := trace.New(trace.Config{
		Level:      level,
		Mode:       mode,
		Format:     format,
		OutputPath: opts.TraceOutputPath,
		RingSize:   opts.TraceRingSize,
	})
	if err != nil {
		return trace.Nop
	}
	return t
}

// FormatDiagnostics renders the session's accumulated diagnostics into
// the stable, single-line-per-entry representation a host process
// prints on the CLI (internal/internal vs. user-file paths are not
// filtered here, mirroring diag.FormatShortDiagnostics's own contract).
func (s *Session) FormatDiagnostics(fs *source.FileSet) string {
	return diag.FormatShortDiagnostics(s.Bag.Items(), fs, true)
}

// TraceSnapshot returns the session's in-memory trace events and true,
// if the configured tracer is keeping a ring buffer ("ring" or "both"
// trace_mode); otherwise it returns false.
func (s *Session) TraceSnapshot() ([]trace.Event, bool) {
	ring, ok := s.tracer().(*trace.RingTracer)
	if !ok {
		return nil, false
	}
	return ring.Snapshot(), true
}

// DumpTrace writes the session's ring-buffered trace events to w in the
// given format, for a host process that wants to inspect what happened
// during a compile without having streamed it live.
func (s *Session) DumpTrace(w io.Writer, format trace.Format) error {
	ring, ok := s.tracer().(*trace.RingTracer)
	if !ok {
		return fmt.Errorf("session: tracer is %T, not a ring tracer", s.tracer())
	}
	return ring.Dump(w, format)
}

// CompileEntry loads entryPath and every module it transitively
// imports, runs the semantic pipeline to a fixed point, and emits
// instruction blocks for the whole program.
//
// Module evaluation must happen inside the pipeline's phase 3 (after
// core types and built-in procedures are registered in phases 1-2):
// type annotations resolve eagerly at evaluation time (builder's
// MakeTypeReference), so the scope manager's type table needs the core
// types present before any source file is evaluated. CompileEntry
// therefore defers the whole load-and-evaluate traversal into a single
// fileEvaluators thunk instead of running it up front.
//
// ctx carries the session's tracer (trace.WithTracer/FromContext) and
// the compile span's identity (trace.WithSpanContext) the way the
// original driver's own compile pass threads its logging/tracing
// context; a caller may pass a context carrying deadline/cancellation
// too, though CompileEntry does not itself check ctx.Done().
func (s *Session) CompileEntry(ctx context.Context, entryPath string) ([]*emit.Block, error) {
	ctx = trace.WithTracer(ctx, s.tracer())
	tracer := trace.FromContext(ctx)

	var heartbeat *trace.Heartbeat
	if ms := s.Options.HeartbeatIntervalMS; ms > 0 {
		heartbeat = trace.StartHeartbeat(tracer, time.Duration(ms)*time.Millisecond)
	}
	defer heartbeat.Stop()

	span := trace.Begin(tracer, trace.ScopeDriver, "compile:"+entryPath, 0)
	ctx = trace.WithSpanContext(ctx, trace.SpanContext{SpanID: span.ID()})
	defer span.End("done")

	if err := s.Stack.Push(ctxstack.Frame{Logger: &tracerLogger{tracer: trace.FromContext(ctx)}}, s.Bag, source.Span{}); err != nil {
		return nil, err
	}
	defer s.Stack.Pop(s.Bag, source.Span{})

	var entry *element.Module

	p := pipeline.New(s.Registry, s.Scope, s.Builder, s.Bag, s.Timer)
	p.Tracer = trace.FromContext(ctx)
	err := p.Run([]func() error{
		func() error {
			var loadErr error
			entry, loadErr = s.loadModule(entryPath)
			if loadErr != nil {
				return loadErr
			}
			entry.IsRoot = true
			return s.resolveImports(entry)
		},
	})
	if err != nil {
		return nil, err
	}

	s.program = s.Builder.MakeProgram()
	s.program.SetEntry(entry)

	if s.Bag.HasErrors() {
		return nil, fmt.Errorf("compilation failed with %d error(s)", errorCount(s.Bag))
	}

	idx := s.Timer.Begin("emit")
	emitter := emit.New(s.Registry, s.Bag)
	err = emitter.EmitProgram(s.program)
	s.Timer.End(idx, "")
	if err != nil {
		return nil, err
	}

	didx := s.Timer.Begin("execute directives")
	err = p.ExecuteDirectives()
	s.Timer.End(didx, "")
	if err != nil {
		return nil, err
	}
	if s.Bag.HasErrors() {
		return nil, fmt.Errorf("compilation failed with %d error(s)", errorCount(s.Bag))
	}

	return emitter.Finished, nil
}

// loadModule parses and evaluates path if it has not been evaluated
// yet in this session, guarding against import cycles (§8 scenario 6:
// "module A imports module B which imports module A back").
func (s *Session) loadModule(path string) (*element.Module, error) {
	if mod, ok := s.modules[path]; ok {
		return mod, nil
	}
	if s.inFlight[path] {
		diag.ReportError(s.reporter(), diag.CModuleCycle, source.Span{}, "import cycle detected at module \""+path+"\"").Emit()
		return nil, fmt.Errorf("import cycle at %q", path)
	}
	s.inFlight[path] = true
	defer delete(s.inFlight, path)

	lr := s.takePrefetched(path)
	if lr == nil {
		root, file, src, err := s.loader.Load(path)
		lr = &loadResult{root: root, file: file, src: src, err: err}
	}
	root, file, src, err := lr.root, lr.file, lr.src, lr.err
	if err != nil {
		diag.ReportError(s.reporter(), diag.CModuleNotFound, source.Span{}, "module \""+path+"\" not found: "+err.Error()).Emit()
		return nil, err
	}

	key := cache.Sum(src)
	if s.Cache != nil {
		if entry, ok, _ := s.Cache.Get(key); ok && entry.Path == path {
			s.Timer.Begin("cache_hit:" + path)
		}
	}

	mod, err := s.Eval.EvaluateModule(path, file, root)
	if err != nil {
		return nil, err
	}
	s.modules[path] = mod

	if s.Cache != nil {
		_ = s.Cache.Put(key, &cache.Entry{Path: path, ContentHash: key, Broken: s.Bag.HasErrors()})
	}
	return mod, nil
}

// resolveImports walks mod's Imports, loads each target module, and
// resolves the corresponding ModuleReference once loaded. The sibling
// imports' source is prefetched concurrently first (mirroring the
// original driver's parallel tokenize/parse stage), then each module is
// evaluated sequentially since the builder/scope/registry it mutates
// are not safe for concurrent access.
func (s *Session) resolveImports(mod *element.Module) error {
	var pending []string
	for _, imp := range mod.Imports {
		if imp.Ref == nil || imp.Ref.Resolved() != nil {
			continue
		}
		if _, loaded := s.modules[imp.Ref.Path]; loaded {
			continue
		}
		pending = append(pending, imp.Ref.Path)
	}
	s.prefetchSources(pending)

	for _, imp := range mod.Imports {
		if imp.Ref == nil || imp.Ref.Resolved() != nil {
			continue
		}
		target, err := s.loadModule(imp.Ref.Path)
		if err != nil {
			return err
		}
		imp.Ref.Resolve(target)
		if err := s.resolveImports(target); err != nil {
			return err
		}
	}
	return nil
}

// prefetchSources loads every path in paths concurrently via the
// Loader, stashing each result for loadModule to pick up without
// re-reading. A Load failure is swallowed here; loadModule re-surfaces
// it on the sequential pass so diagnostics still land
// through the normal path.
func (s *Session) prefetchSources(paths []string) {
	if len(paths) < 2 {
		return
	}
	var g errgroup.Group
	for _, path := range paths {
		path := path
		g.Go(func() error {
			root, file, src, err := s.loader.Load(path)
			s.prefetchMu.Lock()
			s.prefetched[path] = loadResult{root: root, file: file, src: src, err: err}
			s.prefetchMu.Unlock()
			return nil
		})
	}
	_ = g.Wait()
}

// takePrefetched returns and clears a previously prefetched load
// result for path, if one exists.
func (s *Session) takePrefetched(path string) *loadResult {
	s.prefetchMu.Lock()
	defer s.prefetchMu.Unlock()
	if lr, ok := s.prefetched[path]; ok {
		delete(s.prefetched, path)
		return &lr
	}
	return nil
}

// reporter returns the session's diagnostic reporter, falling back to
// a BagReporter over s.Bag for a Session built without New.
func (s *Session) reporter() diag.Reporter {
	if s.Reporter == nil {
		return diag.BagReporter{Bag: s.Bag}
	}
	return s.Reporter
}

// tracer returns the session's tracer, falling back to the no-op
// tracer for a Session built without New (zero value) or with a nil
// Tracer field.
func (s *Session) tracer() trace.Tracer {
	if s.Tracer == nil {
		return trace.Nop
	}
	return s.Tracer
}

// tracerLogger adapts a trace.Tracer to the ctxstack.Logger slot (§5):
// every Logf call becomes a KindPoint trace.Event at module scope, the
// same way the original driver's logging passes through whichever
// tracer is attached to the current compile.
type tracerLogger struct {
	tracer trace.Tracer
}

func (l *tracerLogger) Logf(format string, args ...any) {
	if l.tracer == nil || !l.tracer.Enabled() {
		return
	}
	l.tracer.Emit(&trace.Event{
		Time:  time.Now(),
		Seq:   trace.NextSeq(),
		Kind:  trace.KindPoint,
		Scope: trace.ScopeModule,
		Name:  "log",
		Detail: fmt.Sprintf(format, args...),
	})
}

// errorCount counts the error-or-worse severity diagnostics in bag,
// for the "compilation failed with N error(s)" summary.
func errorCount(bag *diag.Bag) int {
	n := 0
	for _, d := range bag.Items() {
		if d.Severity >= diag.SevError {
			n++
		}
	}
	return n
}
