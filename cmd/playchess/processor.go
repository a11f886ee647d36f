// processor.go - Script loading, replay and output
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/playchess-go/internal/config"
	"github.com/lgbarn/playchess-go/internal/eco"
	"github.com/lgbarn/playchess-go/internal/hashing"
	"github.com/lgbarn/playchess-go/internal/matching"
	"github.com/lgbarn/playchess-go/internal/output"
	"github.com/lgbarn/playchess-go/internal/parser"
	"github.com/lgbarn/playchess-go/internal/processing"
	"github.com/lgbarn/playchess-go/internal/storage"
	"github.com/lgbarn/playchess-go/internal/worker"
)

// ProcessingContext holds all processing state
type ProcessingContext struct {
	cfg        *config.Config
	detector   hashing.DuplicateChecker
	store      *storage.Storage
	classifier *eco.ECOClassifier
	filter     matching.ReportMatcher
	negate     bool
	strict     bool

	// interrupt stops replay early when cancelled; nil never cancels.
	interrupt context.Context
}

func (ctx *ProcessingContext) interruptContext() context.Context {
	if ctx.interrupt == nil {
		return context.Background()
	}
	return ctx.interrupt
}

// Statistics counts what happened to the scripts of one run.
type Statistics struct {
	Filtered   bool
	Scripts    int
	Matched    int
	Output     int
	Duplicates int
	Failed     int
}

// loadScripts parses every named input, or stdin when there are none.
// Unreadable inputs are logged and skipped.
func loadScripts(args []string, stdin io.Reader, cfg *config.Config) []*parser.Script {
	if len(args) == 0 {
		return appendScript(nil, stdin, "stdin", cfg)
	}

	var scripts []*parser.Script
	for _, filename := range args {
		file, err := os.Open(filename) //nolint:gosec // G304: CLI tool opens user-specified files
		if err != nil {
			cfg.Logf(0, "Error opening file %s: %v\n", filename, err)
			continue
		}
		scripts = appendScript(scripts, file, filename, cfg)
		file.Close() //nolint:errcheck,gosec // G104: read-only file
	}
	return scripts
}

func appendScript(scripts []*parser.Script, r io.Reader, name string, cfg *config.Config) []*parser.Script {
	script, err := parser.ParseScript(r, name)
	if err != nil {
		cfg.Logf(0, "Error parsing %s: %v\n", name, err)
		return scripts
	}
	return append(scripts, script)
}

// processScript replays one script on its own game. It is safe to call from
// several workers at once provided ctx.detector is thread-safe.
func processScript(item worker.WorkItem, ctx *ProcessingContext) worker.ProcessResult {
	cfg := ctx.cfg
	result := worker.ProcessResult{Index: item.Index}

	g, err := processing.StartGame(cfg, ctx.store, item.Script.Name)
	if err != nil {
		result.Error = fmt.Errorf("%s: %w", item.Script.Name, err)
		return result
	}

	report := processing.Replay(g, item.Script, cfg)
	report.Index = item.Index
	result.Report = report

	if ctx.classifier != nil {
		ctx.classifier.Annotate(report)
	}

	if ctx.detector != nil {
		report.Duplicate = ctx.detector.CheckAndAdd(g)
	}

	if ctx.store != nil {
		if err := processing.Persist(ctx.store, report, g); err != nil {
			result.Error = err
		}
	}

	result.Matched = applyFilter(ctx.filter, report, ctx.negate)
	result.OutputToDup = result.Matched && report.Duplicate
	result.ShouldOutput = result.Matched &&
		!(ctx.strict && report.Failed()) &&
		!(report.Duplicate && cfg.Duplicate.Suppress)
	return result
}

// outputScripts replays scripts and writes their reports in input order.
func outputScripts(scripts []*parser.Script, ctx *ProcessingContext) Statistics {
	cfg := ctx.cfg

	writer := output.NewReportWriter(cfg.OutputFile, cfg)
	var dupWriter output.ReportWriter
	if cfg.Duplicate.DuplicateFile != nil {
		dupWriter = output.NewReportWriter(cfg.Duplicate.DuplicateFile, cfg)
	}

	stats := Statistics{Filtered: ctx.filter != nil}
	emit := func(result worker.ProcessResult) {
		handleResult(result, ctx, writer, dupWriter, &stats)
	}

	if cfg.Workers > 1 && len(scripts) > 2 {
		replayParallel(scripts, ctx, emit)
	} else {
		replaySequential(scripts, ctx, emit)
	}

	closeWriter(writer, cfg)
	if dupWriter != nil {
		closeWriter(dupWriter, cfg)
	}
	return stats
}

func closeWriter(w output.ReportWriter, cfg *config.Config) {
	if err := w.Close(); err != nil {
		cfg.Logf(0, "Error writing output: %v\n", err)
	}
}

// replaySequential processes scripts one at a time (single-threaded).
func replaySequential(scripts []*parser.Script, ctx *ProcessingContext, emit func(worker.ProcessResult)) {
	interrupt := ctx.interruptContext()
	for i, script := range scripts {
		if err := interrupt.Err(); err != nil {
			ctx.cfg.Logf(0, "Replay interrupted: %v\n", err)
			return
		}
		emit(processScript(worker.WorkItem{Script: script, Index: i}, ctx))
	}
}

// replayParallel processes scripts using a worker pool. The pool emits
// results in input order on this goroutine, so writers need no locking.
func replayParallel(scripts []*parser.Script, ctx *ProcessingContext, emit func(worker.ProcessResult)) {
	bufferSize := len(scripts)
	if bufferSize > 100 {
		bufferSize = 100
	}
	pool := worker.NewPool(ctx.cfg.Workers, bufferSize, func(item worker.WorkItem) worker.ProcessResult {
		return processScript(item, ctx)
	})
	if err := pool.Run(ctx.interruptContext(), scripts, emit); err != nil {
		ctx.cfg.Logf(0, "Replay interrupted: %v\n", err)
	}
}

// handleResult writes one result and updates the statistics.
func handleResult(result worker.ProcessResult, ctx *ProcessingContext, writer, dupWriter output.ReportWriter, stats *Statistics) {
	cfg := ctx.cfg
	stats.Scripts++

	if result.Error != nil {
		cfg.Logf(0, "Error: %v\n", result.Error)
	}
	report := result.Report
	if report == nil {
		stats.Failed++
		return
	}
	if report.Failed() {
		stats.Failed++
		cfg.Logf(1, "%s: %d command(s) rejected\n", report.Name, len(report.Errors))
	}
	if result.Matched {
		stats.Matched++
	}
	if result.OutputToDup {
		stats.Duplicates++
		if dupWriter != nil {
			writeReport(dupWriter, report, cfg)
		}
	}
	if result.ShouldOutput {
		stats.Output++
		writeReport(writer, report, cfg)
	}
}

func writeReport(w output.ReportWriter, report *processing.Report, cfg *config.Config) {
	if err := w.WriteReport(report); err != nil {
		cfg.Logf(0, "Error writing %s: %v\n", report.Name, err)
	}
}

// newDuplicateChecker returns the detector for cfg, preloaded with the
// final positions of the check scripts. A thread-safe detector is used when
// scripts are replayed by more than one worker.
func newDuplicateChecker(cfg *config.Config, checkScripts []*parser.Script) hashing.DuplicateChecker {
	if !cfg.Duplicate.Detect {
		return nil
	}

	seen := hashing.NewDuplicateDetector(cfg.Duplicate.ExactMatch, cfg.Duplicate.MaxCapacity)
	for _, script := range checkScripts {
		g, err := processing.StartGame(cfg, nil, script.Name)
		if err != nil {
			cfg.Logf(0, "Error: %s: %v\n", script.Name, err)
			continue
		}
		processing.Replay(g, script, cfg)
		seen.CheckAndAdd(g)
	}
	if len(checkScripts) > 0 {
		cfg.Logf(1, "Loaded %d position(s) from check file\n", seen.UniqueCount())
	}

	if cfg.Workers <= 1 {
		return seen
	}
	detector := hashing.NewThreadSafeDuplicateDetector(cfg.Duplicate.ExactMatch, cfg.Duplicate.MaxCapacity)
	detector.LoadFromDetector(seen)
	return detector
}

// loadClassifier reads the -e ECO table.
func loadClassifier(filename string, cfg *config.Config) (*eco.ECOClassifier, error) {
	if filename == "" {
		return nil, nil
	}
	classifier := eco.NewECOClassifier()
	if err := classifier.LoadFromFile(filename); err != nil {
		return nil, err
	}
	cfg.Logf(1, "Loaded %d ECO line(s)\n", classifier.EntriesLoaded())
	return classifier, nil
}

// listGames writes the id, recorded move count and position of every stored
// game.
func listGames(store *storage.Storage, w io.Writer) error {
	ids, err := store.ListGames()
	if err != nil {
		return err
	}
	for _, id := range ids {
		record, err := store.LoadGame(id)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%d\t%s\n", record.ID, len(record.Moves), record.FEN)
	}
	return nil
}
