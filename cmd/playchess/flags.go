// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"runtime"

	"github.com/lgbarn/playchess-go/internal/chess"
	"github.com/lgbarn/playchess-go/internal/config"
)

var (
	// Output options
	outputFile   = flag.String("o", "", "Output file (default: stdout)")
	appendOutput = flag.Bool("a", false, "Append to output file instead of overwrite")
	outputFormat = flag.String("W", "text", "Output format: text, json, fen")
	jsonOutput   = flag.Bool("J", false, "Output in JSON format (same as -W json)")
	flipBoard    = flag.Bool("flip", false, "Draw boards with Black at the bottom")
	showMoves    = flag.Bool("m", false, "List the applied moves of each script")
	noBoard      = flag.Bool("noboard", false, "Don't draw the final board")
	noCoords     = flag.Bool("nocoords", false, "Don't label ranks and files")

	// Replay options
	startFEN    = flag.String("fen", "", "Start every script from this FEN position")
	stopOnError = flag.Bool("stop", false, "Stop a script at its first rejected command")
	plyLimit    = flag.Int("plylimit", 0, "Stop each script after N applied moves (0 = no limit)")
	strictMode  = flag.Bool("strict", false, "Only output scripts that replay without errors")
	ecoFile     = flag.String("e", "", "Classify openings using this ECO table")

	// Matching options
	negateMatch        = flag.Bool("n", false, "Output scripts that DON'T match criteria")
	fenFilter          = flag.String("Tf", "", "Match scripts reaching this FEN position")
	fenPattern         = flag.String("fenpattern", "", "Match scripts reaching a placement pattern (wildcards ? ! * A a _)")
	invertPatterns     = flag.Bool("invert", false, "Also match -fenpattern with colours swapped")
	positionFile       = flag.String("x", "", "File with FEN positions to match, one per line")
	variationFile      = flag.String("v", "", "File with move sequences to match")
	materialMatch      = flag.String("z", "", "Material balance to match (e.g., 'QR:qrr')")
	materialMatchExact = flag.String("y", "", "Exact material balance to match")

	// Duplicate detection
	suppressDuplicates = flag.Bool("D", false, "Suppress scripts ending in an already seen position")
	duplicateFile      = flag.String("d", "", "Output duplicates to this file")
	checkFile          = flag.String("c", "", "Check file: scripts whose final positions count as already seen")
	exactDuplicates    = flag.Bool("exact", false, "Duplicates must also have the same ply count")
	duplicateCapacity  = flag.Int("duplicate-capacity", 0, "Maximum duplicate hash table entries (0 = unlimited)")

	// Persistence
	storeDir   = flag.String("store", "", "Save final positions in this database directory")
	resume     = flag.Bool("resume", false, "Continue each script from its stored position (requires -store)")
	listStored = flag.Bool("list", false, "List the games in the store and exit")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	appendLog = flag.String("L", "", "Append diagnostics to log file")
	verbose   = flag.Bool("verbose", false, "Log every applied move")

	// Other options
	quiet   = flag.Bool("s", false, "Silent mode (no summary)")
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")

	// Performance options
	workers = flag.Int("workers", 0, "Number of worker threads (0 = auto-detect based on CPU cores)")
)

// buildConfig maps the command-line flags onto a configuration.
func buildConfig() (*config.Config, error) {
	format, err := selectedFormat()
	if err != nil {
		return nil, err
	}

	orientation := chess.WhiteBottom
	if *flipBoard {
		orientation = chess.BlackBottom
	}

	cfg := config.NewConfigBuilder().
		WithFormat(format).
		WithOrientation(orientation).
		WithShowMoves(*showMoves).
		WithWorkers(workerCount()).
		WithStartFEN(*startFEN).
		WithStopOnError(*stopOnError).
		WithPlyLimit(*plyLimit).
		WithDuplicateDetection(duplicatesRequested(), *exactDuplicates).
		WithStore(*storeDir, *resume).
		WithVerbosity(verbosity()).
		Build()

	applyOutputFlags(cfg)
	applyDuplicateFlags(cfg)
	return cfg, nil
}

// selectedFormat resolves -W and -J.
func selectedFormat() (config.OutputFormat, error) {
	if *jsonOutput {
		return config.JSONFormat, nil
	}
	return config.ParseOutputFormat(*outputFormat)
}

func workerCount() int {
	if *workers > 0 {
		return *workers
	}
	return runtime.NumCPU()
}

func verbosity() int {
	switch {
	case *quiet:
		return 0
	case *verbose:
		return 2
	}
	return 1
}

// duplicatesRequested reports whether any flag needs the duplicate detector.
func duplicatesRequested() bool {
	return *suppressDuplicates || *duplicateFile != "" || *checkFile != ""
}

// applyOutputFlags configures diagram output settings.
func applyOutputFlags(cfg *config.Config) {
	cfg.Output.ShowBoard = !*noBoard
	cfg.Output.Coordinates = !*noCoords
}

// applyDuplicateFlags configures duplicate detection settings.
func applyDuplicateFlags(cfg *config.Config) {
	cfg.Duplicate.Suppress = *suppressDuplicates
	cfg.Duplicate.MaxCapacity = *duplicateCapacity
}
