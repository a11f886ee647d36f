// playchess replays chess move scripts against fresh games and reports the
// resulting positions.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/lgbarn/playchess-go/internal/config"
	"github.com/lgbarn/playchess-go/internal/parser"
	"github.com/lgbarn/playchess-go/internal/storage"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("playchess-go version %s\n", programVersion)
		os.Exit(0)
	}

	cfg, err := buildConfig()
	if err != nil {
		fatalf("Error: %v\n", err)
	}

	// Set up logging and output files
	setupLogFile(cfg)
	setupOutputFile(cfg)
	setupDuplicateFile(cfg)

	if err := cfg.Validate(); err != nil {
		fatalf("Error: %v\n", err)
	}

	filter, err := buildFilter()
	if err != nil {
		fatalf("Error: %v\n", err)
	}

	classifier, err := loadClassifier(*ecoFile, cfg)
	if err != nil {
		fatalf("Error: %v\n", err)
	}

	store := openStore(cfg)

	if *listStored {
		if store == nil {
			fatalf("Error: -list requires -store\n")
		}
		if err := listGames(store, cfg.OutputFile); err != nil {
			fatalf("Error listing games: %v\n", err)
		}
		store.Close() //nolint:errcheck,gosec // G104: cleanup on exit
		return
	}

	ctx := &ProcessingContext{
		cfg:        cfg,
		detector:   newDuplicateChecker(cfg, loadCheckScripts(cfg)),
		store:      store,
		classifier: classifier,
		filter:     filter,
		negate:     *negateMatch,
		strict:     *strictMode,
	}

	interrupt, stopSignals := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stopSignals()
	ctx.interrupt = interrupt

	scripts := loadScripts(flag.Args(), os.Stdin, cfg)
	stats := outputScripts(scripts, ctx)

	if store != nil {
		if err := store.Close(); err != nil {
			cfg.Logf(0, "Error closing store: %v\n", err)
		}
	}

	if cfg.Verbosity > 0 {
		reportStatistics(cfg, stats)
	}
}

func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format, args...)
	os.Exit(1)
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile != "" {
		file, err := os.Create(*logFile)
		if err != nil {
			fatalf("Error creating log file %s: %v\n", *logFile, err)
		}
		cfg.LogFile = file
	}

	if *appendLog != "" {
		file, err := os.OpenFile(*appendLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
		if err != nil {
			fatalf("Error opening log file %s: %v\n", *appendLog, err)
		}
		cfg.LogFile = file
	}
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}

	var file *os.File
	var err error

	if *appendOutput {
		file, err = os.OpenFile(*outputFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created output files
	} else {
		file, err = os.Create(*outputFile)
	}

	if err != nil {
		fatalf("Error creating output file %s: %v\n", *outputFile, err)
	}
	cfg.OutputFile = file
}

// setupDuplicateFile configures the duplicate output file.
func setupDuplicateFile(cfg *config.Config) {
	if *duplicateFile == "" {
		return
	}

	file, err := os.Create(*duplicateFile)
	if err != nil {
		fatalf("Error creating duplicate file %s: %v\n", *duplicateFile, err)
	}
	cfg.Duplicate.DuplicateFile = file
}

// openStore opens the game store when -store is given.
func openStore(cfg *config.Config) *storage.Storage {
	if !cfg.Store.Enabled() {
		return nil
	}
	store, err := storage.Open(cfg.Store.Dir)
	if err != nil {
		fatalf("Error opening store %s: %v\n", cfg.Store.Dir, err)
	}
	return store
}

// loadCheckScripts reads the -c check file.
func loadCheckScripts(cfg *config.Config) []*parser.Script {
	if *checkFile == "" {
		return nil
	}
	file, err := os.Open(*checkFile)
	if err != nil {
		fatalf("Error opening check file %s: %v\n", *checkFile, err)
	}
	defer file.Close()

	script, err := parser.ParseScript(file, *checkFile)
	if err != nil {
		fatalf("Error parsing check file %s: %v\n", *checkFile, err)
	}
	return splitCheckScript(script)
}

// splitCheckScript turns a check file into one script per game: each reset
// or fen command starts a new game.
func splitCheckScript(script *parser.Script) []*parser.Script {
	var scripts []*parser.Script
	current := &parser.Script{Name: script.Name}
	for _, cmd := range script.Commands {
		if (cmd.Kind == parser.ResetCommand || cmd.Kind == parser.FENCommand) && len(current.Commands) > 0 {
			scripts = append(scripts, current)
			current = &parser.Script{Name: script.Name}
		}
		current.Commands = append(current.Commands, cmd)
	}
	if len(current.Commands) > 0 {
		scripts = append(scripts, current)
	}
	return scripts
}

// reportStatistics prints the final statistics to the log.
func reportStatistics(cfg *config.Config, stats Statistics) {
	if stats.Filtered {
		cfg.Logf(1, "%d of %d script(s) matched.\n", stats.Matched, stats.Scripts)
	}
	if cfg.Duplicate.Detect {
		cfg.Logf(1, "%d script(s) output, %d duplicate(s), %d with errors, out of %d.\n",
			stats.Output, stats.Duplicates, stats.Failed, stats.Scripts)
		return
	}
	cfg.Logf(1, "%d script(s) output, %d with errors, out of %d.\n", stats.Output, stats.Failed, stats.Scripts)
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: playchess [options] [script-files...]\n\n")
	fmt.Fprintf(os.Stderr, "Replays chess move scripts and reports the resulting positions.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nScript commands (one per line; several moves may share a line; # starts a comment):\n")
	fmt.Fprintf(os.Stderr, "  e2-e4 | e2e4   Move the piece on e2 to e4\n")
	fmt.Fprintf(os.Stderr, "  moves <sq>     List the destinations of the piece on <sq>\n")
	fmt.Fprintf(os.Stderr, "  occupant <sq>  Name the piece on <sq>\n")
	fmt.Fprintf(os.Stderr, "  reset          Restore the starting position\n")
	fmt.Fprintf(os.Stderr, "  fen <FEN>      Load a position\n")
	fmt.Fprintf(os.Stderr, "  flip           Toggle the board orientation\n")
	fmt.Fprintf(os.Stderr, "  show           Draw the current board\n")
	fmt.Fprintf(os.Stderr, "\nOutput formats (-W):\n")
	fmt.Fprintf(os.Stderr, "  text   Headers, answers and a board diagram (default)\n")
	fmt.Fprintf(os.Stderr, "  json   One JSON document with every report\n")
	fmt.Fprintf(os.Stderr, "  fen    Final FEN of each script\n")
}
