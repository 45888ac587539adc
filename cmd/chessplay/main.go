// chessplay replays chess games given in coordinate notation and prints
// the resulting move records and positions.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/output"
	"github.com/lgbarn/chessrules-go/internal/worker"
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
		fmt.Printf("chessplay version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Set up logging and output files
	setupLogFile(cfg)
	setupOutputFile(cfg)

	moveLists, err := collectMoveLists()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if failed := run(cfg, moveLists, numWorkers()); failed > 0 {
		os.Exit(1)
	}
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}

	file, err := os.Create(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.SetLog(file)
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}

	file, err := os.Create(*outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.SetOutput(file)
}

// collectMoveLists returns the games to replay: the lines of the batch
// file, or a single game from -m or the remaining arguments.
func collectMoveLists() ([]string, error) {
	if *batchFile == "" {
		moves := *moveList
		if moves == "" {
			moves = strings.Join(flag.Args(), " ")
		}
		return []string{moves}, nil
	}

	if *batchFile == "-" {
		return readMoveLists(os.Stdin)
	}
	file, err := os.Open(*batchFile) //nolint:gosec // G304: CLI tool opens user-specified files
	if err != nil {
		return nil, errors.Wrapf(err, "opening batch file %s", *batchFile)
	}
	defer file.Close()
	return readMoveLists(file)
}

// readMoveLists reads one move list per line. Blank lines and lines
// starting with '#' are skipped.
func readMoveLists(r io.Reader) ([]string, error) {
	var lists []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lists = append(lists, line)
	}
	return lists, scanner.Err()
}

func numWorkers() int {
	if *workers > 0 {
		return *workers
	}
	return runtime.NumCPU()
}

// run replays every move list, writes the games and returns how many of
// them stopped at a rejected move. A rejected game is still written up to
// the position it reached.
func run(cfg *config.Config, moveLists []string, n int) int {
	results := worker.Run(cfg, moveLists, worker.WithWorkers(n), worker.WithBufferSize(2*n))

	writer := output.NewGameWriter(cfg.OutputFile, cfg)
	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			if cfg.Verbosity > 0 {
				fmt.Fprintf(cfg.LogFile, "game %d: %v\n", r.Index+1, r.Err)
			}
		}
		if r.Game == nil {
			continue
		}
		if err := writer.WriteGame(r.Game); err != nil {
			fmt.Fprintf(cfg.LogFile, "game %d: write failed: %v\n", r.Index+1, err)
		}
	}
	if err := writer.Close(); err != nil {
		fmt.Fprintf(cfg.LogFile, "write failed: %v\n", err)
	}

	if cfg.Verbosity > 0 && len(results) > 1 {
		fmt.Fprintf(cfg.LogFile, "%d game(s) replayed, %d stopped at an illegal move.\n", len(results), failed)
	}
	return failed
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chessplay [options] [moves...]\n\n")
	fmt.Fprintf(os.Stderr, "Replays chess games and prints the moves and final position.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nMove notation:\n")
	fmt.Fprintf(os.Stderr, "  e2e4   move from e2 to e4 (e2-e4 and e4xd5 are also accepted)\n")
	fmt.Fprintf(os.Stderr, "  e1g1   castle by moving the king two squares\n")
	fmt.Fprintf(os.Stderr, "  e7e8q  promote to a queen (n, b, r, q)\n")
}
