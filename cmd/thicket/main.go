// Command thicket runs the forth engine against stdin (or a vocabulary
// file plus stdin), printing output to stdout and diagnostics to stderr
// (or to the -log file).
// It is grounded on the teacher's main.go: the same flag surface
// (-mem-limit, -timeout, -trace, -dump) and the same internal/logio
// setup, adapted to the new engine's API.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jcorbin/thicket/forth"
	"github.com/jcorbin/thicket/internal/logio"
)

func main() {
	var (
		memLimit uint
		timeout  time.Duration
		trace    bool
		dump     bool
		vocab    string
		logPath  string
	)
	flag.UintVar(&memLimit, "mem-limit", 0, "enable a memory limit")
	flag.DurationVar(&timeout, "timeout", 0, "specify a time limit for the whole run")
	flag.BoolVar(&trace, "trace", false, "enable TRACE-level diagnostic logging")
	flag.BoolVar(&dump, "dump", false, "print a diagnostic dump on any runtime error")
	flag.StringVar(&vocab, "vocab", "", "load a vocabulary/script file before reading stdin")
	flag.StringVar(&logPath, "log", "", "write diagnostics to this file instead of stderr")
	flag.Parse()

	log := logio.Logger{}
	log.SetOutput(os.Stderr)
	defer func() { os.Exit(log.ExitCode()) }()

	level := "ERROR"
	if trace {
		level = "TRACE"
	}

	// The optional -vocab and -log files are opened concurrently, the same
	// coordination shape the teacher's scripts/gen_vm_expects.go uses
	// errgroup for around its subprocess pipe and timeout context.
	var vocabFile, logFile *os.File
	g, _ := errgroup.WithContext(context.Background())
	if logPath != "" {
		g.Go(func() error {
			f, err := os.Create(logPath)
			if err != nil {
				return fmt.Errorf("opening -log file: %w", err)
			}
			logFile = f
			return nil
		})
	}
	if vocab != "" {
		g.Go(func() error {
			f, err := os.Open(vocab)
			if err != nil {
				return fmt.Errorf("opening -vocab file: %w", err)
			}
			vocabFile = f
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.ErrorIf(err)
		return
	}
	if logFile != nil {
		log.SetOutput(logFile)
	}
	if vocabFile != nil {
		defer vocabFile.Close()
	}

	var dumpWriter *logio.Writer
	if dump {
		dumpWriter = &logio.Writer{Logf: log.Leveledf("DUMP")}
		defer dumpWriter.Close()
	}
	logf := log.Leveledf(level)
	if dumpWriter != nil {
		errLogf := logf
		logf = func(mess string, args ...interface{}) {
			errLogf(mess, args...)
			fmt.Fprintf(dumpWriter, mess+"\n", args...)
		}
	}

	stdin := forth.NewLineSource(os.Stdin)
	e := forth.New(
		forth.WithLogf(logf),
		forth.WithMemLimit(memLimit),
		forth.WithOutput(os.Stdout),
		forth.WithInput(stdin),
	)

	if timeout != 0 {
		timer := time.AfterFunc(timeout, func() {
			log.Errorf("run exceeded -timeout %v", timeout)
			os.Exit(log.ExitCode())
		})
		defer timer.Stop()
	}

	if vocabFile != nil {
		if err := e.ReadFrom(vocabFile); err != nil {
			log.ErrorIf(fmt.Errorf("loading %v: %w", vocab, err))
			return
		}
	}

	log.ErrorIf(e.Run(stdin))
	log.ErrorIf(e.LastError())
}
