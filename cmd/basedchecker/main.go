// Command basedchecker is the CLI boundary around the judging core: it
// owns argument triage, file I/O, message formatting, and the process
// exit-code contract (spec.md §6) — everything the core interpreter
// explicitly treats as an external collaborator.
package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"basedchecker/internal/console"
	"basedchecker/internal/dashboard"
	"basedchecker/internal/judge"
	"basedchecker/internal/report"
	"basedchecker/internal/store"
	"basedchecker/internal/verdict"
)

func main() {
	os.Exit(main1())
}

// main1 is the real entry point, split out from main so the testscript
// harness can register it as a subcommand of the same test binary
// instead of needing a separately built executable.
func main1() int {
	args := os.Args[1:]

	if len(args) > 0 && args[0] == "console" {
		if err := console.Run(args[1:], os.Stdin, os.Stdout); err != nil {
			log.Fatalf("console: %v", err)
		}
		return 0
	}
	if len(args) > 0 && args[0] == "fmt" {
		runFormat(args[1:])
		return 0
	}

	inf, ouf, ans, opts := parseJudgeArgs(args)

	taskID, err := readTaskID(inf)
	if err != nil {
		fmt.Fprintf(os.Stderr, "CHECKER ERROR author made the oopsie: reading task id: %v\n", err)
		return 3
	}
	candidate, err := readLines(ouf)
	if err != nil {
		fmt.Fprintf(os.Stderr, "CHECKER ERROR author made the oopsie: reading candidate source: %v\n", err)
		return 3
	}
	jury, err := readLines(ans)
	if err != nil {
		fmt.Fprintf(os.Stderr, "CHECKER ERROR author made the oopsie: reading jury source: %v\n", err)
		return 3
	}

	runID := uuid.New().String()
	start := time.Now()

	var db *store.Store
	if opts.storeDSN != "" {
		db, err = store.Open(opts.storeDSN)
		if err != nil {
			log.Fatalf("opening store: %v", err)
		}
		defer db.Close()
	}

	var live *dashboard.Server
	if opts.dashboardAddr != "" {
		live, err = dashboard.Start(opts.dashboardAddr)
		if err != nil {
			log.Fatalf("starting dashboard: %v", err)
		}
		defer live.Close()
	}

	var observe judge.TrialObserver
	if live != nil {
		observe = func(trial int, v verdict.Verdict) {
			live.Broadcast(dashboard.Event{
				RunID:  runID,
				TaskID: taskID,
				Trial:  trial,
				Kind:   v.Kind.String(),
				Line:   v.Line,
			})
		}
	}

	v, fail := judge.RunChecker(taskID, candidate, jury, observe)
	elapsed := time.Since(start)

	if live != nil {
		live.BroadcastFinal(runID, taskID, v, fail)
	}
	if db != nil {
		if err := db.RecordRun(runID, taskID, v, fail, elapsed); err != nil {
			log.Printf("store: failed to record run %s: %v", runID, err)
		}
	}
	if opts.report {
		fmt.Fprint(os.Stderr, report.Render(runID, taskID, v, fail, elapsed))
	}

	if fail != nil {
		fmt.Fprintf(os.Stderr, "CHECKER ERROR author made the oopsie: %s\n", fail.Message)
		os.Exit(3)
	}
	exitForVerdict(v)
	return 0 // unreachable: every branch of exitForVerdict calls os.Exit
}

type judgeOpts struct {
	storeDSN      string
	dashboardAddr string
	report        bool
}

// parseJudgeArgs recognizes the three mandatory positional arguments
// (spec.md §6) followed by this repository's optional instrumentation
// flags, which never change the judged outcome.
func parseJudgeArgs(args []string) (inf, ouf, ans string, opts judgeOpts) {
	var positional []string
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--store":
			i++
			if i >= len(args) {
				log.Fatal("--store requires a DSN argument")
			}
			opts.storeDSN = args[i]
		case "--dashboard":
			i++
			if i >= len(args) {
				log.Fatal("--dashboard requires an address argument")
			}
			opts.dashboardAddr = args[i]
		case "-report", "--report":
			opts.report = true
		default:
			positional = append(positional, args[i])
		}
	}
	if len(positional) != 3 {
		log.Fatalf("usage: basedchecker <inf> <ouf> <ans> [--store DSN] [--dashboard ADDR] [-report]\n" +
			"       basedchecker console [file]\n" +
			"       basedchecker fmt <file>")
	}
	return positional[0], positional[1], positional[2], opts
}

func readTaskID(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(strings.TrimSpace(string(data)))
}

func readLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	text := strings.TrimRight(string(data), "\n")
	if text == "" {
		return nil, nil
	}
	return strings.Split(text, "\n"), nil
}

// exitForVerdict maps a reported Verdict to its diagnostic message and
// process exit code, per spec.md §6's table exactly. The wording is a
// stylistic choice of this boundary layer, not part of the core
// contract, but the exit codes and cited line numbers are.
func exitForVerdict(v verdict.Verdict) {
	switch v.Kind {
	case verdict.Correct:
		fmt.Fprintln(os.Stderr, "ur the GOAT of based code!!1!")
		os.Exit(0)
	case verdict.WrongAnswer:
		fmt.Fprintf(os.Stderr, "this ain't it, chief, %s\n", v.Message)
		os.Exit(1)
	case verdict.TimeLimitExceeded:
		fmt.Fprintln(os.Stderr, "you have skill issue on speed smh")
		os.Exit(1)
	case verdict.RuntimeError:
		fmt.Fprintf(os.Stderr, "ya code got L + ratioed on line %d because %s\n", v.Line, v.Message)
		os.Exit(1)
	case verdict.CompileError:
		fmt.Fprintf(os.Stderr, "jesse, what are you talking about on line %d? %s\n", v.Line, v.Message)
		os.Exit(1)
	case verdict.Based:
		fmt.Fprintln(os.Stderr, `"Based"? Are you kidding me? I spent a decent portion of my life preparing `+
			`this problem and your submission to it is "Based"? What do I have to say to you? Absolutely `+
			`nothing. I couldn't be bothered to respond to such meaningless attempt at writing code. Do you `+
			`want "Based" on your Codeforces profile?`)
		os.Exit(1)
	case verdict.OtherError:
		fmt.Fprintf(os.Stderr, "unexpected error in participant output: %s\n", v.Message)
		os.Exit(1)
	default:
		log.Fatalf("internal error: unhandled verdict kind %v", v.Kind)
	}
}
