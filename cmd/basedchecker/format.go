package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"basedchecker/internal/fmt2"
)

// runFormat implements the "fmt" subcommand: rewrite a source file in
// place to its canonical spelling, printing the result to stdout as well
// so it can be used as a filter (`basedchecker fmt file.based | diff -`).
func runFormat(args []string) {
	if len(args) != 1 {
		log.Fatal("usage: basedchecker fmt <file>")
	}
	path := args[0]

	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("reading %s: %v", path, err)
	}
	text := strings.TrimRight(string(data), "\n")
	var lines []string
	if text != "" {
		lines = strings.Split(text, "\n")
	}

	formatted, err := fmt2.Format(lines)
	if err != nil {
		log.Fatalf("%s: %v", path, err)
	}

	out := fmt2.Join(formatted)
	if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
		log.Fatalf("writing %s: %v", path, err)
	}
	fmt.Print(out)
}
