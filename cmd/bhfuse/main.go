package main

import (
	"os"

	"github.com/beevik/term"
)

func main() {
	args := os.Args[1:]
	if len(args) > 0 {
		runFiles(args)
		return
	}

	h := New()
	h.RunCommands(os.Stdin, os.Stdout, term.IsTerminal(int(os.Stdin.Fd())))
}

// runFiles loads and scans each named trace file non-interactively,
// equivalent to typing "load <file>" followed by "scan" at the prompt.
func runFiles(files []string) {
	for _, f := range files {
		h := New()
		h.RunCommands(newScriptedInput(f), os.Stdout, false)
	}
}
