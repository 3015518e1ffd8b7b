package main

import (
	"io"
	"strings"
)

// scriptedReader feeds a fixed sequence of command lines to RunCommands, as
// if they had been typed at the prompt. It lets the non-interactive,
// file-argument mode of bhfuse reuse the exact same dispatch path
// (processCommand, via cmds.Lookup) that the interactive REPL uses.
type scriptedReader struct {
	lines []string
	r     io.Reader
}

func newScriptedInput(file string) *scriptedReader {
	return &scriptedReader{lines: []string{"load " + file, "scan", "quit"}}
}

func (s *scriptedReader) Read(p []byte) (int, error) {
	if s.r == nil {
		s.r = strings.NewReader(strings.Join(s.lines, "\n") + "\n")
	}
	return s.r.Read(p)
}
