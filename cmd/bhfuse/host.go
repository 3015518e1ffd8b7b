package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/beevik/cmd"
	"github.com/fossabot/bohrium"
	"github.com/fossabot/bohrium/fusemodel"
	"github.com/fossabot/bohrium/instr"
	"github.com/fossabot/bohrium/trace"
)

// Host holds the state one bhfuse session accumulates: the last decoded
// instruction stream and the engine commands are checked against.
type Host struct {
	input       *bufio.Scanner
	output      *bufio.Writer
	interactive bool
	engine      *bohrium.FuseEngine
	program     []instr.Instruction
	lastCmd     *cmd.Selection
}

// New creates a Host whose engine resolves BH_FUSE_MODEL the normal way.
func New() *Host {
	return &Host{engine: bohrium.NewFuseEngine()}
}

// RunCommands reads commands from r, one per line, writing results to w.
// When interactive is true a prompt is printed before each read.
func (h *Host) RunCommands(r io.Reader, w io.Writer, interactive bool) {
	h.input = bufio.NewScanner(r)
	h.output = bufio.NewWriter(w)
	h.interactive = interactive

	for {
		h.prompt()

		line, err := h.getLine()
		if err != nil {
			break
		}
		if err := h.processCommand(line); err != nil {
			break
		}
	}
}

func (h *Host) getLine() (string, error) {
	if h.input.Scan() {
		return h.input.Text(), nil
	}
	if h.input.Err() != nil {
		return "", h.input.Err()
	}
	return "", io.EOF
}

func (h *Host) prompt() {
	if h.interactive {
		h.printf("bhfuse> ")
	}
}

func (h *Host) processCommand(line string) error {
	var c cmd.Selection
	if strings.TrimSpace(line) != "" {
		var err error
		c, err = cmds.Lookup(line)
		switch {
		case errors.Is(err, cmd.ErrNotFound):
			h.println("Command not found.")
			return nil
		case errors.Is(err, cmd.ErrAmbiguous):
			h.println("Command is ambiguous.")
			return nil
		case err != nil:
			h.printf("ERROR: %v\n", err)
			return nil
		}
	} else if h.lastCmd != nil {
		c = *h.lastCmd
	}

	if c.Command == nil {
		return nil
	}
	if c.Command.Data == nil && c.Command.Subtree != nil {
		h.displayCommands(c.Command.Subtree)
		return nil
	}

	h.lastCmd = &c
	handler := c.Command.Data.(func(*Host, cmd.Selection) error)
	return handler(h, c)
}

func (h *Host) printf(format string, args ...any) {
	fmt.Fprintf(h.output, format, args...)
	h.output.Flush()
}

func (h *Host) println(args ...any) {
	fmt.Fprintln(h.output, args...)
	h.output.Flush()
}

func (h *Host) displayCommands(t *cmd.Tree) {
	h.printf("%s commands:\n", t.Title)
	for _, c := range t.Commands {
		if c.Brief != "" {
			h.printf("    %-12s  %s\n", c.Name, c.Brief)
		}
	}
}

func (h *Host) cmdHelp(c cmd.Selection) error {
	h.displayCommands(cmds)
	return nil
}

func (h *Host) cmdQuit(c cmd.Selection) error {
	return errors.New("exiting bhfuse")
}

func (h *Host) cmdModel(c cmd.Selection) error {
	if len(c.Args) == 0 {
		h.printf("active model: %s\n", h.engine.ModelText())
		return nil
	}

	name := strings.ToLower(c.Args[0])
	for _, m := range fusemodel.All() {
		if fusemodel.Text(m) == name {
			h.engine = bohrium.NewFuseEngine(bohrium.WithModel(m))
			h.printf("model set to %s\n", h.engine.ModelText())
			return nil
		}
	}
	h.printf("unrecognized model %q\n", c.Args[0])
	return nil
}

func (h *Host) cmdLoad(c cmd.Selection) error {
	if len(c.Args) < 1 {
		h.println("usage: load <file>")
		return nil
	}

	file, err := os.Open(c.Args[0])
	if err != nil {
		h.printf("%v\n", err)
		return nil
	}
	defer file.Close()

	program, err := trace.Decode(file)
	if err != nil {
		h.printf("failed to decode %s: %v\n", c.Args[0], err)
		return nil
	}

	h.program = program
	h.printf("loaded %d instructions from %s\n", len(program), c.Args[0])
	return nil
}

func (h *Host) cmdCheck(c cmd.Selection) error {
	if len(c.Args) != 2 {
		h.println("usage: check <index-a> <index-b>")
		return nil
	}

	i, erri := strconv.Atoi(c.Args[0])
	j, errj := strconv.Atoi(c.Args[1])
	if erri != nil || errj != nil || i < 0 || j < 0 || i >= len(h.program) || j >= len(h.program) {
		h.println("index out of range")
		return nil
	}

	fusible := h.engine.CheckFusible(h.program[i], h.program[j])
	h.printf("check_fusible(%d, %d) = %v\n", i, j, fusible)
	return nil
}

func (h *Host) cmdScan(c cmd.Selection) error {
	pairs := trace.AdjacentPairs(h.program)
	if len(pairs) == 0 {
		h.println("no adjacent pairs to scan")
		return nil
	}

	for k, pair := range pairs {
		fusible := h.engine.CheckFusible(pair[0], pair[1])
		h.printf("%d-%d: %v\n", k, k+1, fusible)
	}
	return nil
}
