package main

import "github.com/beevik/cmd"

var cmds *cmd.Tree

func init() {
	root := cmd.NewTree("bhfuse")
	root.AddCommand(cmd.Command{
		Name:        "help",
		Brief:       "Display available commands",
		Description: "Display the list of available commands.",
		Usage:       "help",
		Data:        (*Host).cmdHelp,
	})
	root.AddCommand(cmd.Command{
		Name:  "model",
		Brief: "Show or set the active fuse model",
		Description: "With no arguments, display the currently active fuse" +
			" model. With an argument, switch to the named model for the" +
			" remainder of the session.",
		Usage: "model [<name>]",
		Data:  (*Host).cmdModel,
	})
	root.AddCommand(cmd.Command{
		Name:  "load",
		Brief: "Load a trace file",
		Description: "Decode a newline-delimited JSON instruction trace" +
			" from disk and make it the active program.",
		Usage: "load <file>",
		Data:  (*Host).cmdLoad,
	})
	root.AddCommand(cmd.Command{
		Name:  "check",
		Brief: "Check fusibility of two loaded instructions",
		Description: "Report whether the instructions at the given indices" +
			" in the active program may be fused under the active model.",
		Usage: "check <index-a> <index-b>",
		Data:  (*Host).cmdCheck,
	})
	root.AddCommand(cmd.Command{
		Name:  "scan",
		Brief: "Check fusibility across the whole active program",
		Description: "Run check_fusible over every adjacent pair of" +
			" instructions in the active program.",
		Usage: "scan",
		Data:  (*Host).cmdScan,
	})
	root.AddCommand(cmd.Command{
		Name:  "quit",
		Brief: "Exit bhfuse",
		Usage: "quit",
		Data:  (*Host).cmdQuit,
	})

	cmds = root
}
