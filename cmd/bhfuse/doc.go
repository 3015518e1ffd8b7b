// Command bhfuse is a small command-line front end onto the fusibility
// engine, grounded on the command-tree and terminal-detection conventions
// of a 6502 debugger host: a cmd.Tree of subcommands dispatched through a
// Selection, fed either from files named on the command line or from an
// interactive prompt on stdin.
//
// Non-interactive: bhfuse trace1.ndjson trace2.ndjson runs "scan" over
// each file's decoded instruction stream and exits.
//
// Interactive: bhfuse with no arguments drops into a REPL reading commands from stdin, prompting only when stdin is an
// actual terminal.
package main
