package main

import (
	"fmt"
	"os"
)

const usageText = `notepad is a terminal note list.

Usage:
  notepad [command] [flags]

Commands:
  ui       run terminal UI (default)
  replay   run a note script headless and print the final notes
  journal  list actions recorded by the journal sink
  config   print configuration (effective or defaults)
  keys     print keybindings (effective or defaults)
  help     show help

Flags:
  -h, --help   show help

Replay flags:
  --format     output format: text|json|toml|html
  --quiet      do not echo actions to stderr
  --sink       override configured action sinks (repeatable)
  --journal    replay a recorded journal instead of a script
  --session    journal session to replay (default: latest)

Examples:
  notepad
  notepad replay notes.txt
  printf 'add Buy milk\ndisable 0\n' | notepad replay --format json -
  notepad replay --journal ~/.notepad/journal.db --format html
  notepad config --default --format toml
`

func printUsage() {
	fmt.Fprint(os.Stderr, usageText)
}

func main() {
	args := os.Args[1:]
	if len(args) == 0 {
		args = []string{"ui"}
	}

	wiring := defaultCommandWiring(os.Stdin, os.Stdout, os.Stderr)
	commands := buildCommands(wiring)

	switch args[0] {
	case "-h", "--help", "help":
		printUsage()
		return
	}

	runner, ok := commands[args[0]]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", args[0])
		printUsage()
		os.Exit(2)
	}
	exitOnErr(args[0], runner.Run(args[1:]), wiring.stderr)
}
