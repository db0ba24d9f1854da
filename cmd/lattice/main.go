package main

import (
	"fmt"
	"os"

	"github.com/agiangrant/lattice/cmd/lattice/commands"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	var err error
	switch cmd {
	case "init":
		err = commands.Init(args)
	case "dump":
		err = commands.Dump(args)
	case "inspect":
		err = commands.Inspect(args)
	case "version", "-v", "--version":
		fmt.Printf("lattice version %s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`lattice - layout and virtualization engine CLI

Usage: lattice <command> [options]

Commands:
  init      Write a default lattice.toml
  dump      Lay out the demo scene and render it to a PNG
  inspect   Lay out the demo scene and print the arranged geometry
  version   Print version information
  help      Show this help message

Examples:
  lattice init                             Create lattice.toml with defaults
  lattice dump -out layout.png             Render the demo at 800x600
  lattice dump -scroll 1200 -width 1024    Render after scrolling both panes
  lattice inspect -depth 3                 Print the top three levels

Configuration:
  Every command reads lattice.toml from the working directory unless
  -config names another file. A missing file means defaults.`)
}
