package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ReplCmd reads commands from stdin until quit or EOF. It accepts the same
// go and bench forms as the one-shot subcommands.
type ReplCmd struct{}

func (r *ReplCmd) Run(app *appContext) error {
	fmt.Println("holdem-equity — commands: go <spot> [games] [threads], bench [threads], quit")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			fmt.Println()
			return scanner.Err()
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "quit", "exit":
			return nil
		case "go":
			if err := runSpot(app, fields[1:]); err != nil {
				fmt.Fprintf(os.Stderr, "error: %v\n", err)
			}
		case "bench":
			threads := 0
			if len(fields) > 1 {
				n, err := strconv.Atoi(fields[1])
				if err != nil {
					fmt.Fprintf(os.Stderr, "error: bad thread count %q\n", fields[1])
					continue
				}
				threads = n
			}
			if err := runBench(app, threads); err != nil {
				fmt.Fprintf(os.Stderr, "error: %v\n", err)
			}
		default:
			fmt.Fprintf(os.Stderr, "unknown command %q (go, bench, quit)\n", fields[0])
		}
	}
}
