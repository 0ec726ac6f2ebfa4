// Command lvsearch solves search puzzles with the lvsearch packages.
//
//	$ lvsearch minerals -file blueprints.txt -time 24
//	$ lvsearch hill -file heightmap.txt -start a -hz 0
//	$ lvsearch lava -file droplet.txt
//
// Results go to standard output; progress and statistics go to standard
// error when -v is given.
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
)

func rootCmd() *commander.Command {
	return &commander.Command{
		UsageLine: os.Args[0] + " <command> [options]",
		Short:     "best-first search puzzles",
		Subcommands: []*commander.Command{
			MineralsCmd(),
			HillCmd(),
			LavaCmd(),
		},
		Flag: *flag.NewFlagSet("lvsearch", flag.ExitOnError),
	}
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("lvsearch: ")
	log.SetOutput(io.Discard)

	if err := rootCmd().Dispatch(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "**err**: %v\n", err)
		os.Exit(1)
	}
}
