package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
	"github.com/mattn/go-isatty"

	"github.com/katalvlaran/lvsearch/heightmap"
)

type hillFlags struct {
	commonFlags
	start string
	hz    int
	skip  int
}

var hill hillFlags

func HillCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       runHill,
		UsageLine: "hill [options]",
		Short:     "fewest steps up a heightmap",
		Long: `
counts the fewest steps from S (or from the nearest cell of a given
elevation) to E, climbing at most one letter per step

	$ lvsearch hill -file heightmap.txt
	$ lvsearch hill -file heightmap.txt -start a -hz 30 -skip 5

`,
		Flag: *flag.NewFlagSet("hill", flag.ExitOnError),
	}
	hill.register(cmd, "sample.txt")
	cmd.Flag.StringVar(&hill.start, "start", "S", "Where to start: S, or an elevation letter a-z")
	cmd.Flag.IntVar(&hill.hz, "hz", 10, "Animation frames per second on a terminal (0: no animation)")
	cmd.Flag.IntVar(&hill.skip, "skip", 1, "Only draw every n-th search step")

	return cmd
}

func runHill(cmd *commander.Command, args []string) error {
	stop, err := hill.setup()
	if err != nil {
		return err
	}
	defer stop()

	if len(hill.start) != 1 {
		return fmt.Errorf("bad -start %q: want S or a single letter", hill.start)
	}
	f, err := hill.openInput()
	if err != nil {
		return err
	}
	defer f.Close()
	m, err := heightmap.Parse(f)
	if err != nil {
		return err
	}
	log.Printf("%d×%d map, start %v, end %v", m.Width, m.Height, m.Start, m.End)

	s, err := m.Stepper(hill.start[0])
	if err != nil {
		return err
	}

	tty := isatty.IsTerminal(os.Stdout.Fd())
	animate := hill.hz > 0 && tty
	skip := hill.skip
	if skip < 1 {
		skip = 1
	}
	var frame time.Duration
	if animate {
		frame = time.Second / time.Duration(hill.hz)
	}
	for i := 0; ; i++ {
		done, err := s.Step()
		if err != nil {
			return err
		}
		if done {
			break
		}
		if !animate || i%skip != 0 {
			continue
		}
		clearScreen()
		if err := heightmap.Render(os.Stdout, m, s, true); err != nil {
			return err
		}
		time.Sleep(frame)
	}
	if animate {
		clearScreen()
	}
	if err := heightmap.Render(os.Stdout, m, s, tty); err != nil {
		return err
	}
	res := s.Result()
	log.Printf("%d cells expanded", res.Expanded)
	fmt.Printf("Solution 12: %d\n", res.Cost)

	return nil
}

func clearScreen() { fmt.Print("\x1b[2J\x1b[1;1H") }
