package main

import (
	"fmt"
	"log"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"

	"github.com/katalvlaran/lvsearch/lavadrop"
)

var lava commonFlags

func LavaCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       runLava,
		UsageLine: "lava [options]",
		Short:     "surface area of a lava droplet",
		Long: `
prints the total surface area of a droplet of unit cubes, then the part
of it reachable from outside

	$ lvsearch lava -file droplet.txt

`,
		Flag: *flag.NewFlagSet("lava", flag.ExitOnError),
	}
	lava.register(cmd, "sample.txt")

	return cmd
}

func runLava(cmd *commander.Command, args []string) error {
	stop, err := lava.setup()
	if err != nil {
		return err
	}
	defer stop()

	f, err := lava.openInput()
	if err != nil {
		return err
	}
	defer f.Close()
	d, err := lavadrop.Parse(f)
	if err != nil {
		return err
	}
	lo, hi := d.Bounds()
	log.Printf("%d cubes within %v..%v", d.Len(), lo, hi)

	ext, err := d.ExteriorArea()
	if err != nil {
		return err
	}
	fmt.Printf("Surface area: %d\n", d.SurfaceArea())
	fmt.Printf("Exterior surface area: %d\n", ext)

	return nil
}
