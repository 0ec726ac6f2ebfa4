package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
	"github.com/kr/pretty"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvsearch/bestfirst"
	"github.com/katalvlaran/lvsearch/production"
)

type mineralsFlags struct {
	commonFlags
	horizon    int
	blueprints int
	jobs       int
	timeout    string
	budget     int
	format     string
}

var minerals mineralsFlags

func MineralsCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       runMinerals,
		UsageLine: "minerals [options]",
		Short:     "maximise geodes cracked by a robot factory",
		Long: `
finds, for every blueprint, the build order that opens the most geodes
before the time runs out, then prints the quality level (sum of id×geodes)
and the product of all geode counts

	$ lvsearch minerals -file blueprints.txt -time 24
	$ lvsearch minerals -file blueprints.txt -time 32 -blueprints 3

`,
		Flag: *flag.NewFlagSet("minerals", flag.ExitOnError),
	}
	minerals.register(cmd, "sample.txt")
	cmd.Flag.IntVar(&minerals.horizon, "time", 24, "Minutes available to crack geodes")
	cmd.Flag.IntVar(&minerals.blueprints, "blueprints", 0, "Only take the first n blueprints into account (0: all)")
	cmd.Flag.IntVar(&minerals.jobs, "j", runtime.GOMAXPROCS(0), "Blueprints searched in parallel")
	cmd.Flag.StringVar(&minerals.timeout, "timeout", "0s", "Give up on a blueprint after this long, e.g. 30s (0s: never)")
	cmd.Flag.IntVar(&minerals.budget, "budget", 0, "Give up on a blueprint after this many expanded states (0: never)")
	cmd.Flag.StringVar(&minerals.format, "format", "text", "Output format: text or yaml")

	return cmd
}

func runMinerals(cmd *commander.Command, args []string) error {
	stop, err := minerals.setup()
	if err != nil {
		return err
	}
	defer stop()

	f, err := minerals.openInput()
	if err != nil {
		return err
	}
	defer f.Close()
	bps, err := production.ParseBlueprints(f)
	if err != nil {
		return err
	}
	if n := minerals.blueprints; n > 0 && n < len(bps) {
		bps = bps[:n]
	}
	log.Printf("%d blueprints, %d minutes", len(bps), minerals.horizon)

	if minerals.format != "text" && minerals.format != "yaml" {
		return fmt.Errorf("unknown -format %q (want text or yaml)", minerals.format)
	}
	timeout, err := time.ParseDuration(minerals.timeout)
	if err != nil {
		return fmt.Errorf("bad -timeout: %w", err)
	}
	results, err := solveAll(context.Background(), bps, timeout)
	if err != nil {
		return err
	}

	if minerals.format == "yaml" {
		return reportYAML(os.Stdout, results)
	}

	return report(os.Stdout, results, minerals.verbose)
}

// solveAll searches every blueprint, at most minerals.jobs at a time.
// Results keep the order of bps. The first failure cancels the rest.
func solveAll(ctx context.Context, bps []*production.Blueprint, timeout time.Duration) ([]*production.Result, error) {
	results := make([]*production.Result, len(bps))
	g, ctx := errgroup.WithContext(ctx)
	if minerals.jobs > 0 {
		g.SetLimit(minerals.jobs)
	}
	opts := []bestfirst.Option{
		bestfirst.WithContext(ctx),
		bestfirst.WithTimeLimit(timeout),
		bestfirst.WithMaxExpansions(minerals.budget),
	}
	for i, bp := range bps {
		g.Go(func() error {
			start := time.Now()
			res, err := production.Solve(bp, minerals.horizon, opts...)
			if err != nil {
				return err
			}
			log.Printf("blueprint %d: %s states expanded, %s pushed in %v",
				bp.ID, humanize.Comma(int64(res.Expanded)), humanize.Comma(int64(res.Pushed)),
				time.Since(start).Round(time.Millisecond))
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

func report(w io.Writer, results []*production.Result, verbose bool) error {
	quality, product := 0, 1
	for _, res := range results {
		if _, err := fmt.Fprintf(w, "#%d: %d\n", res.Blueprint.ID, res.Geodes()); err != nil {
			return err
		}
		if verbose {
			log.Printf("%# v", pretty.Formatter(res.Blueprint))
			for i, move := range res.Plan {
				log.Printf("  %-20s %v", move, res.Path[i+1])
			}
		}
		quality += res.QualityLevel()
		product *= res.Geodes()
	}
	if _, err := fmt.Fprintf(w, "Quality Level: %d\n", quality); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Product of all max possible geodes: %d\n", product)

	return err
}

// blueprintReport is the YAML form of one search result.
type blueprintReport struct {
	ID       int      `yaml:"id"`
	Geodes   int      `yaml:"geodes"`
	Quality  int      `yaml:"quality"`
	Expanded int      `yaml:"expanded"`
	Plan     []string `yaml:"plan,flow"`
}

type mineralsReport struct {
	Blueprints   []blueprintReport `yaml:"blueprints"`
	QualityLevel int               `yaml:"quality_level"`
	Product      int               `yaml:"geode_product"`
}

func reportYAML(w io.Writer, results []*production.Result) error {
	out := mineralsReport{Product: 1}
	for _, res := range results {
		plan := make([]string, len(res.Plan))
		for i, move := range res.Plan {
			plan[i] = move.String()
		}
		out.Blueprints = append(out.Blueprints, blueprintReport{
			ID:       res.Blueprint.ID,
			Geodes:   res.Geodes(),
			Quality:  res.QualityLevel(),
			Expanded: res.Expanded,
			Plan:     plan,
		})
		out.QualityLevel += res.QualityLevel()
		out.Product *= res.Geodes()
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(out); err != nil {
		return err
	}

	return enc.Close()
}
