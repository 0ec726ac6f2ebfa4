package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/gonuts/commander"
	"github.com/klauspost/compress/gzip"
	"github.com/pkg/profile"
)

// commonFlags are accepted by every subcommand.
type commonFlags struct {
	file    string
	verbose bool
	pprof   string
}

func (c *commonFlags) register(cmd *commander.Command, defaultFile string) {
	cmd.Flag.StringVar(&c.file, "file", defaultFile, "Input file")
	cmd.Flag.BoolVar(&c.verbose, "v", false, "Log progress and statistics to stderr")
	cmd.Flag.StringVar(&c.pprof, "pprof", "", "Write a profile to the working directory: cpu, mem or clock")
}

// setup applies -v and starts the profiler requested with -pprof. The
// returned function stops it and must be deferred.
func (c *commonFlags) setup() (func(), error) {
	if c.verbose {
		log.SetOutput(os.Stderr)
	}

	var mode func(*profile.Profile)
	switch c.pprof {
	case "":
		return func() {}, nil
	case "cpu":
		mode = profile.CPUProfile
	case "mem":
		mode = profile.MemProfile
	case "clock":
		mode = profile.ClockProfile
	default:
		return nil, fmt.Errorf("unknown -pprof mode %q (want cpu, mem or clock)", c.pprof)
	}
	p := profile.Start(mode, profile.ProfilePath("."), profile.Quiet)

	return p.Stop, nil
}

// openInput opens the -file argument. Files ending in .gz are
// decompressed on the fly.
func (c *commonFlags) openInput() (io.ReadCloser, error) {
	if c.file == "" {
		return nil, fmt.Errorf("missing -file")
	}
	f, err := os.Open(c.file)
	if err != nil {
		return nil, err
	}
	log.Printf("reading %s", c.file)
	if !strings.HasSuffix(c.file, ".gz") {
		return f, nil
	}
	zr, err := gzip.NewReader(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("%s: %w", c.file, err)
	}

	return &gzipFile{Reader: zr, file: f}, nil
}

// gzipFile closes both the decompressor and the file underneath it.
type gzipFile struct {
	*gzip.Reader
	file *os.File
}

func (g *gzipFile) Close() error {
	err := g.Reader.Close()
	if cerr := g.file.Close(); err == nil {
		err = cerr
	}

	return err
}
