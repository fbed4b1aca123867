package config

import (
	"time"

	"github.com/namsral/flag"
)

type Config struct {
	StructurePath string
	WordsPath     string
	OutputPath    string
	Shuffle       bool
	SolveTimeout  time.Duration
	Debug         bool
}

func (c *Config) Load(args []string) error {
	fs := flag.NewFlagSet("crossgen", flag.ContinueOnError)
	fs.StringVar(&c.StructurePath, "structure", "", "path to the grid structure file")
	fs.StringVar(&c.WordsPath, "words", "", "path to the word list file")
	fs.StringVar(&c.OutputPath, "output", "", "optional path to save a PNG of the solved grid")
	fs.BoolVar(&c.Shuffle, "shuffle", false, "randomize heuristic tie-breaks for varied fills")
	fs.DurationVar(&c.SolveTimeout, "timeout", 0, "abandon the solve after this long; 0 means no limit")
	fs.BoolVar(&c.Debug, "debug", false, "log at debug level")
	return fs.Parse(args)
}
