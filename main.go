package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/bendobbins/crossgen/board"
	"github.com/bendobbins/crossgen/config"
	"github.com/bendobbins/crossgen/lexicon"
	"github.com/bendobbins/crossgen/render"
	"github.com/bendobbins/crossgen/solver"
)

func main() {
	cfg := &config.Config{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		log.Fatal().Err(err).Msg("could not load config")
	}
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if cfg.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if cfg.StructurePath == "" || cfg.WordsPath == "" {
		log.Fatal().Msg("-structure and -words are required")
	}

	grid, err := board.LoadGrid(cfg.StructurePath)
	if err != nil {
		log.Fatal().Err(err).Msg("could not load structure")
	}
	words, err := lexicon.Load(cfg.WordsPath)
	if err != nil {
		log.Fatal().Err(err).Msg("could not load word list")
	}
	model, err := board.NewModel(grid, words)
	if err != nil {
		log.Fatal().Err(err).Msg("could not build puzzle model")
	}

	s := solver.New(model)
	s.SetShuffle(cfg.Shuffle)

	type result struct {
		assignment solver.Assignment
		err        error
	}
	done := make(chan result, 1)
	start := time.Now()
	go func() {
		a, err := s.Solve()
		done <- result{a, err}
	}()

	var res result
	if cfg.SolveTimeout > 0 {
		select {
		case res = <-done:
		case <-time.After(cfg.SolveTimeout):
			log.Fatal().Dur("timeout", cfg.SolveTimeout).Msg("solve abandoned")
		}
	} else {
		res = <-done
	}

	if res.err != nil {
		fmt.Println("No solution.")
		return
	}
	log.Info().Dur("elapsed", time.Since(start)).Msg("solved")

	fmt.Print(render.Text(model, res.assignment))
	if cfg.OutputPath != "" {
		if err := render.SavePNG(model, res.assignment, cfg.OutputPath); err != nil {
			log.Fatal().Err(err).Msg("could not save image")
		}
	}
}
