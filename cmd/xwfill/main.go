package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"runtime/pprof"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"crosswarped.com/xwfill"
	"crosswarped.com/xwfill/internal/loader"
	"crosswarped.com/xwfill/pkg/primitives"
)

func main() {
	structureFile := flag.String("structure", "", "The file describing the grid structure ('_' = fillable)")
	wordsFile := flag.String("words", "", "The file to load words from")
	excludedFile := flag.String("excluded", "", "The file to load excluded words from")
	output := flag.String("out", "", "Optional PNG file to render the solved grid to")

	timeout := flag.Duration("timeout", 1*time.Minute, "The timeout for the solver")
	seed := flag.Uint64("seed", 0, "Seed for tie-breaking; 0 means time-based")
	parallel := flag.Int("parallel", 0, "Number of parallel branches; 0 means sequential")
	verbose := flag.Bool("v", false, "Enable debug logging")

	profile := flag.Bool("profile", false, "Profile the solver")
	profileFile := flag.String("profile-file", "cpu.pprof", "The file to write the CPU profile to")
	memoryProfileFile := flag.String("memory-profile-file", "mem.pprof", "The file to write the memory profile to")

	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if *structureFile == "" || *wordsFile == "" {
		fmt.Println("Usage: xwfill -structure <file> -words <file> [-out <file.png>]")
		os.Exit(1)
	}

	ctx := context.Background()

	cells, err := loader.Structure(*structureFile)
	if err != nil {
		log.Fatal().Err(err).Msg("loading structure")
	}
	cw := xwfill.NewCrossword(cells)
	if cw.NumSlots() == 0 {
		log.Fatal().Msg("structure has no slots to fill")
	}

	words, err := loader.Words(ctx, *wordsFile, 1, max(cw.Height, cw.Width))
	if err != nil {
		log.Fatal().Err(err).Msg("loading words")
	}
	if *excludedFile != "" {
		excluded, err := loader.Words(ctx, *excludedFile, 1, max(cw.Height, cw.Width))
		if err != nil {
			log.Fatal().Err(err).Msg("loading excluded words")
		}
		words = loader.Exclude(words, excluded)
	}
	log.Info().Int("slots", cw.NumSlots()).Int("words", len(words)).Msg("loaded puzzle")

	var mf *os.File
	if *profile {
		f, err := os.Create(*profileFile)
		if err != nil {
			log.Fatal().Err(err).Msg("creating profile file")
		}
		defer f.Close()

		mf, err = os.Create(*memoryProfileFile)
		if err != nil {
			log.Fatal().Err(err).Msg("creating memory profile file")
		}
		defer mf.Close()

		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal().Err(err).Msg("starting CPU profile")
		}
		defer pprof.StopCPUProfile()
	}

	randSource := rand.NewPCG(uint64(time.Now().UnixNano()), uint64(time.Now().Nanosecond()))
	if *seed != 0 {
		randSource = rand.NewPCG(*seed, 1024)
	}

	solver := xwfill.NewSolver(cw, words, rand.New(randSource))

	ctx, cancel := context.WithTimeout(ctx, *timeout)
	defer cancel()

	start := time.Now()
	result, err := solve(ctx, solver, *parallel)
	if err != nil {
		if errors.Is(err, xwfill.ErrNoSolution) {
			fmt.Println("No solution.")
			os.Exit(2)
		}
		log.Fatal().Err(err).Msg("solving")
	}
	log.Info().Dur("elapsed", time.Since(start)).Msg("solved")

	grid := cw.LetterGrid(result)
	fmt.Println(grid.Repr())

	if *output != "" {
		f, err := os.Create(*output)
		if err != nil {
			log.Fatal().Err(err).Msg("creating output file")
		}
		defer f.Close()
		if err := xwfill.RenderPNG(f, grid); err != nil {
			log.Fatal().Err(err).Msg("rendering PNG")
		}
		log.Info().Str("file", *output).Msg("rendered grid")
	}

	if mf != nil {
		pprof.WriteHeapProfile(mf)
	}
}

func solve(ctx context.Context, solver *xwfill.Solver, parallel int) (map[primitives.Slot]string, error) {
	if parallel > 0 {
		return solver.SolveParallel(ctx, parallel)
	}
	return solver.Solve(ctx)
}
