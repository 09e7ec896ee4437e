package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/chammyae24/newsprint-sudoku/internal/detect"
	"github.com/chammyae24/newsprint-sudoku/internal/generator"
	"github.com/chammyae24/newsprint-sudoku/internal/hint"
	"github.com/chammyae24/newsprint-sudoku/internal/infrastructure/storage"
	"github.com/chammyae24/newsprint-sudoku/internal/ports"
	"github.com/chammyae24/newsprint-sudoku/internal/solver"
	"github.com/chammyae24/newsprint-sudoku/internal/usecase"
	"github.com/chammyae24/newsprint-sudoku/internal/validator"
)

var log = logrus.New()

var (
	logLevel   string
	solverKind string
	dataDir    string
	pbURL      string
)

var rootCmd = &cobra.Command{
	Use:   "sudoku",
	Short: "Generate, solve, hint, and explain Sudoku puzzles",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		lvl, err := logrus.ParseLevel(logLevel)
		if err != nil {
			return err
		}
		log.SetLevel(lvl)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "debug|info|warn|error")
	rootCmd.PersistentFlags().StringVar(&solverKind, "solver", "dlx", "brute-force backend: dlx|backtrack")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", "./data", "puzzle save directory")
	rootCmd.PersistentFlags().StringVar(&pbURL, "pocketbase", "", "PocketBase URL; when set, puzzles are saved remotely")
}

// newService wires providers into the use-case facade.
func newService() (*usecase.Service, error) {
	var s ports.Solver
	switch solverKind {
	case "backtrack", "backtracking":
		s = solver.NewBacktrackingSolver()
	default:
		s = solver.NewDLXSolver()
	}
	engine := solver.NewTechniqueEngine()

	var st ports.Storage
	if pbURL != "" {
		pb, err := storage.NewPocketBase(pbURL, "puzzles")
		if err != nil {
			return nil, err
		}
		st = pb
	} else {
		st = storage.NewFS(dataDir)
	}

	return usecase.NewService(
		s,
		engine,
		generator.New(s),
		validator.New(),
		hint.New(engine),
		detect.New(),
		st,
	), nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
