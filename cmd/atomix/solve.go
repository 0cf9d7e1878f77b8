package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/gookit/color"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/slideworks/atomix/grid"
	"github.com/slideworks/atomix/level"
	"github.com/slideworks/atomix/search"
)

var solveCmd = &cobra.Command{
	Use:   "solve LEVELFILE [LEVEL]",
	Short: "Search for a solution to a level",
	Long: "Search for a sequence of slides that brings the pieces of a level into\n" +
		"the target formation. Without a LEVEL argument a menu is shown.",
	Args: cobra.RangeArgs(1, 2),
	RunE: solveCommand,
}

func init() {
	solveCmd.Flags().Bool("progress", false, "Show a live progress line while searching")
	solveCmd.Flags().Int("progress-every", 1, "Only refresh the progress line every N iterations")
	solveCmd.Flags().Bool("stats", false, "Print search statistics after the result")
	solveCmd.Flags().Bool("json", false, "Print the result as JSON instead of boards")
	solveCmd.Flags().Bool("all", false, "Solve every level in the file and print a summary")
	solveCmd.Flags().Int("workers", 0, "Number of levels solved in parallel with --all (0 = number of CPUs)")
	for _, name := range []string{"progress", "progress-every", "stats", "json", "all", "workers"} {
		_ = viper.BindPFlag(name, solveCmd.Flags().Lookup(name))
	}
}

func solveCommand(cmd *cobra.Command, args []string) error {
	if viper.GetBool("all") {
		return solveAllCommand(cmd, args)
	}
	p, err := loadPuzzle(cmd, args)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	asJSON := viper.GetBool("json")

	if !asJSON {
		fmt.Fprintln(out, "\nSTARTING STATE:")
		fmt.Fprintln(out)
		fmt.Fprintln(out, p.Grid.RenderString(p.Start))
		fmt.Fprintln(out, "TARGET STATE:")
		fmt.Fprintln(out)
		fmt.Fprintln(out, p.Grid.RenderString(p.Target))
	}

	solver := search.NewSolver(p.Grid, p.Start, p.Target)
	if viper.GetBool("progress") {
		solver.Reporter = &search.ColorReporter{Writer: os.Stderr, Every: viper.GetInt("progress-every")}
	}

	log.Info().Str("level", p.Name).Int("pieces", len(p.Start)).Msg("solving")
	result, err := solver.SolveContext(cmd.Context())
	if err != nil {
		return fmt.Errorf("solving %q: %w", p.Name, err)
	}
	log.Info().
		Str("level", p.Name).
		Str("run_id", result.RunID).
		Bool("solved", result.Solved).
		Int("iterations", result.Statistics.Iterations).
		Msg("search finished")

	if asJSON {
		return writeJSON(out, p, result)
	}
	fmt.Fprint(out, search.FormatSolution(p.Grid, result))
	if viper.GetBool("stats") {
		fmt.Fprint(out, search.FormatStatistics(result.Statistics))
	}
	if result.Solved {
		fmt.Fprintln(out, color.Green.Sprint("✓ Formation reached"))
	}
	return nil
}

type jsonMove struct {
	Piece     int           `json:"piece"`
	Direction string        `json:"direction"`
	From      grid.Position `json:"from"`
	To        grid.Position `json:"to"`
}

type jsonResult struct {
	Level      string            `json:"level"`
	RunID      string            `json:"run_id"`
	Solved     bool              `json:"solved"`
	Moves      []jsonMove        `json:"moves"`
	Statistics search.Statistics `json:"statistics"`
}

func writeJSON(w io.Writer, p *level.Puzzle, r *search.Result) error {
	out := jsonResult{
		Level:  p.Name,
		RunID:  r.RunID,
		Solved: r.Solved,
		Moves: lo.Map(r.Moves(), func(m grid.Move, _ int) jsonMove {
			return jsonMove{Piece: m.Piece, Direction: m.Direction.String(), From: m.From, To: m.To}
		}),
		Statistics: r.Statistics,
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// solveAllCommand solves every level of the file in parallel.
func solveAllCommand(cmd *cobra.Command, args []string) error {
	f, err := level.LoadFile(args[0])
	if err != nil {
		return err
	}
	jobs := make([]search.Job, 0, len(f.Levels))
	for i := range f.Levels {
		p, err := f.Levels[i].Build()
		if err != nil {
			return err
		}
		jobs = append(jobs, search.Job{Name: p.Name, Grid: p.Grid, Start: p.Start, Target: p.Target})
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	results := search.SolveAll(ctx, jobs, viper.GetInt("workers"))

	out := cmd.OutOrStdout()
	failed := 0
	for _, jr := range results {
		switch {
		case jr.Err != nil:
			failed++
			fmt.Fprintf(out, "%s %-24s %v\n", color.Red.Sprint("✗"), jr.Job.Name, jr.Err)
		case jr.Result.Solved:
			fmt.Fprintf(out, "%s %-24s %3d moves  %8d iterations  %v\n", color.Green.Sprint("✓"),
				jr.Job.Name, jr.Result.Statistics.Moves, jr.Result.Statistics.Iterations, jr.Result.Statistics.Elapsed)
		default:
			fmt.Fprintf(out, "%s %-24s no solution  %8d iterations  %v\n", color.Yellow.Sprint("-"),
				jr.Job.Name, jr.Result.Statistics.Iterations, jr.Result.Statistics.Elapsed)
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d levels failed", failed, len(results))
	}
	return nil
}
