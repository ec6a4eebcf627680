package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"

	"regatta-mcs/internal/simulation"
	"regatta-mcs/internal/visuals"

	"github.com/pkg/browser"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	simIterations int
	simWind       float64
	simCurrent    float64
	simFleet      int
	simUpwind     float64
	simDownwind   float64
	simManeuver   float64
	simSeed       int64
	simContextID  string
	simOpenReport bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a single race outcome simulation and print the result as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		req := simulation.SimulationRequest{
			RaceContextID:            simContextID,
			IterationCount:           simIterations,
			WindVariationDegrees:     simWind,
			CurrentVariationFraction: simCurrent,
			FleetSize:                simFleet,
		}
		if req.IterationCount == 0 {
			req.IterationCount = cfg.DefaultIterations
		}
		if simUpwind != 1 || simDownwind != 1 || simManeuver != 1 {
			req.Profile = &simulation.BoatPerformanceProfile{
				Upwind:          simUpwind,
				Downwind:        simDownwind,
				Maneuverability: simManeuver,
			}
		}
		if cmd.Flags().Changed("seed") {
			req.RngSeed = &simSeed
		}

		engine := simulation.NewEngine(simulation.Config{
			MaxIterations: cfg.MaxIterations,
			Parallelism:   cfg.Parallelism,
		})
		result, err := engine.Run(context.Background(), req)
		if err != nil {
			return err
		}

		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))

		if simOpenReport {
			path := filepath.Join(cfg.DataPath, fmt.Sprintf("race-report-%s.html", result.RunID))
			if err := visuals.WriteHTMLReport(result, path); err != nil {
				return err
			}
			log.Info().Str("path", path).Msg("Report written")
			if err := browser.OpenFile(path); err != nil {
				log.Warn().Err(err).Msg("Failed to open report in browser")
			}
		}
		return nil
	},
}

func init() {
	simulateCmd.Flags().IntVarP(&simIterations, "iterations", "n", 0, "number of trials (default from config)")
	simulateCmd.Flags().Float64Var(&simWind, "wind", 15, "wind shift sampling half-width in degrees")
	simulateCmd.Flags().Float64Var(&simCurrent, "current", 0.2, "current multiplier sampling half-width")
	simulateCmd.Flags().IntVar(&simFleet, "fleet", 20, "number of competitors")
	simulateCmd.Flags().Float64Var(&simUpwind, "upwind", 1, "upwind performance multiplier")
	simulateCmd.Flags().Float64Var(&simDownwind, "downwind", 1, "downwind performance multiplier")
	simulateCmd.Flags().Float64Var(&simManeuver, "maneuverability", 1, "maneuverability multiplier")
	simulateCmd.Flags().Int64Var(&simSeed, "seed", 0, "rng seed for reproducible runs")
	simulateCmd.Flags().StringVar(&simContextID, "context", "", "opaque race context identifier")
	simulateCmd.Flags().BoolVar(&simOpenReport, "open", false, "write an HTML report and open it in the browser")

	rootCmd.AddCommand(simulateCmd)
}
