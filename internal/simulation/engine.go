package simulation

import (
	"context"
	"math/rand"
	"runtime"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// DefaultMaxIterations caps a single request's trial count to bound
// worst-case latency. Overridable via Config.
const DefaultMaxIterations = 200_000

// cancelCheckInterval is how many trials run between context checks on the
// sequential path.
const cancelCheckInterval = 1024

// Config tunes engine-wide limits. Zero values pick the defaults.
type Config struct {
	MaxIterations int
	Parallelism   int
}

// Engine performs the Monte-Carlo race outcome simulation.
type Engine struct {
	maxIterations int
	parallelism   int
}

func NewEngine(cfg Config) *Engine {
	e := &Engine{
		maxIterations: cfg.MaxIterations,
		parallelism:   cfg.Parallelism,
	}
	if e.maxIterations <= 0 {
		e.maxIterations = DefaultMaxIterations
	}
	if e.parallelism <= 0 {
		e.parallelism = runtime.GOMAXPROCS(0)
	}
	return e
}

// Run validates the request, executes the requested number of independent
// trials, and returns the fully populated result: distributional statistics,
// ranked success factors, and alternative-strategy comparisons.
//
// A cancelled context aborts the run entirely; partial aggregates are never
// returned.
func (e *Engine) Run(ctx context.Context, req SimulationRequest) (*SimulationResult, error) {
	if err := Validate(&req); err != nil {
		return nil, err
	}
	if req.IterationCount > e.maxIterations {
		return nil, &ConfigurationError{
			Limit:  "max_iterations",
			Reason: "iteration_count exceeds the configured ceiling; reduce the trial count",
		}
	}

	runID := uuid.NewString()
	profile := req.Profile.normalize()

	log.Debug().
		Str("runId", runID).
		Str("raceContextId", req.RaceContextID).
		Int("iterations", req.IterationCount).
		Int("fleetSize", req.FleetSize).
		Msg("Starting race outcome simulation")

	start := time.Now()

	outcomes, err := e.runTrials(ctx, &req, profile, baselinePosture, req.RngSeed)
	if err != nil {
		return nil, err
	}

	result := aggregate(outcomes, req.FleetSize)
	result.RunID = runID
	result.RaceContextID = req.RaceContextID
	result.SuccessFactors = rankSuccessFactors(&req, profile)

	alternatives, err := e.compareAlternatives(ctx, &req, profile)
	if err != nil {
		return nil, err
	}
	result.AlternativeStrategies = alternatives

	log.Info().
		Str("runId", runID).
		Int("iterations", result.TotalIterations).
		Float64("expectedFinish", result.ExpectedFinish).
		Float64("winProbability", result.WinProbability).
		Dur("elapsed", time.Since(start)).
		Msg("Simulation complete")

	return result, nil
}

// runTrials executes iterationCount independent trials under the given
// posture. Seeded requests run sequentially so results are bit-reproducible;
// unseeded requests fan out across a worker pool with one rng per worker.
// Iterations never share state beyond the immutable request and profile.
func (e *Engine) runTrials(ctx context.Context, req *SimulationRequest, profile BoatPerformanceProfile, p posture, seed *int64) ([]int, error) {
	outcomes := make([]int, req.IterationCount)

	if seed != nil {
		rng := rand.New(rand.NewSource(*seed))
		for i := range outcomes {
			if i%cancelCheckInterval == 0 {
				select {
				case <-ctx.Done():
					return nil, ctx.Err()
				default:
				}
			}
			outcomes[i] = toPosition(sampleScenario(req, p, rng), profile, req.FleetSize, p.bias)
		}
		return outcomes, e.checkOutcomeRange(outcomes, req.FleetSize)
	}

	workers := e.parallelism
	if workers > req.IterationCount {
		workers = req.IterationCount
	}
	chunk := (req.IterationCount + workers - 1) / workers

	g, gctx := errgroup.WithContext(ctx)
	base := time.Now().UnixNano()
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if hi > req.IterationCount {
			hi = req.IterationCount
		}
		if lo >= hi {
			break
		}
		g.Go(func() error {
			rng := rand.New(rand.NewSource(base ^ int64(lo+1)*7919))
			for i := lo; i < hi; i++ {
				if i%cancelCheckInterval == 0 {
					select {
					case <-gctx.Done():
						return gctx.Err()
					default:
					}
				}
				outcomes[i] = toPosition(sampleScenario(req, p, rng), profile, req.FleetSize, p.bias)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return outcomes, e.checkOutcomeRange(outcomes, req.FleetSize)
}

// checkOutcomeRange verifies the mapper's clamp held for every trial. A
// violation is a bug, surfaced loudly rather than corrected.
func (e *Engine) checkOutcomeRange(outcomes []int, fleetSize int) error {
	for _, pos := range outcomes {
		if pos < 1 || pos > fleetSize {
			return &InternalInvariantError{Position: pos, FleetSize: fleetSize}
		}
	}
	return nil
}
