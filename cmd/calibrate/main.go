// Package main tunes erosion parameters with Nelder-Mead so a fresh
// boulder takes roughly a target number of ticks of random poking to
// clear. Runs headless sessions and writes an evaluation log plus the
// best parameter set found.
package main

import (
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gonum.org/v1/gonum/optimize"

	"github.com/pthm-cable/chisel/config"
	"github.com/pthm-cable/chisel/game"
)

// bounds for the two tuned parameters.
const (
	minDarken = 0.5
	maxDarken = 0.98
	minPower  = 10.0
	maxPower  = 500.0
)

// clamp keeps a candidate inside its legal range.
func clamp(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}

// evaluate runs headless sessions with the candidate parameters and
// returns how far the mean clearing time lands from the target.
func evaluate(darken, power float64, seeds []int64, maxTicks, targetTicks int) float64 {
	cfg := config.Cfg()
	cfg.Chisel.DarkenFactor = darken
	cfg.Chisel.Power = power

	var total float64
	for _, seed := range seeds {
		g, err := game.NewGame(game.Options{Seed: seed, Headless: true})
		if err != nil {
			log.Fatalf("building session: %v", err)
		}

		cleared := maxTicks
		for int(g.Tick()) < maxTicks {
			g.UpdateHeadless()
			if g.Buffer().AlphaRemaining() < 0.02 {
				cleared = int(g.Tick())
				break
			}
		}
		g.Unload()

		total += math.Abs(float64(cleared - targetTicks))
	}
	return total / float64(len(seeds))
}

func main() {
	configPath := flag.String("config", "", "Base config YAML file (empty = use defaults)")
	targetTicks := flag.Int("target-ticks", 900, "Desired ticks of random poking to clear the boulder")
	maxTicks := flag.Int("max-ticks", 3000, "Per-session tick cap")
	seeds := flag.Int("seeds", 3, "Number of seeds per evaluation")
	maxEvals := flag.Int("max-evals", 60, "Maximum number of evaluations")
	outputDir := flag.String("output", "", "Output directory for results")
	flag.Parse()

	if *outputDir == "" {
		log.Fatal("--output is required")
	}
	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		log.Fatalf("failed to create output directory: %v", err)
	}

	if err := config.Init(*configPath); err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	baseCfg := config.Cfg()

	evalSeeds := make([]int64, *seeds)
	for i := range evalSeeds {
		evalSeeds[i] = int64(i*1000 + 42)
	}

	logPath := filepath.Join(*outputDir, "calibrate_log.csv")
	logFile, err := os.Create(logPath)
	if err != nil {
		log.Fatalf("failed to create log file: %v", err)
	}
	defer logFile.Close()

	logWriter := csv.NewWriter(logFile)
	defer logWriter.Flush()
	logWriter.Write([]string{"eval", "fitness", "darken_factor", "power"})

	evalCount := 0
	bestFitness := math.Inf(1)
	var bestDarken, bestPower float64
	startTime := time.Now()

	problem := optimize.Problem{
		Func: func(x []float64) float64 {
			darken := clamp(x[0], minDarken, maxDarken)
			power := clamp(x[1], minPower, maxPower)
			fitness := evaluate(darken, power, evalSeeds, *maxTicks, *targetTicks)
			evalCount++

			if fitness < bestFitness {
				bestFitness = fitness
				bestDarken, bestPower = darken, power
			}

			logWriter.Write([]string{
				strconv.Itoa(evalCount),
				fmt.Sprintf("%.2f", fitness),
				fmt.Sprintf("%.4f", darken),
				fmt.Sprintf("%.2f", power),
			})
			logWriter.Flush()

			fmt.Printf("Eval %d/%d: fitness=%.1f darken=%.3f power=%.1f (best=%.1f) | elapsed: %s\n",
				evalCount, *maxEvals, fitness, darken, power, bestFitness,
				time.Since(startTime).Round(time.Second))
			return fitness
		},
	}

	settings := &optimize.Settings{
		FuncEvaluations: *maxEvals,
	}

	initX := []float64{baseCfg.Chisel.DarkenFactor, baseCfg.Chisel.Power}
	result, err := optimize.Minimize(problem, initX, settings, &optimize.NelderMead{})
	if err != nil && result == nil {
		log.Fatalf("optimization failed: %v", err)
	}

	best := map[string]float64{
		"fitness":       bestFitness,
		"darken_factor": bestDarken,
		"power":         bestPower,
	}
	data, err := json.MarshalIndent(best, "", "  ")
	if err != nil {
		log.Fatalf("marshaling result: %v", err)
	}
	bestPath := filepath.Join(*outputDir, "best.json")
	if err := os.WriteFile(bestPath, data, 0644); err != nil {
		log.Fatalf("writing result: %v", err)
	}

	fmt.Printf("\nBest after %d evals: darken=%.3f power=%.1f (fitness=%.1f)\n",
		evalCount, bestDarken, bestPower, bestFitness)
	fmt.Printf("Results written to %s\n", *outputDir)
}
