// Command ridesim runs batches of simulated Let It Ride sessions and
// prints aggregate expected-value and risk statistics.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"syscall"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/pterm/pterm"
	"go.uber.org/zap"

	"ridesim/engine"
	"ridesim/simulation"
)

// Version information (set by build flags)
var (
	Version   = "dev"
	BuildTime = "unknown"
)

// envDefaults can pre-seed the common knobs; flags still win.
type envDefaults struct {
	Sessions int    `env:"RIDESIM_SESSIONS" envDefault:"10000"`
	Hands    int    `env:"RIDESIM_HANDS" envDefault:"100"`
	Workers  int    `env:"RIDESIM_WORKERS" envDefault:"0"`
	Seed     uint64 `env:"RIDESIM_SEED" envDefault:"0"`
	Strategy string `env:"RIDESIM_STRATEGY" envDefault:"basic"`
	Betting  string `env:"RIDESIM_BETTING" envDefault:"flat"`
}

func main() {
	var defaults envDefaults
	if err := env.Parse(&defaults); err != nil {
		fmt.Fprintf(os.Stderr, "parse env: %v\n", err)
		os.Exit(1)
	}

	var (
		sessions    = flag.Int("sessions", defaults.Sessions, "Number of independent sessions to simulate")
		hands       = flag.Int("hands", defaults.Hands, "Hands per session")
		seats       = flag.Int("seats", 1, "Seats per table (seats share community cards)")
		seed        = flag.Uint64("seed", defaults.Seed, "Base seed (0 = use current time)")
		workers     = flag.Int("workers", defaults.Workers, "Number of workers (0 = auto-detect CPU count)")
		baseBet     = flag.Int64("base-bet", 5, "Base bet per circle, in chip units")
		bonusBet    = flag.Int64("bonus-bet", 0, "Three-card bonus side bet (0 = no bonus)")
		bankroll    = flag.Int64("bankroll", 0, "Starting bankroll per seat (0 = unbounded)")
		stopLoss    = flag.Int64("stop-loss", 0, "Stop a session once it is down this much (0 = disabled)")
		winTarget   = flag.Int64("win-target", 0, "Stop a session once it is up this much (0 = disabled)")
		discard     = flag.Int("discard", 0, "Cards the dealer burns before the first reveal")
		strategy    = flag.String("strategy", defaults.Strategy, "Ride/pull strategy (always-ride, never-ride, basic)")
		betting     = flag.String("betting", defaults.Betting, "Betting system (flat, martingale, paroli)")
		noProgress  = flag.Bool("no-progress", false, "Disable the progress bar")
		verbose     = flag.Bool("verbose", false, "Enable verbose logging")
		showVersion = flag.Bool("version", false, "Show version information")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("ridesim %s (built %s)\n", Version, BuildTime)
		os.Exit(0)
	}

	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}

	cfg := simulation.DefaultConfig()
	cfg.RunID = simulation.NewRunID()
	cfg.BaseSeed = *seed
	cfg.Sessions = *sessions
	cfg.HandsPerSession = *hands
	cfg.Seats = *seats
	cfg.Workers = *workers
	cfg.BaseBet = *baseBet
	cfg.BonusBet = *bonusBet
	cfg.Bankroll = *bankroll
	cfg.StopLoss = *stopLoss
	cfg.WinTarget = *winTarget
	cfg.DiscardCount = *discard
	cfg.Strategy = *strategy
	cfg.Betting = *betting

	logger := zap.NewNop()
	if *verbose {
		dev, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
			os.Exit(1)
		}
		logger = dev
		defer logger.Sync()
	}

	executor, err := simulation.NewExecutor(cfg, logger)
	if err != nil {
		pterm.Error.Printfln("configuration rejected: %v", err)
		os.Exit(1)
	}

	pterm.DefaultSection.Printfln("ridesim: %d sessions x %d hands, strategy=%s betting=%s seed=%d",
		cfg.Sessions, cfg.HandsPerSession, cfg.Strategy, cfg.Betting, cfg.BaseSeed)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var progress simulation.ProgressFunc
	var bar *pterm.ProgressbarPrinter
	if !*noProgress {
		bar, _ = pterm.DefaultProgressbar.WithTotal(cfg.Sessions).WithTitle("simulating").Start()
		progress = func(done, total int) {
			bar.Increment()
		}
	}

	start := time.Now()
	results, err := executor.RunSessions(ctx, progress)
	if bar != nil {
		bar.Stop()
	}
	if err != nil {
		pterm.Error.Printfln("run failed: %v", err)
		os.Exit(1)
	}

	printSummary(simulation.Summarize(results), cfg, time.Since(start))
}

func printSummary(s simulation.Summary, cfg simulation.Config, elapsed time.Duration) {
	pterm.DefaultSection.Println("Results")

	data := pterm.TableData{
		{"Metric", "Value"},
		{"Sessions x seats", fmt.Sprintf("%d", s.Results)},
		{"Hands played", fmt.Sprintf("%d", s.TotalHands)},
		{"Total profit", fmt.Sprintf("%+d", s.TotalProfit)},
		{"Bonus profit", fmt.Sprintf("%+d", s.BonusProfit)},
		{"Mean profit / session", fmt.Sprintf("%+.2f", s.MeanProfit)},
		{"Std dev / session", fmt.Sprintf("%.2f", s.StdDevProfit)},
		{"EV / hand", fmt.Sprintf("%+.4f", s.EVPerHand)},
		{"Best session", fmt.Sprintf("%+d", s.MaxProfit)},
		{"Worst session", fmt.Sprintf("%+d", s.MinProfit)},
		{"Elapsed", elapsed.Round(time.Millisecond).String()},
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		fmt.Printf("%+v\n", s)
		return
	}

	reasons := pterm.TableData{{"Stop reason", "Sessions"}}
	for _, reason := range []simulation.StopReason{
		simulation.StopCompleted, simulation.StopBankrupt,
		simulation.StopLoss, simulation.StopWinTarget,
	} {
		if count := s.StopReasons[reason]; count > 0 {
			reasons = append(reasons, []string{string(reason), fmt.Sprintf("%d", count)})
		}
	}
	pterm.DefaultTable.WithHasHeader().WithData(reasons).Render()

	categories := make([]engine.FiveCardCategory, 0, len(s.Categories))
	for category := range s.Categories {
		categories = append(categories, category)
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i] > categories[j] })

	freq := pterm.TableData{{"Final hand", "Count", "Frequency"}}
	for _, category := range categories {
		count := s.Categories[category]
		freq = append(freq, []string{
			category.String(),
			fmt.Sprintf("%d", count),
			fmt.Sprintf("%.4f%%", 100*float64(count)/float64(s.TotalHands)),
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(freq).Render()

	if cfg.BonusBet > 0 {
		pterm.Info.Printfln("bonus side bet of %d was active on every hand", cfg.BonusBet)
	}
}
