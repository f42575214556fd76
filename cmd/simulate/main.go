// Command simulate 无界面批量运行自动驾驶对局并输出统计
//
// 每一局使用独立的种子和模拟核心，按合成时间推进（不依赖墙钟），
// 相同参数的输出可复现；各局通过 errgroup 并发运行
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/decker502/skyshooter/pkg/config"
	"github.com/decker502/skyshooter/pkg/game"
	"github.com/decker502/skyshooter/pkg/loop"
	"github.com/decker502/skyshooter/pkg/systems"
	"github.com/decker502/skyshooter/pkg/utils"
)

type runStats struct {
	runIndex int
	seed     uint64

	ticks        int // 实际推进的帧数
	score        int
	waves        int
	livesLeft    int
	bombsLeft    int
	gameOverTick int // -1 表示在帧数上限内存活
}

type options struct {
	runs     int
	ticks    int
	seedBase uint64
	seedStep uint64
	fps      int
	parallel int
}

func main() {
	var opts options
	var configPath string

	flag.IntVar(&opts.runs, "runs", 5, "number of headless autopilot runs")
	flag.IntVar(&opts.ticks, "ticks", 3600, "maximum frames per run")
	flag.Uint64Var(&opts.seedBase, "seed-base", 42, "base RNG seed for run 1")
	flag.Uint64Var(&opts.seedStep, "seed-step", 1, "seed increment between runs")
	flag.IntVar(&opts.fps, "fps", 60, "synthetic frames per second")
	flag.IntVar(&opts.parallel, "parallel", runtime.NumCPU(), "runs executed concurrently")
	flag.StringVar(&configPath, "config", "", "game config YAML (defaults to built-in values)")
	flag.Parse()

	if opts.runs <= 0 || opts.ticks <= 0 || opts.fps <= 0 {
		fmt.Println("error: -runs, -ticks and -fps must be > 0")
		os.Exit(2)
	}

	cfg := config.DefaultGameConfig()
	if configPath != "" {
		loaded, err := config.LoadGameConfig(configPath)
		if err != nil {
			fmt.Printf("error: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	fmt.Printf("=== Headless Autopilot Report ===\n")
	fmt.Printf("runs=%d ticks=%d fps=%d seed_base=%d seed_step=%d\n\n", opts.runs, opts.ticks, opts.fps, opts.seedBase, opts.seedStep)

	all, err := runAll(context.Background(), cfg, opts)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		os.Exit(1)
	}
	for _, rs := range all {
		printRun(rs)
	}
	printAggregate(all)
}

// runAll 并发运行全部对局，结果按局序号排列
func runAll(ctx context.Context, cfg *config.GameConfig, opts options) ([]runStats, error) {
	all := make([]runStats, opts.runs)
	g, gctx := errgroup.WithContext(ctx)
	if opts.parallel > 0 {
		g.SetLimit(opts.parallel)
	}
	for i := range all {
		seed := opts.seedBase + uint64(i)*opts.seedStep
		g.Go(func() error {
			rs, err := runSession(gctx, cfg, i+1, seed, opts.ticks, opts.fps)
			all[i] = rs
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return all, nil
}

// runSession 用自动驾驶跑一局，直到游戏结束或达到帧数上限
func runSession(ctx context.Context, cfg *config.GameConfig, runIndex int, seed uint64, ticks, fps int) (runStats, error) {
	sim := systems.NewSimulation(cfg, utils.NewSeededRandom(seed), nil)
	driver := loop.NewDriver(sim, nil, nil)
	tracker := game.NewRecordTracker(game.NewHighScoreManager(nil), nil)
	driver.SetObserver(loop.Observers{loop.NewAutopilotObserver(sim), tracker})

	rs := runStats{runIndex: runIndex, seed: seed, gameOverTick: -1}
	start := time.Unix(0, 0)
	frame := time.Second / time.Duration(fps)
	for tick := 0; tick < ticks; tick++ {
		if tick%600 == 0 {
			if err := ctx.Err(); err != nil {
				return rs, err
			}
		}
		driver.Step(start.Add(time.Duration(tick) * frame))
		rs.ticks = tick + 1
		if tracker.Finished() {
			rs.gameOverTick = tick
			break
		}
	}

	w := driver.World()
	rs.score = w.Score
	rs.waves = w.SpawnTicks
	rs.livesLeft = w.Lives()
	rs.bombsLeft = w.Player.Bombs
	return rs, nil
}

func printRun(rs runStats) {
	fmt.Printf("--- Run %d (seed=%d) ---\n", rs.runIndex, rs.seed)
	fmt.Printf("score=%d waves=%d ticks=%d game_over_tick=%d lives_left=%d bombs_left=%d\n\n",
		rs.score, rs.waves, rs.ticks, rs.gameOverTick, rs.livesLeft, rs.bombsLeft)
}

func printAggregate(all []runStats) {
	scores := make([]int, len(all))
	total, survived := 0, 0
	for i, rs := range all {
		scores[i] = rs.score
		total += rs.score
		if rs.gameOverTick < 0 {
			survived++
		}
	}
	sort.Ints(scores)

	fmt.Printf("=== Aggregate ===\n")
	fmt.Printf("runs=%d survived=%d mean_score=%.1f median_score=%d min_score=%d max_score=%d\n",
		len(all), survived, float64(total)/float64(len(all)), scores[len(scores)/2], scores[0], scores[len(scores)-1])
}
