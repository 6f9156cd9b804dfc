package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/Peritract/meld/internal/agent"
	"github.com/Peritract/meld/internal/config"
	"github.com/Peritract/meld/internal/engine"
	"github.com/Peritract/meld/internal/network"
	"github.com/Peritract/meld/internal/server"
	"github.com/Peritract/meld/internal/storage"
	"github.com/Peritract/meld/internal/version"
	"github.com/Peritract/meld/internal/world"
	"github.com/Peritract/meld/pkg/dungeon"
	"github.com/Peritract/meld/pkg/logger"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

func init() {
	logger.Init()
}

type options struct {
	configPath string
	seed       int64
	autoplay   int
	load       string
	restore    string
	replay     string
}

func main() {
	// 1. Парсинг флагов
	var opts options
	flag.StringVar(&opts.configPath, "config", "", "Path to YAML config (default $MELD_CONFIG or meld.yaml)")
	flag.Int64Var(&opts.seed, "seed", 0, "Master seed (0 keeps config/random)")
	flag.IntVar(&opts.autoplay, "autoplay", 0, "Run headless with the autopilot for N actions")
	flag.StringVar(&opts.load, "load", "", "Resume from a named save slot")
	flag.StringVar(&opts.restore, "restore", "", "Resume from a snapshot JSON file")
	flag.StringVar(&opts.replay, "replay", "", "Path to .mlrp replay file to simulate")
	flag.Parse()

	log := logger.Component("main")
	log.Info("Starting meld...")
	log.Info(version.String())

	if err := run(opts); err != nil {
		log.WithError(err).Fatal("Server stopped with error")
	}
	log.Info("Done.")
}

func run(opts options) error {
	log := logger.Component("main")

	// 2. Конфигурация
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	if opts.seed != 0 {
		cfg.Game.Seed = opts.seed
		log.WithField("seed", opts.seed).Info("Using explicit master seed")
	} else {
		log.WithField("seed", cfg.Game.Seed).Info("Using master seed")
	}

	// 3. Хранилища
	db, err := storage.OpenAndMigrate(cfg.Storage.Database)
	if err != nil {
		return err
	}
	saves := storage.NewSQLiteRepository(db)
	replays, err := storage.NewReplayService(cfg.Storage.ReplayDir)
	if err != nil {
		return err
	}

	// 4. Зона и параметры партии
	var (
		level    *world.Level
		gameOpts []engine.GameOption
		fresh    = true
	)
	switch {
	case opts.replay != "":
		log.WithField("path", opts.replay).Info("Mode: replay simulation")
		rep, err := replays.Load(opts.replay)
		if err != nil {
			return err
		}
		script, err := rep.Script()
		if err != nil {
			return err
		}
		if level, err = dungeon.ForArea(rep.LevelID, rep.Seed); err != nil {
			return err
		}
		gameOpts = append(gameOpts, engine.WithInput(script))
		fresh = false

	case opts.load != "" || opts.restore != "":
		var snap *engine.Snapshot
		if opts.load != "" {
			snap, err = saves.Load(opts.load)
		} else {
			snap, err = storage.ReadSnapshotFile(opts.restore)
		}
		if err != nil {
			return err
		}
		if level, err = engine.Restore(snap); err != nil {
			return err
		}
		gameOpts = append(gameOpts, engine.WithRound(snap.Round))
		fresh = false
		log.WithFields(logrus.Fields{"area": level.Name, "round": snap.Round}).Info("Game restored")

	default:
		if level, err = dungeon.ForArea(cfg.World.Area, cfg.Game.Seed); err != nil {
			return err
		}
	}

	headless := opts.replay != "" || opts.autoplay > 0
	if opts.autoplay > 0 && opts.replay == "" {
		bot := agent.NewBot(level, level.Player(), cfg.Game.Seed, opts.autoplay)
		gameOpts = append(gameOpts, engine.WithInput(bot))
	}

	hub := network.NewBroadcaster()
	game, err := engine.NewGame(level, cfg.Game, hub, gameOpts...)
	if err != nil {
		return err
	}

	// 5. Запуск: цикл партии и HTTP под одним errgroup
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		err := game.Run(gctx)
		switch {
		case err == nil:
			log.Info("Game over")
		case errors.Is(err, engine.ErrInputExhausted):
			log.Info("Input exhausted")
			err = nil
		case errors.Is(err, context.Canceled):
			err = nil
		}
		if headless {
			stop()
		}
		return err
	})

	if !headless {
		srv := server.New(game, hub, cfg.Server.Port)
		srv.Debug = cfg.Server.Debug
		srv.Saves = saves
		g.Go(func() error { return srv.Run(gctx) })
	}

	runErr := g.Wait()
	log.Info("Shutting down...")

	// 6. Сохраняем реплей и последний снимок
	if fresh {
		if path, err := replays.Save(game.Replay()); err != nil {
			log.WithError(err).Error("Failed to save replay")
		} else {
			log.WithField("path", path).Info("Replay saved")
		}
	}
	if snap, err := game.Snapshot(); err == nil {
		path := filepath.Join(cfg.Storage.SnapshotDir, "last.json")
		if err := storage.WriteSnapshotFile(path, snap); err != nil {
			log.WithError(err).Error("Failed to write snapshot")
		}
	}

	log.WithFields(logrus.Fields{"summary": game.Summary()}).Info("Final state")
	return runErr
}
