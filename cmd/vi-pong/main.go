package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/lixenwraith/vi-pong/audio"
	"github.com/lixenwraith/vi-pong/config"
	"github.com/lixenwraith/vi-pong/constant"
	"github.com/lixenwraith/vi-pong/core"
	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/input"
	"github.com/lixenwraith/vi-pong/logger"
	"github.com/lixenwraith/vi-pong/metrics"
	"github.com/lixenwraith/vi-pong/render"
	"github.com/lixenwraith/vi-pong/service"
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "vi-pong: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	flags := config.NewFlagSet("vi-pong")
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}
	cfg, err := config.LoadFlags(flags)
	if err != nil {
		return err
	}

	log, closeLog, err := logger.Setup(cfg.Log.Dir, cfg.Log.Debug)
	if err != nil {
		return err
	}
	defer closeLog()

	keymap := input.DefaultKeymap()
	if cfg.Input.Keymap != "" {
		if keymap, err = input.LoadKeymapFile(cfg.Input.Keymap); err != nil {
			return err
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGHUP)
	defer stop()

	services := service.NewGroup(log)
	defer services.Stop()

	// Audio is optional: the player stays silent if the device cannot be opened
	player := audio.NewPlayer(cfg.AudioSettings(), log)
	if err := services.Start(player, false); err != nil {
		return err
	}

	var (
		stats   engine.Stats
		observe func(time.Duration)
	)
	if cfg.Metrics.Addr != "" {
		m := metrics.New("vipong")
		if err := services.Start(metrics.NewServer(m, cfg.Metrics.Addr, log), false); err != nil {
			return err
		}
		if services.Running("metrics") {
			stats, observe = m, m.ObserveFrame
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	core.RegisterCrashScreen(screen)
	defer func() {
		core.RegisterCrashScreen(nil)
		screen.Fini()
	}()
	screen.SetStyle(tcell.StyleDefault.Background(render.RgbBackground).Foreground(render.RgbForeground))
	screen.HideCursor()

	game := engine.NewGame(engine.Options{
		Sound:  player,
		Stats:  stats,
		Logger: log,
	})
	adapter := input.NewAdapter(keymap, cfg.HoldDuration(), log)
	renderer := render.NewRenderer(screen)

	log.Info("session started",
		zap.Bool("audio", player.IsEnabled()),
		zap.Duration("key_hold", cfg.HoldDuration()),
		zap.String("metrics", cfg.Metrics.Addr),
	)
	loop(ctx, screen, game, adapter, renderer, observe)

	played, dropped := player.GetStats()
	log.Info("session ended", zap.Uint64("sounds_played", played), zap.Uint64("sounds_dropped", dropped))
	return nil
}

// loop drives the fixed-step frame ticker until the game terminates or ctx is cancelled
func loop(ctx context.Context, screen tcell.Screen, game *engine.Game, adapter *input.Adapter,
	presenter engine.Presenter, observe func(time.Duration)) {
	ticker := time.NewTicker(constant.FrameUpdateInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, constant.EventQueueSize)
	// Input polling goroutine; PollEvent returns nil once the screen is finalized
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case eventChan <- ev:
			case <-ctx.Done():
				return
			}
		}
	})

	game.Render(presenter)

	for {
		select {
		case <-ctx.Done():
			return

		case ev := <-eventChan:
			if _, ok := ev.(*tcell.EventResize); ok {
				screen.Sync()
				game.Render(presenter)
				continue
			}
			adapter.HandleEvent(ev)

		case now := <-ticker.C:
			start := time.Now()
			if !game.Update(adapter.Snapshot(now)) {
				return
			}
			// Keys held through a game end must not carry into the next game
			if game.Match.Mode == core.ModeGameOverBanner {
				adapter.Release()
			}
			game.Render(presenter)
			if observe != nil {
				observe(time.Since(start))
			}
		}
	}
}
