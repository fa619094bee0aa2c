package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/void-siege/audio"
	"github.com/lixenwraith/void-siege/config"
	"github.com/lixenwraith/void-siege/core"
	"github.com/lixenwraith/void-siege/encounter"
	"github.com/lixenwraith/void-siege/engine"
	"github.com/lixenwraith/void-siege/input"
	"github.com/lixenwraith/void-siege/render"
	"github.com/lixenwraith/void-siege/status"
	"github.com/lixenwraith/void-siege/storage"
)

var (
	configFlag = flag.String("config", "void-siege.toml", "Path to the TOML config file")
	coopFlag   = flag.Bool("coop", false, "Two players sharing one life pool")
	levelFlag  = flag.Int("level", 0, "Start level, 0 keeps the configured one")
	nameFlag   = flag.String("name", "PLAYER", "Player name for high scores and achievements")
	debugFlag  = flag.Bool("debug", false, "Write logs to logs/void-siege.log")
	muteFlag   = flag.Bool("mute", false, "Start with audio muted")
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "void-siege: %v\n", err)
		os.Exit(1)
	}
	if err := storage.ValidateName(*nameFlag); err != nil {
		fmt.Fprintf(os.Stderr, "void-siege: %v\n", err)
		os.Exit(1)
	}

	res, err := run(cfg, *nameFlag)
	if err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(os.Stderr, "void-siege: %v\n", err)
		os.Exit(1)
	}
	printResult(res)
}

// loadConfig reads the file, applies environment and flag overrides, then validates
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return nil, err
	}
	cfg.ApplyEnv()

	if *coopFlag {
		cfg.Game.Coop = true
	}
	if *levelFlag > 0 {
		cfg.Game.StartLevel = *levelFlag
	}
	if *muteFlag {
		cfg.Audio.Enabled = false
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// run owns the terminal for the duration of one session
func run(cfg *config.Config, name string) (encounter.Result, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return encounter.Result{}, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return encounter.Result{}, fmt.Errorf("init screen: %w", err)
	}
	core.SetTerminalRestore(screen.Fini)
	// Normal exit terminal cleanup
	defer screen.Fini()
	screen.HideCursor()

	reg := status.NewRegistry()
	source := engine.NewMonotonicTimeProvider()

	keys, err := input.LoadKeyConfig(cfg.Keys)
	if err != nil {
		return encounter.Result{}, err
	}
	keyboard := input.NewKeyboard(input.MergeKeyTable(input.DefaultKeyTable(), keys), source)

	sound := audio.NewService(audio.NewAudioConfig(cfg.Audio.Enabled, cfg.Audio.MasterVolume, cfg.Audio.SampleRate, cfg.Audio.EffectVolumes), reg)
	if err := sound.Start(); err != nil {
		log.Printf("audio: %v, running silent", err)
	}
	defer sound.Stop()
	muted := !cfg.Audio.Enabled

	store, err := storage.NewFileStore(cfg.Storage.Directory)
	if err != nil {
		log.Printf("storage unavailable, results will not be saved: %v", err)
	}

	renderer := render.NewRenderer(screen, cfg.Game.Width, cfg.Game.Height, source, reg)

	opts := encounter.SessionOptions{
		Source:   source,
		Sinks:    []encounter.EventSink{sound, renderer},
		Registry: reg,
		Rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	var session *encounter.Session
	if store != nil {
		session = encounter.NewSession(cfg, store, name, opts)
	} else {
		session = encounter.NewSession(cfg, nil, name, opts)
	}

	resized := make(chan struct{}, 1)
	core.Go(func() {
		keyboard.Pump(screen, func(ev tcell.Event) {
			if _, ok := ev.(*tcell.EventResize); ok {
				select {
				case resized <- struct{}{}:
				default:
				}
			}
		})
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	loop := engine.NewLoop(time.Second/time.Duration(cfg.Game.FPS), reg)
	err = loop.Run(ctx, func() bool {
		in := keyboard.Poll()
		if in.Quit {
			return false
		}
		if in.ToggleMute {
			muted = sound.ToggleMute()
		}
		if in.ToggleDebug {
			renderer.Debug.Toggle()
		}

		running := session.Step(in)

		select {
		case <-resized:
			renderer.Resize()
		default:
		}
		if f := session.Frame(); f != nil {
			f.Muted = muted
			renderer.RenderFrame(f)
		}
		return running
	})

	log.Printf("loop stopped after %d ticks", loop.Ticks())
	// Quit mid-level counts as leaving to the menu
	session.Abort()
	return session.Result(), err
}

func printResult(res encounter.Result) {
	switch {
	case res.Next == encounter.NextMenu:
		fmt.Println("Left the game.")
	case res.Cleared:
		fmt.Printf("Cleared in %.2fs with %d points\n", res.ClearTime.Seconds(), res.Score)
		if res.NewRecord {
			fmt.Println("New time-attack record!")
		}
	default:
		fmt.Printf("Game over with %d points\n", res.Score)
	}
	if len(res.Unlocked) > 0 {
		fmt.Printf("Achievements: %v\n", res.Unlocked)
	}
}
