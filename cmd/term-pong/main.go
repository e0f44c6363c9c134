package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/lixenwraith/term-pong/audio"
	"github.com/lixenwraith/term-pong/constants"
	"github.com/lixenwraith/term-pong/engine"
	"github.com/lixenwraith/term-pong/game"
	"github.com/lixenwraith/term-pong/terminal"
)

var (
	keysFlag  = flag.String("keys", constants.DefaultKeys, "Paddle keys in order: A up, A down, B up, B down")
	muteFlag  = flag.Bool("mute", false, "Disable sound effects")
	debugFlag = flag.Bool("debug", false, "Write a debug log to logs/"+logFileName)
)

func main() {
	os.Exit(run())
}

func run() int {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			terminal.HandleCrash(r)
		}
	}()

	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	bindings, err := engine.ParseBindings(*keysFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid -keys: %v\n", err)
		return 2
	}

	audioCfg := audio.LoadAudioConfig()
	if *muteFlag {
		audioCfg.Enabled = false
	}
	sound := audio.NewSoundManager(audioCfg)
	if err := sound.Initialize(); err != nil {
		// Non-fatal, game can run without sound
		log.Printf("Audio initialization failed: %v (continuing without audio)", err)
	}
	defer sound.Cleanup()

	session, err := terminal.OpenTTY()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		return 1
	}
	// Normal exit terminal cleanup
	defer session.Close()

	// Raw mode turns ctrl-c into a key; signals still arrive from kill or a parent
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := game.DefaultConfig()
	cfg.Bindings = bindings

	g := game.New(session.Screen(), cfg, sound)
	if err := g.Run(ctx); err != nil {
		log.Printf("game: %v", err)
	}

	log.Printf("Final score %d-%d", g.State().ScoreA, g.State().ScoreB)
	return 0
}
