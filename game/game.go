// Package game runs the frame loop: poll one key, advance one tick, draw.
package game

import (
	"context"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/term-pong/audio"
	"github.com/lixenwraith/term-pong/constants"
	"github.com/lixenwraith/term-pong/engine"
	"github.com/lixenwraith/term-pong/render"
	"github.com/lixenwraith/term-pong/terminal"
)

// Sound plays effects for simulation events
type Sound interface {
	Play(audio.SoundType)
}

// Config holds loop settings
type Config struct {
	Bindings      engine.Bindings
	FrameInterval time.Duration
}

// DefaultConfig returns default bindings and the fixed frame interval
func DefaultConfig() Config {
	return Config{
		Bindings:      engine.DefaultBindings(),
		FrameInterval: constants.FrameInterval,
	}
}

// Game owns the state, the screen and the frame loop
type Game struct {
	screen   tcell.Screen
	renderer *render.Renderer
	state    *engine.GameState
	bindings engine.Bindings
	frame    time.Duration
	sound    Sound

	events chan tcell.Event
	done   chan struct{}
}

// New creates a game on an initialized screen; sound may be nil
func New(screen tcell.Screen, cfg Config, sound Sound) *Game {
	if cfg.FrameInterval <= 0 {
		cfg.FrameInterval = constants.FrameInterval
	}
	return &Game{
		screen:   screen,
		renderer: render.NewRenderer(screen),
		state:    engine.NewGameState(),
		bindings: cfg.Bindings,
		frame:    cfg.FrameInterval,
		sound:    sound,
	}
}

// State returns the live game state
func (g *Game) State() *engine.GameState {
	return g.state
}

// Run draws the first frame and loops until ctrl-c, ctx cancellation or the
// screen closing. None of these is an error.
func (g *Game) Run(ctx context.Context) error {
	g.startEvents()
	defer close(g.done)

	g.draw()

	for {
		if quit := g.pollInput(ctx); quit {
			return nil
		}
		g.step()
	}
}

// crashHandler receives panics from the event pump; swapped in tests
var crashHandler = terminal.HandleCrash

// startEvents pumps blocking PollEvent into a channel the loop can select on
func (g *Game) startEvents() {
	g.events = make(chan tcell.Event, constants.EventQueueSize)
	g.done = make(chan struct{})

	go func() {
		defer func() {
			if r := recover(); r != nil {
				crashHandler(r)
			}
		}()
		defer close(g.events)
		for {
			// nil after Fini
			ev := g.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case g.events <- ev:
			case <-g.done:
				return
			}
		}
	}()
}

// pollInput spends one frame budget waiting for input. The first key is applied
// at once; the rest of the budget passes without reading more events, so at most
// one key is consumed per frame. Returns true when the game should stop.
func (g *Game) pollInput(ctx context.Context) bool {
	budget := time.NewTimer(g.frame)
	defer budget.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Printf("game: stopping: %v", context.Cause(ctx))
			return true

		case <-budget.C:
			return false

		case ev, ok := <-g.events:
			if !ok {
				log.Printf("game: event stream closed")
				return true
			}

			switch ev := ev.(type) {
			case *tcell.EventKey:
				if isInterrupt(ev) {
					log.Printf("game: ctrl-c")
					return true
				}
				g.handleKey(ev)

				select {
				case <-ctx.Done():
					return true
				case <-budget.C:
					return false
				}

			case *tcell.EventResize:
				g.screen.Sync()
			}
		}
	}
}

// isInterrupt reports ctrl-c, which raw mode delivers as a key instead of SIGINT
func isInterrupt(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyCtrlC {
		return true
	}
	return ev.Key() == tcell.KeyRune && ev.Rune() == 'c' && ev.Modifiers()&tcell.ModCtrl != 0
}

// handleKey applies a rune key to the paddles; special keys map to NoInput
func (g *Game) handleKey(ev *tcell.EventKey) {
	key := engine.NoInput
	if ev.Key() == tcell.KeyRune {
		key = ev.Rune()
	}
	g.state.ApplyInput(g.bindings, key)
}

// step advances one tick, plays its sounds and draws the result
func (g *Game) step() {
	ev := g.state.Advance()

	if ev.Scored() {
		log.Printf("game: score %d-%d", g.state.ScoreA, g.state.ScoreB)
	}
	g.playSounds(ev)

	g.draw()
}

func (g *Game) playSounds(ev engine.StepEvents) {
	if g.sound == nil || !ev.Any() {
		return
	}

	switch {
	case ev.Scored():
		g.sound.Play(audio.SoundScore)
	case ev.PaddleAHit || ev.PaddleBHit:
		g.sound.Play(audio.SoundPaddle)
	case ev.WallBounce:
		g.sound.Play(audio.SoundWall)
	}
}

func (g *Game) draw() {
	f := render.Compose(g.state, g.bindings)
	g.renderer.Draw(&f)
}
