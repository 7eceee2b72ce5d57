package control

import (
	"context"
	"fmt"
	"time"

	"ising-ca/internal/core"
)

// KeySource yields operator keys without blocking. Poll returns at most one
// key and discards anything else already buffered.
type KeySource interface {
	Poll() (key rune, ok bool)
}

// Loop is the single-goroutine control loop: poll a key, sleep for the
// configured delay, run one generation, render.
type Loop struct {
	Controller *Controller
	View       core.View
	Keys       KeySource
	Renderer   core.Renderer
	// MaxTicks stops the loop after that many generations. Zero means no limit.
	MaxTicks int
	// Sleep waits for d or until ctx is done. Defaults to a timer wait.
	Sleep func(ctx context.Context, d time.Duration) error
}

// Run drives the loop until a quit event, ctx cancellation, MaxTicks, or a
// render error. It returns the number of generations run.
func (l *Loop) Run(ctx context.Context) (int, error) {
	sleep := l.Sleep
	if sleep == nil {
		sleep = sleepContext
	}
	ticks := 0
	for l.MaxTicks == 0 || ticks < l.MaxTicks {
		if l.Keys != nil {
			if key, ok := l.Keys.Poll(); ok {
				if ev, known := KeyEvent(key); known && !l.Controller.Apply(ev) {
					return ticks, nil
				}
			}
		}
		if err := sleep(ctx, l.Controller.Delay()); err != nil {
			return ticks, err
		}
		l.Controller.Tick()
		ticks++
		if l.Renderer != nil {
			if err := l.Renderer.Render(l.View, l.Controller.Status()); err != nil {
				return ticks, fmt.Errorf("render generation %d: %w", ticks, err)
			}
		}
	}
	return ticks, nil
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// ChanKeys is a KeySource fed from a channel, typically by a reader goroutine
// on a raw terminal.
type ChanKeys struct {
	C <-chan rune
}

// Poll takes one pending key and drops the rest.
func (k ChanKeys) Poll() (rune, bool) {
	var (
		key rune
		ok  bool
	)
	select {
	case key, ok = <-k.C:
		if !ok {
			return 0, false
		}
	default:
		return 0, false
	}
	for {
		select {
		case _, open := <-k.C:
			if !open {
				return key, true
			}
		default:
			return key, true
		}
	}
}

// ScriptKeys replays a fixed key sequence, one key per poll.
type ScriptKeys struct {
	keys []rune
}

// NewScriptKeys returns a source that yields keys in order, then nothing.
func NewScriptKeys(keys string) *ScriptKeys {
	return &ScriptKeys{keys: []rune(keys)}
}

// Poll returns the next scripted key.
func (s *ScriptKeys) Poll() (rune, bool) {
	if len(s.keys) == 0 {
		return 0, false
	}
	k := s.keys[0]
	s.keys = s.keys[1:]
	return k, true
}
