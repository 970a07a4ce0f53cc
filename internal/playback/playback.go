// Package playback turns a battle log into a timed sequence of frames for
// presentation. Every value a frame shows comes from the log; nothing is
// rolled again.
package playback

import (
	"context"
	"errors"
	"time"

	"github.com/ericogr/lingjing-idle/internal/game"
)

var ErrInvalidSpeed = errors.New("speed must be 1, 2 or 4")

// Timing is the delay after each kind of entry at 1x speed.
type Timing struct {
	TurnDelay  time.Duration
	SkillDelay time.Duration
}

// Frame is one log entry and the moment it is shown, relative to the start
// of the replay. HP holds the last known hp of every combatant seen so far.
type Frame struct {
	Offset   time.Duration  `json:"-"`
	OffsetMS int64          `json:"offset_ms"`
	Entry    game.Entry     `json:"entry"`
	HP       map[string]int `json:"hp,omitempty"`
}

// ValidSpeed reports whether speed is a supported playback rate.
func ValidSpeed(speed int) bool {
	return speed == 1 || speed == 2 || speed == 4
}

// Schedule assigns offsets to the entries in log order. An entry is shown
// once the delay of the entry before it has elapsed.
func Schedule(log []game.Entry, speed int, timing Timing) ([]Frame, error) {
	if !ValidSpeed(speed) {
		return nil, ErrInvalidSpeed
	}
	frames := make([]Frame, 0, len(log))
	hp := map[string]int{}
	var at time.Duration
	for _, e := range log {
		if a := e.Attack; a != nil {
			hp[a.TargetID] = a.TargetHP
			hp[a.ActorID] = a.ActorHP
		}
		frames = append(frames, Frame{Offset: at, OffsetMS: at.Milliseconds(), Entry: e, HP: copyHP(hp)})
		at += delayFor(e.Kind, timing) / time.Duration(speed)
	}
	return frames, nil
}

func delayFor(kind game.EntryKind, t Timing) time.Duration {
	switch kind {
	case game.EntryAttack:
		return t.TurnDelay
	case game.EntrySkillUse:
		return t.SkillDelay
	}
	return 0
}

func copyHP(hp map[string]int) map[string]int {
	if len(hp) == 0 {
		return nil
	}
	out := make(map[string]int, len(hp))
	for k, v := range hp {
		out[k] = v
	}
	return out
}

// Duration is the offset of the last frame.
func Duration(frames []Frame) time.Duration {
	if len(frames) == 0 {
		return 0
	}
	return frames[len(frames)-1].Offset
}

// Play hands frames to emit as their offsets come due. It stops early when
// ctx is done or emit fails.
func Play(ctx context.Context, frames []Frame, emit func(Frame) error) error {
	start := time.Now()
	timer := time.NewTimer(time.Hour)
	timer.Stop()
	defer timer.Stop()

	for _, f := range frames {
		if wait := f.Offset - time.Since(start); wait > 0 {
			timer.Reset(wait)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-timer.C:
			}
		} else if err := ctx.Err(); err != nil {
			return err
		}
		if err := emit(f); err != nil {
			return err
		}
	}
	return nil
}
