package domain

import "fmt"

type TimerPreset struct {
	Label       string
	Minutes     int
	Description string
}

type TimerPresets map[TimerMode]TimerPreset

// DefaultTimerPresets returns the stock focus/break/deep presets.
func DefaultTimerPresets() TimerPresets {
	return TimerPresets{
		TimerFocus: {Label: "Focus Sprint", Minutes: 25, Description: "Classic Pomodoro deep work block."},
		TimerBreak: {Label: "Micro Break", Minutes: 5, Description: "Reset, move, hydrate."},
		TimerDeep:  {Label: "Deep Dive", Minutes: 50, Description: "Extended flow session with strong commit."},
	}
}

// Seconds returns the preset length of mode in seconds.
func (p TimerPresets) Seconds(mode TimerMode) int {
	return p[mode].Minutes * 60
}

// FocusTimer is the countdown state owned by the dashboard. It only changes
// through the methods below; the caller drives Tick once per second.
type FocusTimer struct {
	Mode            TimerMode
	SecondsLeft     int
	Running         bool
	CyclesCompleted int
}

// NewFocusTimer returns a stopped timer loaded with the focus preset.
func NewFocusTimer(presets TimerPresets) FocusTimer {
	return FocusTimer{
		Mode:        TimerFocus,
		SecondsLeft: presets.Seconds(TimerFocus),
	}
}

// Tick advances a running timer by one second. It reports true when this
// tick finished the countdown. Finishing a focus block counts a cycle.
func (t *FocusTimer) Tick() bool {
	if !t.Running {
		return false
	}
	if t.SecondsLeft <= 1 {
		t.SecondsLeft = 0
		t.Running = false
		if t.Mode == TimerFocus {
			t.CyclesCompleted++
		}
		return true
	}
	t.SecondsLeft--
	return false
}

// Toggle starts or pauses the countdown.
func (t *FocusTimer) Toggle() {
	t.Running = !t.Running
}

// ApplyPreset loads mode's preset. Choosing the current mode flips the run
// state; choosing a different mode starts it immediately.
func (t *FocusTimer) ApplyPreset(mode TimerMode, presets TimerPresets) {
	running := true
	if mode == t.Mode {
		running = !t.Running
	}
	t.Mode = mode
	t.SecondsLeft = presets.Seconds(mode)
	t.Running = running
}

// Reset stops the timer and reloads the current mode's preset.
func (t *FocusTimer) Reset(presets TimerPresets) {
	t.SecondsLeft = presets.Seconds(t.Mode)
	t.Running = false
}

// Clock renders the remaining time as MM:SS.
func (t FocusTimer) Clock() string {
	return fmt.Sprintf("%02d:%02d", t.SecondsLeft/60, t.SecondsLeft%60)
}

// Elapsed returns the completed fraction of the current block in [0, 1].
func (t FocusTimer) Elapsed(presets TimerPresets) float64 {
	total := presets.Seconds(t.Mode)
	if total <= 0 {
		return 0
	}
	done := float64(total-t.SecondsLeft) / float64(total)
	switch {
	case done < 0:
		return 0
	case done > 1:
		return 1
	}
	return done
}
