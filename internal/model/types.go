// Package model defines shared data structures.
package model

import "time"

// Config defines practice settings.
type Config struct {
	Duration time.Duration
	Words    int
	TickRate time.Duration
	Preview  int
	DictPath string
	LogFile  string
}

// KeyCode identifies the kind of key event the typing core understands.
type KeyCode int

const (
	KeyUnknown KeyCode = iota
	KeyRune
	KeyBackspace
	KeyEnter
	KeyEsc
)

// Modifier is a bit set of held modifier keys.
type Modifier uint8

const (
	ModShift Modifier = 1 << iota
	ModCtrl
)

// Key is a single key press.
type Key struct {
	Code KeyCode
	Rune rune
	Mods Modifier
}

// Has reports whether all modifiers in m are held.
func (k Key) Has(m Modifier) bool {
	return k.Mods&m == m
}

// IsKill reports whether the key is the global kill combination (Ctrl+C).
func (k Key) IsKill() bool {
	return k.Code == KeyRune && k.Has(ModCtrl) && (k.Rune == 'c' || k.Rune == 'C')
}

// RoundResult captures a completed round. It lives in memory only.
type RoundResult struct {
	StartedAt    time.Time
	EndedAt      time.Time
	Duration     time.Duration
	CharsCorrect int
	CharsWrong   int
	Words        int
	Accuracy     float64
	GrossWPM     float64
	AdjustedWPM  int
}
