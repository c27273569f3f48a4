package gameboy

import (
	"io"

	"github.com/thelolagemann/gbcore/internal/types"
	"github.com/thelolagemann/gbcore/pkg/log"
)

// Opt is a function that modifies a GameBoy
// instance before its components are created.
type Opt func(gb *GameBoy)

// Debug logs every executed instruction. It only has an effect
// with a Logger at debug level.
func Debug() Opt {
	return func(gb *GameBoy) {
		gb.debug = true
	}
}

// SerialDebugger writes every byte sent over the link port to
// w. Test ROMs report their results this way.
func SerialDebugger(w io.Writer) Opt {
	return func(gb *GameBoy) {
		gb.serialOut = w
	}
}

// AsModel sets the model to emulate.
func AsModel(m types.Model) Opt {
	return func(gb *GameBoy) {
		gb.model = m
	}
}

// WithLogger sets the Logger used by every component.
func WithLogger(log log.Logger) Opt {
	return func(gb *GameBoy) {
		gb.Logger = log
	}
}
