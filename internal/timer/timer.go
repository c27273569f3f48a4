// Package timer provides an implementation of the Game Boy
// timer. It is used to generate interrupts at a frequency
// configured through the types.TAC register.
package timer

import (
	"github.com/thelolagemann/gbcore/internal/interrupts"
	"github.com/thelolagemann/gbcore/internal/types"
)

// bits maps the clock select of TAC to the bit of the system
// counter whose falling edge increments TIMA.
var bits = [4]uint16{
	1 << 9, // 4096 Hz
	1 << 3, // 262144 Hz
	1 << 5, // 65536 Hz
	1 << 7, // 16384 Hz
}

// Controller is the timer controller. The system counter is a
// 16-bit value incremented every cycle, of which DIV exposes
// the upper byte. TIMA is incremented on every falling edge
// of the counter bit selected by TAC, ANDed with the enable
// bit, so that changing DIV or TAC can also cause increments.
type Controller struct {
	counter uint16

	tima uint8
	tma  uint8
	tac  uint8

	irq *interrupts.Service
}

// NewController returns a new timer controller.
func NewController(irq *interrupts.Service) *Controller {
	return &Controller{
		irq:     irq,
		counter: 0xABCC,
	}
}

// Attach registers the timer registers with h.
func (c *Controller) Attach(h *types.HardwareRegisters) {
	h.Register(types.DIV, func(v uint8) {
		c.setCounter(0)
	}, func() uint8 {
		return uint8(c.counter >> 8)
	})
	h.Register(types.TIMA, func(v uint8) {
		c.tima = v
	}, func() uint8 {
		return c.tima
	})
	h.Register(types.TMA, func(v uint8) {
		c.tma = v
	}, func() uint8 {
		return c.tma
	})
	h.Register(types.TAC, func(v uint8) {
		before := c.signal()
		c.tac = v & 0x07
		if before && !c.signal() {
			c.increment()
		}
	}, func() uint8 {
		return c.tac
	}, types.Unused(0xF8))
}

// Tick advances the timer by the given number of cycles.
func (c *Controller) Tick(cycles uint16) {
	for i := uint16(0); i < cycles; i++ {
		c.setCounter(c.counter + 1)
	}
}

// setCounter changes the system counter, incrementing TIMA if
// the selected bit falls as a result.
func (c *Controller) setCounter(v uint16) {
	before := c.signal()
	c.counter = v
	if before && !c.signal() {
		c.increment()
	}
}

// signal returns the input of the falling edge detector.
func (c *Controller) signal() bool {
	return c.tac&types.Bit2 != 0 && c.counter&bits[c.tac&0x03] != 0
}

// increment increments TIMA, reloading it from TMA and
// requesting an interrupt when it overflows.
func (c *Controller) increment() {
	c.tima++
	if c.tima == 0 {
		c.tima = c.tma
		c.irq.Request(interrupts.TimerFlag)
	}
}
