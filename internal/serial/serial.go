// Package serial implements the link port registers (types.SB,
// types.SC). Only transfers clocked by the Game Boy itself
// progress; with an external clock the transfer waits forever,
// as it does on hardware with nothing plugged in.
package serial

import (
	"io"

	"github.com/thelolagemann/gbcore/internal/interrupts"
	"github.com/thelolagemann/gbcore/internal/types"
)

const (
	// cyclesPerBit is the length of one bit at 8192 Hz.
	cyclesPerBit = 512
)

// Controller is the serial controller. During a transfer the
// leftmost bit of data is sent to the attached device and the
// bit received from it is shifted in from the right, so after
// 8 bits data holds the received byte.
type Controller struct {
	data          uint8
	control       uint8
	InternalClock bool
	transferring  bool
	count         uint8  // bits shifted so far
	cycles        uint16 // cycles into the current bit

	AttachedDevice Device
	out            io.Writer

	irq *interrupts.Service
}

// NewController returns a Controller with no device attached.
func NewController(irq *interrupts.Service) *Controller {
	return &Controller{
		AttachedDevice: nullDevice{},
		irq:            irq,
	}
}

// Attach attaches a Device to the Controller.
func (c *Controller) Attach(d Device) {
	c.AttachedDevice = d
}

// SetOutput sets a writer that receives every byte sent over
// the link port. Test ROMs report their results this way.
func (c *Controller) SetOutput(w io.Writer) {
	c.out = w
}

// AttachRegisters registers SB and SC with h.
func (c *Controller) AttachRegisters(h *types.HardwareRegisters) {
	h.Register(types.SB, func(v uint8) {
		c.data = v
	}, func() uint8 {
		return c.data
	})
	h.Register(types.SC, c.writeControl, func() uint8 {
		return c.control
	}, types.Unused(0x7E))
}

func (c *Controller) writeControl(v uint8) {
	c.control = v & (types.Bit7 | types.Bit0)
	c.InternalClock = v&types.Bit0 != 0
	if v&types.Bit7 == 0 {
		c.transferring = false
		return
	}
	if c.out != nil {
		_, _ = c.out.Write([]byte{c.data})
	}
	c.transferring = true
	c.count = 0
	c.cycles = 0
}

// Tick advances an internally clocked transfer by the given
// number of cycles.
func (c *Controller) Tick(cycles uint16) {
	if !c.transferring || !c.InternalClock {
		return
	}
	c.cycles += cycles
	for c.transferring && c.cycles >= cyclesPerBit {
		c.cycles -= cyclesPerBit
		c.shift()
	}
}

func (c *Controller) shift() {
	c.AttachedDevice.Receive(c.data&types.Bit7 != 0)
	c.data <<= 1
	if c.AttachedDevice.Send() {
		c.data |= types.Bit0
	}
	c.count++
	if c.count == 8 {
		c.transferring = false
		c.control &^= types.Bit7
		c.irq.Request(interrupts.SerialFlag)
	}
}
