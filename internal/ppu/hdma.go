package ppu

import (
	"github.com/thelolagemann/gbcore/internal/types"
	"github.com/thelolagemann/gbcore/pkg/log"
)

// HDMAMode is the transfer mode selected by bit 7 of types.HDMA5.
type HDMAMode uint8

const (
	// GDMA copies every block at once, stalling the CPU until
	// the transfer completes.
	GDMA HDMAMode = iota
	// HDMA copies one block each time the PPU enters HBlank.
	HDMA
)

const (
	// hdmaBlockSize is the number of bytes copied per block.
	hdmaBlockSize = 0x10
	// hdmaBlockCycles is the number of CPU cycles a block
	// transfer stalls the CPU for.
	hdmaBlockCycles = 8
)

// Reader is a source of bytes for a VRAM DMA transfer.
type Reader interface {
	Read(address uint16) uint8
}

// Writer is the destination of a VRAM DMA transfer.
type Writer interface {
	Write(address uint16, value uint8)
}

// VRAMDMA is the CGB VRAM DMA controller, which copies data in
// 16 byte blocks from ROM or RAM into VRAM.
type VRAMDMA struct {
	source      uint16
	destination uint16
	active      bool
	mode        HDMAMode
	remain      uint8 // blocks left - 1, 0x7F once finished

	log log.Logger
}

// NewVRAMDMA returns an idle VRAM DMA controller.
func NewVRAMDMA(l log.Logger) *VRAMDMA {
	if l == nil {
		l = log.NewNullLogger()
	}
	return &VRAMDMA{
		destination: 0x8000,
		remain:      0x7F,
		log:         l,
	}
}

// Attach registers types.HDMA1 - types.HDMA5 with h.
func (h *VRAMDMA) Attach(regs *types.HardwareRegisters) {
	regs.Register(types.HDMA1, func(v uint8) {
		h.source = uint16(v)<<8 | h.source&0x00FF
	}, func() uint8 { return uint8(h.source >> 8) })
	regs.Register(types.HDMA2, func(v uint8) {
		h.source = h.source&0xFF00 | uint16(v&0xF0)
	}, func() uint8 { return uint8(h.source) })
	regs.Register(types.HDMA3, func(v uint8) {
		h.destination = 0x8000 | uint16(v&0x1F)<<8 | h.destination&0x00FF
	}, func() uint8 { return uint8(h.destination >> 8) })
	regs.Register(types.HDMA4, func(v uint8) {
		h.destination = h.destination&0xFF00 | uint16(v&0xF0)
	}, func() uint8 { return uint8(h.destination) })
	regs.Register(types.HDMA5, h.Start, h.Status)
}

// Start handles a write to types.HDMA5. While an HBlank
// transfer is running, writing bit 7 clear cancels it and
// leaves the source and destination where they stopped.
func (h *VRAMDMA) Start(v uint8) {
	if h.active && h.mode == HDMA {
		if v&types.Bit7 == 0 {
			h.active = false
			h.log.Debugf("hdma: cancelled with %d blocks left", uint16(h.remain)+1)
		}
		return
	}
	h.active = true
	h.remain = v & 0x7F
	if v&types.Bit7 != 0 {
		h.mode = HDMA
	} else {
		h.mode = GDMA
	}
}

// Status returns the value of types.HDMA5: the blocks left
// minus one, with bit 7 set when no transfer is active.
func (h *VRAMDMA) Status() uint8 {
	if h.active {
		return h.remain
	}
	return h.remain | types.Bit7
}

// Active returns true while a transfer is in progress.
func (h *VRAMDMA) Active() bool {
	return h.active
}

// Mode returns the mode of the current or last transfer.
func (h *VRAMDMA) Mode() HDMAMode {
	return h.mode
}

// Run performs the work due for the current step and returns
// the number of cycles the CPU is stalled for. A GDMA transfer
// is copied in full; an HDMA transfer copies one block when
// hBlank reports that the PPU entered HBlank.
func (h *VRAMDMA) Run(src Reader, dst Writer, hBlank bool) uint16 {
	if !h.active {
		return 0
	}
	switch h.mode {
	case GDMA:
		var cycles uint16
		for h.active {
			cycles += h.copyBlock(src, dst)
		}
		return cycles
	case HDMA:
		if hBlank {
			return h.copyBlock(src, dst)
		}
	}
	return 0
}

func (h *VRAMDMA) copyBlock(src Reader, dst Writer) uint16 {
	for i := uint16(0); i < hdmaBlockSize; i++ {
		dst.Write(h.destination, src.Read(h.source))
		h.source++
		h.destination = 0x8000 | (h.destination+1)&0x1FFF
	}
	if h.remain == 0 {
		h.active = false
		h.remain = 0x7F
	} else {
		h.remain--
	}
	return hdmaBlockCycles
}
