package cpu

import "testing"

func TestInstructionCB_RotateShift(t *testing.T) {
	tests := []struct {
		name   string
		opcode uint8 // operates on B
		n      uint8
		carry  bool
		want   uint8
		f      uint8
	}{
		{"RLC", 0x00, 0x85, false, 0x0B, flags(false, false, false, true)},
		{"RLC zero", 0x00, 0x00, true, 0x00, flags(true, false, false, false)},
		{"RRC", 0x08, 0x01, false, 0x80, flags(false, false, false, true)},
		{"RL", 0x10, 0x80, false, 0x00, flags(true, false, false, true)},
		{"RL carry in", 0x10, 0x11, true, 0x23, flags(false, false, false, false)},
		{"RR", 0x18, 0x8A, false, 0x45, flags(false, false, false, false)},
		{"RR carry in", 0x18, 0x01, true, 0x80, flags(false, false, false, true)},
		{"SLA", 0x20, 0xFF, false, 0xFE, flags(false, false, false, true)},
		{"SRA keeps sign", 0x28, 0x8A, false, 0xC5, flags(false, false, false, false)},
		{"SRA to zero", 0x28, 0x01, false, 0x00, flags(true, false, false, true)},
		{"SWAP", 0x30, 0xF0, true, 0x0F, flags(false, false, false, false)},
		{"SWAP zero", 0x30, 0x00, true, 0x00, flags(true, false, false, false)},
		{"SRL", 0x38, 0x8F, false, 0x47, flags(false, false, false, true)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _, _ := newTestCPU(0xCB, tt.opcode)
			c.B = tt.n
			c.F = flags(false, true, true, tt.carry)
			c.Step()
			if c.B != tt.want || c.F != tt.f {
				t.Errorf("expected 0x%02X F 0x%02X, got 0x%02X F 0x%02X", tt.want, tt.f, c.B, c.F)
			}
		})
	}
}

func TestInstructionCB_Registers(t *testing.T) {
	// SET 0 on each register in turn must only touch that register
	for reg := uint8(0); reg < 8; reg++ {
		c, mem, _ := newTestCPU(0xCB, 0xC0|reg)
		c.B, c.C, c.D, c.E, c.A = 0, 0, 0, 0, 0
		c.HL.SetUint16(0xC000)
		c.Step()

		got := [8]uint8{c.B, c.C, c.D, c.E, c.H, c.L, mem[0xC000], c.A}
		want := [8]uint8{0, 0, 0, 0, 0xC0, 0x00, 0, 0}
		want[reg] |= 0x01
		if got != want {
			t.Errorf("SET 0, %s: expected %v, got %v", registerNames[reg], want, got)
		}
	}
}

func TestInstructionCB_Bits(t *testing.T) {
	c, mem, _ := newTestCPU(
		0xCB, 0xFE, // SET 7, (HL)
		0xCB, 0x7E, // BIT 7, (HL)
		0xCB, 0xBE, // RES 7, (HL)
		0xCB, 0x7E, // BIT 7, (HL)
		0xCB, 0xDF, // SET 3, A
		0xCB, 0x9F, // RES 3, A
	)
	c.HL.SetUint16(0xC000)
	c.A = 0x00
	mem[0xC000] = 0x01

	if cycles := c.Step(); cycles != 16 || mem[0xC000] != 0x81 {
		t.Errorf("expected SET 7, (HL) to give 0x81 in 16 cycles, got 0x%02X in %d", mem[0xC000], cycles)
	}
	if cycles := c.Step(); cycles != 12 || c.isFlagSet(flagZero) {
		t.Errorf("expected BIT 7, (HL) to clear Z in 12 cycles, got F 0x%02X in %d", c.F, cycles)
	}
	c.Step()
	if mem[0xC000] != 0x01 {
		t.Errorf("expected RES 7, (HL) to give 0x01, got 0x%02X", mem[0xC000])
	}
	c.Step()
	if !c.isFlagSet(flagZero) {
		t.Errorf("expected BIT 7, (HL) to set Z")
	}
	f := c.F
	c.Step()
	if c.A != 0x08 || c.F != f {
		t.Errorf("expected SET 3, A to give 0x08 without touching flags, got 0x%02X F 0x%02X", c.A, c.F)
	}
	c.Step()
	if c.A != 0x00 || c.F != f {
		t.Errorf("expected RES 3, A to give 0x00 without touching flags, got 0x%02X F 0x%02X", c.A, c.F)
	}
}

func TestInstructionCB_Names(t *testing.T) {
	tests := map[uint8]string{
		0x00: "RLC B",
		0x1E: "RR (HL)",
		0x37: "SWAP A",
		0x47: "BIT 0, A",
		0x86: "RES 0, (HL)",
		0xFF: "SET 7, A",
	}
	for opcode, name := range tests {
		if got := InstructionSetCB[opcode].Name(); got != name {
			t.Errorf("0x%02X: expected %q, got %q", opcode, name, got)
		}
	}
}
