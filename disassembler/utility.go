package disassembler

import "avrdisasm/avr"

// rjmpTarget computes the target of a 12-bit signed relative displacement
// relative to pc+1, wrapping into the flash address space.
func rjmpTarget(cfg avr.Config, pc uint16, cmd uint16) uint16 {
	if avr.Bit(cmd, 11) {
		return (pc + 1 - (0x1000 - avr.Field(cmd, 0, 12))) & cfg.FlashEnd()
	}
	return (pc + 1 + avr.Field(cmd, 0, 12)) & cfg.FlashEnd()
}

// branchTarget computes the target of a 7-bit signed displacement used by
// the conditional branch family, relative to pc+1.
func branchTarget(cfg avr.Config, pc uint16, offs uint16) uint16 {
	if avr.Bit(offs, 6) {
		return (pc + 1 - (0x80 - offs)) & cfg.FlashEnd()
	}
	return (pc + 1 + offs) & cfg.FlashEnd()
}

// regPair returns the 5-bit destination and source register indices shared
// by the two-register ALU instruction family (cpc/cp, sub/sbc, add/adc,
// cpse, and, eor, or, mov, mul).
func regPair(cmd uint16) (dst, src uint8) {
	dst = uint8(avr.Field(cmd, 4, 5))
	src = uint8(16*avr.Field(cmd, 9, 1) + avr.Field(cmd, 0, 4))
	return
}

// upperReg returns the upper-half register index (r16..r31) used by the
// immediate instruction family (ldi/cpi/subi/sbci/ori/andi).
func upperReg(cmd uint16) uint8 {
	return uint8(16 + avr.Field(cmd, 4, 4))
}

// immediate8 decodes the split 8-bit immediate field used by the
// ldi/cpi/subi/sbci/ori/andi families.
func immediate8(cmd uint16) uint8 {
	return uint8(avr.Field(cmd, 8, 4)<<4) | uint8(avr.Field(cmd, 0, 4))
}
