package disassembler

import (
	"fmt"

	"avrdisasm/avr"
)

// matchCpcCp decodes cpc and cp, the register compare-with-carry and
// plain compare instructions, distinguished by bit 12.
func matchCpcCp(cfg avr.Config, img *avr.Image, pc uint16) (Result, bool) {
	cmd := img.Word(pc)
	if cmd&0xEC00 != 0x0400 {
		return Result{}, false
	}
	dst, src := regPair(cmd)
	mn := "cpc"
	if avr.Bit(cmd, 12) {
		mn = "cp"
	}
	text := fmt.Sprintf("%s\t%s,%s", mn, cfg.RegName(dst), cfg.RegName(src))
	return Result{Size: 1, Text: text}, true
}

// matchCpi decodes cpi, the immediate compare.
func matchCpi(cfg avr.Config, img *avr.Image, pc uint16) (Result, bool) {
	cmd := img.Word(pc)
	if cmd&0xF000 != 0x3000 {
		return Result{}, false
	}
	reg := upperReg(cmd)
	val := immediate8(cmd)
	text := fmt.Sprintf("cpi\t%s,%d\t// $%02x", cfg.RegName(reg), val, val)
	return Result{Size: 1, Text: text}, true
}
