package disassembler

import (
	"fmt"

	"avrdisasm/avr"
)

// matchNop decodes the nop instruction: a plain 0x0000 word, matched
// exactly. No other pattern in the registry accepts 0x0000.
func matchNop(cfg avr.Config, img *avr.Image, pc uint16) (Result, bool) {
	if img.Word(pc) != 0x0000 {
		return Result{}, false
	}
	return Result{Size: 1, Text: "nop"}, true
}

// matchMovw decodes movw, the register-pair move.
func matchMovw(cfg avr.Config, img *avr.Image, pc uint16) (Result, bool) {
	cmd := img.Word(pc)
	if cmd&0xFF00 != 0x0100 {
		return Result{}, false
	}
	dst := 2 * uint8(avr.Field(cmd, 4, 4))
	src := 2 * uint8(avr.Field(cmd, 0, 4))
	text := fmt.Sprintf("movw\t%s:%s, %s:%s",
		cfg.RegName(dst+1), cfg.RegName(dst),
		cfg.RegName(src+1), cfg.RegName(src))
	return Result{Size: 1, Text: text}, true
}

// matchMov decodes the register-to-register move.
func matchMov(cfg avr.Config, img *avr.Image, pc uint16) (Result, bool) {
	cmd := img.Word(pc)
	if cmd&0xFC00 != 0x2C00 {
		return Result{}, false
	}
	dst, src := regPair(cmd)
	text := fmt.Sprintf("mov\t%s,%s", cfg.RegName(dst), cfg.RegName(src))
	return Result{Size: 1, Text: text}, true
}

// matchLdi decodes the load-immediate instruction.
func matchLdi(cfg avr.Config, img *avr.Image, pc uint16) (Result, bool) {
	cmd := img.Word(pc)
	if cmd&0xF000 != 0xE000 {
		return Result{}, false
	}
	reg := upperReg(cmd)
	val := immediate8(cmd)
	text := fmt.Sprintf("ldi\t%s,%d\t// $%02x", cfg.RegName(reg), val, val)
	return Result{Size: 1, Text: text}, true
}

// matchInOut decodes in and out, the I/O register move instructions.
func matchInOut(cfg avr.Config, img *avr.Image, pc uint16) (Result, bool) {
	cmd := img.Word(pc)
	if cmd&0xF000 != 0xB000 {
		return Result{}, false
	}
	reg := uint8(avr.Field(cmd, 4, 5))
	ioReg := uint8(16*avr.Field(cmd, 9, 2) + avr.Field(cmd, 0, 4))
	var text string
	if avr.Bit(cmd, 11) {
		text = fmt.Sprintf("out\t%s,%s", cfg.IOName(ioReg), cfg.RegName(reg))
	} else {
		text = fmt.Sprintf("in\t%s,%s", cfg.RegName(reg), cfg.IOName(ioReg))
	}
	return Result{Size: 1, Text: text}, true
}
