package disassembler

import (
	"fmt"

	"avrdisasm/avr"
)

// matchAnd decodes and, the register bitwise AND.
func matchAnd(cfg avr.Config, img *avr.Image, pc uint16) (Result, bool) {
	cmd := img.Word(pc)
	if cmd&0xFC00 != 0x2000 {
		return Result{}, false
	}
	dst, src := regPair(cmd)
	text := fmt.Sprintf("and\t%s,%s", cfg.RegName(dst), cfg.RegName(src))
	return Result{Size: 1, Text: text}, true
}

// matchEor decodes eor, the register bitwise XOR.
func matchEor(cfg avr.Config, img *avr.Image, pc uint16) (Result, bool) {
	cmd := img.Word(pc)
	if cmd&0xFC00 != 0x2400 {
		return Result{}, false
	}
	dst, src := regPair(cmd)
	text := fmt.Sprintf("eor\t%s,%s", cfg.RegName(dst), cfg.RegName(src))
	return Result{Size: 1, Text: text}, true
}

// matchOr decodes or, the register bitwise OR.
func matchOr(cfg avr.Config, img *avr.Image, pc uint16) (Result, bool) {
	cmd := img.Word(pc)
	if cmd&0xFC00 != 0x2800 {
		return Result{}, false
	}
	dst, src := regPair(cmd)
	text := fmt.Sprintf("or\t%s,%s", cfg.RegName(dst), cfg.RegName(src))
	return Result{Size: 1, Text: text}, true
}

// matchOri decodes ori, the immediate bitwise OR.
func matchOri(cfg avr.Config, img *avr.Image, pc uint16) (Result, bool) {
	cmd := img.Word(pc)
	if cmd&0xF000 != 0x6000 {
		return Result{}, false
	}
	reg := upperReg(cmd)
	val := immediate8(cmd)
	text := fmt.Sprintf("ori\t%s,%d\t// $%02x", cfg.RegName(reg), val, val)
	return Result{Size: 1, Text: text}, true
}

// matchAndi decodes andi, the immediate bitwise AND.
func matchAndi(cfg avr.Config, img *avr.Image, pc uint16) (Result, bool) {
	cmd := img.Word(pc)
	if cmd&0xF000 != 0x7000 {
		return Result{}, false
	}
	reg := upperReg(cmd)
	val := immediate8(cmd)
	text := fmt.Sprintf("andi\t%s,%d\t// $%02x", cfg.RegName(reg), val, val)
	return Result{Size: 1, Text: text}, true
}
