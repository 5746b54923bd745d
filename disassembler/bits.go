package disassembler

import (
	"fmt"

	"avrdisasm/avr"
)

// matchCbiSbi decodes cbi and sbi, the single I/O register bit clear/set.
func matchCbiSbi(cfg avr.Config, img *avr.Image, pc uint16) (Result, bool) {
	cmd := img.Word(pc)
	if cmd&0xFD00 != 0x9800 {
		return Result{}, false
	}
	reg := uint8(avr.Field(cmd, 3, 5))
	bit := avr.Field(cmd, 0, 3)
	mn := "cbi"
	if avr.Bit(cmd, 9) {
		mn = "sbi"
	}
	text := fmt.Sprintf("%s\t%s,%d", mn, cfg.IOName(reg), bit)
	return Result{Size: 1, Text: text}, true
}

// matchSbisSbic decodes sbis and sbic, the I/O register bit skip
// instructions. Like cpse and sbrs/sbrc, these conditionally skip the
// following instruction, so the address after that instruction is a new
// traversal origin.
func matchSbisSbic(cfg avr.Config, img *avr.Image, pc uint16) (Result, bool) {
	cmd := img.Word(pc)
	if cmd&0xFD00 != 0x9900 {
		return Result{}, false
	}
	reg := uint8(avr.Field(cmd, 3, 5))
	bit := avr.Field(cmd, 0, 3)
	mn := "sbic"
	if avr.Bit(cmd, 9) {
		mn = "sbis"
	}
	text := fmt.Sprintf("%s\t%s,%d", mn, cfg.IOName(reg), bit)
	skipTo := pc + 1 + uint16(sizeAt(cfg, img, pc+1))
	return Result{Size: 1, Text: text, Origins: []uint16{skipTo}}, true
}

// matchBldBst decodes bld and bst, the bit load/store between a register
// bit and the T flag.
func matchBldBst(cfg avr.Config, img *avr.Image, pc uint16) (Result, bool) {
	cmd := img.Word(pc)
	if cmd&0xFC08 != 0xF800 {
		return Result{}, false
	}
	reg := uint8(avr.Field(cmd, 4, 5))
	bit := avr.Field(cmd, 0, 3)
	mn := "bld"
	if avr.Bit(cmd, 9) {
		mn = "bst"
	}
	text := fmt.Sprintf("%s\t%s,%d", mn, cfg.RegName(reg), bit)
	return Result{Size: 1, Text: text}, true
}

// matchSbrsSbrc decodes sbrs and sbrc, the register bit skip instructions.
func matchSbrsSbrc(cfg avr.Config, img *avr.Image, pc uint16) (Result, bool) {
	cmd := img.Word(pc)
	if cmd&0xFC08 != 0xFC00 {
		return Result{}, false
	}
	reg := uint8(avr.Field(cmd, 4, 5))
	bit := avr.Field(cmd, 0, 3)
	mn := "sbrc"
	if avr.Bit(cmd, 9) {
		mn = "sbrs"
	}
	text := fmt.Sprintf("%s\t%s,%d", mn, cfg.RegName(reg), bit)
	skipTo := pc + 1 + uint16(sizeAt(cfg, img, pc+1))
	return Result{Size: 1, Text: text, Origins: []uint16{skipTo}}, true
}
