package disassembler

import (
	"fmt"

	"avrdisasm/avr"
)

// matchSubSbc decodes sub and sbc, the register subtract and
// subtract-with-carry instructions.
func matchSubSbc(cfg avr.Config, img *avr.Image, pc uint16) (Result, bool) {
	cmd := img.Word(pc)
	if cmd&0xEC00 != 0x0800 {
		return Result{}, false
	}
	dst, src := regPair(cmd)
	mn := "sbc"
	if avr.Bit(cmd, 12) {
		mn = "sub"
	}
	text := fmt.Sprintf("%s\t%s,%s", mn, cfg.RegName(dst), cfg.RegName(src))
	return Result{Size: 1, Text: text}, true
}

// matchAddAdcLslRol decodes add, adc, and their same-register aliases lsl
// (add r,r) and rol (adc r,r).
func matchAddAdcLslRol(cfg avr.Config, img *avr.Image, pc uint16) (Result, bool) {
	cmd := img.Word(pc)
	if cmd&0xEC00 != 0x0C00 {
		return Result{}, false
	}
	dst, src := regPair(cmd)
	var mn string
	if avr.Bit(cmd, 12) {
		if dst != src {
			mn = "adc"
		} else {
			mn = "rol"
		}
	} else {
		if dst != src {
			mn = "add"
		} else {
			mn = "lsl"
		}
	}
	var text string
	if mn == "rol" || mn == "lsl" {
		text = fmt.Sprintf("%s\t%s", mn, cfg.RegName(dst))
	} else {
		text = fmt.Sprintf("%s\t%s,%s", mn, cfg.RegName(dst), cfg.RegName(src))
	}
	return Result{Size: 1, Text: text}, true
}

// matchSubiSbci decodes subi and sbci, the immediate subtract instructions.
func matchSubiSbci(cfg avr.Config, img *avr.Image, pc uint16) (Result, bool) {
	cmd := img.Word(pc)
	if cmd&0xE000 != 0x4000 {
		return Result{}, false
	}
	reg := upperReg(cmd)
	val := immediate8(cmd)
	mn := "sbci"
	if avr.Bit(cmd, 12) {
		mn = "subi"
	}
	text := fmt.Sprintf("%s\t%s,%d\t// $%02x", mn, cfg.RegName(reg), val, val)
	return Result{Size: 1, Text: text}, true
}

// adiwRegPairs names the four word-register pairs adiw/sbiw operate on.
var adiwRegPairs = [4]string{"W", "XH:XL", "YH:YL", "ZH:ZL"}

// matchAdiwSbiw decodes adiw and sbiw, the word-register add/subtract
// immediate instructions.
func matchAdiwSbiw(cfg avr.Config, img *avr.Image, pc uint16) (Result, bool) {
	cmd := img.Word(pc)
	if cmd&0xFE00 != 0x9600 {
		return Result{}, false
	}
	pair := avr.Field(cmd, 4, 2)
	val := uint8(avr.Field(cmd, 6, 2)<<4) | uint8(avr.Field(cmd, 0, 4))
	mn := "adiw"
	if avr.Bit(cmd, 8) {
		mn = "sbiw"
	}
	text := fmt.Sprintf("%s\t%s,%d\t// %02X", mn, adiwRegPairs[pair], val, val)
	return Result{Size: 1, Text: text}, true
}

// matchMul decodes mul, the unsigned multiply.
func matchMul(cfg avr.Config, img *avr.Image, pc uint16) (Result, bool) {
	cmd := img.Word(pc)
	if cmd&0xFC00 != 0x9C00 {
		return Result{}, false
	}
	dst, src := regPair(cmd)
	text := fmt.Sprintf("mul\t%s,%s", cfg.RegName(dst), cfg.RegName(src))
	return Result{Size: 1, Text: text}, true
}
