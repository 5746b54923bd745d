package disassembler

import (
	"fmt"

	"avrdisasm/avr"
)

// matchLddStd decodes ldd and std, the displaced load/store through Y or Z.
func matchLddStd(cfg avr.Config, img *avr.Image, pc uint16) (Result, bool) {
	cmd := img.Word(pc)
	if cmd&0xD000 != 0x8000 {
		return Result{}, false
	}
	reg := uint8(avr.Field(cmd, 4, 5))
	offset := uint8(avr.Field(cmd, 13, 1)<<5) | uint8(avr.Field(cmd, 10, 2)<<3) | uint8(avr.Field(cmd, 0, 3))
	ptr := "Z"
	if avr.Bit(cmd, 3) {
		ptr = "Y"
	}
	var text string
	if avr.Bit(cmd, 9) {
		text = fmt.Sprintf("std\t%s+$%02x,%s\t// %d", ptr, offset, cfg.RegName(reg), offset)
	} else {
		text = fmt.Sprintf("ldd\t%s,%s+$%02x\t// %d", cfg.RegName(reg), ptr, offset, offset)
	}
	return Result{Size: 1, Text: text}, true
}

// matchLdsSts decodes lds and sts, the two-word direct-addressed load/store.
func matchLdsSts(cfg avr.Config, img *avr.Image, pc uint16) (Result, bool) {
	cmd := img.Word(pc)
	if cmd&0xFC0F != 0x9000 {
		return Result{}, false
	}
	reg := uint8(avr.Field(cmd, 4, 5))
	addr := img.Word(pc + 1)
	var text string
	if avr.Bit(cmd, 9) {
		text = fmt.Sprintf("sts\t$%04x,%s\t// %d", addr, cfg.RegName(reg), addr)
	} else {
		text = fmt.Sprintf("lds\t%s,$%04x\t// %d", cfg.RegName(reg), addr, addr)
	}
	return Result{Size: 2, Text: text}, true
}

// matchLdStPlus decodes ld and st through Y+/Z+ post-increment. The X+
// form is decoded by matchLdStX.
func matchLdStPlus(cfg avr.Config, img *avr.Image, pc uint16) (Result, bool) {
	cmd := img.Word(pc)
	if cmd&0xFC07 != 0x9001 {
		return Result{}, false
	}
	reg := uint8(avr.Field(cmd, 4, 5))
	ptr := "Z"
	if avr.Bit(cmd, 3) {
		ptr = "Y"
	}
	var text string
	if avr.Bit(cmd, 9) {
		text = fmt.Sprintf("st\t%s+,%s", ptr, cfg.RegName(reg))
	} else {
		text = fmt.Sprintf("ld\t%s,%s+", cfg.RegName(reg), ptr)
	}
	return Result{Size: 1, Text: text}, true
}

// matchLdStMinus decodes ld and st through -Y/-Z pre-decrement. The -X
// form is decoded by matchLdStX.
func matchLdStMinus(cfg avr.Config, img *avr.Image, pc uint16) (Result, bool) {
	cmd := img.Word(pc)
	if cmd&0xFC07 != 0x9002 {
		return Result{}, false
	}
	reg := uint8(avr.Field(cmd, 4, 5))
	ptr := "Z"
	if avr.Bit(cmd, 3) {
		ptr = "Y"
	}
	var text string
	if avr.Bit(cmd, 9) {
		text = fmt.Sprintf("st\t-%s,%s", ptr, cfg.RegName(reg))
	} else {
		text = fmt.Sprintf("ld\t%s,-%s", cfg.RegName(reg), ptr)
	}
	return Result{Size: 1, Text: text}, true
}

// matchELpm decodes lpm and elpm in their plain Z-indirect form.
func matchELpm(cfg avr.Config, img *avr.Image, pc uint16) (Result, bool) {
	cmd := img.Word(pc)
	if cmd&0xFE0D != 0x9004 {
		return Result{}, false
	}
	reg := uint8(avr.Field(cmd, 4, 5))
	mn := "lpm"
	if avr.Bit(cmd, 1) {
		mn = "elpm"
	}
	text := fmt.Sprintf("%s\t%s,Z", mn, cfg.RegName(reg))
	return Result{Size: 1, Text: text}, true
}

// matchELpmPlus decodes lpm and elpm with Z+ post-increment.
func matchELpmPlus(cfg avr.Config, img *avr.Image, pc uint16) (Result, bool) {
	cmd := img.Word(pc)
	if cmd&0xFE0D != 0x9005 {
		return Result{}, false
	}
	reg := uint8(avr.Field(cmd, 4, 5))
	mn := "lpm"
	if avr.Bit(cmd, 1) {
		mn = "elpm"
	}
	text := fmt.Sprintf("%s\t%s,Z+", mn, cfg.RegName(reg))
	return Result{Size: 1, Text: text}, true
}

// matchLdStX decodes ld and st through the X pointer register: plain,
// post-increment, and pre-decrement forms. The fourth encoding (type==3,
// 0x900F/0x920F) is pop/push; this matcher declines it so matchPushPop,
// next in the registry, decodes it.
func matchLdStX(cfg avr.Config, img *avr.Image, pc uint16) (Result, bool) {
	cmd := img.Word(pc)
	if cmd&0xFC0C != 0x900C {
		return Result{}, false
	}
	typ := avr.Field(cmd, 0, 2)
	if typ == 3 {
		return Result{}, false
	}
	reg := uint8(avr.Field(cmd, 4, 5))
	var suffix string
	switch typ {
	case 0:
		suffix = "X"
	case 1:
		suffix = "X+"
	default:
		suffix = "-X"
	}
	var text string
	if avr.Bit(cmd, 9) {
		text = fmt.Sprintf("st\t%s,%s", suffix, cfg.RegName(reg))
	} else {
		text = fmt.Sprintf("ld\t%s,%s", cfg.RegName(reg), suffix)
	}
	return Result{Size: 1, Text: text}, true
}

// matchPushPop decodes push and pop.
func matchPushPop(cfg avr.Config, img *avr.Image, pc uint16) (Result, bool) {
	cmd := img.Word(pc)
	if cmd&0xFC0F != 0x900F {
		return Result{}, false
	}
	reg := uint8(avr.Field(cmd, 4, 5))
	mn := "pop"
	if avr.Bit(cmd, 9) {
		mn = "push"
	}
	text := fmt.Sprintf("%s\t%s", mn, cfg.RegName(reg))
	return Result{Size: 1, Text: text}, true
}
