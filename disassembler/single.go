package disassembler

import (
	"fmt"

	"avrdisasm/avr"
)

// oneOperandMnemonics indexes the single-register ALU instruction family
// by its 3-bit type field. Index 4 is reserved (no instruction) and is
// rejected explicitly by matchOneOperand before this table is consulted.
var oneOperandMnemonics = [8]string{"com", "neg", "swap", "inc", "", "asr", "lsr", "ror"}

// matchOneOperand decodes com, neg, swap, inc, asr, lsr, and ror.
func matchOneOperand(cfg avr.Config, img *avr.Image, pc uint16) (Result, bool) {
	cmd := img.Word(pc)
	if cmd&0xFE08 != 0x9400 {
		return Result{}, false
	}
	typ := avr.Field(cmd, 0, 3)
	if typ == 4 {
		return Result{}, false
	}
	reg := uint8(avr.Field(cmd, 4, 5))
	text := fmt.Sprintf("%s\t%s", oneOperandMnemonics[typ], cfg.RegName(reg))
	return Result{Size: 1, Text: text}, true
}

// statusBits names the eight SREG flag bits used by sex (set) and clx
// (clear).
const statusBits = "cznvshti"

// matchSexClx decodes the set/clear status flag instructions (sec, sez,
// sen, sev, ses, seh, set, sei and their cl* counterparts).
func matchSexClx(cfg avr.Config, img *avr.Image, pc uint16) (Result, bool) {
	cmd := img.Word(pc)
	if cmd&0xFF0F != 0x9408 {
		return Result{}, false
	}
	bit := avr.Field(cmd, 4, 3)
	var text string
	if avr.Bit(cmd, 7) {
		text = fmt.Sprintf("cl%c", statusBits[bit])
	} else {
		text = fmt.Sprintf("se%c", statusBits[bit])
	}
	return Result{Size: 1, Text: text}, true
}

// matchDec decodes dec, the single-register decrement.
func matchDec(cfg avr.Config, img *avr.Image, pc uint16) (Result, bool) {
	cmd := img.Word(pc)
	if cmd&0xFE0F != 0x940A {
		return Result{}, false
	}
	reg := uint8(avr.Field(cmd, 4, 5))
	text := fmt.Sprintf("dec\t%s", cfg.RegName(reg))
	return Result{Size: 1, Text: text}, true
}

// miscMnemonics and miscCodes together map the type nibble of the 0x9508
// opcode family (with ret/reti excluded by matching order) to its
// zero-operand instruction.
var (
	miscMnemonics = [7]string{"sleep", "break", "wdr", "lpm", "elpm", "spm", "spm Z+"}
	miscCodes     = [7]uint16{0x8, 0x9, 0xA, 0xC, 0xD, 0xE, 0xF}
)

// matchMisc decodes the zero-operand system instructions sleep, break,
// wdr, and the no-operand lpm/elpm/spm forms. ret and reti share this
// opcode's fixed bits but are matched earlier in the registry (their types
// 0 and 1 are not present in miscCodes, so this matcher declines for them
// regardless of order).
func matchMisc(cfg avr.Config, img *avr.Image, pc uint16) (Result, bool) {
	cmd := img.Word(pc)
	if cmd&0xFF0F != 0x9508 {
		return Result{}, false
	}
	typ := avr.Field(cmd, 4, 4)
	for i, code := range miscCodes {
		if code == typ {
			return Result{Size: 1, Text: miscMnemonics[i]}, true
		}
	}
	return Result{}, false
}

// matchIjmpIcall decodes ijmp and icall. Per spec these do not spawn
// traversal origins — the indirect target is not statically known.
func matchIjmpIcall(cfg avr.Config, img *avr.Image, pc uint16) (Result, bool) {
	cmd := img.Word(pc)
	if cmd&0xFEEF != 0x9409 {
		return Result{}, false
	}
	mn := "ijmp"
	if avr.Bit(cmd, 8) {
		mn = "icall"
	}
	return Result{Size: 1, Text: mn}, true
}
