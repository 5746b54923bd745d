package disassembler

import (
	"fmt"

	"avrdisasm/avr"
)

// matchCpse decodes cpse, the compare-skip-if-equal instruction. It
// conditionally skips the following instruction, so the address past that
// instruction becomes a new traversal origin while the current chain
// continues at pc+1 regardless.
func matchCpse(cfg avr.Config, img *avr.Image, pc uint16) (Result, bool) {
	cmd := img.Word(pc)
	if cmd&0xFC00 != 0x1000 {
		return Result{}, false
	}
	dst, src := regPair(cmd)
	text := fmt.Sprintf("cpse\t%s,%s", cfg.RegName(dst), cfg.RegName(src))
	skipTo := pc + 1 + uint16(sizeAt(cfg, img, pc+1))
	return Result{Size: 1, Text: text, Origins: []uint16{skipTo}}, true
}

// brbsMnemonics and brbcMnemonics name the conditional branch variants by
// their 3-bit flag-bit field, for the "branch if set" and "branch if
// clear" forms respectively.
var (
	brbsMnemonics = [8]string{"brlo", "breq", "brmi", "brvs", "brlt", "brhs", "brts", "brie"}
	brbcMnemonics = [8]string{"brsh", "brne", "brpl", "brvc", "brge", "brhc", "brtc", "brid"}
)

// matchCondBranch decodes the brbs/brbc conditional branch family. Bit 0
// of each table (brlo/brsh, the carry flag) has the common carry-flag
// synonym appended as a trailing comment, matching the original tool.
func matchCondBranch(cfg avr.Config, img *avr.Image, pc uint16) (Result, bool) {
	cmd := img.Word(pc)
	if cmd&0xF800 != 0xF000 {
		return Result{}, false
	}
	bit := avr.Field(cmd, 0, 3)
	offs := avr.Field(cmd, 3, 7)
	addr := branchTarget(cfg, pc, offs)
	var text string
	if avr.Bit(cmd, 10) {
		text = fmt.Sprintf("%s\tL_%X", brbcMnemonics[bit], addr)
		if bit == 0 {
			text += "\t// brcc"
		}
	} else {
		text = fmt.Sprintf("%s\tL_%X", brbsMnemonics[bit], addr)
		if bit == 0 {
			text += "\t// brcs"
		}
	}
	return Result{
		Size:    1,
		Text:    text,
		Origins: []uint16{addr},
		Pointed: []uint16{addr},
	}, true
}

// matchRjmpRcall decodes rjmp and rcall, the relative jump/call family.
// rjmp redirects the current chain to its target with no fall-through;
// rcall does the same but additionally enqueues pc+1 as a new origin for
// the return path.
func matchRjmpRcall(cfg avr.Config, img *avr.Image, pc uint16) (Result, bool) {
	cmd := img.Word(pc)
	if cmd&0xE000 != 0xC000 {
		return Result{}, false
	}
	addr := rjmpTarget(cfg, pc, cmd)
	res := Result{
		Size:     1,
		Redirect: true,
		NextPC:   addr,
		Pointed:  []uint16{addr},
	}
	if avr.Bit(cmd, 12) {
		res.Text = fmt.Sprintf("rcall\tL_%X", addr)
		res.Origins = []uint16{pc + 1}
	} else {
		res.Text = fmt.Sprintf("rjmp\tL_%X", addr)
	}
	return res, true
}

// matchJmpCall decodes jmp and call, the two-word absolute jump/call.
// Unlike rcall, call does NOT enqueue its fall-through as a new origin —
// this is almost certainly an oversight in the tool this was derived from,
// but is preserved here for behavioral parity.
func matchJmpCall(cfg avr.Config, img *avr.Image, pc uint16) (Result, bool) {
	cmd := img.Word(pc)
	if cmd&0xFE0C != 0x940C {
		return Result{}, false
	}
	addr := img.Word(pc + 1)
	mn := "jmp"
	if avr.Bit(cmd, 1) {
		mn = "call"
	}
	text := fmt.Sprintf("%s\tL_%X", mn, addr)
	return Result{
		Size:     2,
		Text:     text,
		Redirect: true,
		NextPC:   addr,
		Pointed:  []uint16{addr},
	}, true
}

// matchRetReti decodes ret and reti, both of which terminate the chain.
func matchRetReti(cfg avr.Config, img *avr.Image, pc uint16) (Result, bool) {
	cmd := img.Word(pc)
	if cmd&0xFFEF != 0x9508 {
		return Result{}, false
	}
	mn := "ret"
	if avr.Bit(cmd, 4) {
		mn = "reti"
	}
	return Result{Size: 1, Text: mn, Terminate: true}, true
}

// matchNotProgrammed decodes the not-programmed sentinel 0xFFFF. It
// renders no text (matching the original, which never calls sprintf for
// this case) and terminates the chain.
func matchNotProgrammed(cfg avr.Config, img *avr.Image, pc uint16) (Result, bool) {
	if img.Word(pc) != 0xFFFF {
		return Result{}, false
	}
	return Result{Size: 1, Terminate: true}, true
}
