package disassembler

import "avrdisasm/avr"

// registry is the ordered list of instruction matchers that decodeAt walks.
// It is filled from matcherOrder by init rather than by an initializer: the
// skip-instruction matchers call sizeAt, which calls decodeAt, which reads
// registry, and Go rejects that as an initialization cycle.
var registry []Matcher

func init() {
	registry = matcherOrder
}

// matcherOrder lists the matchers in priority order. A 16-bit word can
// satisfy more than one bit pattern (0x9508 fits both the ret/reti and the
// misc-instruction masks), so more specific patterns are tried first. This
// order is load-bearing — do not alphabetize or reorder it.
var matcherOrder = []Matcher{
	matchNop,
	matchMovw,
	matchCpcCp,
	matchSubSbc,
	matchAddAdcLslRol,
	matchCpse,
	matchAnd,
	matchEor,
	matchOr,
	matchMov,
	matchCpi,
	matchSubiSbci,
	matchOri,
	matchAndi,
	matchLddStd,
	matchLdsSts,
	matchLdStPlus,
	matchLdStMinus,
	matchELpm,
	matchELpmPlus,
	matchLdStX,
	matchPushPop,
	matchOneOperand,
	matchSexClx,
	matchRetReti,
	matchMisc,
	matchIjmpIcall,
	matchDec,
	matchJmpCall,
	matchAdiwSbiw,
	matchCbiSbi,
	matchSbisSbic,
	matchMul,
	matchInOut,
	matchRjmpRcall,
	matchLdi,
	matchCondBranch,
	matchBldBst,
	matchSbrsSbrc,
	matchNotProgrammed,
}

// decodeAt runs the registry in priority order and returns the first
// match. The same call serves both the engine's rendering pass and a
// matcher's size-only lookahead (sizeAt): every Matcher is a pure function
// of cfg, img, and pc, so there is nothing to suppress for the lookahead
// case beyond not acting on the returned Origins/Pointed.
func decodeAt(cfg avr.Config, img *avr.Image, pc uint16) (Result, bool) {
	for _, m := range registry {
		if res, ok := m(cfg, img, pc); ok {
			return res, true
		}
	}
	return Result{}, false
}

// sizeAt returns the instruction width at pc without committing any
// decode state. Used by the skip-instruction matchers (cpse, sbis, sbic,
// sbrs, sbrc) to compute the address following the instruction they may
// skip, before that instruction has itself been decoded.
func sizeAt(cfg avr.Config, img *avr.Image, pc uint16) int {
	res, ok := decodeAt(cfg, img, pc)
	if !ok {
		return 0
	}
	return res.Size
}
