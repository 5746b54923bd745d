// Package disassembler holds the instruction decoder registry and the
// reachability-driven traversal engine.
package disassembler

import "avrdisasm/avr"

// Result is what a matcher returns when it accepts the word(s) at pc: the
// engine reads Size and Text, then continues the chain at NextPC (or stops
// it, if Terminate is set), and enqueues Origins/Pointed as new worklist
// entries and label requests.
type Result struct {
	// Size is the instruction length in words: 1 or 2. The zero value
	// means "no match" and is only produced via the matched=false return.
	Size int
	// Text is the rendered mnemonic, operands, and optional comment.
	Text string
	// Redirect, when set, means the chain continues at NextPC instead of
	// the default pc+Size. Set by rjmp/rcall and jmp/call, which send the
	// chain to an address outside the current straight-line run.
	Redirect bool
	// NextPC is the chain's continuation address when Redirect is set.
	NextPC uint16
	// Terminate stops the current chain after this instruction (ret,
	// reti, the not-programmed sentinel). Takes precedence over Redirect.
	Terminate bool
	// Origins are addresses to push onto the origin worklist: rcall's
	// fall-through, a conditional branch's taken target, a skip
	// instruction's skip-target.
	Origins []uint16
	// Pointed are addresses to mark as label targets.
	Pointed []uint16
}

// Matcher inspects the word(s) at pc and either declines (matched=false)
// or renders the instruction and returns its Result. A matcher never
// touches shared state directly — img is read-only here — so it can be
// called in "size-only" lookahead mode (skip-instruction handling calling
// the registry at pc+1 to learn the next instruction's width) with no
// special-casing: the caller just discards everything but Size.
type Matcher func(cfg avr.Config, img *avr.Image, pc uint16) (Result, bool)
