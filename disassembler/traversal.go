package disassembler

import (
	"errors"
	"fmt"

	"avrdisasm/avr"
)

// ErrDecodeFailed is returned (wrapped) when the traversal cannot cover an
// origin: either no matcher accepted a word, or a chain walked onto an
// already-visited word that was not itself a decode head. This is terminal
// for the whole run — no partial listing is produced.
var ErrDecodeFailed = errors.New("decode failed")

// Disassemble runs the reachability-driven traversal engine over img: it
// seeds the origin worklist from the interrupt vector table and drains it,
// decoding a straight-line chain from each origin until the chain hits an
// already-decoded address or a terminator. It returns the populated line
// table, or a wrapped ErrDecodeFailed if any chain could not be covered.
func Disassemble(cfg avr.Config, img *avr.Image) (*avr.LineTable, error) {
	lt := avr.NewLineTable(cfg)
	origins := avr.NewOriginQueue(cfg)

	for {
		addr, ok := origins.Pop()
		if !ok {
			break
		}
		if err := decodeChain(cfg, img, lt, origins, addr); err != nil {
			return nil, err
		}
	}
	return lt, nil
}

// decodeChain decodes a maximal straight-line run of instructions starting
// at addr, stopping when it reaches an address that is already a decode
// head (normal re-entry, not an error) or a terminator.
func decodeChain(cfg avr.Config, img *avr.Image, lt *avr.LineTable, origins *avr.OriginQueue, addr uint16) error {
	pc := addr
	for !lt.At(pc).Decoded {
		if lt.At(pc).Visited {
			return fmt.Errorf("%w: chain from $%X ran into visited-but-undecoded word $%X", ErrDecodeFailed, addr, pc)
		}

		res, ok := decodeAt(cfg, img, pc)
		if !ok {
			return fmt.Errorf("%w: no matcher accepted word $%04X at $%X", ErrDecodeFailed, img.Word(pc), pc)
		}

		head := pc
		if res.Size == 2 {
			lt.MarkTwoWord(head, cfg.FlashEnd(), res.Text)
		} else {
			lt.MarkOneWord(head, res.Text)
		}
		for _, a := range res.Pointed {
			lt.MarkPointed(a)
		}
		for _, a := range res.Origins {
			origins.Push(a)
		}

		if res.Terminate {
			return nil
		}
		if res.Redirect {
			pc = res.NextPC
		} else {
			pc = head + uint16(res.Size)
		}
	}
	return nil
}
