// Package listing renders a populated line table as a reassemblable AVR
// assembly text listing, or — when disassembly fails outright — a raw hex
// dump of the flash image.
package listing

import (
	"fmt"
	"io"

	"avrdisasm/avr"
)

// Emit writes the listing for img/lt to w: an .include header, one line per
// decoded instruction (labeled when pointed to), stray undecoded words as
// .dw fill-ins, and .ORG directives wherever the address stream is
// discontiguous.
func Emit(w io.Writer, cfg avr.Config, img *avr.Image, lt *avr.LineTable) error {
	if _, err := fmt.Fprintln(w, `.include "m8def.inc"`); err != nil {
		return err
	}

	flashEnd := cfg.FlashEnd()
	backAddr := flashEnd
	for i := 0; i < lt.Len(); i++ {
		addr := uint16(i)
		rec := lt.At(addr)
		word := img.Word(addr)
		stray := !rec.Visited && word != 0xFFFF

		if rec.Decoded || stray {
			prev := (addr - 1) & flashEnd
			prevPrev := (addr - 2) & flashEnd
			if backAddr != prev && (backAddr != prevPrev || !lt.At(prevPrev).Visited) {
				if _, err := fmt.Fprintf(w, ".ORG\t$%X\n", addr); err != nil {
					return err
				}
			}
			backAddr = addr
		}

		switch {
		case rec.Decoded:
			if rec.Pointed {
				if _, err := fmt.Fprintf(w, "L_%X:\t%s\n", addr, rec.Text); err != nil {
					return err
				}
			} else {
				if _, err := fmt.Fprintf(w, "\t%s\n", rec.Text); err != nil {
					return err
				}
			}
		case stray:
			if _, err := fmt.Fprintf(w, "L_%X:\t.dw\t$%04x\n", addr, word); err != nil {
				return err
			}
		}
	}
	return nil
}

// RawDump writes img's programmed bytes as uppercase hex, sixteen bytes per
// line, with no separators. This is the fallback output when the
// reachability traversal cannot cover the image.
func RawDump(w io.Writer, img *avr.Image) error {
	size := img.DumpSize()
	b := img.Bytes()
	for i := 0; i < size; i++ {
		if _, err := fmt.Fprintf(w, "%02X", b[i]); err != nil {
			return err
		}
		if i%16 == 15 || i == size-1 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
	}
	return nil
}
