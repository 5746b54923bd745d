package avr

import "testing"

func TestBitAndField(t *testing.T) {
	w := uint16(0b1010_1100_0011_0101)
	if !Bit(w, 0) {
		t.Errorf("bit 0 should be set")
	}
	if Bit(w, 1) {
		t.Errorf("bit 1 should be clear")
	}
	if got := Field(w, 0, 4); got != 0x5 {
		t.Errorf("field(0,4) = %X, want 5", got)
	}
	if got := Field(w, 12, 4); got != 0xA {
		t.Errorf("field(12,4) = %X, want A", got)
	}
}

func TestATmega8Config(t *testing.T) {
	cfg := ATmega8()
	if cfg.FlashSize != 4096 {
		t.Errorf("FlashSize = %d, want 4096", cfg.FlashSize)
	}
	if cfg.FlashEnd() != 0x0FFF {
		t.Errorf("FlashEnd() = %X, want FFF", cfg.FlashEnd())
	}
	if cfg.RegName(16) != "r16" {
		t.Errorf("RegName(16) = %q, want r16", cfg.RegName(16))
	}
	if cfg.RegName(26) != "XL" {
		t.Errorf("RegName(26) = %q, want XL", cfg.RegName(26))
	}
	if cfg.IOName(7) != "ADMUX" {
		t.Errorf("IOName(7) = %q, want ADMUX", cfg.IOName(7))
	}
	if cfg.IOName(0x19) != "$19" {
		t.Errorf("IOName(0x19) = %q, want placeholder $19", cfg.IOName(0x19))
	}
}

func TestImageDefaultsToUnprogrammed(t *testing.T) {
	cfg := ATmega8()
	img := NewImage(cfg)
	if img.Word(0) != 0xFFFF {
		t.Errorf("fresh image word 0 = %X, want FFFF", img.Word(0))
	}
	if img.DumpSize() != 0 {
		t.Errorf("fresh image DumpSize = %d, want 0", img.DumpSize())
	}
}

func TestImageWriteByteExtendsDumpSize(t *testing.T) {
	cfg := ATmega8()
	img := NewImage(cfg)
	img.WriteByte(0, 0x11)
	img.WriteByte(1, 0x22)
	if img.Word(0) != 0x2211 {
		t.Errorf("Word(0) = %X, want 2211 (little-endian)", img.Word(0))
	}
	if img.DumpSize() != 2 {
		t.Errorf("DumpSize = %d, want 2", img.DumpSize())
	}
}

func TestLineTableMarkOneWordAndTwoWord(t *testing.T) {
	cfg := ATmega8()
	lt := NewLineTable(cfg)

	lt.MarkOneWord(5, "nop")
	if !lt.At(5).Decoded || !lt.At(5).Visited || lt.At(5).Text != "nop" {
		t.Errorf("MarkOneWord did not set expected fields")
	}

	lt.MarkTwoWord(10, cfg.FlashEnd(), "jmp\tL_100")
	if !lt.At(10).Decoded || !lt.At(10).Visited {
		t.Errorf("MarkTwoWord did not mark head decoded+visited")
	}
	if !lt.At(11).Visited || lt.At(11).Decoded {
		t.Errorf("MarkTwoWord operand word should be visited but not decoded")
	}

	lt.MarkPointed(10)
	if !lt.At(10).Pointed {
		t.Errorf("MarkPointed did not set Pointed")
	}
}

func TestLineTableMarkTwoWordWrapsAtFlashEnd(t *testing.T) {
	cfg := ATmega8()
	lt := NewLineTable(cfg)
	lt.MarkTwoWord(cfg.FlashEnd(), cfg.FlashEnd(), "lds\t$1,1")
	if !lt.At(0).Visited {
		t.Errorf("operand word following the last address should wrap to 0")
	}
}

func TestOriginQueueSeedsIRQTableInOrderWithoutDedup(t *testing.T) {
	cfg := ATmega8()
	q := NewOriginQueue(cfg)
	if q.Len() != cfg.IRQTableSize {
		t.Fatalf("Len() = %d, want %d", q.Len(), cfg.IRQTableSize)
	}
	for i := 0; i < cfg.IRQTableSize; i++ {
		addr, ok := q.Pop()
		if !ok || addr != uint16(i) {
			t.Errorf("Pop() = (%d, %v), want (%d, true)", addr, ok, i)
		}
	}
	if _, ok := q.Pop(); ok {
		t.Errorf("queue should be empty")
	}

	q.Push(3)
	q.Push(3)
	if q.Len() != 2 {
		t.Errorf("duplicate pushes should both be kept, got Len()=%d", q.Len())
	}
}
