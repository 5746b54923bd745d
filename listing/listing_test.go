package listing

import (
	"strings"
	"testing"

	"avrdisasm/avr"
)

func TestEmitNoOrgAtAddressZero(t *testing.T) {
	cfg := avr.ATmega8()
	img := avr.NewImage(cfg)
	lt := avr.NewLineTable(cfg)
	lt.MarkOneWord(0, "nop")

	var sb strings.Builder
	if err := Emit(&sb, cfg, img, lt); err != nil {
		t.Fatalf("Emit failed: %v", err)
	}
	out := sb.String()
	if strings.Contains(out, ".ORG") {
		t.Errorf("address 0 should not get an .ORG directive:\n%s", out)
	}
	if !strings.Contains(out, "\tnop\n") {
		t.Errorf("expected rendered nop line, got:\n%s", out)
	}
}

func TestEmitOrgOnGap(t *testing.T) {
	cfg := avr.ATmega8()
	img := avr.NewImage(cfg)
	lt := avr.NewLineTable(cfg)
	lt.MarkOneWord(0, "nop")
	lt.MarkOneWord(5, "nop")

	var sb strings.Builder
	if err := Emit(&sb, cfg, img, lt); err != nil {
		t.Fatalf("Emit failed: %v", err)
	}
	out := sb.String()
	if !strings.Contains(out, ".ORG\t$5\n") {
		t.Errorf("expected .ORG $5 directive for the gap, got:\n%s", out)
	}
}

func TestEmitLabelsPointedInstructions(t *testing.T) {
	cfg := avr.ATmega8()
	img := avr.NewImage(cfg)
	lt := avr.NewLineTable(cfg)
	lt.MarkOneWord(0, "rjmp\tL_2")
	lt.MarkPointed(2)
	lt.MarkOneWord(2, "nop")

	var sb strings.Builder
	if err := Emit(&sb, cfg, img, lt); err != nil {
		t.Fatalf("Emit failed: %v", err)
	}
	out := sb.String()
	if !strings.Contains(out, "L_2:\tnop\n") {
		t.Errorf("expected labeled instruction, got:\n%s", out)
	}
}

func TestEmitStrayDataFillIn(t *testing.T) {
	cfg := avr.ATmega8()
	img := avr.NewImage(cfg)
	img.WriteByte(0, 0x34)
	img.WriteByte(1, 0x12)
	lt := avr.NewLineTable(cfg)

	var sb strings.Builder
	if err := Emit(&sb, cfg, img, lt); err != nil {
		t.Fatalf("Emit failed: %v", err)
	}
	out := sb.String()
	if !strings.Contains(out, "L_0:\t.dw\t$1234\n") {
		t.Errorf("expected stray data fill-in, got:\n%s", out)
	}
}

func TestRawDumpSixteenBytesPerLine(t *testing.T) {
	cfg := avr.ATmega8()
	img := avr.NewImage(cfg)
	for i := 0; i < 20; i++ {
		img.WriteByte(i, byte(i))
	}

	var sb strings.Builder
	if err := RawDump(&sb, img); err != nil {
		t.Fatalf("RawDump failed: %v", err)
	}
	lines := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), sb.String())
	}
	if lines[0] != "000102030405060708090A0B0C0D0E0F" {
		t.Errorf("first line = %q", lines[0])
	}
	if lines[1] != "10111213" {
		t.Errorf("second line = %q", lines[1])
	}
}
