package ihex

import (
	"strings"
	"testing"

	"avrdisasm/avr"
)

func TestLoadSingleDataRecord(t *testing.T) {
	// :10000000 0102030405060708090A0B0C0D0E0F10 68
	src := ":100000000102030405060708090A0B0C0D0E0F1068\n"
	cfg := avr.ATmega8()
	img := avr.NewImage(cfg)

	n, err := Load(strings.NewReader(src), img)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if n != 1 {
		t.Errorf("records = %d, want 1", n)
	}
	if img.Bytes()[0] != 0x01 || img.Bytes()[15] != 0x10 {
		t.Errorf("payload not written correctly: %v", img.Bytes()[:16])
	}
	if img.DumpSize() != 16 {
		t.Errorf("DumpSize = %d, want 16", img.DumpSize())
	}
}

func TestLoadSkipsNonDataRecordsAndBlankLines(t *testing.T) {
	src := "\n:00000001FF\n:100000000102030405060708090A0B0C0D0E0F1068\n"
	cfg := avr.ATmega8()
	img := avr.NewImage(cfg)

	n, err := Load(strings.NewReader(src), img)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if n != 1 {
		t.Errorf("records = %d, want 1 (end-of-file record skipped)", n)
	}
}

func TestLoadIgnoresBadChecksum(t *testing.T) {
	// Same record as above but with a corrupted checksum byte; must still load.
	src := ":100000000102030405060708090A0B0C0D0E0F10FF\n"
	cfg := avr.ATmega8()
	img := avr.NewImage(cfg)

	n, err := Load(strings.NewReader(src), img)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if n != 1 {
		t.Errorf("records = %d, want 1", n)
	}
	if img.Bytes()[0] != 0x01 {
		t.Errorf("payload should have loaded despite bad checksum")
	}
}

func TestLoadAtNonZeroAddress(t *testing.T) {
	src := ":02001000AABB7B\n"
	cfg := avr.ATmega8()
	img := avr.NewImage(cfg)

	_, err := Load(strings.NewReader(src), img)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if img.Bytes()[0x10] != 0xAA || img.Bytes()[0x11] != 0xBB {
		t.Errorf("data not written at the record's address")
	}
	if img.DumpSize() != 0x12 {
		t.Errorf("DumpSize = %X, want 12", img.DumpSize())
	}
}
