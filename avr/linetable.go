package avr

// LineRecord holds the per-word decode state for one flash address.
type LineRecord struct {
	// Visited marks a word consumed by decode, either as an instruction
	// head or as the immediate operand of a preceding two-word instruction.
	Visited bool
	// Decoded marks a word as the head of a rendered instruction. Implies
	// Visited.
	Decoded bool
	// Pointed marks a word as the target of at least one decoded
	// branch/call/jump instruction, requiring a label on emission.
	Pointed bool
	// Text is the rendered mnemonic, operands, and optional trailing
	// comment.
	Text string
}

// LineTable is the parallel per-word decode record array, one entry per
// flash word address.
type LineTable struct {
	lines []LineRecord
}

// NewLineTable allocates a table sized to cfg.FlashSize.
func NewLineTable(cfg Config) *LineTable {
	return &LineTable{lines: make([]LineRecord, cfg.FlashSize)}
}

// At returns a pointer to the record for address a so callers can mutate
// it in place.
func (lt *LineTable) At(a uint16) *LineRecord {
	return &lt.lines[a]
}

// Len is the number of addresses in the table.
func (lt *LineTable) Len() int {
	return len(lt.lines)
}

// MarkOneWord commits a one-word instruction's rendering at head: sets
// Decoded and Visited.
func (lt *LineTable) MarkOneWord(head uint16, text string) {
	r := lt.At(head)
	r.Decoded = true
	r.Visited = true
	r.Text = text
}

// MarkTwoWord commits a two-word instruction's rendering at head: sets
// Decoded and Visited at head, and Visited (not Decoded) at head+1, per
// the invariant that a two-word instruction's operand word is visited but
// never itself a decode head.
func (lt *LineTable) MarkTwoWord(head uint16, flashEnd uint16, text string) {
	r := lt.At(head)
	r.Decoded = true
	r.Visited = true
	r.Text = text
	lt.At((head + 1) & flashEnd).Visited = true
}

// MarkPointed records that address a is named as a branch/jump/call target.
func (lt *LineTable) MarkPointed(a uint16) {
	lt.At(a).Pointed = true
}
