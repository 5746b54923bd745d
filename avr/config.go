// Package avr holds the chip configuration and the core data model shared
// by the decoder registry and traversal engine: flash image, line table,
// and origin worklist.
package avr

// Config describes the chip geometry the decoder and traversal engine are
// parameterised by. Nothing in this package or in package disassembler
// hard-codes an ATmega8 assumption; ATmega8() just supplies the default
// values.
type Config struct {
	// FlashSize is the number of 16-bit words in program memory.
	FlashSize int
	// IRQTableSize is the number of reset/interrupt vector slots seeded
	// as origins before any chain is decoded.
	IRQTableSize int
	// RegNames holds the 32 general register display names (r0..r25,
	// XL, XH, YL, YH, ZL, ZH).
	RegNames [32]string
	// IONames holds the 64 I/O register display names, indexed by the
	// 6-bit I/O address used by in/out/cbi/sbi/sbic/sbis.
	IONames [64]string
}

// FlashEnd is the highest valid word address, used to mask wrapped
// branch/jump targets.
func (c Config) FlashEnd() uint16 {
	return uint16(c.FlashSize - 1)
}

// RegName returns the display name for general register index r.
func (c Config) RegName(r uint8) string {
	return c.RegNames[r]
}

// IOName returns the display name for I/O register address a.
func (c Config) IOName(a uint8) string {
	return c.IONames[a]
}

// ATmega8 returns the configuration for the ATmega8: 4096-word flash and
// 15 interrupt vector slots (reset plus 14 interrupts), with the register
// and I/O tables ported verbatim from the original tool.
func ATmega8() Config {
	return Config{
		FlashSize:    4096,
		IRQTableSize: 15,
		RegNames: [32]string{
			"r0", "r1", "r2", "r3", "r4", "r5", "r6", "r7", "r8", "r9",
			"r10", "r11", "r12", "r13", "r14", "r15", "r16", "r17", "r18", "r19",
			"r20", "r21", "r22", "r23", "r24", "r25", "XL", "XH", "YL", "YH",
			"ZL", "ZH",
		},
		IONames: [64]string{
			"TWBR", "TWSR", "TWAR", "TWDR", "ADCL", "ADCH", "ADCSRA", "ADMUX", "ACSR", "UBRRL",
			"UCSRB", "UCSRA", "UDR", "SPCR", "SPSR", "SPDR", "PIND", "DDRD", "PORTD", "PINC",
			"DDRC", "PORTC", "PINB", "DDRB", "PORTB", "$19", "$1A", "$1B", "EECR", "EEDR",
			"EEARL", "EEARH", "UBRRH", "WDTCR", "ASSR", "OCR2", "TCNT2", "TCCR2", "ICR1L", "ICR1H",
			"OCR1BL", "OCR1BH", "OCR1AL", "OCR1AH", "TCNT1L", "TCNT1H", "TCCR1B", "TCCR1A", "SFIOR", "OSCCAL",
			"TCNT0", "TCCR0", "MCUCSR", "MCUCR", "TWCR", "SPMCR", "TIFR", "TIMSK", "GIFR", "GICR",
			"$3C", "SPL", "SPH", "SREG",
		},
	}
}
