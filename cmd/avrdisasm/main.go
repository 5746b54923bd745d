package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"avrdisasm/avr"
	"avrdisasm/disassembler"
	"avrdisasm/ihex"
	"avrdisasm/listing"
)

func main() {
	log.SetFlags(0)

	var outPath string
	var chip string

	rootCmd := &cobra.Command{
		Use:   "avrdisasm <input.hex>",
		Short: "Reconstruct an AVR program listing from an Intel HEX image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0], outPath, chip)
		},
	}
	rootCmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default stdout)")
	rootCmd.Flags().StringVar(&chip, "chip", "atmega8", "target chip")

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func run(inPath, outPath, chip string) error {
	if chip != "atmega8" {
		return fmt.Errorf("unsupported chip %q: only atmega8 is supported", chip)
	}
	cfg := avr.ATmega8()

	f, err := os.Open(inPath)
	if err != nil {
		return fmt.Errorf("can't open %s: %w", inPath, err)
	}
	defer f.Close()

	img := avr.NewImage(cfg)
	records, err := ihex.Load(f, img)
	if err != nil {
		return err
	}
	log.Printf("%s opened, %d records loaded", inPath, records)

	out := os.Stdout
	if outPath != "" {
		w, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("can't create %s: %w", outPath, err)
		}
		defer w.Close()
		out = w
	}

	lt, err := disassembler.Disassemble(cfg, img)
	if err != nil {
		if errors.Is(err, disassembler.ErrDecodeFailed) {
			log.Printf("disassembly failed (%v), falling back to raw dump", err)
			return listing.RawDump(out, img)
		}
		return err
	}
	return listing.Emit(out, cfg, img, lt)
}
