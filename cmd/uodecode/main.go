// Command uodecode converts a UO file to a WAV file.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/HornedViper/uodecode"
)

func main() {
	muLaw := flag.Bool("mulaw", false, "write G.711 mu-law output instead of 16-bit PCM")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [-mulaw] <input UO file> <output WAV file>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(2)
	}
	inputFile := flag.Arg(0)
	outputFile := flag.Arg(1)

	format := "16-bit PCM"
	if *muLaw {
		format = "G.711 mu-law"
	}
	fmt.Printf("Transcoding %s to %s (%s)\n", inputFile, outputFile, format)

	if err := transcode(inputFile, outputFile, *muLaw); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func transcode(inputFile, outputFile string, muLaw bool) error {
	input, err := os.ReadFile(inputFile)
	if err != nil {
		return err
	}

	out, err := os.Create(outputFile)
	if err != nil {
		return err
	}

	if muLaw {
		err = uodecode.ToMuLawWAV(input, out)
	} else {
		err = uodecode.ToPCM16WAV(input, out)
	}
	if closeErr := out.Close(); err == nil {
		err = closeErr
	}
	return err
}
