// csv2vbo converts a datalogger CSV export (RaceChrono, G-Tech Fanatic
// or TrackMaster) into a RaceLogic VBO document. It reads standard input
// and writes standard output unless -in or -out say otherwise, and exits
// non-zero with a diagnostic on any detection or conversion failure.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/lbulej/vbo-tools/internal/convert"
	"github.com/lbulej/vbo-tools/internal/timeutil"
	"github.com/lbulej/vbo-tools/internal/version"
)

var (
	inPath      = flag.String("in", "", "Input CSV file (default stdin)")
	outPath     = flag.String("out", "", "Output VBO file (default stdout)")
	resolution  = flag.Float64("resolution", convert.Resolution, "Target sampling interval in seconds")
	showVersion = flag.Bool("version", false, "Print version information and exit")
)

func main() {
	flag.Parse()

	if *showVersion {
		fmt.Printf("csv2vbo %s (%s, built %s)\n", version.Version, version.GitSHA, version.BuildTime)
		return
	}

	var in io.Reader = os.Stdin
	if *inPath != "" {
		f, err := os.Open(*inPath)
		if err != nil {
			log.Fatalf("failed to open input: %v", err)
		}
		defer f.Close()
		in = f
	}

	out := os.Stdout
	if *outPath != "" {
		f, err := os.Create(*outPath)
		if err != nil {
			log.Fatalf("failed to create output: %v", err)
		}
		out = f
	}

	if err := convert.Run(in, out, *resolution, timeutil.RealClock{}); err != nil {
		log.Fatalf("conversion failed: %v", err)
	}

	if *outPath != "" {
		if err := out.Close(); err != nil {
			log.Fatalf("failed to close output: %v", err)
		}
	}
}
