package main

/*
convergraph builds an undirected co-occurrence graph of amino-acid
substitutions observed across aligned protein sequences, relative to a
reference sequence, prunes substitution pairs that co-occur too rarely,
and prints the result as DOT text with first-class edge weights.

Input is a stream of tab-delimited records (stdin by default) whose aa_aln
column carries each sequence aligned to the reference coordinate system.
*/

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/grailbio/base/compress"
	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/grail"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/vcontext"
	"github.com/klauspost/compress/gzip"
	"github.com/sammysheep/convergraph/cooccur"
)

var (
	referenceFile = flag.String("reference-file", cooccur.DefaultOpts.ReferencePath, "Reference sequence path, raw text or FASTA; required")
	minSupport    = flag.Int("minimum-coocurrence-support", cooccur.DefaultOpts.MinSupport, "Minimum number of sequences a substitution pair must co-occur in for its edge to be kept")
	minFrequency  = flag.Float64("minimum-cooccurrence-frequency", cooccur.DefaultOpts.MinFrequency, "Minimum fraction of sequences a substitution pair must co-occur in for its edge to be kept")
	threshold     = flag.Float64("conservation-threshold", cooccur.DefaultOpts.ConservationThreshold, "Majority-residue frequency at or above which an alignment position is treated as conserved")
	hasHeader     = flag.Bool("has-header", cooccur.DefaultOpts.HasHeader, "Treat the first input row as a header naming the columns")
	outPath       = flag.String("out", "", "Output path for the DOT graph; default stdout, a .gz suffix gzips")
	parallelism   = flag.Int("parallelism", cooccur.DefaultOpts.Parallelism, "Maximum number of simultaneous extraction jobs; 0 = runtime.NumCPU()")
)

func convergraphUsage() {
	fmt.Printf("Usage: %s [OPTIONS] [inputpath]\n", os.Args[0])
	fmt.Printf("Reads tab-delimited records from inputpath, or from stdin when omitted or '-'.\n")
	fmt.Printf("Other options:\n")
	flag.PrintDefaults()
}

func main() {
	flag.Usage = convergraphUsage
	shutdown := grail.Init()
	defer shutdown()

	if flag.NArg() > 1 {
		log.Fatalf("Too many positional arguments (at most one inputpath expected); please check flag syntax: '%s'", strings.Join(flag.Args(), " "))
	}
	ctx := vcontext.Background()

	var (
		in     io.Reader = os.Stdin
		inFile file.File
	)
	if path := flag.Arg(0); path != "" && path != "-" {
		var err error
		if inFile, err = file.Open(ctx, path); err != nil {
			log.Fatalf("open %s: %v", path, err)
		}
		in = inFile.Reader(ctx)
		if u := compress.NewReaderPath(in, inFile.Name()); u != nil {
			in = u
		}
	}

	var (
		out     io.Writer = os.Stdout
		outFile file.File
		gzOut   *gzip.Writer
	)
	if *outPath != "" {
		var err error
		if outFile, err = file.Create(ctx, *outPath); err != nil {
			log.Fatalf("create %s: %v", *outPath, err)
		}
		out = outFile.Writer(ctx)
		if strings.HasSuffix(*outPath, ".gz") {
			gzOut = gzip.NewWriter(out)
			out = gzOut
		}
	}

	opts := cooccur.Opts{
		ReferencePath:         *referenceFile,
		MinSupport:            *minSupport,
		MinFrequency:          *minFrequency,
		ConservationThreshold: *threshold,
		HasHeader:             *hasHeader,
		Parallelism:           *parallelism,
	}
	if _, err := cooccur.Run(ctx, in, out, &opts); err != nil {
		log.Fatalf("%v", err)
	}

	once := errors.Once{}
	if gzOut != nil {
		once.Set(gzOut.Close())
	}
	if outFile != nil {
		once.Set(outFile.Close(ctx))
	}
	if inFile != nil {
		once.Set(inFile.Close(ctx))
	}
	if err := once.Err(); err != nil {
		log.Fatalf("%v", err)
	}
	log.Debug.Printf("exiting")
}
