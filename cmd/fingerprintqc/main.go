// fingerprintqc summarizes a fingerprint table: call counts, call rate and
// Hardy-Weinberg P value per site, or coverage per sample.
package main

import (
	"bufio"
	"context"
	"encoding/csv"
	"flag"
	"io"
	"log"
	"os"
	"strconv"

	"cloud.google.com/go/storage"
	"github.com/carbocation/pfx"
	"github.com/carbocation/sampleidentity"
	_ "github.com/carbocation/sampleidentity/compileinfoprint"
	"github.com/carbocation/sampleidentity/profile"
	"github.com/carbocation/sampleidentity/qc"
	"github.com/gocarina/gocsv"
)

type siteRow struct {
	Site         int    `csv:"site"`
	HomA         int64  `csv:"n_A"`
	Het          int64  `csv:"n_AB"`
	HomB         int64  `csv:"n_B"`
	NoCalls      int    `csv:"n_N"`
	CallRate     string `csv:"call_rate"`
	MAF          string `csv:"maf"`
	HWEP         string `csv:"hwe_p"`
	MeanCoverage string `csv:"mean_coverage"`
}

type sampleRow struct {
	Name           string `csv:"sample"`
	Sites          int    `csv:"sites"`
	Called         int    `csv:"sites_with_reads"`
	TotalCoverage  int    `csv:"total_coverage"`
	MeanCoverage   string `csv:"mean_coverage"`
	SDCoverage     string `csv:"sd_coverage"`
	MedianCoverage string `csv:"median_coverage"`
}

func main() {
	var inputFile, inputFormat, outputFile string
	var hweCutoff float64
	var bySample bool

	flag.StringVar(&inputFile, "input", "", "Path to the fingerprint table or VCF. May be compressed, and may be a google storage URL (gs://)")
	flag.StringVar(&inputFormat, "format", "auto", "Input format: table, vcf, or auto")
	flag.Float64Var(&hweCutoff, "hwe-cutoff", qc.DefaultHWECutoff, "Sites whose approximate HWE P value falls below this are retested with the exact test")
	flag.StringVar(&outputFile, "output", "", "Path to the output file. Defaults to STDOUT.")
	flag.BoolVar(&bySample, "samples", false, "Summarize coverage per sample instead of calls per site")
	flag.Parse()

	if inputFile == "" {
		flag.Usage()
		log.Fatalln("Must specify an --input file")
	}

	format, err := profile.ParseFormat(inputFormat)
	if err != nil {
		log.Fatalln(err)
	}

	ctx := context.Background()

	var client *storage.Client
	if sampleidentity.IsGoogleStoragePath(inputFile) {
		client, err = storage.NewClient(ctx)
		if err != nil {
			log.Fatalln(err)
		}
		defer client.Close()
	}

	table, err := profile.Open(ctx, inputFile, format, client)
	if err != nil {
		log.Fatalln(err)
	}
	log.Printf("Loaded %d samples with %d sites each from %s\n", table.Len(), table.SiteCount(), inputFile)

	var out io.WriteCloser = os.Stdout
	if outputFile != "" {
		out, err = os.OpenFile(outputFile, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
		if err != nil {
			log.Fatalln(err)
		}
	}

	bw := bufio.NewWriter(out)

	if bySample {
		err = writeSamples(bw, table)
	} else {
		err = writeSites(bw, table, hweCutoff)
	}
	if err != nil {
		log.Fatalln(err)
	}

	if err := finish(bw, out); err != nil {
		log.Fatalln("Writing output:", err)
	}
}

// finish flushes buffered output and closes its destination.
func finish(bw *bufio.Writer, out io.Closer) error {
	if err := bw.Flush(); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func writeSites(w io.Writer, table *profile.Table, hweCutoff float64) error {
	sites := qc.Sites(table, hweCutoff)

	rows := make([]*siteRow, 0, len(sites))
	for _, s := range sites {
		rows = append(rows, &siteRow{
			Site:         s.Site,
			HomA:         s.Calls.HomA,
			Het:          s.Calls.Het,
			HomB:         s.Calls.HomB,
			NoCalls:      s.NoCalls,
			CallRate:     g(s.CallRate),
			MAF:          g(s.MAF),
			HWEP:         g(s.HWEP),
			MeanCoverage: g(s.MeanCoverage),
		})
	}

	return marshal(w, &rows)
}

func writeSamples(w io.Writer, table *profile.Table) error {
	samples, err := qc.Samples(table)
	if err != nil {
		return err
	}

	rows := make([]*sampleRow, 0, len(samples))
	for _, s := range samples {
		rows = append(rows, &sampleRow{
			Name:           s.Name,
			Sites:          s.Sites,
			Called:         s.Called,
			TotalCoverage:  s.TotalCoverage,
			MeanCoverage:   g(s.MeanCoverage),
			SDCoverage:     g(s.SDCoverage),
			MedianCoverage: g(s.MedianCoverage),
		})
	}

	return marshal(w, &rows)
}

func marshal(w io.Writer, rows interface{}) error {
	cw := csv.NewWriter(w)
	cw.Comma = '\t'
	csvw := gocsv.NewSafeCSVWriter(cw)

	if err := gocsv.MarshalCSV(rows, csvw); err != nil {
		return pfx.Err(err)
	}
	csvw.Flush()
	return csvw.Error()
}

func g(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}
