// sampleidentity compares every pair of samples in a genotype fingerprint
// table and reports the pairs that likely come from the same individual.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"cloud.google.com/go/bigquery"
	"cloud.google.com/go/storage"
	"github.com/carbocation/sampleidentity"
	_ "github.com/carbocation/sampleidentity/compileinfoprint"
	"github.com/carbocation/sampleidentity/config"
	"github.com/carbocation/sampleidentity/identity"
	"github.com/carbocation/sampleidentity/output"
	"github.com/carbocation/sampleidentity/panel"
	"github.com/carbocation/sampleidentity/profile"
)

var BufferSize = 4096 * 8

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalln(err)
	}

	var inputFile, inputFormat, panelFile, outputFile, outFormat string
	var verbose bool
	threads := cfg.Threads
	params := cfg.Params()

	flag.StringVar(&inputFile, "input", "", "Path to the fingerprint table (tab-delimited, one sample per row, '<countA>,<countB>' per site) or to a VCF with per-sample AD. May be compressed, and may be a google storage URL (gs://)")
	flag.StringVar(&inputFormat, "format", "auto", "Input format: table, vcf, or auto (vcf if the file name contains .vcf)")
	flag.StringVar(&panelFile, "panel", "", "Optional. BIM-formatted panel manifest with one row per site, in column order. Used to name discordant sites.")
	flag.StringVar(&outputFile, "output", "", "Path to the output file. Defaults to STDOUT.")
	flag.StringVar(&outFormat, "out-format", string(output.FormatTSV), "Output format: tsv or jsonl")
	flag.StringVar(&cfg.Project, "bq-project", cfg.Project, "Google Cloud project for BigQuery uploads (env SAMPLEIDENTITY_PROJECT)")
	flag.StringVar(&cfg.BigQueryTable, "bq-table", cfg.BigQueryTable, "Optional. If set, reported pairs are also streamed to this existing BigQuery table, formatted as dataset.table (env SAMPLEIDENTITY_BQ_TABLE)")
	flag.IntVar(&threads, "threads", threads, "Number of goroutines comparing pairs. Output order does not depend on this. (env SAMPLEIDENTITY_THREADS)")
	flag.Float64Var(&params.BaseAccuracy, "base-accuracy", params.BaseAccuracy, "Per-read base-call accuracy at homozygous sites")
	flag.Float64Var(&params.HetBalance, "het-balance", params.HetBalance, "Expected fraction of reads from each allele at heterozygous sites")
	flag.Float64Var(&params.ErrorRate, "error-rate", params.ErrorRate, "Discordant reads tolerated per read of coverage, per sample")
	flag.Float64Var(&params.RatioThreshold, "ratio-threshold", params.RatioThreshold, "Minimum same-source / different-source log-likelihood ratio for a match")
	flag.BoolVar(&verbose, "verbose", false, "Log a summary line for every pair, including those not reported")
	flag.Parse()

	if inputFile == "" {
		flag.Usage()
		log.Fatalln("Must specify an --input file")
	}

	if err := params.Validate(); err != nil {
		log.Fatalln(err)
	}

	format, err := profile.ParseFormat(inputFormat)
	if err != nil {
		log.Fatalln(err)
	}

	ctx := context.Background()

	var client *storage.Client
	if sampleidentity.IsGoogleStoragePath(inputFile) || sampleidentity.IsGoogleStoragePath(panelFile) {
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

	var manifest *panel.Manifest
	if panelFile != "" {
		manifest, err = panel.Open(ctx, panelFile, client)
		if err != nil {
			log.Fatalln(err)
		}
		if err := manifest.CheckSiteCount(table.SiteCount()); err != nil {
			log.Fatalln(panelFile, err)
		}
	}

	var out io.WriteCloser = os.Stdout
	if outputFile != "" {
		out, err = os.OpenFile(outputFile, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
		if err != nil {
			log.Fatalln(err)
		}
	}

	bw := bufio.NewWriterSize(out, BufferSize)

	primary, err := output.New(output.Format(outFormat), bw, manifest)
	if err != nil {
		log.Fatalln(err)
	}
	writers := output.Multi{primary}

	if cfg.BigQueryTable != "" {
		if cfg.Project == "" {
			log.Fatalln("Please provide --bq-project when using --bq-table")
		}
		bq, err := bigquery.NewClient(ctx, cfg.Project)
		if err != nil {
			log.Fatalln("Connecting to BigQuery:", err)
		}
		defer bq.Close()

		bqWriter, err := output.NewBigQueryWriter(ctx, bq, cfg.BigQueryTable, manifest)
		if err != nil {
			log.Fatalln(err)
		}
		writers = append(writers, bqWriter)
	}

	log.Printf("Comparing %d pairs using %d thread(s)\n", identity.PairCount(table.Len()), threads)

	reported, compared := 0, 0
	err = params.Run(ctx, table, threads, func(v identity.Verdict) error {
		compared++
		if verbose {
			log.Println(describe(v))
		}
		if !v.Reported() {
			return nil
		}
		reported++
		return writers.Write(v)
	})
	if err != nil {
		log.Fatalln(err)
	}

	if err := writers.Close(); err != nil {
		log.Fatalln(err)
	}

	if err := finish(bw, out); err != nil {
		log.Fatalln("Writing output:", err)
	}

	log.Printf("Finished. Compared %d pairs, reported %d.\n", compared, reported)
}

// finish flushes buffered output and closes its destination.
func finish(bw *bufio.Writer, out io.Closer) error {
	if err := bw.Flush(); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func describe(v identity.Verdict) string {
	ratio := output.NotAvailable
	if v.RatioDefined {
		ratio = fmt.Sprintf("%.3f", v.Ratio)
	}
	status := string(v.Status)
	if status == "" {
		status = "No match"
	}
	return fmt.Sprintf("%s vs %s: %s (discordant reads %d, budget %d, ratio %s)", v.Sample1, v.Sample2, status, v.MismatchCount, v.ErrorBudget, ratio)
}
