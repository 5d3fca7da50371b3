package output

import (
	"encoding/csv"
	"io"
	"strings"

	"github.com/carbocation/pfx"
	"github.com/carbocation/sampleidentity/identity"
	"github.com/carbocation/sampleidentity/panel"
	"github.com/gocarina/gocsv"
)

// NotAvailable is printed where a value is undefined.
const NotAvailable = "NA"

type tsvRow struct {
	Sample1         string `csv:"Sample1Name"`
	Sample2         string `csv:"Sample2Name"`
	MismatchCount   int    `csv:"NoReads_Delta"`
	ErrorBudget     int    `csv:"NoReads_possibleError"`
	TotalCoverage1  int    `csv:"Sample1_total_coverage"`
	TotalCoverage2  int    `csv:"Sample2_total_coverage"`
	Status          string `csv:"FingerprintStatus"`
	LLSame          string `csv:"LogLikelihood_S1"`
	LLDiff          string `csv:"LogLikelihood_S0"`
	Ratio           string `csv:"Ratio"`
	DiscordantSites string `csv:"DiscordantSites"`
}

// TSVWriter prints one tab-delimited line per verdict under a single header.
type TSVWriter struct {
	csvw          *gocsv.SafeCSVWriter
	manifest      *panel.Manifest
	headerWritten bool
}

func NewTSVWriter(w io.Writer, manifest *panel.Manifest) *TSVWriter {
	cw := csv.NewWriter(w)
	cw.Comma = '\t'

	return &TSVWriter{
		csvw:     gocsv.NewSafeCSVWriter(cw),
		manifest: manifest,
	}
}

func (t *TSVWriter) Write(v identity.Verdict) error {
	rows := []*tsvRow{toTSVRow(v, t.manifest)}

	var err error
	if t.headerWritten {
		err = gocsv.MarshalCSVWithoutHeaders(&rows, t.csvw)
	} else {
		err = gocsv.MarshalCSV(&rows, t.csvw)
		t.headerWritten = true
	}
	if err != nil {
		return pfx.Err(err)
	}

	return nil
}

// Close prints the header if no verdict was written, so that an empty result
// is still a well-formed table.
func (t *TSVWriter) Close() error {
	if !t.headerWritten {
		t.headerWritten = true
		if err := gocsv.MarshalCSV(&[]*tsvRow{}, t.csvw); err != nil {
			return pfx.Err(err)
		}
	}

	t.csvw.Flush()
	return t.csvw.Error()
}

func toTSVRow(v identity.Verdict, manifest *panel.Manifest) *tsvRow {
	ratio := NotAvailable
	if v.RatioDefined {
		ratio = formatFloat(v.Ratio)
	}

	discordant := NotAvailable
	if len(v.DiscordantSites) > 0 {
		discordant = strings.Join(siteLabels(v.DiscordantSites, manifest), ",")
	}

	return &tsvRow{
		Sample1:         v.Sample1,
		Sample2:         v.Sample2,
		MismatchCount:   v.MismatchCount,
		ErrorBudget:     v.ErrorBudget,
		TotalCoverage1:  v.TotalCoverage1,
		TotalCoverage2:  v.TotalCoverage2,
		Status:          string(v.Status),
		LLSame:          formatFloat(v.LogLikelihoodSame),
		LLDiff:          formatFloat(v.LogLikelihoodDiff),
		Ratio:           ratio,
		DiscordantSites: discordant,
	}
}
