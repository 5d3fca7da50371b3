package output

import (
	"context"
	"fmt"
	"strings"

	"cloud.google.com/go/bigquery"
	"github.com/carbocation/pfx"
	"github.com/carbocation/sampleidentity/identity"
	"github.com/carbocation/sampleidentity/panel"
)

// BigQueryBatchSize is how many rows are buffered before a streaming insert.
var BigQueryBatchSize = 500

type bigQueryRow struct {
	Sample1           string               `bigquery:"sample1"`
	Sample2           string               `bigquery:"sample2"`
	Sites             int64                `bigquery:"sites"`
	MismatchCount     int64                `bigquery:"mismatch_count"`
	ErrorBudget       int64                `bigquery:"error_budget"`
	TotalCoverage1    int64                `bigquery:"total_coverage1"`
	TotalCoverage2    int64                `bigquery:"total_coverage2"`
	Status            string               `bigquery:"status"`
	LogLikelihoodSame float64              `bigquery:"log_likelihood_same"`
	LogLikelihoodDiff float64              `bigquery:"log_likelihood_diff"`
	Ratio             bigquery.NullFloat64 `bigquery:"ratio"`
	DiscordantSites   []string             `bigquery:"discordant_sites"`
}

// BigQueryWriter streams verdicts into an existing table, whose schema must
// match bigQueryRow.
type BigQueryWriter struct {
	Context  context.Context
	Client   *bigquery.Client
	Dataset  string
	Table    string
	manifest *panel.Manifest
	pending  []*bigQueryRow
}

// NewBigQueryWriter targets "dataset.table" in the client's project.
func NewBigQueryWriter(ctx context.Context, client *bigquery.Client, datasetTable string, manifest *panel.Manifest) (*BigQueryWriter, error) {
	parts := strings.Split(datasetTable, ".")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return nil, fmt.Errorf("BigQuery destination must be formatted as dataset.table, got %q", datasetTable)
	}

	return &BigQueryWriter{
		Context:  ctx,
		Client:   client,
		Dataset:  parts[0],
		Table:    parts[1],
		manifest: manifest,
	}, nil
}

func (b *BigQueryWriter) Write(v identity.Verdict) error {
	b.pending = append(b.pending, toBigQueryRow(v, b.manifest))
	if len(b.pending) >= BigQueryBatchSize {
		return b.flush()
	}
	return nil
}

func (b *BigQueryWriter) Close() error {
	return b.flush()
}

func (b *BigQueryWriter) flush() error {
	if len(b.pending) == 0 {
		return nil
	}

	inserter := b.Client.Dataset(b.Dataset).Table(b.Table).Inserter()
	if err := inserter.Put(b.Context, b.pending); err != nil {
		return pfx.Err(err)
	}
	b.pending = b.pending[:0]

	return nil
}

func toBigQueryRow(v identity.Verdict, manifest *panel.Manifest) *bigQueryRow {
	return &bigQueryRow{
		Sample1:           v.Sample1,
		Sample2:           v.Sample2,
		Sites:             int64(v.Sites),
		MismatchCount:     int64(v.MismatchCount),
		ErrorBudget:       int64(v.ErrorBudget),
		TotalCoverage1:    int64(v.TotalCoverage1),
		TotalCoverage2:    int64(v.TotalCoverage2),
		Status:            string(v.Status),
		LogLikelihoodSame: v.LogLikelihoodSame,
		LogLikelihoodDiff: v.LogLikelihoodDiff,
		Ratio:             bigquery.NullFloat64{Float64: v.Ratio, Valid: v.RatioDefined},
		DiscordantSites:   siteLabels(v.DiscordantSites, manifest),
	}
}
