package output

import (
	"encoding/json"
	"io"

	"github.com/carbocation/sampleidentity/identity"
	"github.com/carbocation/sampleidentity/panel"
)

type jsonVerdict struct {
	Sample1           string   `json:"sample1"`
	Sample2           string   `json:"sample2"`
	Sites             int      `json:"sites"`
	MismatchCount     int      `json:"mismatch_count"`
	ErrorBudget       int      `json:"error_budget"`
	TotalCoverage1    int      `json:"total_coverage1"`
	TotalCoverage2    int      `json:"total_coverage2"`
	Status            string   `json:"status"`
	LogLikelihoodSame float64  `json:"log_likelihood_same"`
	LogLikelihoodDiff float64  `json:"log_likelihood_diff"`
	Ratio             *float64 `json:"ratio"`
	DiscordantSites   []string `json:"discordant_sites"`
}

// JSONLWriter prints one JSON object per line. An undefined ratio is null.
type JSONLWriter struct {
	enc      *json.Encoder
	manifest *panel.Manifest
}

func NewJSONLWriter(w io.Writer, manifest *panel.Manifest) *JSONLWriter {
	return &JSONLWriter{enc: json.NewEncoder(w), manifest: manifest}
}

func (j *JSONLWriter) Write(v identity.Verdict) error {
	out := jsonVerdict{
		Sample1:           v.Sample1,
		Sample2:           v.Sample2,
		Sites:             v.Sites,
		MismatchCount:     v.MismatchCount,
		ErrorBudget:       v.ErrorBudget,
		TotalCoverage1:    v.TotalCoverage1,
		TotalCoverage2:    v.TotalCoverage2,
		Status:            string(v.Status),
		LogLikelihoodSame: v.LogLikelihoodSame,
		LogLikelihoodDiff: v.LogLikelihoodDiff,
		DiscordantSites:   siteLabels(v.DiscordantSites, j.manifest),
	}
	if v.RatioDefined {
		ratio := v.Ratio
		out.Ratio = &ratio
	}

	return j.enc.Encode(out)
}

func (j *JSONLWriter) Close() error {
	return nil
}
