package identity

import "fmt"

// Scoring policy defaults.
const (
	DefaultBaseAccuracy   = 0.99 // per-read base-call accuracy at homozygous sites
	DefaultHetBalance     = 0.5  // expected allelic balance at heterozygous sites
	DefaultErrorRate      = 0.01 // tolerated discordant reads per read of coverage
	DefaultRatioThreshold = 5.0  // minimum same/different log-likelihood ratio
)

// Params holds the policy knobs of the comparison.
type Params struct {
	BaseAccuracy   float64
	HetBalance     float64
	ErrorRate      float64
	RatioThreshold float64
}

func DefaultParams() Params {
	return Params{
		BaseAccuracy:   DefaultBaseAccuracy,
		HetBalance:     DefaultHetBalance,
		ErrorRate:      DefaultErrorRate,
		RatioThreshold: DefaultRatioThreshold,
	}
}

// Validate rejects values for which the log-likelihoods are undefined, and
// probabilities of 1, which make every read weightless.
func (p Params) Validate() error {
	if p.BaseAccuracy <= 0 || p.BaseAccuracy >= 1 {
		return fmt.Errorf("base accuracy must be in (0, 1), got %v", p.BaseAccuracy)
	}
	if p.HetBalance <= 0 || p.HetBalance >= 1 {
		return fmt.Errorf("het balance must be in (0, 1), got %v", p.HetBalance)
	}
	if p.ErrorRate < 0 {
		return fmt.Errorf("error rate must be non-negative, got %v", p.ErrorRate)
	}
	return nil
}
