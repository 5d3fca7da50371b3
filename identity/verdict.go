package identity

type Status string

const (
	StatusNone          Status = ""
	StatusLikelyMatch   Status = "Likely Match"
	StatusIndeterminate Status = "Indeterminate"
)

// Verdict is the outcome of comparing two samples. Only verdicts with a
// non-empty Status are reported.
type Verdict struct {
	Sample1 string
	Sample2 string

	Sites           int
	MismatchCount   int
	ErrorBudget     int
	TotalCoverage1  int
	TotalCoverage2  int
	DiscordantSites []int // 1-based site indexes

	LogLikelihoodSame float64
	LogLikelihoodDiff float64

	// Ratio is LogLikelihoodSame / LogLikelihoodDiff. It is undefined, and left
	// at zero, when no site contributed different-source evidence.
	Ratio        float64
	RatioDefined bool

	Status Status
}

func (v Verdict) Reported() bool {
	return v.Status != StatusNone
}

func (v Verdict) IsMatch() bool {
	return v.Status == StatusLikelyMatch
}
