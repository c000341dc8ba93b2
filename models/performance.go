package models

// Performance is one judged appearance of a competitor in a scored round.
type Performance struct {
	ID               string    `json:"id" yaml:"id" db:"id"`
	RoundLabel       string    `json:"round_label" yaml:"round_label" db:"round_label"`
	PerformerRef     string    `json:"performer_ref" yaml:"performer_ref" db:"performer_ref"`
	PerformanceOrder int       `json:"performance_order" yaml:"performance_order" db:"performance_order"`
	Scores           []float64 `json:"scores" yaml:"scores" db:"scores"`
	FinalScore       *float64  `json:"final_score,omitempty" yaml:"final_score,omitempty" db:"final_score"` // aggregated upstream
	Place            *int      `json:"place,omitempty" yaml:"place,omitempty" db:"place"`
}
