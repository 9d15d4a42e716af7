// pkg/api/summary_v1.go
package api

// SequenceV1 describes one input of a comparison.
type SequenceV1 struct {
	Source string `json:"source" yaml:"source"`
	ID     string `json:"id" yaml:"id"`
	Length int    `json:"length" yaml:"length"`
}

// SummaryV1 is the stable JSON/YAML schema of a run summary.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type SummaryV1 struct {
	Version string `json:"version" yaml:"version"`

	Seq1           SequenceV1 `json:"seq1" yaml:"seq1"`
	Seq2           SequenceV1 `json:"seq2" yaml:"seq2"`
	SelfComparison bool       `json:"self_comparison" yaml:"self_comparison"`

	Width             float64 `json:"width" yaml:"width"`
	Window            int     `json:"window" yaml:"window"`
	ReverseComplement bool    `json:"revcompl" yaml:"revcompl"`
	GridSize          int     `json:"grid_size" yaml:"grid_size"`

	ForwardCells           int `json:"forward_cells" yaml:"forward_cells"`
	ReverseComplementCells int `json:"revcompl_cells" yaml:"revcompl_cells"`

	Format    string `json:"format" yaml:"format"`
	Output    string `json:"output" yaml:"output"`
	ElapsedMS int64  `json:"elapsed_ms,omitempty" yaml:"elapsed_ms,omitempty"`
}
