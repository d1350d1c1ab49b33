package output

// VerifyProblem is one finding in a checked file.
type VerifyProblem struct {
	Code     string `json:"code"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
	Section  string `json:"section,omitempty"`
	Key      string `json:"key,omitempty"`
	Line     int    `json:"line,omitempty"`
}

// VerifyFileResult holds the findings for a single file.
type VerifyFileResult struct {
	Path     string          `json:"path"`
	Format   string          `json:"format"`
	Problems []VerifyProblem `json:"problems,omitempty"`
}

// VerifySummary aggregates findings across all checked files.
type VerifySummary struct {
	FilesChecked int `json:"files_checked"`
	FilesClean   int `json:"files_clean"`
	Errors       int `json:"errors"`
	Warnings     int `json:"warnings"`
	Hints        int `json:"hints"`
}

// VerifyOutput is the complete verification report.
type VerifyOutput struct {
	ReportID string             `json:"report_id"`
	Files    []VerifyFileResult `json:"files"`
	Summary  VerifySummary      `json:"summary"`
}
