package models

// QAReport is the per-job quality report written at FINALIZE.
type QAReport struct {
	JobID           string        `json:"job_id"`
	RiskLevel       *string       `json:"risk_level"`
	DifficultyScore *int          `json:"difficulty_score"`
	Genre           *string       `json:"genre"`
	Tone            *string       `json:"tone"`
	DomainTags      []string      `json:"domain_tags"`
	Cues            []QAReportCue `json:"cues"`
}

// QAReportCue is one cue's line in the QA report.
type QAReportCue struct {
	CueIndex     int      `json:"cue_index"`
	CueID        string   `json:"cue_id"`
	TMReused     bool     `json:"tm_reused"`
	TMConfidence *float64 `json:"tm_confidence"`
	QAScore      *float64 `json:"qa_score"`
	Issues       []string `json:"issues"`
}

// LibrarianReport records how many cues the promotion gate accepted.
type LibrarianReport struct {
	StoredTMEntries int `json:"stored_tm_entries"`
}
