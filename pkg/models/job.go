// Package models defines the JSON shapes shared by the HTTP surface and
// the report writers.
package models

// CreateJobResponse is the POST /jobs reply.
type CreateJobResponse struct {
	JobID  string `json:"job_id"`
	Status string `json:"status"`
}

// JobStatusResponse is the GET /jobs/{id} reply. Pointer fields are null
// until the stage that writes them has completed.
type JobStatusResponse struct {
	JobID           string   `json:"job_id"`
	Status          string   `json:"status"`
	RiskLevel       *string  `json:"risk_level"`
	DifficultyScore *int     `json:"difficulty_score"`
	StrategistConf  *int     `json:"strategist_conf"`
	Genre           *string  `json:"genre"`
	Tone            *string  `json:"tone"`
	DomainTags      []string `json:"domain_tags"`
}
