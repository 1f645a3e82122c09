package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/subtitle-ai/zirnevis/ent"
	"github.com/subtitle-ai/zirnevis/ent/job"
)

func TestSkipTerms(t *testing.T) {
	needs := func(b bool) *bool { return &b }

	tests := []struct {
		name     string
		job      *ent.Job
		wantSkip bool
	}{
		{
			name:     "needed and hard enough",
			job:      &ent.Job{NeedsTerminologist: needs(true), DifficultyScore: intPtr(6)},
			wantSkip: false,
		},
		{
			name:     "needed at the difficulty boundary",
			job:      &ent.Job{NeedsTerminologist: needs(true), DifficultyScore: intPtr(4)},
			wantSkip: false,
		},
		{
			name:     "needed but too easy",
			job:      &ent.Job{NeedsTerminologist: needs(true), DifficultyScore: intPtr(3)},
			wantSkip: true,
		},
		{
			name:     "not needed",
			job:      &ent.Job{NeedsTerminologist: needs(false), DifficultyScore: intPtr(9)},
			wantSkip: true,
		},
		{
			name:     "strategist never answered",
			job:      &ent.Job{},
			wantSkip: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantSkip, skipTerms(&run{job: tt.job}))
		})
	}
}

func TestRunDifficultyDefaultsToMidpoint(t *testing.T) {
	assert.Equal(t, 5, (&run{job: &ent.Job{}}).difficulty())
	assert.Equal(t, 8, (&run{job: &ent.Job{DifficultyScore: intPtr(8)}}).difficulty())
}

func TestStageOrder(t *testing.T) {
	e := NewExecutor(Deps{})

	var got []job.Status
	for _, s := range e.stages() {
		got = append(got, s.status)
	}
	assert.Equal(t, []job.Status{
		job.StatusAudioPrep,
		job.StatusASR,
		job.StatusSegment,
		job.StatusStrategy,
		job.StatusTMGating,
		job.StatusTerms,
		job.StatusTranslate,
		job.StatusQA,
		job.StatusFinalize,
		job.StatusLibrarian,
	}, got)
}

func TestFinalPersianFallsBack(t *testing.T) {
	assert.Equal(t, "صیقل‌خورده", finalPersian(&ent.JobCue{
		FaText:   strPtr("خام"),
		FaTextQa: strPtr("صیقل‌خورده"),
	}))
	assert.Equal(t, "خام", finalPersian(&ent.JobCue{
		FaText:   strPtr("خام"),
		FaTextQa: strPtr("   "),
	}))
	assert.Equal(t, "", finalPersian(&ent.JobCue{}))
}

func intPtr(i int) *int { return &i }
