// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Job is the predicate function for job builders.
type Job func(*sql.Selector)

// JobCue is the predicate function for jobcue builders.
type JobCue func(*sql.Selector)

// JobGlossaryTerm is the predicate function for jobglossaryterm builders.
type JobGlossaryTerm func(*sql.Selector)

// LLMRun is the predicate function for llmrun builders.
type LLMRun func(*sql.Selector)

// TMEntry is the predicate function for tmentry builders.
type TMEntry func(*sql.Selector)
