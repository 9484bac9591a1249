package core

import "time"

// PoolEpoch anchors every timestamp the demo generators produce. Offsets are
// drawn from the rng relative to this fixed instant, never from the wall
// clock, so a seed fully determines a pool across runs.
var PoolEpoch = time.Date(2025, time.June, 1, 8, 0, 0, 0, time.UTC)

// Subjects taught on the platform.
const (
	SubjectHistory = "History"
	SubjectScience = "Science"
)

var Subjects = []string{SubjectHistory, SubjectScience}

// Record statuses shared by users and AR content.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// GradeLevels covered by the platform (elementary).
var GradeLevels = []string{
	"Grade 1", "Grade 2", "Grade 3", "Grade 4", "Grade 5", "Grade 6",
}

func ValidGradeLevel(lvl string) bool {
	for _, g := range GradeLevels {
		if g == lvl {
			return true
		}
	}
	return false
}

func ValidSubject(subj string) bool {
	for _, s := range Subjects {
		if s == subj {
			return true
		}
	}
	return false
}
