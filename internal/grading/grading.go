// Package grading classifies utilization percentages into letter grades and
// folds the per-metric grades into one overall grade.
package grading

// Grade is an ordinal health label, A best, C worst.
type Grade string

const (
	GradeA Grade = "A"
	GradeB Grade = "B"
	GradeC Grade = "C"
)

// Thresholds is a (low, high) percentage pair with low below high.
type Thresholds struct {
	Low  float64
	High float64
}

// Fixed per-metric thresholds. Not configurable at runtime.
var (
	CPUThresholds    = Thresholds{Low: 30, High: 60}
	MemoryThresholds = Thresholds{Low: 50, High: 75}
	DiskThresholds   = Thresholds{Low: 40, High: 70}
)

// Classify maps a utilization percentage to a grade. Comparisons are strict:
// a value sitting exactly on a threshold lands in the worse bucket.
func Classify(value float64, t Thresholds) Grade {
	if value < t.Low {
		return GradeA
	}
	if value < t.High {
		return GradeB
	}
	return GradeC
}

// Score maps a grade to its numeric weight for averaging.
func Score(g Grade) int {
	switch g {
	case GradeA:
		return 3
	case GradeB:
		return 2
	default:
		return 1
	}
}

// Overall averages the three metric grades into a single grade. The cut
// points are the decimal literals 2.67 and 1.67, so a mean of 8/3 (two A's
// and a B) falls just short of an A.
func Overall(cpu, mem, disk Grade) Grade {
	mean := float64(Score(cpu)+Score(mem)+Score(disk)) / 3

	if mean >= 2.67 {
		return GradeA
	}
	if mean >= 1.67 {
		return GradeB
	}
	return GradeC
}
