// Package report
package report

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"syshealth/internal/collector"
	"syshealth/internal/grading"
)

const generatedAtLayout = "2006-01-02 15:04:05"

// Sampler yields one round of utilization readings.
type Sampler interface {
	Collect(ctx context.Context) (collector.Usage, error)
}

// Reporter runs one report cycle: sample, grade, aggregate, emit.
type Reporter struct {
	sampler Sampler
	log     *slog.Logger
}

func New(sampler Sampler, log *slog.Logger) *Reporter {
	return &Reporter{
		sampler: sampler,
		log:     log,
	}
}

// Run performs exactly one report cycle. Collection failures propagate
// untouched; there is no partial report.
func (r *Reporter) Run(ctx context.Context) error {
	generatedAt := time.Now()

	usage, err := r.sampler.Collect(ctx)
	if err != nil {
		return err
	}

	cpuGrade := grading.Classify(usage.CPU, grading.CPUThresholds)
	memGrade := grading.Classify(usage.Memory, grading.MemoryThresholds)
	diskGrade := grading.Classify(usage.Disk, grading.DiskThresholds)
	overall := grading.Overall(cpuGrade, memGrade, diskGrade)

	for _, line := range Lines(generatedAt, usage, cpuGrade, memGrade, diskGrade, overall) {
		r.log.Info(line)
	}

	return nil
}

// Lines renders the report body in its fixed order.
func Lines(generatedAt time.Time, u collector.Usage, cpu, mem, disk, overall grading.Grade) []string {
	return []string{
		"===== System Health Report =====",
		"Report generated on: " + generatedAt.Format(generatedAtLayout),
		"System Metrics:",
		fmt.Sprintf("CPU Usage: %v%%", u.CPU),
		fmt.Sprintf("Memory Usage: %v%%", u.Memory),
		fmt.Sprintf("Disk Usage: %v%%", u.Disk),
		"Metric Grades:",
		fmt.Sprintf("CPU Grade: %s", cpu),
		fmt.Sprintf("Memory Grade: %s", mem),
		fmt.Sprintf("Disk Grade: %s", disk),
		"Overall System Grade:",
		fmt.Sprintf("Final Grade: %s", overall),
		"===== End of Report =====",
	}
}
