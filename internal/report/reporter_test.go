package report

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"syshealth/internal/collector"
	"syshealth/internal/grading"
	"syshealth/internal/logger"
)

type fakeSampler struct {
	usage collector.Usage
	err   error
}

func (f *fakeSampler) Collect(context.Context) (collector.Usage, error) {
	return f.usage, f.err
}

func TestLines_FixedOrder(t *testing.T) {
	generatedAt := time.Date(2025, time.June, 15, 9, 30, 0, 0, time.UTC)
	usage := collector.Usage{CPU: 45.5, Memory: 60, Disk: 50}

	lines := Lines(generatedAt, usage, grading.GradeB, grading.GradeB, grading.GradeB, grading.GradeB)

	assert.Equal(t, []string{
		"===== System Health Report =====",
		"Report generated on: 2025-06-15 09:30:00",
		"System Metrics:",
		"CPU Usage: 45.5%",
		"Memory Usage: 60%",
		"Disk Usage: 50%",
		"Metric Grades:",
		"CPU Grade: B",
		"Memory Grade: B",
		"Disk Grade: B",
		"Overall System Grade:",
		"Final Grade: B",
		"===== End of Report =====",
	}, lines)
}

func TestRun_EmitsFullReportAtInfo(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(&buf, slog.LevelInfo)
	r := New(&fakeSampler{usage: collector.Usage{CPU: 20, Memory: 40, Disk: 30}}, log)

	require.NoError(t, r.Run(context.Background()))

	out := buf.String()
	emitted := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	assert.Len(t, emitted, 13)
	for _, line := range emitted {
		assert.Contains(t, line, " - INFO - ")
	}
	assert.Contains(t, out, "===== System Health Report =====")
	assert.Contains(t, out, "CPU Usage: 20%")
	assert.Contains(t, out, "Final Grade: A")
	assert.Contains(t, out, "===== End of Report =====")
}

func TestRun_AllMiddleBandReadingsGradeB(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(&buf, slog.LevelInfo)
	r := New(&fakeSampler{usage: collector.Usage{CPU: 45, Memory: 60, Disk: 50}}, log)

	require.NoError(t, r.Run(context.Background()))

	out := buf.String()
	assert.Contains(t, out, "CPU Grade: B")
	assert.Contains(t, out, "Memory Grade: B")
	assert.Contains(t, out, "Disk Grade: B")
	assert.Contains(t, out, "Final Grade: B")
}

func TestRun_SaturatedHostGradesC(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(&buf, slog.LevelInfo)
	r := New(&fakeSampler{usage: collector.Usage{CPU: 80, Memory: 90, Disk: 85}}, log)

	require.NoError(t, r.Run(context.Background()))

	assert.Contains(t, buf.String(), "Final Grade: C")
}

func TestRun_ThresholdReadingLandsInWorseBucket(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(&buf, slog.LevelInfo)
	r := New(&fakeSampler{usage: collector.Usage{CPU: 30, Memory: 40, Disk: 30}}, log)

	require.NoError(t, r.Run(context.Background()))

	assert.Contains(t, buf.String(), "CPU Grade: B")
}

func TestRun_PropagatesSamplerFailure(t *testing.T) {
	sentinel := errors.New("mount not found")
	log := logger.New(io.Discard, slog.LevelInfo)
	r := New(&fakeSampler{err: sentinel}, log)

	err := r.Run(context.Background())

	assert.ErrorIs(t, err, sentinel)
}
