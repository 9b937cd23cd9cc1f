// Package collector
package collector

import (
	"context"
	"log/slog"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/mem"
)

// cpuSampleWindow is how long the CPU reading blocks to average utilization.
const cpuSampleWindow = time.Second

// Usage holds one run's utilization percentages, each in [0, 100].
type Usage struct {
	CPU    float64
	Memory float64
	Disk   float64
}

// Sampler reads host utilization through gopsutil. The gopsutil entry points
// are held as fields so tests can substitute them.
type Sampler struct {
	diskPath string
	log      *slog.Logger

	cpuPercent    func(ctx context.Context, interval time.Duration, percpu bool) ([]float64, error)
	virtualMemory func(ctx context.Context) (*mem.VirtualMemoryStat, error)
	diskUsage     func(ctx context.Context, path string) (*disk.UsageStat, error)
}

// NewSampler creates a sampler reading disk usage for the given mount path.
func NewSampler(log *slog.Logger, diskPath string) *Sampler {
	return &Sampler{
		diskPath:      diskPath,
		log:           log,
		cpuPercent:    cpu.PercentWithContext,
		virtualMemory: mem.VirtualMemoryWithContext,
		diskUsage:     disk.UsageWithContext,
	}
}

// Collect reads CPU, memory and disk usage in that order. The CPU read
// blocks for the sampling window; memory and disk are instantaneous. The
// first failure aborts the whole collection.
func (s *Sampler) Collect(ctx context.Context) (Usage, error) {
	var u Usage
	var err error

	if u.CPU, err = s.collectCPU(ctx); err != nil {
		return Usage{}, err
	}
	if u.Memory, err = s.collectMemory(ctx); err != nil {
		return Usage{}, err
	}
	if u.Disk, err = s.collectDisk(ctx); err != nil {
		return Usage{}, err
	}

	return u, nil
}
