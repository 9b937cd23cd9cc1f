package collector

import (
	"context"
	"fmt"
)

func (s *Sampler) collectCPU(ctx context.Context) (float64, error) {
	percents, err := s.cpuPercent(ctx, cpuSampleWindow, false)
	if err != nil {
		return 0, fmt.Errorf("cpu: %w", err)
	}
	if len(percents) == 0 {
		return 0, fmt.Errorf("cpu: no usage data returned")
	}

	s.log.Debug(fmt.Sprintf("collected cpu usage: %v%%", percents[0]))
	return percents[0], nil
}
