package collector

import (
	"context"
	"fmt"
)

func (s *Sampler) collectDisk(ctx context.Context) (float64, error) {
	du, err := s.diskUsage(ctx, s.diskPath)
	if err != nil {
		return 0, fmt.Errorf("disk %s: %w", s.diskPath, err)
	}

	s.log.Debug(fmt.Sprintf("collected disk usage for %s: %v%%", s.diskPath, du.UsedPercent))
	return du.UsedPercent, nil
}
