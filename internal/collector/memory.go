package collector

import (
	"context"
	"fmt"
)

func (s *Sampler) collectMemory(ctx context.Context) (float64, error) {
	vm, err := s.virtualMemory(ctx)
	if err != nil {
		return 0, fmt.Errorf("memory: %w", err)
	}

	s.log.Debug(fmt.Sprintf("collected memory usage: %v%%", vm.UsedPercent))
	return vm.UsedPercent, nil
}
