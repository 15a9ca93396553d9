package config

import (
	"fmt"
	"os"
	"runtime/pprof"
)

// StartProfile starts cpu profiling when CPUProfile is set.
// The returned func stops profiling and must always be called.
func (cfg Config) StartProfile() (stop func(), err error) {
	if cfg.CPUProfile == "" {
		return func() {}, nil
	}

	f, err := os.Create(cfg.CPUProfile)
	if err != nil {
		return nil, fmt.Errorf("unable to create cpu-profile %q: %w", cfg.CPUProfile, err)
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		f.Close()
		return nil, fmt.Errorf("unable to start cpu-profile: %w", err)
	}

	return func() {
		pprof.StopCPUProfile()
		f.Close()
	}, nil
}
