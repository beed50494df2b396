package schedulers

import (
	"errors"
	"fmt"
	"math"

	"os-project/internal/core"
)

var (
	ErrNoProcesses      = errors.New("no processes to schedule")
	ErrDuplicateProcess = errors.New("duplicate process name")
	ErrNegativeArrival  = errors.New("negative arrival time")
	ErrNonPositiveBurst = errors.New("non-positive burst time")
	ErrTimeOverflow     = errors.New("simulated time overflows")
)

func validateProcesses(processes []core.Process) error {
	if len(processes) == 0 {
		return ErrNoProcesses
	}

	seen := make(map[string]struct{}, len(processes))
	for _, p := range processes {
		if _, ok := seen[p.Name]; ok {
			return fmt.Errorf("%w: %q", ErrDuplicateProcess, p.Name)
		}
		seen[p.Name] = struct{}{}

		if p.ArrivalTime < 0 {
			return fmt.Errorf("%w: process %q arrives at %d", ErrNegativeArrival, p.Name, p.ArrivalTime)
		}
		if p.BurstTime <= 0 {
			return fmt.Errorf("%w: process %q has burst %d", ErrNonPositiveBurst, p.Name, p.BurstTime)
		}
	}
	return checkHorizon(processes)
}

// checkHorizon rejects inputs whose clock could pass math.MaxInt. The clock
// never exceeds the latest arrival plus the sum of all bursts.
func checkHorizon(processes []core.Process) error {
	horizon := 0
	for _, p := range processes {
		horizon = max(horizon, p.ArrivalTime)
	}
	for _, p := range processes {
		if p.BurstTime > math.MaxInt-horizon {
			return fmt.Errorf("%w: process %q adds burst %d past time %d", ErrTimeOverflow, p.Name, p.BurstTime, horizon)
		}
		horizon += p.BurstTime
	}
	return nil
}
