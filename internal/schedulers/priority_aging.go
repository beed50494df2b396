package schedulers

import (
	"log"
	"sort"

	"os-project/internal/core"
)

// simProcess is the engine's private copy of a process. waited counts the
// units spent eligible but not running since the last priority decay.
type simProcess struct {
	core.Process
	initialPriority int
	waited          int
}

// SchedulePriority runs non-preemptive priority scheduling without aging.
func SchedulePriority(processes []core.Process) (core.Result, error) {
	return SchedulePriorityAging(processes, core.AgingDisabled)
}

// SchedulePriorityAging runs non-preemptive priority scheduling where every
// agingThreshold units of accumulated waiting lower a process's priority value
// by one, down to core.MinPriority. Thresholds below 1 are treated as 1.
//
// The input slice is not modified.
func SchedulePriorityAging(processes []core.Process, agingThreshold int) (core.Result, error) {
	if err := validateProcesses(processes); err != nil {
		return core.Result{}, err
	}
	threshold := core.NormalizeThreshold(agingThreshold)

	pending := make([]*simProcess, 0, len(processes))
	for _, p := range processes {
		pending = append(pending, &simProcess{Process: p, initialPriority: p.Priority})
	}
	sort.SliceStable(pending, func(i, j int) bool {
		return pending[i].ArrivalTime < pending[j].ArrivalTime
	})

	timeline := make([]core.Event, 0, len(processes))
	completed := make([]core.ProcessStats, 0, len(processes))
	time := pending[0].ArrivalTime

	for len(pending) > 0 {
		available := availableAt(pending, time)
		if len(available) == 0 {
			next, ok := nextArrival(pending, time)
			if !ok {
				break
			}
			time = next
			continue
		}

		for _, p := range available {
			p.Priority, p.waited = core.Age(p.Priority, p.waited, threshold)
		}

		current := available[0]
		for _, p := range available[1:] {
			if runsBefore(p, current) {
				current = p
			}
		}

		start := time
		finish := start + current.BurstTime
		log.Println("pid:", current.Name, "dispatched at", start, "with priority", current.Priority)
		timeline = append(timeline, core.Event{
			ProcessName: current.Name,
			Start:       start,
			Finish:      finish,
			Priority:    current.Priority,
		})
		time = finish

		for _, p := range pending {
			if p == current || p.ArrivalTime >= finish {
				continue
			}
			if increment := finish - max(start, p.ArrivalTime); increment > 0 {
				p.waited += increment
			}
		}

		current.waited = 0
		pending = removeProcess(pending, current)
		completed = append(completed, completeProcess(current, start, finish))
	}

	return generateResult(timeline, completed), nil
}

func availableAt(pending []*simProcess, time int) []*simProcess {
	available := make([]*simProcess, 0, len(pending))
	for _, p := range pending {
		if p.ArrivalTime <= time {
			available = append(available, p)
		}
	}
	return available
}

// nextArrival returns the earliest arrival strictly after time.
func nextArrival(pending []*simProcess, time int) (int, bool) {
	next, found := 0, false
	for _, p := range pending {
		if p.ArrivalTime > time && (!found || p.ArrivalTime < next) {
			next, found = p.ArrivalTime, true
		}
	}
	return next, found
}

// runsBefore orders by priority, then arrival, then name.
func runsBefore(a, b *simProcess) bool {
	if a.Priority != b.Priority {
		return a.Priority < b.Priority
	}
	if a.ArrivalTime != b.ArrivalTime {
		return a.ArrivalTime < b.ArrivalTime
	}
	return a.Name < b.Name
}

func removeProcess(pending []*simProcess, target *simProcess) []*simProcess {
	for i, p := range pending {
		if p == target {
			return append(pending[:i], pending[i+1:]...)
		}
	}
	return pending
}

func completeProcess(p *simProcess, start, finish int) core.ProcessStats {
	waiting := start - p.ArrivalTime
	return core.ProcessStats{
		Process:         p.Process,
		InitialPriority: p.initialPriority,
		StartTime:       start,
		FinishTime:      finish,
		WaitingTime:     waiting,
		ResponseTime:    waiting,
		TurnAroundTime:  finish - p.ArrivalTime,
	}
}
