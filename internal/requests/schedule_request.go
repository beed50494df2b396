package requests

import "os-project/internal/core"

type Job struct {
	ProcessName string `json:"process_name" yaml:"process_name"`
	ArrivalTime int    `json:"arrival_time" yaml:"arrival_time"`
	BurstTime   int    `json:"burst_time" yaml:"burst_time"`
	Priority    int    `json:"priority" yaml:"priority"`
}

type ScheduleRequests struct {
	Jobs []Job `json:"jobs" yaml:"jobs"`
	// AgingThreshold overrides the configured threshold when set.
	AgingThreshold *int `json:"aging_threshold,omitempty" yaml:"aging_threshold,omitempty"`
}

func (r ScheduleRequests) Processes() []core.Process {
	processes := make([]core.Process, 0, len(r.Jobs))
	for _, job := range r.Jobs {
		processes = append(processes, core.Process{
			Name:        job.ProcessName,
			ArrivalTime: job.ArrivalTime,
			BurstTime:   job.BurstTime,
			Priority:    job.Priority,
		})
	}
	return processes
}

// Threshold returns the request's threshold, or fallback when unset.
func (r ScheduleRequests) Threshold(fallback int) int {
	if r.AgingThreshold == nil {
		return fallback
	}
	return *r.AgingThreshold
}
