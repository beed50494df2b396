package core

// Process is a unit of work submitted to the scheduler. Lower Priority values
// are more urgent.
type Process struct {
	Name        string
	ArrivalTime int
	BurstTime   int
	Priority    int
}

// Event is one contiguous execution span on the timeline.
type Event struct {
	ProcessName string
	Start       int
	Finish      int
	// Priority the process was dispatched with, after aging.
	Priority int
}

// ProcessStats is a completed process. Priority holds the final, possibly
// aged, priority.
type ProcessStats struct {
	Process
	InitialPriority int
	StartTime       int
	FinishTime      int
	WaitingTime     int
	ResponseTime    int
	TurnAroundTime  int
}

// CpuMetric splits the span from the first start to the last finish into
// busy (UtilizationTime) and idle time.
type CpuMetric struct {
	TotalTime       int
	UtilizationTime int
	IdleTime        int
}

// Result is the outcome of one scheduling run. Processes are in completion
// order.
type Result struct {
	Timeline              []Event
	Processes             []ProcessStats
	AverageWaitingTime    float64
	AverageResponseTime   float64
	AverageTurnAroundTime float64
	CpuMetric             CpuMetric
	CpuUtilization        float64
	CpuThroughput         float64
}
