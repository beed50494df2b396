package responses

import "os-project/internal/core"

type EventResponse struct {
	ProcessName string `json:"process_name"`
	Start       int    `json:"start"`
	Finish      int    `json:"finish"`
	Priority    int    `json:"priority"`
}

type ProcessResponse struct {
	ProcessName     string `json:"process_name"`
	ArrivalTime     int    `json:"arrival_time"`
	BurstTime       int    `json:"burst_time"`
	InitialPriority int    `json:"initial_priority"`
	FinalPriority   int    `json:"final_priority"`
	StartTime       int    `json:"start_time"`
	FinishTime      int    `json:"finish_time"`
	ResponseTime    int    `json:"response_time"`
	TurnAroundTime  int    `json:"turn_around_time"`
	WaitingTime     int    `json:"waiting_time"`
}

type ScheduleResponse struct {
	RunID                 string            `json:"run_id,omitempty"`
	Algorithm             string            `json:"algorithm"`
	AgingThreshold        int               `json:"aging_threshold,omitempty"`
	TotalTime             int               `json:"total_time"`
	UtilizationTime       int               `json:"utilization_time"`
	IdleTime              int               `json:"idle_time"`
	AverageWaitingTime    float64           `json:"average_waiting_time"`
	AverageResponseTime   float64           `json:"average_response_time"`
	AverageTurnAroundTime float64           `json:"average_turn_around_time"`
	CpuUtilization        float64           `json:"cpu_utilization"`
	CpuThroughput         float64           `json:"cpu_throughput"`
	Timeline              []EventResponse   `json:"timeline"`
	Details               []ProcessResponse `json:"details"`
}

// NewScheduleResponse flattens a scheduling result for the wire.
func NewScheduleResponse(algorithm string, agingThreshold int, result core.Result) ScheduleResponse {
	timeline := make([]EventResponse, 0, len(result.Timeline))
	for _, event := range result.Timeline {
		timeline = append(timeline, EventResponse{
			ProcessName: event.ProcessName,
			Start:       event.Start,
			Finish:      event.Finish,
			Priority:    event.Priority,
		})
	}

	details := make([]ProcessResponse, 0, len(result.Processes))
	for _, p := range result.Processes {
		details = append(details, ProcessResponse{
			ProcessName:     p.Name,
			ArrivalTime:     p.ArrivalTime,
			BurstTime:       p.BurstTime,
			InitialPriority: p.InitialPriority,
			FinalPriority:   p.Priority,
			StartTime:       p.StartTime,
			FinishTime:      p.FinishTime,
			ResponseTime:    p.ResponseTime,
			TurnAroundTime:  p.TurnAroundTime,
			WaitingTime:     p.WaitingTime,
		})
	}

	return ScheduleResponse{
		Algorithm:             algorithm,
		AgingThreshold:        agingThreshold,
		TotalTime:             result.CpuMetric.TotalTime,
		UtilizationTime:       result.CpuMetric.UtilizationTime,
		IdleTime:              result.CpuMetric.IdleTime,
		AverageWaitingTime:    result.AverageWaitingTime,
		AverageResponseTime:   result.AverageResponseTime,
		AverageTurnAroundTime: result.AverageTurnAroundTime,
		CpuUtilization:        result.CpuUtilization,
		CpuThroughput:         result.CpuThroughput,
		Timeline:              timeline,
		Details:               details,
	}
}
