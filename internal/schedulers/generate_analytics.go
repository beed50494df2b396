package schedulers

import (
	"log"

	"os-project/internal/core"
	"os-project/internal/util"
)

func generateResult(timeline []core.Event, proccessDetails []core.ProcessStats) core.Result {
	averageWaitingTime, averageResponseTime, averageTurnAroundTime := util.CalculateAverage(proccessDetails)

	cpuMetric := generateCpuMetric(timeline)
	var utilization, throughput float64
	if cpuMetric.TotalTime > 0 {
		utilization = 1 - float64(cpuMetric.IdleTime)/float64(cpuMetric.TotalTime)
		throughput = float64(len(proccessDetails)) / float64(cpuMetric.TotalTime)
	}

	result := core.Result{
		Timeline:              timeline,
		Processes:             proccessDetails,
		AverageWaitingTime:    averageWaitingTime,
		AverageResponseTime:   averageResponseTime,
		AverageTurnAroundTime: averageTurnAroundTime,
		CpuMetric:             cpuMetric,
		CpuUtilization:        utilization,
		CpuThroughput:         throughput,
	}
	log.Printf("scheduled %d processes: total time %d, idle time %d", len(proccessDetails), cpuMetric.TotalTime, cpuMetric.IdleTime)
	return result
}

// generateCpuMetric measures the span from the first start to the last finish
// and splits it into busy and idle time. The timeline is chronological.
func generateCpuMetric(timeline []core.Event) core.CpuMetric {
	if len(timeline) == 0 {
		return core.CpuMetric{}
	}

	var metric core.CpuMetric
	for i, event := range timeline {
		metric.UtilizationTime += event.Finish - event.Start
		if i > 0 {
			metric.IdleTime += event.Start - timeline[i-1].Finish
		}
	}
	metric.TotalTime = timeline[len(timeline)-1].Finish - timeline[0].Start
	return metric
}
