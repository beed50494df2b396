// Package report prints a scheduling result as a Gantt line and a schedule
// table.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"os-project/internal/core"
)

// Write outputs the title, the Gantt schedule and the schedule table.
func Write(w io.Writer, title string, result core.Result) {
	outputTitle(w, title)
	outputGantt(w, result.Timeline)
	outputSchedule(w, result)
}

func outputTitle(w io.Writer, title string) {
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
	_, _ = fmt.Fprintln(w, strings.Repeat(" ", len(title)/2), title)
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
}

func outputGantt(w io.Writer, timeline []core.Event) {
	_, _ = fmt.Fprintln(w, "Gantt schedule")
	_, _ = fmt.Fprint(w, "|")
	for _, event := range timeline {
		padding := strings.Repeat(" ", max(0, 8-len(event.ProcessName))/2)
		_, _ = fmt.Fprint(w, padding, event.ProcessName, padding, "|")
	}
	_, _ = fmt.Fprintln(w)
	for i, event := range timeline {
		// idle gaps show up as a jump between one stop and the next start
		if i > 0 && timeline[i-1].Finish != event.Start {
			_, _ = fmt.Fprint(w, timeline[i-1].Finish, "..")
		}
		_, _ = fmt.Fprint(w, event.Start, "\t")
		if i == len(timeline)-1 {
			_, _ = fmt.Fprint(w, event.Finish)
		}
	}
	_, _ = fmt.Fprintf(w, "\n\n")
}

func outputSchedule(w io.Writer, result core.Result) {
	rows := make([][]string, 0, len(result.Processes))
	for _, p := range result.Processes {
		rows = append(rows, []string{
			p.Name,
			fmt.Sprint(p.InitialPriority),
			fmt.Sprint(p.Priority),
			fmt.Sprint(p.BurstTime),
			fmt.Sprint(p.ArrivalTime),
			fmt.Sprint(p.WaitingTime),
			fmt.Sprint(p.TurnAroundTime),
			fmt.Sprint(p.FinishTime),
		})
	}

	_, _ = fmt.Fprintln(w, "Schedule table")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Priority", "Final Priority", "Burst", "Arrival", "Wait", "Turnaround", "Exit"})
	table.AppendBulk(rows)
	table.SetFooter([]string{"", "", "", "", "",
		fmt.Sprintf("Average\n%.2f", result.AverageWaitingTime),
		fmt.Sprintf("Average\n%.2f", result.AverageTurnAroundTime),
		fmt.Sprintf("Throughput\n%.2f/t", result.CpuThroughput)})
	table.Render()

	_, _ = fmt.Fprintf(w, "CPU utilization %.2f%%, idle time %d\n",
		result.CpuUtilization*100, result.CpuMetric.IdleTime)
}
