package cmd

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/spf13/cobra"

	"os-project/api"
	"os-project/config"
	"os-project/internal/core"
	"os-project/internal/report"
	"os-project/internal/requests"
	"os-project/internal/responses"
	"os-project/internal/schedulers"
	"os-project/internal/store"
	"os-project/internal/workload"
)

type simulateOptions struct {
	agingThreshold int
	thresholdSet   bool
	noAging        bool
	compare        bool
	record         bool
}

var simulateOpts simulateOptions

var simulateCmd = &cobra.Command{
	Use:   "simulate <workload.csv|workload.yaml>",
	Short: "Schedule a workload file and print the timeline.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := simulateOpts
		cfg := config.GetSchedulerConfig()
		opts.thresholdSet = cmd.Flags().Changed("aging-threshold")

		var runStore store.RunStore
		if opts.record {
			s, err := store.NewSQLiteRunStore(cfg.StoragePath)
			if err != nil {
				return err
			}
			defer s.Close()
			runStore = s
		}

		return simulate(cmd.Context(), cmd.OutOrStdout(), args[0], cfg.AgingThreshold, opts, runStore)
	},
}

func init() {
	simulateCmd.Flags().IntVarP(&simulateOpts.agingThreshold, "aging-threshold", "t", 0,
		"wait units per priority level, overrides the workload file and config")
	simulateCmd.Flags().BoolVar(&simulateOpts.noAging, "no-aging", false, "disable aging")
	simulateCmd.Flags().BoolVar(&simulateOpts.compare, "compare", false, "print runs with and without aging")
	simulateCmd.Flags().BoolVar(&simulateOpts.record, "record", false, "record the runs in the configured database")
	rootCmd.AddCommand(simulateCmd)
}

// simulate loads the workload at path and writes one report per variant.
// Without an explicit threshold in opts the workload file's threshold is used,
// or configured when the file has none.
func simulate(ctx context.Context, w io.Writer, path string, configured int, opts simulateOptions, runStore store.RunStore) error {
	request, err := workload.LoadFile(path)
	if err != nil {
		return err
	}

	threshold := request.Threshold(configured)
	if opts.thresholdSet {
		threshold = opts.agingThreshold
	}
	threshold = core.NormalizeThreshold(threshold)

	var variants []string
	switch {
	case opts.compare:
		variants = []string{api.AlgorithmPriority, api.AlgorithmPriorityAging}
	case opts.noAging:
		variants = []string{api.AlgorithmPriority}
	default:
		variants = []string{api.AlgorithmPriorityAging}
	}

	for _, variant := range variants {
		result, title, err := runVariant(variant, request, threshold)
		if err != nil {
			return err
		}
		report.Write(w, title, result)

		if runStore == nil {
			continue
		}
		recorded := threshold
		if variant == api.AlgorithmPriority {
			recorded = 0
		}
		id, err := runStore.Save(ctx, responses.NewScheduleResponse(variant, recorded, result))
		if err != nil {
			return err
		}
		log.Println("recorded run", id)
		_, _ = fmt.Fprintln(w, "Run ID:", id)
	}
	return nil
}

func runVariant(variant string, request requests.ScheduleRequests, threshold int) (core.Result, string, error) {
	if variant == api.AlgorithmPriority {
		result, err := schedulers.SchedulePriority(request.Processes())
		return result, "Priority", err
	}
	result, err := schedulers.SchedulePriorityAging(request.Processes(), threshold)
	return result, fmt.Sprintf("Priority with aging (threshold %d)", threshold), err
}
