// Package workload reads process sets from CSV or YAML files.
//
// CSV rows are name,arrival,burst,priority. A header row whose arrival column
// is not a number is skipped. YAML files hold a ScheduleRequests document.
package workload

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"os-project/internal/requests"
)

var ErrUnsupportedFormat = errors.New("unsupported workload format")

// LoadFile picks the decoder from the file extension.
func LoadFile(path string) (requests.ScheduleRequests, error) {
	f, err := os.Open(path)
	if err != nil {
		return requests.ScheduleRequests{}, fmt.Errorf("open workload file: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return LoadCSV(f)
	case ".yaml", ".yml":
		return LoadYAML(f)
	default:
		return requests.ScheduleRequests{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

func LoadCSV(r io.Reader) (requests.ScheduleRequests, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = 4
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return requests.ScheduleRequests{}, fmt.Errorf("read CSV: %w", err)
	}

	var request requests.ScheduleRequests
	for i, row := range rows {
		if i == 0 && !isNumber(row[1]) {
			continue
		}
		job, err := parseRow(row)
		if err != nil {
			return requests.ScheduleRequests{}, fmt.Errorf("row %d: %w", i+1, err)
		}
		request.Jobs = append(request.Jobs, job)
	}
	return request, nil
}

func LoadYAML(r io.Reader) (requests.ScheduleRequests, error) {
	var request requests.ScheduleRequests
	if err := yaml.NewDecoder(r).Decode(&request); err != nil {
		return requests.ScheduleRequests{}, fmt.Errorf("read YAML: %w", err)
	}
	return request, nil
}

func parseRow(row []string) (requests.Job, error) {
	values := make([]int, 3)
	for i, field := range row[1:] {
		v, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return requests.Job{}, err
		}
		values[i] = v
	}
	return requests.Job{
		ProcessName: strings.TrimSpace(row[0]),
		ArrivalTime: values[0],
		BurstTime:   values[1],
		Priority:    values[2],
	}, nil
}

func isNumber(s string) bool {
	_, err := strconv.Atoi(strings.TrimSpace(s))
	return err == nil
}
