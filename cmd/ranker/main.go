package main

import (
	"bufio"
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"smart-task-assistant/internal/priority"
	"smart-task-assistant/internal/task"
	"smart-task-assistant/internal/task/usecase"
	"smart-task-assistant/pkg/extract"
	"smart-task-assistant/pkg/log"
)

// ranker is the offline batch companion to the API server: it reads
// tasks from a file or stdin (one per line, or a CSV with a "task"
// column) and prints the ranked table.
func main() {
	var (
		filePath  = flag.String("file", "", "input file; omit to read stdin")
		isCSV     = flag.Bool("csv", false, "treat input as CSV with a 'task' column")
		timezone  = flag.String("timezone", "UTC", "IANA timezone anchoring relative dates")
		urgencyW  = flag.Float64("urgency-weight", 0.6, "urgency weight")
		importW   = flag.Float64("importance-weight", 0.3, "importance weight")
		effortW   = flag.Float64("effort-weight", 0.1, "effort weight")
		keepEmpty = flag.Bool("include-unscored", true, "keep unparsable records at score 0.0")
	)
	flag.Parse()

	logger := log.Init(log.ZapConfig{Level: "warn", Mode: "production", Encoding: "console"})
	ctx := context.Background()

	lines, err := readLines(*filePath, *isCSV)
	if err != nil {
		fmt.Fprintln(os.Stderr, "ranker:", err)
		os.Exit(1)
	}

	extractor, err := extract.New(*timezone)
	if err != nil {
		fmt.Fprintln(os.Stderr, "ranker:", err)
		os.Exit(1)
	}

	weights := priority.Weights{Urgency: *urgencyW, Importance: *importW, Effort: *effortW}
	uc := usecase.New(logger, extractor, weights, *keepEmpty)

	out, err := uc.RankText(ctx, task.RankTextInput{
		RawText:   strings.Join(lines, "\n"),
		Reference: time.Now(),
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "ranker:", err)
		os.Exit(1)
	}

	printTable(out)
}

func readLines(path string, isCSV bool) ([]string, error) {
	var r io.Reader = os.Stdin
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	if isCSV {
		return readCSVTasks(r)
	}

	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	return lines, scanner.Err()
}

func readCSVTasks(r io.Reader) ([]string, error) {
	rows, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("csv input is empty")
	}

	taskCol := -1
	for i, name := range rows[0] {
		if strings.EqualFold(strings.TrimSpace(name), "task") {
			taskCol = i
			break
		}
	}
	if taskCol == -1 {
		return nil, fmt.Errorf("csv must contain a 'task' column")
	}

	var lines []string
	for _, row := range rows[1:] {
		if taskCol < len(row) && strings.TrimSpace(row[taskCol]) != "" {
			lines = append(lines, strings.TrimSpace(row[taskCol]))
		}
	}
	return lines, nil
}

func printTable(out task.RankOutput) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SCORE\tTITLE\tDUE\tEST\tIMPORTANCE")
	for _, t := range out.Tasks {
		due := "-"
		if t.Due != nil {
			due = t.Due.Format("2006-01-02 15:04")
		}
		est := "-"
		if t.EstMinutes != nil {
			est = fmt.Sprintf("%.0fm", *t.EstMinutes)
		}
		fmt.Fprintf(w, "%.3f\t%s\t%s\t%s\t%s\n", t.Score, t.Title, due, est, t.Importance)
	}
	w.Flush()
}
