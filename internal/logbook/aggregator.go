package logbook

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"tgrelay/bot/internal/calendar"
)

// Aggregator merges the previous day's per-chat log files into one combined
// daily file.
type Aggregator struct {
	dir string
}

// NewAggregator returns an Aggregator over the given log directory.
func NewAggregator(dir string) *Aggregator {
	return &Aggregator{dir: dir}
}

// BundleName returns the combined file name for a date.
func BundleName(date string) string {
	return fmt.Sprintf("daily_log_%s.txt", date)
}

// RunOnce merges all per-chat files for the given date into the combined
// file, each section preceded by its source file name. The combined file is
// written whole, so re-running produces byte-identical output. When no
// per-chat file matches the date, nothing is written and an empty path is
// returned.
func (a *Aggregator) RunOnce(date string) (string, error) {
	entries, err := os.ReadDir(a.dir)
	if err != nil {
		return "", fmt.Errorf("failed to read log directory %s: %w", a.dir, err)
	}

	suffix := "_" + date + ".txt"
	var names []string
	for _, entry := range entries {
		name := entry.Name()
		if !entry.IsDir() && strings.HasPrefix(name, "chat_") && strings.HasSuffix(name, suffix) {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return "", nil
	}
	sort.Strings(names)

	var b strings.Builder
	for _, name := range names {
		data, err := os.ReadFile(filepath.Join(a.dir, name))
		if err != nil {
			return "", fmt.Errorf("failed to read log file %s: %w", name, err)
		}
		fmt.Fprintf(&b, "--- %s ---\n", name)
		b.Write(data)
		if len(data) > 0 && data[len(data)-1] != '\n' {
			b.WriteByte('\n')
		}
	}

	out := filepath.Join(a.dir, BundleName(date))
	if err := os.WriteFile(out, []byte(b.String()), 0o644); err != nil {
		return "", fmt.Errorf("failed to write daily log %s: %w", out, err)
	}
	return out, nil
}

// Run aggregates yesterday's logs immediately and then on every tick of the
// given interval, until ctx is cancelled. A non-positive interval degenerates
// to the single immediate run. onBundle, if non-nil, is invoked with the path
// and date of each bundle produced.
func (a *Aggregator) Run(ctx context.Context, every time.Duration, onBundle func(path, date string)) {
	a.RunYesterday(onBundle)
	if every <= 0 {
		return
	}

	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			log.Println("Daily aggregator stopped.")
			return
		case <-ticker.C:
			a.RunYesterday(onBundle)
		}
	}
}

// RunYesterday aggregates the previous Tehran calendar day and reports the
// result on the process log.
func (a *Aggregator) RunYesterday(onBundle func(path, date string)) {
	date := calendar.YesterdayFileDate(time.Now())
	path, err := a.RunOnce(date)
	if err != nil {
		log.Printf("Daily aggregation for %s failed: %v", date, err)
		return
	}
	if path == "" {
		log.Printf("Daily aggregation for %s: no log files to merge.", date)
		return
	}
	log.Printf("Daily aggregation for %s written to %s", date, path)
	if onBundle != nil {
		onBundle(path, date)
	}
}
