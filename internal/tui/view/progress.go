package view

import (
	"math"

	"epicview/internal/workqueue"
)

// Percent returns round(100 * completed / total), or 0 when total is zero.
// The result is always within [0, 100] for well-formed inputs.
func Percent(completed, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(completed) / float64(total)))
}

// TaskPercent returns the completion percentage over a list of tasks.
func TaskPercent(tasks []workqueue.Task) int {
	completed := 0
	for _, t := range tasks {
		if t.Status == workqueue.StatusCompleted {
			completed++
		}
	}
	return Percent(completed, len(tasks))
}

// FeaturePercent is the feature's progress over its own direct tasks only.
func FeaturePercent(f workqueue.Feature) int {
	return TaskPercent(f.Tasks)
}

// EpicPercent is the epic's progress over the union of all tasks belonging
// to all of its features.
func EpicPercent(e workqueue.Epic) int {
	completed, total := 0, 0
	for _, f := range e.Features {
		for _, t := range f.Tasks {
			total++
			if t.Status == workqueue.StatusCompleted {
				completed++
			}
		}
	}
	return Percent(completed, total)
}
