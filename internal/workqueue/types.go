package workqueue

import "fmt"

// Status is the lifecycle state of an epic, feature, or task.
// The four known values are the orchestrator's contract; anything else is
// carried through untouched and rendered with the neutral treatment.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusBlocked    Status = "blocked"
)

// Known reports whether s is one of the four recognized status values.
func (s Status) Known() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted, StatusBlocked:
		return true
	}
	return false
}

// Task is a leaf work item. Its lifecycle is fully owned by the external
// orchestrator; the dashboard only reads it.
type Task struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Status      Status `json:"status"`
	RetryBudget int    `json:"retry_budget"`
	RetriesUsed int    `json:"retries_used"`
}

// Feature groups an ordered list of tasks under an epic.
// Priority is lower-is-more-urgent; only 0 and 1 have distinct visual
// treatment downstream.
type Feature struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Priority int    `json:"priority"`
	Status   Status `json:"status"`
	Tasks    []Task `json:"tasks"`
}

// Epic is the top level of the hierarchy.
type Epic struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Status      Status    `json:"status"`
	Features    []Feature `json:"features"`
}

// Snapshot is one point-in-time view of the whole work queue.
type Snapshot struct {
	Epics []Epic `json:"epics"`
}

// Empty reports whether the snapshot contains no epics at all.
func (s *Snapshot) Empty() bool {
	return s == nil || len(s.Epics) == 0
}

// Counts returns the total number of epics, features, and tasks.
func (s *Snapshot) Counts() (epics, features, tasks int) {
	if s == nil {
		return 0, 0, 0
	}
	epics = len(s.Epics)
	for _, e := range s.Epics {
		features += len(e.Features)
		for _, f := range e.Features {
			tasks += len(f.Tasks)
		}
	}
	return epics, features, tasks
}

// Validate reports problems with the snapshot that the orchestrator should
// not have produced: duplicate sibling IDs and retry counters outside their
// budget. The dashboard renders such data anyway; Validate exists so the
// check command can surface it.
func (s *Snapshot) Validate() []error {
	if s == nil {
		return nil
	}
	var errs []error
	epicIDs := make(map[string]bool)
	for _, e := range s.Epics {
		if epicIDs[e.ID] {
			errs = append(errs, fmt.Errorf("duplicate epic id %q", e.ID))
		}
		epicIDs[e.ID] = true

		featureIDs := make(map[string]bool)
		for _, f := range e.Features {
			if featureIDs[f.ID] {
				errs = append(errs, fmt.Errorf("epic %q: duplicate feature id %q", e.ID, f.ID))
			}
			featureIDs[f.ID] = true
			if f.Priority < 0 {
				errs = append(errs, fmt.Errorf("feature %q: negative priority %d", f.ID, f.Priority))
			}

			taskIDs := make(map[string]bool)
			for _, t := range f.Tasks {
				if taskIDs[t.ID] {
					errs = append(errs, fmt.Errorf("feature %q: duplicate task id %q", f.ID, t.ID))
				}
				taskIDs[t.ID] = true
				if t.RetryBudget < 0 || t.RetriesUsed < 0 {
					errs = append(errs, fmt.Errorf("task %q: negative retry counter", t.ID))
				} else if t.RetriesUsed > t.RetryBudget {
					errs = append(errs, fmt.Errorf("task %q: retries_used %d exceeds retry_budget %d", t.ID, t.RetriesUsed, t.RetryBudget))
				}
			}
		}
	}
	return errs
}
