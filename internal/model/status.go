package model

// TaskState represents the lifecycle state of a download task
type TaskState string

const (
	// TaskStateIdle means the task is created but its goroutine has not run yet
	TaskStateIdle TaskState = "Idle"

	// TaskStateResolving means metadata (title, item count) is being resolved
	TaskStateResolving TaskState = "Resolving"

	// TaskStateTransferring means the media-fetch service is downloading
	TaskStateTransferring TaskState = "Transferring"

	// TaskStateCompleted means the task finished successfully
	TaskStateCompleted TaskState = "Completed"

	// TaskStateCancelled means the task was stopped by user
	TaskStateCancelled TaskState = "Cancelled"

	// TaskStateFailed means the task failed with an error
	TaskStateFailed TaskState = "Failed"

	// TaskStateCleanedUp means the task left the registry and released the UI
	TaskStateCleanedUp TaskState = "CleanedUp"
)

// stateOrder ranks states; a task only ever moves to a higher rank.
var stateOrder = map[TaskState]int{
	TaskStateIdle:         0,
	TaskStateResolving:    1,
	TaskStateTransferring: 2,
	TaskStateCompleted:    3,
	TaskStateCancelled:    3,
	TaskStateFailed:       3,
	TaskStateCleanedUp:    4,
}

// String returns the string representation of TaskState
func (ts TaskState) String() string {
	return string(ts)
}

// IsActive returns true while the task has not reached an outcome
func (ts TaskState) IsActive() bool {
	return ts == TaskStateIdle || ts == TaskStateResolving || ts == TaskStateTransferring
}

// IsFinished returns true if the task reached a terminal outcome
func (ts TaskState) IsFinished() bool {
	return ts == TaskStateCompleted || ts == TaskStateCancelled || ts == TaskStateFailed || ts == TaskStateCleanedUp
}

// CanTransition reports whether a task may move from ts to next.
// Terminal outcomes are mutually exclusive and may only be followed by CleanedUp.
func (ts TaskState) CanTransition(next TaskState) bool {
	from, ok := stateOrder[ts]
	if !ok {
		return false
	}
	to, ok := stateOrder[next]
	if !ok {
		return false
	}
	return to > from
}
