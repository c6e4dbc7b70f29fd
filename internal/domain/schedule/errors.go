package schedule

import "errors"

var (
	ErrScheduleNotFound     = errors.New("schedule not found")
	ErrScheduleInUse        = errors.New("schedule has past assignments and its segments cannot change")
	ErrAssignmentNotFound   = errors.New("shift assignment not found")
	ErrShiftAlreadyAssigned = errors.New("employee already has a shift on this date")
)
