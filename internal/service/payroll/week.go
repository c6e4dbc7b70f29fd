package payroll

import (
	"fmt"
	"sort"
	"time"

	"github.com/nominalabs/nomina-backend-go/internal/domain/schedule"
)

// shiftHours is one shift resolved against the schedule catalog, with
// its duration reduced to minutes on the shift date's timeline.
type shiftHours struct {
	date         time.Time
	totalMinutes int
	nightMinutes int
}

// weeklyWindow buckets one employee's shifts into a Monday-anchored
// week. Hours accumulated against the weekly threshold reset at each
// window boundary.
type weeklyWindow struct {
	monday       time.Time
	shifts       []shiftHours
	restHonored  bool
	extraRestDay bool
}

// mondayOf returns the Monday anchoring the week containing date.
func mondayOf(date time.Time) time.Time {
	offset := (int(date.Weekday()) + 6) % 7
	return date.AddDate(0, 0, -offset)
}

// buildWeeks resolves shifts against the schedule catalog and folds
// them into date-ordered weekly windows. A shift referencing an unknown
// schedule contributes zero minutes and a warning; a malformed segment
// is skipped with a warning while the schedule's remaining segments
// still count. Either way the shift counts as an assignment for the
// rest-day and shift-count checks. Post-midnight minutes stay on the
// origin date's week.
func buildWeeks(
	assignments []*schedule.ShiftAssignment,
	schedules map[string]*schedule.ScheduleDefinition,
	restWeekday time.Weekday,
) ([]weeklyWindow, []string) {
	sorted := make([]*schedule.ShiftAssignment, len(assignments))
	copy(sorted, assignments)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].WorkDate.Before(sorted[j].WorkDate)
	})

	var warnings []string
	var weeks []weeklyWindow
	byMonday := make(map[string]int)

	for _, a := range sorted {
		sh := shiftHours{date: a.WorkDate}

		def, ok := schedules[a.ScheduleID]
		if !ok {
			warnings = append(warnings, fmt.Sprintf(
				"shift on %s references unknown schedule %s, counted as zero hours",
				a.WorkDate.Format(dateKeyLayout), a.ScheduleID))
		} else {
			for _, seg := range def.Segments {
				m, err := seg.Minutes()
				if err != nil {
					warnings = append(warnings, fmt.Sprintf(
						"shift on %s has a malformed segment in schedule %q, segment skipped",
						a.WorkDate.Format(dateKeyLayout), def.Name))
					continue
				}
				n, _ := seg.NightMinutes()
				sh.totalMinutes += m
				sh.nightMinutes += n
			}
		}

		monday := mondayOf(a.WorkDate)
		key := monday.Format(dateKeyLayout)
		idx, ok := byMonday[key]
		if !ok {
			idx = len(weeks)
			byMonday[key] = idx
			weeks = append(weeks, weeklyWindow{monday: monday})
		}
		weeks[idx].shifts = append(weeks[idx].shifts, sh)
	}

	for i := range weeks {
		w := &weeks[i]
		w.restHonored = true
		for _, sh := range w.shifts {
			if sh.date.Weekday() == restWeekday {
				w.restHonored = false
				break
			}
		}
		w.extraRestDay = !w.restHonored && len(w.shifts) >= 6
	}

	return weeks, warnings
}
