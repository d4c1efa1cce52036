package itinerary

import (
	"errors"
	"fmt"

	"github.com/tripforge/travel-planner-go/internal/models"
)

// ErrSourceIndexOutOfRange is returned when the source position does not
// address an activity in the source day.
var ErrSourceIndexOutOfRange = errors.New("itinerary: source index out of range")

// ErrDayNotFound is returned when the source day number matches no day plan.
var ErrDayNotFound = errors.New("itinerary: day not found")

// dayIndex resolves a day number (a stable label, not a position) to its
// slice index, or -1.
func dayIndex(days []models.DayPlan, dayNumber int) int {
	for i, d := range days {
		if d.Day == dayNumber {
			return i
		}
	}
	return -1
}

func clamp(i, max int) int {
	if i < 0 {
		return 0
	}
	if i > max {
		return max
	}
	return i
}

// RelocateActivity applies a single drag-and-drop move of one activity and
// returns the resulting itinerary.
//
// Days are addressed by day number, activities by position within their
// day. When the destination day is absent (the drop landed outside any
// list) the move is a no-op and the input is returned unchanged. A missing
// source day or invalid source index is a caller error.
//
// The input value is never mutated: the returned itinerary rebuilds the
// day-plan slice and the touched activity slices while sharing everything
// else, so callers holding the previous value keep a consistent snapshot.
// Day numbers, hotels, transport legs and summary.totalCost are untouched.
func RelocateActivity(it models.Itinerary, srcDay, srcIdx, dstDay, dstIdx int) (models.Itinerary, error) {
	srcPos := dayIndex(it.Itinerary, srcDay)
	if srcPos < 0 {
		return it, fmt.Errorf("%w: source day %d", ErrDayNotFound, srcDay)
	}
	dstPos := dayIndex(it.Itinerary, dstDay)
	if dstPos < 0 {
		// Drag cancelled or dropped outside any list.
		return it, nil
	}
	src := it.Itinerary[srcPos]
	if srcIdx < 0 || srcIdx >= len(src.Activities) {
		return it, fmt.Errorf("%w: index %d in day %d (len %d)",
			ErrSourceIndexOutOfRange, srcIdx, srcDay, len(src.Activities))
	}

	out := it
	out.Itinerary = make([]models.DayPlan, len(it.Itinerary))
	copy(out.Itinerary, it.Itinerary)

	moved := src.Activities[srcIdx]

	// Remove from the source day; later activities shift left by one.
	shortened := make([]models.Activity, 0, len(src.Activities)-1)
	shortened = append(shortened, src.Activities[:srcIdx]...)
	shortened = append(shortened, src.Activities[srcIdx+1:]...)

	if srcPos == dstPos {
		// Same-day move: insert into the already-shortened sequence.
		// Inserting against the original sequence would be off by one
		// when moving an activity toward the end of its day.
		i := clamp(dstIdx, len(shortened))
		merged := make([]models.Activity, 0, len(shortened)+1)
		merged = append(merged, shortened[:i]...)
		merged = append(merged, moved)
		merged = append(merged, shortened[i:]...)
		day := src
		day.Activities = merged
		out.Itinerary[srcPos] = day
		return out, nil
	}

	srcOut := src
	srcOut.Activities = shortened
	out.Itinerary[srcPos] = srcOut

	dst := it.Itinerary[dstPos]
	i := clamp(dstIdx, len(dst.Activities))
	inserted := make([]models.Activity, 0, len(dst.Activities)+1)
	inserted = append(inserted, dst.Activities[:i]...)
	inserted = append(inserted, moved)
	inserted = append(inserted, dst.Activities[i:]...)
	dstOut := dst
	dstOut.Activities = inserted
	out.Itinerary[dstPos] = dstOut

	return out, nil
}

// TotalActivities counts activities across all days.
func TotalActivities(it models.Itinerary) int {
	n := 0
	for _, d := range it.Itinerary {
		n += len(d.Activities)
	}
	return n
}
