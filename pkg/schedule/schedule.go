// Package schedule models operating time slots and their expected
// utilization against member capacity.
package schedule

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/ChicagoDave/facilityplanner/pkg/spec"
)

const clock = "15:04"

// Block is one operating time slot.
type Block struct {
	Name    string `json:"name"`
	Start   string `json:"start"`
	Finish  string `json:"finish"`
	Segment string `json:"segment"`
	Policy  Policy `json:"policy"`
}

// DefaultBlocks is the day plan built around Indian school runs and office hours.
func DefaultBlocks() []Block {
	return []Block{
		{Name: "Early Birds (Serious Swimmers/Gym)", Start: "06:00", Finish: "09:00", Segment: "Mixed", Policy: PolicyOpen},
		{Name: "Ladies Only / Seniors (Privacy Focus)", Start: "10:30", Finish: "12:30", Segment: "Women/Seniors", Policy: PolicyRestricted},
		{Name: "Dead Zone (Discounts/Maintenance)", Start: "13:00", Finish: "15:30", Segment: "Empty", Policy: PolicyDiscounted},
		{Name: "Junior Coaching Academy (High Revenue)", Start: "16:00", Finish: "18:30", Segment: "Kids", Policy: PolicyPaidCoaching},
		{Name: "Peak Post-Work Rush", Start: "18:30", Finish: "21:00", Segment: "Mixed", Policy: PolicyBookingRequired},
	}
}

// FromSpec converts project-file blocks. An empty list yields DefaultBlocks.
func FromSpec(blocks []spec.ScheduleBlock) []Block {
	if len(blocks) == 0 {
		return DefaultBlocks()
	}
	out := make([]Block, len(blocks))
	for i, b := range blocks {
		out[i] = Block{Name: b.Name, Start: b.Start, Finish: b.Finish, Segment: b.Segment, Policy: Policy(b.Policy)}
	}
	return out
}

// Slot is a planned block with its expected load.
type Slot struct {
	Block
	DurationMinutes   int     `json:"duration_minutes"`
	Utilization       float64 `json:"utilization"`
	ExpectedOccupancy int     `json:"expected_occupancy"`
	Advice            string  `json:"advice,omitempty"`
}

// Plan is the full day.
type Plan struct {
	Slots []Slot `json:"slots"`

	OpenMinutes         int     `json:"open_minutes"`
	WeightedUtilization float64 `json:"weighted_utilization"`
	PeakSlot            string  `json:"peak_slot"`
}

type span struct {
	start, finish int
	index         int
}

// Validate checks times, ordering, policies and overlaps.
func Validate(blocks []Block) error {
	spans := make([]span, 0, len(blocks))
	for i, b := range blocks {
		start, err := minutes(b.Start, fmt.Sprintf("schedule[%d].start", i))
		if err != nil {
			return err
		}
		finish, err := minutes(b.Finish, fmt.Sprintf("schedule[%d].finish", i))
		if err != nil {
			return err
		}
		if finish <= start {
			return &spec.InvalidParameterError{
				Field:    fmt.Sprintf("schedule[%d].finish", i),
				Value:    b.Finish,
				Expected: "after " + b.Start,
			}
		}
		if err := b.Policy.Validate(fmt.Sprintf("schedule[%d].policy", i)); err != nil {
			return err
		}
		spans = append(spans, span{start, finish, i})
	}

	sort.Slice(spans, func(a, b int) bool { return spans[a].start < spans[b].start })
	for i := 1; i < len(spans); i++ {
		prev, cur := spans[i-1], spans[i]
		if cur.start < prev.finish {
			return &spec.InvalidParameterError{
				Field:    fmt.Sprintf("schedule[%d].start", cur.index),
				Value:    blocks[cur.index].Start,
				Expected: fmt.Sprintf("not before %s (end of %q)", blocks[prev.index].Finish, blocks[prev.index].Name),
			}
		}
	}
	return nil
}

// Build validates blocks and estimates occupancy for each against capacity.
// Slots come back in start-time order.
func Build(blocks []Block, capacity int, facility spec.FacilityConcept) (*Plan, error) {
	if err := Validate(blocks); err != nil {
		return nil, err
	}
	if capacity < 0 {
		return nil, &spec.InvalidParameterError{Field: "capacity", Value: capacity, Expected: ">= 0"}
	}

	hasCourt := facility.HasAmenity(spec.Pool) || facility.HasAmenity(spec.SquashOrBadminton)
	plan := &Plan{Slots: make([]Slot, 0, len(blocks))}
	starts := make(map[string]int, len(blocks))

	weighted := 0.0
	peak := -1.0
	for _, b := range blocks {
		start, _ := minutes(b.Start, "")
		finish, _ := minutes(b.Finish, "")
		util := Utilization[b.Policy]

		slot := Slot{
			Block:             b,
			DurationMinutes:   finish - start,
			Utilization:       util,
			ExpectedOccupancy: int(math.Floor(float64(capacity) * util)),
			Advice:            advice(b.Policy, hasCourt),
		}
		plan.Slots = append(plan.Slots, slot)
		starts[b.Start] = start
		plan.OpenMinutes += slot.DurationMinutes
		weighted += util * float64(slot.DurationMinutes)
		if util > peak {
			peak = util
			plan.PeakSlot = b.Name
		}
	}

	sort.SliceStable(plan.Slots, func(i, j int) bool {
		return starts[plan.Slots[i].Start] < starts[plan.Slots[j].Start]
	})
	if plan.OpenMinutes > 0 {
		plan.WeightedUtilization = weighted / float64(plan.OpenMinutes)
	}
	return plan, nil
}

func minutes(hhmm, field string) (int, error) {
	t, err := time.Parse(clock, hhmm)
	if err != nil {
		return 0, &spec.InvalidParameterError{Field: field, Value: hhmm, Expected: "HH:MM (24h)"}
	}
	return t.Hour()*60 + t.Minute(), nil
}
