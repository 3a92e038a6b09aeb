package entity

import "time"

// RotationPattern maps calendar dates onto rotation slots. For a given date,
// the EM slot is the floored-modulo day difference from ReferenceDate and
// the DM slot runs DMOffset positions ahead. The formula is authoritative
// for any date, past or future; no materialized table is needed.
type RotationPattern struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	ReferenceDate time.Time `json:"reference_date"`
	Slots         int       `json:"slots"`
	DMOffset      int       `json:"dm_offset"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`

	// Generation settings.
	AutoGenerate      bool       `json:"auto_generate"`
	GenerateDaysAhead int        `json:"generate_days_ahead"`
	LastGeneratedAt   *time.Time `json:"last_generated_at,omitempty"`
}

// SlotsFor returns the EM and DM rotation slots on duty for the given date.
// The day difference may be negative for dates before the reference date;
// the modulo is normalized so slots always land in [0, Slots).
func (p *RotationPattern) SlotsFor(date time.Time) (emSlot, dmSlot int) {
	days := daysBetween(p.ReferenceDate, date)

	emSlot = ((days % p.Slots) + p.Slots) % p.Slots
	dmSlot = (emSlot + p.DMOffset) % p.Slots
	return emSlot, dmSlot
}

// Sequence materializes the slot sequence for the given number of days
// starting at the reference date. Debug/inspection helper only; SlotsFor is
// the authoritative rule.
func (p *RotationPattern) Sequence(days int) (emSeq, dmSeq []int) {
	emSeq = make([]int, 0, days)
	dmSeq = make([]int, 0, days)
	for day := 0; day < days; day++ {
		em, dm := p.SlotsFor(p.ReferenceDate.AddDate(0, 0, day))
		emSeq = append(emSeq, em)
		dmSeq = append(dmSeq, dm)
	}
	return emSeq, dmSeq
}

// daysBetween returns the signed number of whole days from a to b, both
// normalized to UTC midnight.
func daysBetween(a, b time.Time) int {
	a = time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	b = time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}
