package domain

import (
	"time"

	"github.com/google/uuid"
)

// DateLayout is the wire and storage layout of Record.Date.
const DateLayout = "2006-01-02"

// Record is the header of one logged maneuver session.
type Record struct {
	ID                 uuid.UUID
	Gardu              string
	Title              string
	Date               string
	Location           string
	WorkSupervisor     string
	SafetySupervisor   string
	ManeuverSupervisor string
	Operator           string
	Dispatcher         string
	CreatedAt          time.Time
}

// ParsedDate parses Date as a calendar date. ok is false for malformed values.
func (r *Record) ParsedDate() (t time.Time, ok bool) {
	t, err := time.Parse(DateLayout, r.Date)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// RoleFields returns the five supervisory role values in display order.
func (r *Record) RoleFields() []string {
	return []string{
		r.WorkSupervisor,
		r.SafetySupervisor,
		r.ManeuverSupervisor,
		r.Operator,
		r.Dispatcher,
	}
}

// RecordHeader holds the editable scalar fields of a Record.
type RecordHeader struct {
	Title              string
	Date               string
	Location           string
	WorkSupervisor     string
	SafetySupervisor   string
	ManeuverSupervisor string
	Operator           string
	Dispatcher         string
}

// Header extracts the editable fields.
func (r *Record) Header() RecordHeader {
	return RecordHeader{
		Title:              r.Title,
		Date:               r.Date,
		Location:           r.Location,
		WorkSupervisor:     r.WorkSupervisor,
		SafetySupervisor:   r.SafetySupervisor,
		ManeuverSupervisor: r.ManeuverSupervisor,
		Operator:           r.Operator,
		Dispatcher:         r.Dispatcher,
	}
}

// Apply replaces all editable fields with h.
func (r *Record) Apply(h RecordHeader) {
	r.Title = h.Title
	r.Date = h.Date
	r.Location = h.Location
	r.WorkSupervisor = h.WorkSupervisor
	r.SafetySupervisor = h.SafetySupervisor
	r.ManeuverSupervisor = h.ManeuverSupervisor
	r.Operator = h.Operator
	r.Dispatcher = h.Dispatcher
}

// ActionItem is one equipment state change within a record.
// Separator items carry no equipment data and only mark a visual break.
type ActionItem struct {
	ID            uuid.UUID
	RecordID      uuid.UUID
	EquipmentName string
	Bay           string
	SwitchState   SwitchState
	Time          string
	Method        ActuationMethod
	OrderIndex    int
	IsSeparator   bool
	CreatedAt     time.Time
}

// RecordWithItems bundles a header with its ordered items.
type RecordWithItems struct {
	Record Record
	Items  []ActionItem
}
