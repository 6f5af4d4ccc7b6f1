package riwayat

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/manuver-backend/internal/domain"
)

const (
	maxTextLen = 200
	maxItems   = 500
	// clearChunkSize bounds the id array of one DeleteMany statement.
	clearChunkSize = 1000
)

// ItemInput is one row of an item list as submitted by a client.
type ItemInput struct {
	EquipmentName string
	Bay           string
	SwitchState   domain.SwitchState
	Time          string
	Method        string
	IsSeparator   bool
}

// SaveRecordInput holds a record header and its full item list.
// It is used for both creation and edit-mode save.
type SaveRecordInput struct {
	Header domain.RecordHeader
	Items  []ItemInput
}

// Validate checks all fields and collects all errors.
func (i SaveRecordInput) Validate() error {
	var errs domain.FieldErrors

	h := i.Header
	if strings.TrimSpace(h.Date) != "" {
		if _, err := time.Parse(domain.DateLayout, strings.TrimSpace(h.Date)); err != nil {
			errs.Add("date", "must be YYYY-MM-DD")
		}
	}
	for _, f := range []struct{ name, value string }{
		{"title", h.Title},
		{"location", h.Location},
		{"work_supervisor", h.WorkSupervisor},
		{"safety_supervisor", h.SafetySupervisor},
		{"maneuver_supervisor", h.ManeuverSupervisor},
		{"operator", h.Operator},
		{"dispatcher", h.Dispatcher},
	} {
		if utf8.RuneCountInString(f.value) > maxTextLen {
			errs.Add(f.name, "max 200 characters")
		}
	}

	if len(i.Items) > maxItems {
		errs.Add("items", "max 500 items")
	}
	for _, it := range i.Items {
		if _, err := domain.ParseActuationMethod(it.Method); err != nil {
			errs.Add("items.method", err.Error())
			break
		}
	}

	return errs.Err()
}

// header returns the header with surrounding whitespace removed.
func (i SaveRecordInput) header() domain.RecordHeader {
	h := i.Header
	return domain.RecordHeader{
		Title:              strings.TrimSpace(h.Title),
		Date:               strings.TrimSpace(h.Date),
		Location:           strings.TrimSpace(h.Location),
		WorkSupervisor:     strings.TrimSpace(h.WorkSupervisor),
		SafetySupervisor:   strings.TrimSpace(h.SafetySupervisor),
		ManeuverSupervisor: strings.TrimSpace(h.ManeuverSupervisor),
		Operator:           strings.TrimSpace(h.Operator),
		Dispatcher:         strings.TrimSpace(h.Dispatcher),
	}
}

// normalizeItems drops rows that have neither an equipment name nor the
// separator flag and numbers the rest from zero in submission order.
func normalizeItems(recordID uuid.UUID, in []ItemInput) []domain.ActionItem {
	out := make([]domain.ActionItem, 0, len(in))
	for _, it := range in {
		name := strings.TrimSpace(it.EquipmentName)
		if name == "" && !it.IsSeparator {
			continue
		}
		method, _ := domain.ParseActuationMethod(it.Method)
		item := domain.ActionItem{
			RecordID:    recordID,
			OrderIndex:  len(out),
			IsSeparator: it.IsSeparator,
			Method:      method,
		}
		if !it.IsSeparator {
			item.EquipmentName = name
			item.Bay = strings.TrimSpace(it.Bay)
			item.SwitchState = it.SwitchState
			item.Time = strings.TrimSpace(it.Time)
		}
		out = append(out, item)
	}
	return out
}

// ClearInput selects the records removed by ClearAll.
type ClearInput struct {
	RecordIDs []uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i ClearInput) Validate() error {
	var errs domain.FieldErrors
	for _, id := range i.RecordIDs {
		if id == uuid.Nil {
			errs.Add("record_ids", "must not contain empty ids")
			break
		}
	}
	return errs.Err()
}
