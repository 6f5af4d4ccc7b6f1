// Package report renders a record as the plain-text "INFO MANUVER" message
// operators paste into chat groups.
package report

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/manuver-backend/internal/domain"
)

const (
	defaultTitle    = "JUDUL MANUVER"
	unnamedItem     = "[Alat belum dipilih]"
	noTime          = "--:--"
	noMethod        = "-"
	unknownLocation = "..."
	separatorLine   = "\n-----------------------------------------------------------\n"
)

var (
	weekdays = [...]string{"Minggu", "Senin", "Selasa", "Rabu", "Kamis", "Jumat", "Sabtu"}
	months   = [...]string{
		"Januari", "Februari", "Maret", "April", "Mei", "Juni",
		"Juli", "Agustus", "September", "Oktober", "November", "Desember",
	}
)

// Render returns the report text for rec and its ordered items.
func Render(rec domain.Record, items []domain.ActionItem) string {
	var b strings.Builder

	location := NormalizeSubstation(rec.Location)
	if location == "" {
		location = unknownLocation
	}
	title := strings.TrimSpace(rec.Title)
	if title == "" {
		title = defaultTitle
	}

	fmt.Fprintf(&b, "*INFO MANUVER GI %s*\n", location)
	fmt.Fprintf(&b, "Hari/Tanggal : %s\n\n", LongDate(rec))
	b.WriteString(title)
	b.WriteString("\n\nUraian Manuver:\n")

	rows := make([]string, len(items))
	for i, it := range items {
		rows[i] = itemLine(it)
	}
	b.WriteString(strings.Join(rows, "\n"))

	b.WriteString("\n\nSebelum\nTegangan Bus A : \nTegangan Bus B : \n")
	b.WriteString("\nSetelah\nTegangan Bus A : \nTegangan Bus B : \n")
	b.WriteString("\nCatatan:\n\n")
	b.WriteString(strings.Join(roleLines(rec), "\n"))

	return b.String()
}

func itemLine(it domain.ActionItem) string {
	if it.IsSeparator {
		return separatorLine
	}
	name := strings.TrimSpace(it.EquipmentName)
	if name == "" {
		name = unnamedItem
	}
	t := strings.TrimSpace(it.Time)
	if t == "" {
		t = noTime
	}
	method := strings.TrimSpace(it.Method.String())
	if method == "" {
		method = noMethod
	}
	return fmt.Sprintf("%s %s %s (%s)", name, it.SwitchState.Symbol(), t, method)
}

// roleLines lists the non-empty supervisory roles with their short labels.
func roleLines(rec domain.Record) []string {
	labelled := []struct{ label, value string }{
		{"PP", rec.WorkSupervisor},
		{"PK3", rec.SafetySupervisor},
		{"PM", rec.ManeuverSupervisor},
		{"Pelaksana", rec.Operator},
		{"Dispatcher", rec.Dispatcher},
	}
	lines := make([]string, 0, len(labelled))
	for _, l := range labelled {
		if v := strings.TrimSpace(l.value); v != "" {
			lines = append(lines, l.label+": "+v)
		}
	}
	return lines
}

// NormalizeSubstation upper-cases a substation name, strips a leading
// "GARDU INDUK" or "GI" word and collapses whitespace, so "gi  batang" and
// "Gardu Induk Batang" both yield "BATANG".
func NormalizeSubstation(name string) string {
	fields := strings.Fields(strings.ToUpper(name))
	switch {
	case len(fields) >= 2 && fields[0] == "GARDU" && fields[1] == "INDUK":
		fields = fields[2:]
	case len(fields) >= 1 && fields[0] == "GARDUINDUK":
		fields = fields[1:]
	case len(fields) >= 1 && fields[0] == "GI":
		fields = fields[1:]
	}
	return strings.Join(fields, " ")
}

// LongDate formats the record date as "Senin, 23 Maret 2026". Empty or
// malformed dates yield "-".
func LongDate(rec domain.Record) string {
	d, ok := rec.ParsedDate()
	if !ok {
		return "-"
	}
	return fmt.Sprintf("%s, %d %s %d", weekdays[d.Weekday()], d.Day(), months[d.Month()-1], d.Year())
}
