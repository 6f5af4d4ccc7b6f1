package riwayat

import (
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/heartmarshall/manuver-backend/internal/domain"
)

const (
	recordsTable = "riwayat_manuver"
	itemsTable   = "riwayat_items"
)

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

var recordColumns = []string{
	"id", "kode_gardu", "judul_manuver", "tanggal", "gardu_induk",
	"pengawas_pekerjaan", "pengawas_k3", "pengawas_manuver",
	"pelaksana_manuver", "dispatcher", "created_at",
}

const itemColumnList = `id, riwayat_id, nama_peralatan, bay, posisi_switch, waktu, act, order_index, is_separator, created_at`

type recordRow struct {
	ID                 uuid.UUID `db:"id"`
	Gardu              string    `db:"kode_gardu"`
	Title              string    `db:"judul_manuver"`
	Date               string    `db:"tanggal"`
	Location           string    `db:"gardu_induk"`
	WorkSupervisor     string    `db:"pengawas_pekerjaan"`
	SafetySupervisor   string    `db:"pengawas_k3"`
	ManeuverSupervisor string    `db:"pengawas_manuver"`
	Operator           string    `db:"pelaksana_manuver"`
	Dispatcher         string    `db:"dispatcher"`
	CreatedAt          time.Time `db:"created_at"`
}

func (r recordRow) toDomain() domain.Record {
	return domain.Record{
		ID:                 r.ID,
		Gardu:              r.Gardu,
		Title:              r.Title,
		Date:               r.Date,
		Location:           r.Location,
		WorkSupervisor:     r.WorkSupervisor,
		SafetySupervisor:   r.SafetySupervisor,
		ManeuverSupervisor: r.ManeuverSupervisor,
		Operator:           r.Operator,
		Dispatcher:         r.Dispatcher,
		CreatedAt:          r.CreatedAt,
	}
}

type itemRow struct {
	ID            uuid.UUID `db:"id"`
	RecordID      uuid.UUID `db:"riwayat_id"`
	EquipmentName string    `db:"nama_peralatan"`
	Bay           *string   `db:"bay"`
	SwitchState   bool      `db:"posisi_switch"`
	Time          string    `db:"waktu"`
	Method        string    `db:"act"`
	OrderIndex    int       `db:"order_index"`
	IsSeparator   bool      `db:"is_separator"`
	CreatedAt     time.Time `db:"created_at"`
}

func (r itemRow) toDomain() domain.ActionItem {
	it := domain.ActionItem{
		ID:            r.ID,
		RecordID:      r.RecordID,
		EquipmentName: r.EquipmentName,
		SwitchState:   domain.SwitchState(r.SwitchState),
		Time:          r.Time,
		Method:        domain.ActuationMethod(r.Method),
		OrderIndex:    r.OrderIndex,
		IsSeparator:   r.IsSeparator,
		CreatedAt:     r.CreatedAt,
	}
	if r.Bay != nil {
		it.Bay = *r.Bay
	}
	return it
}

// nilIfEmpty returns nil for empty strings so that nullable TEXT columns
// store NULL.
func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
