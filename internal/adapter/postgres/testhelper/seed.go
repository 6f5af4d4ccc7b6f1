package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/manuver-backend/internal/domain"
)

// UniqueGardu returns a substation code that no other test uses, so tests
// sharing the container can scope their reads.
func UniqueGardu() string {
	return "GI-" + uuid.New().String()[:8]
}

// SeedRecord inserts a record header for gardu and returns it.
func SeedRecord(t *testing.T, pool *pgxpool.Pool, gardu, title, date string) domain.Record {
	t.Helper()

	rec := domain.Record{
		ID:                 uuid.New(),
		Gardu:              gardu,
		Title:              title,
		Date:               date,
		Location:           "GARDU INDUK " + gardu,
		WorkSupervisor:     "Budi",
		SafetySupervisor:   "Sari",
		ManeuverSupervisor: "Andi",
		Operator:           "Rudi",
		Dispatcher:         "Dewi",
		CreatedAt:          time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO riwayat_manuver (id, kode_gardu, judul_manuver, tanggal, gardu_induk,
		     pengawas_pekerjaan, pengawas_k3, pengawas_manuver, pelaksana_manuver, dispatcher, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		rec.ID, rec.Gardu, rec.Title, rec.Date, rec.Location,
		rec.WorkSupervisor, rec.SafetySupervisor, rec.ManeuverSupervisor, rec.Operator, rec.Dispatcher,
		rec.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedRecord: %v", err)
	}
	return rec
}

// SeedItem inserts one action item at position order and returns it.
func SeedItem(t *testing.T, pool *pgxpool.Pool, recordID uuid.UUID, name string, order int) domain.ActionItem {
	t.Helper()

	it := domain.ActionItem{
		ID:            uuid.New(),
		RecordID:      recordID,
		EquipmentName: name,
		SwitchState:   domain.SwitchClosed,
		Time:          "08:00",
		Method:        domain.DefaultMethod,
		OrderIndex:    order,
		CreatedAt:     time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO riwayat_items (id, riwayat_id, nama_peralatan, posisi_switch, waktu, act, order_index, is_separator, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, false, $8)`,
		it.ID, it.RecordID, it.EquipmentName, bool(it.SwitchState), it.Time, string(it.Method), it.OrderIndex, it.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedItem: %v", err)
	}
	return it
}
