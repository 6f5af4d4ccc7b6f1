package report

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/heartmarshall/manuver-backend/internal/domain"
)

func TestRender_FullRecord(t *testing.T) {
	t.Parallel()

	rec := domain.Record{
		Title:              "Pemeliharaan Trafo 2",
		Date:               "2026-03-23",
		Location:           "GI Batang",
		WorkSupervisor:     "Budi",
		SafetySupervisor:   " ",
		ManeuverSupervisor: "Andi",
		Operator:           "Rudi",
		Dispatcher:         "Dewi",
	}
	items := []domain.ActionItem{
		{EquipmentName: "PMT TRAFO 2", SwitchState: domain.SwitchOpen, Time: "08.15", Method: domain.MethodRemote},
		{IsSeparator: true},
		{EquipmentName: "PMS BUS A TRAFO 2", SwitchState: domain.SwitchClosed, Time: "08.20", Method: domain.MethodLocal},
		{},
	}

	want := strings.Join([]string{
		"*INFO MANUVER GI BATANG*",
		"Hari/Tanggal : Senin, 23 Maret 2026",
		"",
		"Pemeliharaan Trafo 2",
		"",
		"Uraian Manuver:",
		"PMT TRAFO 2 # 08.15 (R.ACC)",
		"",
		"-----------------------------------------------------------",
		"",
		"PMS BUS A TRAFO 2 // 08.20 (Local)",
		"[Alat belum dipilih] # --:-- (-)",
		"",
		"Sebelum",
		"Tegangan Bus A : ",
		"Tegangan Bus B : ",
		"",
		"Setelah",
		"Tegangan Bus A : ",
		"Tegangan Bus B : ",
		"",
		"Catatan:",
		"",
		"PP: Budi",
		"PM: Andi",
		"Pelaksana: Rudi",
		"Dispatcher: Dewi",
	}, "\n")

	if diff := cmp.Diff(want, Render(rec, items)); diff != "" {
		t.Errorf("Render() mismatch (-want +got):\n%s", diff)
	}
}

func TestRender_Defaults(t *testing.T) {
	t.Parallel()

	got := Render(domain.Record{}, nil)

	assert.True(t, strings.HasPrefix(got, "*INFO MANUVER GI ...*\nHari/Tanggal : -\n\nJUDUL MANUVER\n"))
	assert.True(t, strings.HasSuffix(got, "Catatan:\n\n"))
}

func TestNormalizeSubstation(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"GI Batang":          "BATANG",
		"gi  gi batang":      "GI BATANG",
		"Gardu Induk Cawang": "CAWANG",
		"garduinduk cawang":  "CAWANG",
		"  Giri   Mulya ":    "GIRI MULYA",
		"":                   "",
		"GI":                 "",
		"Kebon Jeruk":        "KEBON JERUK",
	}
	for in, want := range tests {
		assert.Equal(t, want, NormalizeSubstation(in), "input %q", in)
	}
}

func TestLongDate(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Minggu, 1 Desember 2024", LongDate(domain.Record{Date: "2024-12-01"}))
	assert.Equal(t, "Jumat, 14 Agustus 2026", LongDate(domain.Record{Date: "2026-08-14"}))
	assert.Equal(t, "-", LongDate(domain.Record{Date: "23/03/2026"}))
}
