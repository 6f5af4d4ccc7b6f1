package rest

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/manuver-backend/internal/domain"
	"github.com/heartmarshall/manuver-backend/internal/service/riwayat"
)

type saveRecordRequest struct {
	Title              string        `json:"title"`
	Date               string        `json:"date"`
	Location           string        `json:"location"`
	WorkSupervisor     string        `json:"workSupervisor"`
	SafetySupervisor   string        `json:"safetySupervisor"`
	ManeuverSupervisor string        `json:"maneuverSupervisor"`
	Operator           string        `json:"operator"`
	Dispatcher         string        `json:"dispatcher"`
	Items              []itemRequest `json:"items"`
}

type itemRequest struct {
	EquipmentName string             `json:"equipmentName"`
	Bay           string             `json:"bay"`
	SwitchState   domain.SwitchState `json:"switchState"`
	Time          string             `json:"time"`
	Method        string             `json:"method"`
	IsSeparator   bool               `json:"isSeparator"`
}

func (req saveRecordRequest) toInput() riwayat.SaveRecordInput {
	in := riwayat.SaveRecordInput{
		Header: domain.RecordHeader{
			Title:              req.Title,
			Date:               req.Date,
			Location:           req.Location,
			WorkSupervisor:     req.WorkSupervisor,
			SafetySupervisor:   req.SafetySupervisor,
			ManeuverSupervisor: req.ManeuverSupervisor,
			Operator:           req.Operator,
			Dispatcher:         req.Dispatcher,
		},
		Items: make([]riwayat.ItemInput, len(req.Items)),
	}
	for i, it := range req.Items {
		in.Items[i] = riwayat.ItemInput{
			EquipmentName: it.EquipmentName,
			Bay:           it.Bay,
			SwitchState:   it.SwitchState,
			Time:          it.Time,
			Method:        it.Method,
			IsSeparator:   it.IsSeparator,
		}
	}
	return in
}

type recordResponse struct {
	ID                 uuid.UUID `json:"id"`
	Gardu              string    `json:"gardu"`
	Title              string    `json:"title"`
	Date               string    `json:"date"`
	Location           string    `json:"location"`
	WorkSupervisor     string    `json:"workSupervisor"`
	SafetySupervisor   string    `json:"safetySupervisor"`
	ManeuverSupervisor string    `json:"maneuverSupervisor"`
	Operator           string    `json:"operator"`
	Dispatcher         string    `json:"dispatcher"`
	CreatedAt          time.Time `json:"createdAt"`
	Bays               []string  `json:"bays,omitempty"`
}

type itemResponse struct {
	ID            uuid.UUID          `json:"id"`
	EquipmentName string             `json:"equipmentName"`
	Bay           string             `json:"bay,omitempty"`
	SwitchState   domain.SwitchState `json:"switchState"`
	Time          string             `json:"time"`
	Method        string             `json:"method"`
	OrderIndex    int                `json:"orderIndex"`
	IsSeparator   bool               `json:"isSeparator"`
}

type recordDetailResponse struct {
	recordResponse
	Items []itemResponse `json:"items"`
}

type viewResponse struct {
	Records     []recordResponse `json:"records"`
	Total       int              `json:"total"`
	HasMore     bool             `json:"hasMore"`
	Query       string           `json:"query"`
	Searching   bool             `json:"searching"`
	BayFilter   string           `json:"bayFilter"`
	BayTags     []string         `json:"bayTags"`
	Sort        string           `json:"sort"`
	Pages       int              `json:"pages"`
	CanUndo     bool             `json:"canUndo"`
	Undoing     bool             `json:"undoing"`
	UndoDepth   int              `json:"undoDepth"`
	RecordCount int              `json:"recordCount"`
}

func toRecordResponse(r domain.Record) recordResponse {
	return recordResponse{
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

func toRecordDetail(rec *domain.RecordWithItems) recordDetailResponse {
	out := recordDetailResponse{
		recordResponse: toRecordResponse(rec.Record),
		Items:          make([]itemResponse, len(rec.Items)),
	}
	for i, it := range rec.Items {
		out.Items[i] = itemResponse{
			ID:            it.ID,
			EquipmentName: it.EquipmentName,
			Bay:           it.Bay,
			SwitchState:   it.SwitchState,
			Time:          it.Time,
			Method:        it.Method.String(),
			OrderIndex:    it.OrderIndex,
			IsSeparator:   it.IsSeparator,
		}
	}
	return out
}

func toViewResponse(v riwayat.View) viewResponse {
	out := viewResponse{
		Records:     make([]recordResponse, len(v.Records)),
		Total:       v.Total,
		HasMore:     v.HasMore,
		Query:       v.Query,
		Searching:   v.Searching,
		BayFilter:   v.BayFilter,
		BayTags:     v.BayTags,
		Sort:        v.Sort.String(),
		Pages:       v.Pages,
		CanUndo:     v.CanUndo,
		Undoing:     v.Undoing,
		UndoDepth:   v.UndoDepth,
		RecordCount: v.RecordCount,
	}
	if out.BayTags == nil {
		out.BayTags = []string{}
	}
	for i, r := range v.Records {
		out.Records[i] = toRecordResponse(r)
		out.Records[i].Bays = v.Bays[r.ID]
	}
	return out
}
