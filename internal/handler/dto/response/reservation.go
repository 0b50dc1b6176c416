package response

import (
	"time"

	"coworking-reservations/internal/usecase/queries"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

type ReservationResponse struct {
	ID                     uuid.UUID       `json:"id"`
	UserID                 uuid.UUID       `json:"userId"`
	SpaceType              string          `json:"spaceType"`
	StartDate              civil.Date      `json:"startDate"`
	EndDate                civil.Date      `json:"endDate"`
	StartTime              *civil.Time     `json:"startTime,omitempty"`
	EndTime                *civil.Time     `json:"endTime,omitempty"`
	NumberOfPeople         int             `json:"numberOfPeople"`
	Status                 string          `json:"status"`
	PresenceOutcome        *string         `json:"presenceOutcome,omitempty"`
	ReservationType        string          `json:"reservationType"`
	TotalPrice             decimal.Decimal `json:"totalPrice"`
	DepositAuthorizationID *string         `json:"depositAuthorizationId,omitempty"`
	DepositAmount          decimal.Decimal `json:"depositAmount"`
	DepositStatus          string          `json:"depositStatus"`
	CancelReason           *string         `json:"cancelReason,omitempty"`
	IsAdminBooking         bool            `json:"isAdminBooking"`
	Note                   *string         `json:"note,omitempty"`
	Version                int             `json:"version"`
	CreatedAt              time.Time       `json:"createdAt"`
	UpdatedAt              time.Time       `json:"updatedAt"`
}

type ReservationListResponse struct {
	ID              uuid.UUID       `json:"id"`
	SpaceType       string          `json:"spaceType"`
	StartDate       civil.Date      `json:"startDate"`
	EndDate         civil.Date      `json:"endDate"`
	StartTime       *civil.Time     `json:"startTime,omitempty"`
	EndTime         *civil.Time     `json:"endTime,omitempty"`
	NumberOfPeople  int             `json:"numberOfPeople"`
	Status          string          `json:"status"`
	ReservationType string          `json:"reservationType"`
	TotalPrice      decimal.Decimal `json:"totalPrice"`
	CreatedAt       time.Time       `json:"createdAt"`
}

type ReservationPageResponse struct {
	Items      []*ReservationListResponse `json:"items"`
	NextCursor *string                    `json:"nextCursor,omitempty"`
}

type TriageResponse struct {
	Today  []*ReservationResponse `json:"today"`
	Future []*ReservationResponse `json:"future"`
	Past   []*ReservationResponse `json:"past"`
}

func FromReservationView(v *queries.ReservationView) *ReservationResponse {
	var resp ReservationResponse
	// field names match one to one
	_ = copier.Copy(&resp, v)
	return &resp
}

func FromReservationListItem(item *queries.ReservationListItem) *ReservationListResponse {
	var resp ReservationListResponse
	_ = copier.Copy(&resp, item)
	return &resp
}

func FromReservationPage(items []*queries.ReservationListItem, next *queries.Cursor) *ReservationPageResponse {
	resp := &ReservationPageResponse{Items: make([]*ReservationListResponse, len(items))}
	for i, it := range items {
		resp.Items[i] = FromReservationListItem(it)
	}
	if next != nil && next.After != "" {
		after := next.After
		resp.NextCursor = &after
	}
	return resp
}

func FromTriageView(v *queries.TriageView) *TriageResponse {
	return &TriageResponse{
		Today:  fromViews(v.Today),
		Future: fromViews(v.Future),
		Past:   fromViews(v.Past),
	}
}

func fromViews(views []*queries.ReservationView) []*ReservationResponse {
	out := make([]*ReservationResponse, len(views))
	for i, v := range views {
		out[i] = FromReservationView(v)
	}
	return out
}
