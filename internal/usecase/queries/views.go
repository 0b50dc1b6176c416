package queries

import (
	"time"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Read models (DTO for read side)
type ReservationView struct {
	ID                     uuid.UUID       `json:"id"`
	UserID                 uuid.UUID       `json:"user_id"`
	SpaceType              string          `json:"space_type"`
	StartDate              civil.Date      `json:"start_date"`
	EndDate                civil.Date      `json:"end_date"`
	StartTime              *civil.Time     `json:"start_time,omitempty"`
	EndTime                *civil.Time     `json:"end_time,omitempty"`
	NumberOfPeople         int             `json:"number_of_people"`
	Status                 string          `json:"status"`
	PresenceOutcome        *string         `json:"presence_outcome,omitempty"`
	ReservationType        string          `json:"reservation_type"`
	TotalPrice             decimal.Decimal `json:"total_price"`
	DepositAuthorizationID *string         `json:"deposit_authorization_id,omitempty"`
	DepositAmount          decimal.Decimal `json:"deposit_amount"`
	DepositStatus          string          `json:"deposit_status"`
	CancelReason           *string         `json:"cancel_reason,omitempty"`
	IsAdminBooking         bool            `json:"is_admin_booking"`
	Note                   *string         `json:"note,omitempty"`
	Version                int             `json:"version"`
	CreatedAt              time.Time       `json:"created_at"`
	UpdatedAt              time.Time       `json:"updated_at"`
}

type ReservationListItem struct {
	ID              uuid.UUID       `json:"id"`
	SpaceType       string          `json:"space_type"`
	StartDate       civil.Date      `json:"start_date"`
	EndDate         civil.Date      `json:"end_date"`
	StartTime       *civil.Time     `json:"start_time,omitempty"`
	EndTime         *civil.Time     `json:"end_time,omitempty"`
	NumberOfPeople  int             `json:"number_of_people"`
	Status          string          `json:"status"`
	ReservationType string          `json:"reservation_type"`
	TotalPrice      decimal.Decimal `json:"total_price"`
	CreatedAt       time.Time       `json:"created_at"`
}

type TriageView struct {
	Today  []*ReservationView `json:"today"`
	Future []*ReservationView `json:"future"`
	Past   []*ReservationView `json:"past"`
}

type TierView struct {
	MinPeople         int              `json:"min_people"`
	MaxPeople         int              `json:"max_people"`
	HourlyRate        decimal.Decimal  `json:"hourly_rate"`
	DailyRate         decimal.Decimal  `json:"daily_rate"`
	ExtraPersonHourly *decimal.Decimal `json:"extra_person_hourly,omitempty"`
	ExtraPersonDaily  *decimal.Decimal `json:"extra_person_daily,omitempty"`
}

type RateCardView struct {
	SpaceType   string           `json:"space_type"`
	Active      bool             `json:"active"`
	Hourly      *decimal.Decimal `json:"hourly,omitempty"`
	Daily       *decimal.Decimal `json:"daily,omitempty"`
	Weekly      *decimal.Decimal `json:"weekly,omitempty"`
	Monthly     *decimal.Decimal `json:"monthly,omitempty"`
	MinCapacity int              `json:"min_capacity"`
	MaxCapacity int              `json:"max_capacity"`
	PerPerson   bool             `json:"per_person"`
	Tiers       []TierView       `json:"tiers"`
}
