package request

import (
	"strings"

	"coworking-reservations/internal/domain/reservation"
	"coworking-reservations/internal/pkg/patch"

	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	QuoteRequest
	Note *string `json:"note,omitempty" binding:"omitempty,max=1000"`
	// OnBehalfOf is honoured for admin tokens only.
	OnBehalfOf *uuid.UUID `json:"onBehalfOf,omitempty"`
}

func (r CreateReservationRequest) GetNote() string {
	return strings.TrimSpace(patch.Coalesce(r.Note, ""))
}

type TransitionRequest struct {
	Action          string `json:"action" binding:"required,oneof=confirm cancel markPresent markNoShow"`
	Reason          string `json:"reason,omitempty" binding:"max=500"`
	SkipCapture     *bool  `json:"skipCapture,omitempty"`
	ExpectedVersion *int   `json:"expectedVersion,omitempty" binding:"omitempty,min=1"`
}

func (r TransitionRequest) GetAction() reservation.Action {
	return reservation.Action(r.Action)
}

func (r TransitionRequest) GetSkipCapture() bool {
	return patch.Coalesce(r.SkipCapture, false)
}

type ListReservationsQuery struct {
	After string `form:"after"`
	Limit int    `form:"limit" binding:"omitempty,min=1,max=200"`
}

type TriageQuery struct {
	Today string `form:"today" binding:"omitempty,civildate"`
}
