package reservation

import (
	"strings"

	"coworking-reservations/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

const maxNoteLength = 1000

type Note struct {
	value string
}

func NewNote(value string) (Note, error) {
	v := strings.TrimSpace(value)
	if len([]rune(v)) > maxNoteLength {
		return Note{}, errs.Reasonf(errs.ErrInvalidRequest, "note exceeds %d characters", maxNoteLength)
	}
	return Note{value: v}, nil
}

func (n Note) String() string {
	return n.value
}

func (n Note) IsEmpty() bool {
	return n.value == ""
}

// Deposit mirrors the external card authorization backing a reservation.
type Deposit struct {
	authorizationID string
	amount          decimal.Decimal
	status          DepositStatus
}

func NoDeposit() Deposit {
	return Deposit{status: DepositNone, amount: decimal.Zero}
}

func ReconstructDeposit(authorizationID string, amount decimal.Decimal, status DepositStatus) Deposit {
	return Deposit{authorizationID: authorizationID, amount: amount, status: status}
}

func (d Deposit) AuthorizationID() string { return d.authorizationID }
func (d Deposit) Amount() decimal.Decimal { return d.amount }
func (d Deposit) Status() DepositStatus   { return d.status }

func (d Deposit) IsHeld() bool {
	return d.status == DepositHeld
}

// CancelCommand is the input of a cancellation.
type CancelCommand struct {
	Reason      string
	SkipCapture bool
}
