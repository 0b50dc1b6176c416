package reservation

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	return s == StatusCancelled || s == StatusCompleted
}

type PresenceOutcome string

const (
	OutcomePresent PresenceOutcome = "present"
	OutcomeNoShow  PresenceOutcome = "no-show"
)

func (o PresenceOutcome) IsValid() bool {
	return o == OutcomePresent || o == OutcomeNoShow
}

type DepositStatus string

const (
	DepositNone     DepositStatus = "none"
	DepositHeld     DepositStatus = "held"
	DepositCaptured DepositStatus = "captured"
	DepositReleased DepositStatus = "released"
)

func (d DepositStatus) IsValid() bool {
	switch d {
	case DepositNone, DepositHeld, DepositCaptured, DepositReleased:
		return true
	default:
		return false
	}
}

type DepositIntent string

const (
	IntentNone    DepositIntent = "none"
	IntentHold    DepositIntent = "hold"
	IntentCapture DepositIntent = "capture"
	IntentRelease DepositIntent = "release"
)

func (i DepositIntent) String() string {
	return string(i)
}

// Result is the deposit status the intent leaves behind once applied.
func (i DepositIntent) Result() DepositStatus {
	switch i {
	case IntentHold:
		return DepositHeld
	case IntentCapture:
		return DepositCaptured
	case IntentRelease:
		return DepositReleased
	default:
		return ""
	}
}

type Action string

const (
	ActionConfirm     Action = "confirm"
	ActionCancel      Action = "cancel"
	ActionMarkPresent Action = "markPresent"
	ActionMarkNoShow  Action = "markNoShow"
)

func (a Action) IsValid() bool {
	switch a {
	case ActionConfirm, ActionCancel, ActionMarkPresent, ActionMarkNoShow:
		return true
	default:
		return false
	}
}

// StaffOnly reports whether the action is reserved to staff and admins.
func (a Action) StaffOnly() bool {
	return a != ActionCancel
}

type Event string

const (
	EventRequested         Event = "reservation.requested"
	EventConfirmed         Event = "reservation.confirmed"
	EventRefused           Event = "reservation.refused"
	EventCancelled         Event = "reservation.cancelled"
	EventPresenceConfirmed Event = "reservation.presence_confirmed"
	EventNoShow            Event = "reservation.no_show"
)
