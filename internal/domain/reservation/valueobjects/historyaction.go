package valueobjects

// HistoryAction names the transition an audit entry records.
type HistoryAction string

const (
	ActionCreated     HistoryAction = "created"
	ActionApproved    HistoryAction = "approved"
	ActionRejected    HistoryAction = "rejected"
	ActionCancelled   HistoryAction = "cancelled"
	ActionModified    HistoryAction = "modified"
	ActionReactivated HistoryAction = "reactivated"
	ActionDeactivated HistoryAction = "deactivated"
)

func (a HistoryAction) String() string {
	return string(a)
}

func (a HistoryAction) IsValid() bool {
	switch a {
	case ActionCreated, ActionApproved, ActionRejected, ActionCancelled,
		ActionModified, ActionReactivated, ActionDeactivated:
		return true
	}
	return false
}
