package notification

// Status is the delivery state of a single notification log row.
// pending is the only non-terminal state; sent and failed are final.
type Status string

const (
	StatusPending Status = "pending"
	StatusSent    Status = "sent"
	StatusFailed  Status = "failed"
)

func (s Status) IsTerminal() bool {
	return s == StatusSent || s == StatusFailed
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusSent, StatusFailed:
		return true
	}
	return false
}

type Priority string

const (
	PriorityNormal Priority = "normal"
	PriorityHigh   Priority = "high"
)

type Channel string

const (
	ChannelEmail Channel = "email"
)
