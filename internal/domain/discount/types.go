package discount

type Status string

const (
	StatusActive   Status = "Active"
	StatusInactive Status = "Inactive"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusInactive:
		return true
	default:
		return false
	}
}
