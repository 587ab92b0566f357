package model

// Task priorities, low to high.
const (
	PriorityLow    = "baixa"
	PriorityMedium = "media"
	PriorityHigh   = "alta"
)

// Priorities lists every accepted priority in ascending order.
var Priorities = []string{PriorityLow, PriorityMedium, PriorityHigh}

// ValidPriority reports whether p is one of Priorities.
func ValidPriority(p string) bool {
	for _, known := range Priorities {
		if p == known {
			return true
		}
	}
	return false
}
