package order

import "strings"

// CanTransition reports whether an order may leave its current status.
// Completed and Cancelled are terminal; anything else, including status
// values this service does not recognise, may still move forward.
func CanTransition(current string) bool {
	switch strings.ToLower(current) {
	case "completed", "cancelled":
		return false
	}
	return true
}
