// internal/defs/targeting.go
package defs

import "fmt"

// TargetingPriority — политика выбора цели башней.
type TargetingPriority string

const (
	TargetFirst     TargetingPriority = "FIRST"
	TargetStrongest TargetingPriority = "STRONGEST"
	TargetWeakest   TargetingPriority = "WEAKEST"
	TargetClosest   TargetingPriority = "CLOSEST"
)

// DefaultPriority is assigned to freshly placed towers.
const DefaultPriority = TargetClosest

var priorityCycle = []TargetingPriority{TargetClosest, TargetFirst, TargetStrongest, TargetWeakest}

// ParsePriority converts a name into a TargetingPriority.
func ParsePriority(s string) (TargetingPriority, error) {
	for _, p := range priorityCycle {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown targeting priority %q", s)
}

// Next returns the following priority in the UI cycle order.
func (p TargetingPriority) Next() TargetingPriority {
	for i, c := range priorityCycle {
		if c == p {
			return priorityCycle[(i+1)%len(priorityCycle)]
		}
	}
	return DefaultPriority
}

func (p TargetingPriority) Valid() bool {
	_, err := ParsePriority(string(p))
	return err == nil
}
