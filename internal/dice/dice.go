package dice

import (
	"fmt"
	"strings"
)

// RollResult contains detailed information about a dice roll
type RollResult struct {
	Total    int   // Sum of all dice plus bonus
	Rolls    []int // Individual die results
	Bonus    int   // Bonus applied
	Count    int   // Number of dice rolled
	Sides    int   // Number of sides on each die
	RawTotal int   // Sum of dice without bonus
}

func (r *RollResult) String() string {
	compact := strings.ReplaceAll(fmt.Sprintf("%v", r.Rolls), " ", "")
	if r.Bonus != 0 {
		return fmt.Sprintf("%dd%d+%d = %d %s", r.Count, r.Sides, r.Bonus, r.Total, compact)
	}
	return fmt.Sprintf("%dd%d = %d %s", r.Count, r.Sides, r.Total, compact)
}
