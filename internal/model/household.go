package model

import "time"

// Household is the derived overview of the roster. It has no backing
// table: id and name are fixed, createdAt is the earliest member's
// creation time, and members is the full listing.
type Household struct {
	ID        int64       `json:"id"`
	Name      string      `json:"name"`
	Timezone  string      `json:"timezone"`
	CreatedAt time.Time   `json:"createdAt"`
	Members   []MemberRow `json:"members"`
}
