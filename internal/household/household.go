package household

import (
	"errors"
	"fmt"
	"os"
	"time"

	"homeroster/internal/model"
	"homeroster/internal/store"
)

// ErrNoHousehold is returned when the roster is empty: there is no
// household without at least one member.
var ErrNoHousehold = errors.New("no household found")

// The household has no backing table. Its identity is fixed and the rest
// is derived from the member listing on every read.
const (
	ID   = 1
	Name = "My Household"
)

type Service struct {
	members  *store.MemberStore
	timezone string
}

func NewService(members *store.MemberStore, timezone string) *Service {
	return &Service{members: members, timezone: timezone}
}

// Overview derives the household view from the current roster.
func (s *Service) Overview() (*model.Household, error) {
	members, err := s.members.List()
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	return Build(members, s.timezone)
}

// Build constructs the synthetic household from a member listing. It is
// a pure function of its inputs so the view can never go stale.
func Build(members []model.Member, timezone string) (*model.Household, error) {
	if len(members) == 0 {
		return nil, ErrNoHousehold
	}

	createdAt := members[0].CreatedAt
	rows := make([]model.MemberRow, len(members))
	for i, m := range members {
		if m.CreatedAt.Before(createdAt) {
			createdAt = m.CreatedAt
		}
		rows[i] = model.RowFromMember(m)
	}

	return &model.Household{
		ID:        ID,
		Name:      Name,
		Timezone:  timezone,
		CreatedAt: createdAt,
		Members:   rows,
	}, nil
}

// DetectTimezone resolves the serving environment's timezone name,
// preferring TZ and falling back to the process-local zone. Unnamed
// local zones report as UTC.
func DetectTimezone() string {
	if tz := os.Getenv("TZ"); tz != "" {
		return tz
	}
	if name := time.Now().Location().String(); name != "" && name != "Local" {
		return name
	}
	return "UTC"
}
