package schedule

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// Engagement is one show seen from one side of the artist/venue pair: the
// counterpart columns carry the artist when listing a venue's shows and the
// venue when listing an artist's.
type Engagement struct {
	CounterpartID    uuid.UUID `gorm:"column:counterpart_id"`
	CounterpartName  string    `gorm:"column:counterpart_name"`
	CounterpartImage string    `gorm:"column:counterpart_image"`
	StartTime        time.Time `gorm:"column:start_time"`
}

// Partition splits engagements around now. The boundary rule is the same for
// every view: past means start_time < now, upcoming means start_time >= now,
// so a show starting at the evaluation instant is upcoming. Both halves come
// back ordered by start time descending.
func Partition(engagements []Engagement, now time.Time) (past, upcoming []Engagement) {
	past = []Engagement{}
	upcoming = []Engagement{}

	for _, e := range engagements {
		if e.StartTime.Before(now) {
			past = append(past, e)
		} else {
			upcoming = append(upcoming, e)
		}
	}

	sort.Slice(past, func(i, j int) bool {
		return past[i].StartTime.After(past[j].StartTime)
	})
	sort.Slice(upcoming, func(i, j int) bool {
		return upcoming[i].StartTime.After(upcoming[j].StartTime)
	})

	return past, upcoming
}

// IsUpcoming applies the shared boundary rule to a single start time.
func IsUpcoming(startTime, now time.Time) bool {
	return !startTime.Before(now)
}
