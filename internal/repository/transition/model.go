package transition

import "time"

type TransitionDB struct {
	ID         int64
	OrderID    string
	FromStatus string
	ToStatus   string
	Source     string
	ChangedAt  time.Time
}
