package entities

import "time"

type TransitionSource string

const (
	TransitionByOperator TransitionSource = "operator"
	TransitionByEvent    TransitionSource = "event"
)

func (s TransitionSource) String() string {
	return string(s)
}

// StatusTransition - запись журнала смены статусов заказа.
type StatusTransition struct {
	ID        int64
	OrderID   string
	From      OrderStatusType
	To        OrderStatusType
	Source    TransitionSource
	ChangedAt time.Time
}
