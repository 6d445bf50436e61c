package order_status_changed

import "time"

func (h *Handler) SetRedeliveryDelay(d time.Duration) {
	h.redeliveryDelay = d
}
