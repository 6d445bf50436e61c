package order_status_changed

// statusChangedEvent - сообщение топика о смене статуса заказа на стороне сервера заказов.
type statusChangedEvent struct {
	OrderID string `json:"order_id"`
	Status  string `json:"status"`
}
