package entities

type OrderStatusType string

const (
	OrderPending    OrderStatusType = "PENDING"
	OrderProcessing OrderStatusType = "PROCESSING"
	OrderShipped    OrderStatusType = "SHIPPED"
	OrderDelivered  OrderStatusType = "DELIVERED"
	OrderCancelled  OrderStatusType = "CANCELLED"
)

// DefaultOrderStatus - статус, с которым сервер заказов создает новый заказ.
const DefaultOrderStatus = OrderPending

// orderTransitions описывает жизненный цикл заказа:
// PENDING -> PROCESSING -> SHIPPED -> DELIVERED, отмена из любого незавершенного статуса.
var orderTransitions = map[OrderStatusType][]OrderStatusType{
	OrderPending:    {OrderProcessing, OrderCancelled},
	OrderProcessing: {OrderShipped, OrderCancelled},
	OrderShipped:    {OrderDelivered, OrderCancelled},
	OrderDelivered:  {},
	OrderCancelled:  {},
}

func OrderStatuses() []OrderStatusType {
	return []OrderStatusType{
		OrderPending,
		OrderProcessing,
		OrderShipped,
		OrderDelivered,
		OrderCancelled,
	}
}

func (s OrderStatusType) String() string {
	return string(s)
}

func (s OrderStatusType) IsValid() bool {
	_, ok := orderTransitions[s]
	return ok
}

func (s OrderStatusType) IsTerminal() bool {
	next, ok := orderTransitions[s]
	return ok && len(next) == 0
}

// CanTransitionTo сообщает, есть ли переход s -> to в графе жизненного цикла.
// Переход в тот же статус в графе отсутствует.
func (s OrderStatusType) CanTransitionTo(to OrderStatusType) bool {
	for _, next := range orderTransitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

// NextStatuses возвращает копию списка допустимых переходов.
func (s OrderStatusType) NextStatuses() []OrderStatusType {
	next := orderTransitions[s]
	res := make([]OrderStatusType, len(next))
	copy(res, next)
	return res
}
