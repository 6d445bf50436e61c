package entities

import "time"

type Order struct {
	ID              string
	UserID          string
	Status          OrderStatusType
	PickupAddress   string
	ScheduledDate   time.Time
	FirstName       string
	LastName        string
	Phone           string
	Email           string
	DeliveryAddress string
	Department      string
	Municipality    string
	ReferencePoint  string
	Instructions    string
	CreatedAt       time.Time
	UpdatedAt       time.Time
	Packages        []Package
}

// OrderDraft - поля заказа, которые задает клиент. Идентификатор, статус,
// временные метки и посылки назначает сервер заказов.
type OrderDraft struct {
	PickupAddress   string
	ScheduledDate   time.Time
	FirstName       string
	LastName        string
	Phone           string
	Email           string
	DeliveryAddress string
	Department      string
	Municipality    string
	ReferencePoint  string
	Instructions    string
}

type OrderModify struct {
	ID     *string
	Status *OrderStatusType
}

type Package struct {
	ID       string
	OrderID  string
	LengthCm float64
	HeightCm float64
	WidthCm  float64
	WeightLb float64
	Content  string
}

type PackageDraft struct {
	LengthCm float64
	HeightCm float64
	WidthCm  float64
	WeightLb float64
	Content  string
}
