package dto

import (
	"time"

	"shipping/internal/service/order"
)

type PingResponse struct {
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

type ErrorResponse struct {
	Error   string                   `json:"error"`
	Message string                   `json:"message"`
	Details []order.ValidationDetail `json:"details,omitempty"`
}

type Package struct {
	ID       string  `json:"id"`
	OrderID  string  `json:"orderId"`
	LengthCm float64 `json:"lengthCm"`
	HeightCm float64 `json:"heightCm"`
	WidthCm  float64 `json:"widthCm"`
	WeightLb float64 `json:"weightLb"`
	Content  string  `json:"content"`
}

type Order struct {
	ID              string    `json:"id"`
	UserID          string    `json:"userId,omitempty"`
	Status          string    `json:"status"`
	PickupAddress   string    `json:"pickupAddress"`
	ScheduledDate   string    `json:"scheduledDate"`
	FirstName       string    `json:"firstName"`
	LastName        string    `json:"lastName"`
	Phone           string    `json:"phone"`
	Email           string    `json:"email"`
	DeliveryAddress string    `json:"deliveryAddress"`
	Department      string    `json:"department"`
	Municipality    string    `json:"municipality"`
	ReferencePoint  string    `json:"referencePoint"`
	Instructions    string    `json:"instructions,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
	Packages        []Package `json:"packages"`
}

type StatusUpdate struct {
	Status string `json:"status"`
}

type Transition struct {
	ID        int64     `json:"id"`
	OrderID   string    `json:"orderId"`
	From      string    `json:"from"`
	To        string    `json:"to"`
	Source    string    `json:"source"`
	ChangedAt time.Time `json:"changedAt"`
}

type Country struct {
	Name   string `json:"name"`
	Code   string `json:"code"`
	Prefix string `json:"prefix"`
	Flag   string `json:"flag"`
}

type Department struct {
	Name           string   `json:"name"`
	Municipalities []string `json:"municipalities"`
}

type Catalog struct {
	Countries         []Country    `json:"countries"`
	Departments       []Department `json:"departments"`
	DefaultCountry    string       `json:"defaultCountry"`
	DefaultDepartment string       `json:"defaultDepartment"`
	OrderStatuses     []string     `json:"orderStatuses"`
}

type Login struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type Register struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

type User struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
