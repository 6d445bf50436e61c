package order

import (
	"bytes"
	"time"
)

// timestamp принимает RFC 3339, дату без времени, пустую строку и null.
type timestamp struct {
	time.Time
}

func (t *timestamp) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) || bytes.Equal(b, []byte(`""`)) {
		t.Time = time.Time{}
		return nil
	}
	if err := t.Time.UnmarshalJSON(b); err == nil {
		return nil
	}

	parsed, err := time.Parse(`"2006-01-02"`, string(b))
	if err != nil {
		return err
	}
	t.Time = parsed
	return nil
}

type orderDTO struct {
	ID              string       `json:"id"`
	UserID          string       `json:"userId"`
	Status          string       `json:"status"`
	PickupAddress   string       `json:"pickupAddress"`
	ScheduledDate   timestamp    `json:"scheduledDate"`
	FirstName       string       `json:"firstName"`
	LastName        string       `json:"lastName"`
	Phone           string       `json:"phone"`
	Email           string       `json:"email"`
	DeliveryAddress string       `json:"deliveryAddress"`
	Department      string       `json:"department"`
	Municipality    string       `json:"municipality"`
	ReferencePoint  string       `json:"referencePoint"`
	Instructions    string       `json:"instructions"`
	CreatedAt       timestamp    `json:"createdAt"`
	UpdatedAt       timestamp    `json:"updatedAt"`
	Packages        []packageDTO `json:"packages"`
}

type createOrderDTO struct {
	PickupAddress   string    `json:"pickupAddress"`
	ScheduledDate   time.Time `json:"scheduledDate"`
	FirstName       string    `json:"firstName"`
	LastName        string    `json:"lastName"`
	Phone           string    `json:"phone"`
	Email           string    `json:"email"`
	DeliveryAddress string    `json:"deliveryAddress"`
	Department      string    `json:"department"`
	Municipality    string    `json:"municipality"`
	ReferencePoint  string    `json:"referencePoint"`
	Instructions    string    `json:"instructions"`
}

type updateStatusDTO struct {
	Status string `json:"status"`
}

type packageDTO struct {
	ID       string  `json:"id"`
	OrderID  string  `json:"orderId"`
	LengthCm float64 `json:"lengthCm"`
	HeightCm float64 `json:"heightCm"`
	WidthCm  float64 `json:"widthCm"`
	WeightLb float64 `json:"weightLb"`
	Content  string  `json:"content"`
}

type createPackageDTO struct {
	LengthCm float64 `json:"lengthCm"`
	HeightCm float64 `json:"heightCm"`
	WidthCm  float64 `json:"widthCm"`
	WeightLb float64 `json:"weightLb"`
	Content  string  `json:"content"`
}
