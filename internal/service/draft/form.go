package draft

import (
	"shipping/internal/pkg/location"
	"shipping/internal/pkg/phone"
)

// OrderForm - сырой ввод формы создания заказа.
// ScheduledDate задается календарной датой YYYY-MM-DD, Phone - местным номером без префикса.
type OrderForm struct {
	PickupAddress   string `json:"pickupAddress"`
	ScheduledDate   string `json:"scheduledDate"`
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	CountryCode     string `json:"countryCode"`
	Phone           string `json:"phone"`
	Email           string `json:"email"`
	DeliveryAddress string `json:"deliveryAddress"`
	Department      string `json:"department"`
	Municipality    string `json:"municipality"`
	ReferencePoint  string `json:"referencePoint"`
	Instructions    string `json:"instructions"`
}

// NewOrderForm возвращает форму в начальном состоянии: El Salvador,
// департамент San Salvador и его первый муниципалитет.
func NewOrderForm() OrderForm {
	municipality, _ := location.DefaultMunicipality(location.DefaultDepartment)

	return OrderForm{
		CountryCode:  phone.DefaultCountryCode,
		Department:   location.DefaultDepartment,
		Municipality: municipality,
	}
}

// SetDepartment меняет департамент и сбрасывает муниципалитет на первый в новом департаменте.
func (f *OrderForm) SetDepartment(department string) error {
	municipality, err := location.DefaultMunicipality(department)
	if err != nil {
		return err
	}

	f.Department = department
	f.Municipality = municipality
	return nil
}

// SetPhone нормализует ввод телефона так же, как поле формы.
func (f *OrderForm) SetPhone(raw string) {
	f.Phone = phone.Format(raw)
}

// WithDefaults дополняет пустые поля начальными значениями формы.
func (f OrderForm) WithDefaults() OrderForm {
	if f.CountryCode == "" {
		f.CountryCode = phone.DefaultCountryCode
	}
	if f.Department == "" {
		f.Department = location.DefaultDepartment
	}
	if f.Municipality == "" {
		if m, err := location.DefaultMunicipality(f.Department); err == nil {
			f.Municipality = m
		}
	}
	return f
}

// PackageForm - ввод формы посылки. Размеры по умолчанию нулевые.
type PackageForm struct {
	LengthCm float64 `json:"lengthCm"`
	HeightCm float64 `json:"heightCm"`
	WidthCm  float64 `json:"widthCm"`
	WeightLb float64 `json:"weightLb"`
	Content  string  `json:"content"`
}
