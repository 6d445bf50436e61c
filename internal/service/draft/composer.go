package draft

import (
	"fmt"
	"math"
	"net/mail"
	"strings"
	"time"

	"shipping/internal/entities"
	"shipping/internal/pkg/location"
	"shipping/internal/pkg/phone"
	"shipping/internal/service/order"
)

const dateLayout = "2006-01-02"

// Composer превращает формы в черновики для сервера заказов.
// Все нарушения собираются в одну ValidationError.
type Composer struct {
	loc *time.Location
}

func NewComposer(loc *time.Location) *Composer {
	if loc == nil {
		loc = time.UTC
	}
	return &Composer{
		loc: loc,
	}
}

func (c *Composer) ComposeOrder(form OrderForm, now time.Time) (entities.OrderDraft, error) {
	var v validator

	v.required("pickupAddress", form.PickupAddress)
	v.required("firstName", form.FirstName)
	v.required("lastName", form.LastName)
	v.required("deliveryAddress", form.DeliveryAddress)
	v.required("referencePoint", form.ReferencePoint)

	scheduled := c.scheduledDate(&v, form.ScheduledDate, now)
	fullPhone := composePhone(&v, form.CountryCode, form.Phone)
	email := composeEmail(&v, form.Email)

	if v.required("department", form.Department) && v.required("municipality", form.Municipality) {
		if err := location.Validate(form.Department, form.Municipality); err != nil {
			field := "municipality"
			if _, derr := location.Municipalities(form.Department); derr != nil {
				field = "department"
			}
			v.add(field, err.Error())
		}
	}

	if err := v.err("invalid order draft"); err != nil {
		return entities.OrderDraft{}, err
	}

	return entities.OrderDraft{
		PickupAddress:   strings.TrimSpace(form.PickupAddress),
		ScheduledDate:   scheduled,
		FirstName:       strings.TrimSpace(form.FirstName),
		LastName:        strings.TrimSpace(form.LastName),
		Phone:           fullPhone,
		Email:           email,
		DeliveryAddress: strings.TrimSpace(form.DeliveryAddress),
		Department:      form.Department,
		Municipality:    form.Municipality,
		ReferencePoint:  strings.TrimSpace(form.ReferencePoint),
		Instructions:    strings.TrimSpace(form.Instructions),
	}, nil
}

func (c *Composer) ComposePackage(form PackageForm) (entities.PackageDraft, error) {
	var v validator

	v.nonNegative("lengthCm", form.LengthCm)
	v.nonNegative("heightCm", form.HeightCm)
	v.nonNegative("widthCm", form.WidthCm)
	v.nonNegative("weightLb", form.WeightLb)
	v.required("content", form.Content)

	if err := v.err("invalid package draft"); err != nil {
		return entities.PackageDraft{}, err
	}

	return entities.PackageDraft{
		LengthCm: form.LengthCm,
		HeightCm: form.HeightCm,
		WidthCm:  form.WidthCm,
		WeightLb: form.WeightLb,
		Content:  strings.TrimSpace(form.Content),
	}, nil
}

// scheduledDate приводит дату к полуночи опорного часового пояса. Прошедшие даты отклоняются.
func (c *Composer) scheduledDate(v *validator, raw string, now time.Time) time.Time {
	if !v.required("scheduledDate", raw) {
		return time.Time{}
	}

	date, err := time.ParseInLocation(dateLayout, strings.TrimSpace(raw), c.loc)
	if err != nil {
		v.add("scheduledDate", fmt.Sprintf("expected YYYY-MM-DD, got %q", raw))
		return time.Time{}
	}

	y, m, d := now.In(c.loc).Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, c.loc)
	if date.Before(today) {
		v.add("scheduledDate", fmt.Sprintf("%s is in the past", date.Format(dateLayout)))
		return time.Time{}
	}
	return date
}

func composePhone(v *validator, countryCode, raw string) string {
	if !v.required("phone", raw) {
		return ""
	}

	if n := len(phone.Digits(raw)); n != phone.LocalDigits {
		v.add("phone", fmt.Sprintf("expected %d digits, got %d", phone.LocalDigits, n))
		return ""
	}

	full, err := phone.Compose(countryCode, raw)
	if err != nil {
		v.add("countryCode", err.Error())
		return ""
	}
	return full
}

func composeEmail(v *validator, raw string) string {
	if !v.required("email", raw) {
		return ""
	}

	trimmed := strings.TrimSpace(raw)
	addr, err := mail.ParseAddress(trimmed)
	if err != nil || addr.Address != trimmed {
		v.add("email", fmt.Sprintf("%q is not a valid address", raw))
		return ""
	}
	return addr.Address
}

type validator struct {
	details []order.ValidationDetail
}

func (v *validator) add(field, message string) {
	v.details = append(v.details, order.ValidationDetail{Field: field, Message: message})
}

func (v *validator) required(field, value string) bool {
	if strings.TrimSpace(value) == "" {
		v.add(field, "is required")
		return false
	}
	return true
}

func (v *validator) nonNegative(field string, value float64) {
	if math.IsNaN(value) || math.IsInf(value, 0) || value < 0 {
		v.add(field, "must be a finite number >= 0")
	}
}

func (v *validator) err(message string) error {
	if len(v.details) == 0 {
		return nil
	}
	return order.NewValidationError(message, v.details...)
}
