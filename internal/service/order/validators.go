package order

import (
	"fmt"
	"math"
	"strings"

	"shipping/internal/entities"
)

func isValidID(id string) bool {
	return strings.TrimSpace(id) != ""
}

func validateStatus(status entities.OrderStatusType) error {
	if !status.IsValid() {
		return invalidStatusError(status.String())
	}
	return nil
}

// validatePackageDraft проверяет только физические величины.
// Обязательность содержимого - контракт формы, его проверяет draft.Composer.
func validatePackageDraft(draft entities.PackageDraft) error {
	var details []ValidationDetail

	dims := []struct {
		field string
		value float64
	}{
		{"lengthCm", draft.LengthCm},
		{"heightCm", draft.HeightCm},
		{"widthCm", draft.WidthCm},
		{"weightLb", draft.WeightLb},
	}
	for _, d := range dims {
		if math.IsNaN(d.value) || math.IsInf(d.value, 0) || d.value < 0 {
			details = append(details, ValidationDetail{
				Field:   d.field,
				Message: fmt.Sprintf("must be a finite number >= 0, got %v", d.value),
			})
		}
	}

	if len(details) > 0 {
		return NewValidationError("invalid package", details...)
	}
	return nil
}
