package phone

import (
	"errors"
	"fmt"
	"strings"

	"shipping/internal/entities"
)

const (
	// LocalDigits - длина местного номера во всех поддерживаемых странах.
	LocalDigits = 8
	groupSize   = 4

	flagURLFormat = "https://flagsapi.com/%s/flat/64.png"
)

var (
	ErrUnknownCountry = errors.New("unknown country")
	ErrInvalidNumber  = errors.New("invalid phone number")
)

var countries = []entities.Country{
	{Name: "El Salvador", Code: "SV", Prefix: "+503", Flag: fmt.Sprintf(flagURLFormat, "SV")},
	{Name: "Guatemala", Code: "GT", Prefix: "+502", Flag: fmt.Sprintf(flagURLFormat, "GT")},
	{Name: "Honduras", Code: "HN", Prefix: "+504", Flag: fmt.Sprintf(flagURLFormat, "HN")},
}

const DefaultCountryCode = "SV"

func Countries() []entities.Country {
	res := make([]entities.Country, len(countries))
	copy(res, countries)
	return res
}

// Lookup ищет страну по коду (SV) или по префиксу (+503).
func Lookup(codeOrPrefix string) (entities.Country, error) {
	key := strings.TrimSpace(codeOrPrefix)
	for _, c := range countries {
		if strings.EqualFold(c.Code, key) || c.Prefix == key {
			return c, nil
		}
	}
	return entities.Country{}, fmt.Errorf("%w: %q", ErrUnknownCountry, codeOrPrefix)
}

func Digits(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Format нормализует ввод так же, как поле телефона в форме заказа:
// до четырех цифр без изменений, дальше "NNNN NNNN", все после восьмой цифры отбрасывается.
func Format(raw string) string {
	digits := Digits(raw)
	if len(digits) > LocalDigits {
		digits = digits[:LocalDigits]
	}
	if len(digits) <= groupSize {
		return digits
	}
	return digits[:groupSize] + " " + digits[groupSize:]
}

// Compose собирает полный номер: "71234567" и "+503" дают "+503 7123 4567".
// Номер короче восьми цифр отклоняется.
func Compose(prefix, raw string) (string, error) {
	country, err := Lookup(prefix)
	if err != nil {
		return "", err
	}

	if len(Digits(raw)) < LocalDigits {
		return "", fmt.Errorf("%w: expected %d digits", ErrInvalidNumber, LocalDigits)
	}

	return country.Prefix + " " + Format(raw), nil
}
