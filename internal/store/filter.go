package store

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"bookshelf-api/internal/models"
)

// ListFilter opisuje filtry listy książek. Nil oznacza, że filtr nie został podany.
//
// Filtry się nie łączą: stosowany jest tylko jeden, w kolejności
// Name, Finished, Reading.
type ListFilter struct {
	Name     *string
	Finished *string
	Reading  *string
}

// Applied mówi, czy którykolwiek filtr został podany
func (f ListFilter) Applied() bool {
	return f.Name != nil || f.Finished != nil || f.Reading != nil
}

func (f ListFilter) matcher() func(*models.Book) bool {
	switch {
	case f.Name != nil:
		needle := strings.ToLower(*f.Name)
		return func(b *models.Book) bool {
			return strings.Contains(strings.ToLower(b.Name), needle)
		}
	case f.Finished != nil:
		want := Truthy(*f.Finished)
		return func(b *models.Book) bool {
			return b.Finished == want
		}
	case f.Reading != nil:
		want := Truthy(*f.Reading)
		return func(b *models.Book) bool {
			return b.Reading == want
		}
	}
	return nil
}

// Truthy interpretuje wartość parametru jako liczbę: "0", pusty napis
// i wartości nieliczbowe dają false, każda inna liczba daje true.
func Truthy(v string) bool {
	v = strings.TrimSpace(v)
	if v == "" {
		return false
	}

	n, err := parseNumber(v)
	if err != nil || math.IsNaN(n) {
		return false
	}
	return n != 0
}

func parseNumber(v string) (float64, error) {
	if strings.ContainsRune(v, '_') {
		return 0, strconv.ErrSyntax
	}

	lower := strings.ToLower(v)
	if len(lower) > 2 && lower[0] == '0' && strings.ContainsRune("xob", rune(lower[1])) {
		n, err := strconv.ParseInt(lower, 0, 64)
		return float64(n), err
	}

	// ParseFloat akceptuje też "inf" i "nan", Number() nie
	unsigned := v
	if v[0] == '+' || v[0] == '-' {
		unsigned = v[1:]
	}
	if unsigned == "Infinity" {
		return math.Inf(1), nil
	}
	if strings.EqualFold(unsigned, "inf") || strings.EqualFold(unsigned, "infinity") || strings.EqualFold(unsigned, "nan") {
		return 0, strconv.ErrSyntax
	}

	n, err := strconv.ParseFloat(v, 64)
	if errors.Is(err, strconv.ErrRange) {
		return n, nil
	}
	return n, err
}
