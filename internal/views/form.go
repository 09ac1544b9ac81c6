package views

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"storefront/internal/domain"
)

var ErrMalformedStock = errors.New("stock is not an integer")

var (
	leadingFloat = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)
	leadingInt   = regexp.MustCompile(`^[+-]?\d+`)
)

// ProductForm carries the admin product form exactly as typed
type ProductForm struct {
	Name     string
	Price    string
	Stock    string
	Category string
}

// ParseProductForm converts raw form text into a Product with a zero id.
//
// Price and stock are read from their leading numeric prefix, so "12.5kg"
// gives 12.5. Price text with no numeric prefix becomes NaN and is kept.
// Stock has no NaN to fall back on and fails with ErrMalformedStock instead.
// A blank category falls back to the first admin category.
func ParseProductForm(form ProductForm) (domain.Product, error) {
	stock, err := parseStock(form.Stock)
	if err != nil {
		return domain.Product{}, err
	}

	category := form.Category
	if category == "" {
		category = domain.AdminCategories()[0]
	}

	return domain.Product{
		Name:     form.Name,
		Price:    parsePrice(form.Price),
		Stock:    stock,
		Category: category,
	}, nil
}

// FormFromProduct prefills the form for the edit view
func FormFromProduct(p domain.Product) ProductForm {
	return ProductForm{
		Name:     p.Name,
		Price:    strconv.FormatFloat(p.Price, 'f', -1, 64),
		Stock:    strconv.Itoa(p.Stock),
		Category: p.Category,
	}
}

func parsePrice(text string) float64 {
	match := leadingFloat.FindString(strings.TrimSpace(text))
	if match == "" {
		return math.NaN()
	}

	// range errors still yield ±Inf
	price, _ := strconv.ParseFloat(match, 64)
	return price
}

func parseStock(text string) (int, error) {
	match := leadingInt.FindString(strings.TrimSpace(text))
	if match == "" {
		return 0, fmt.Errorf("parse stock %q: %w", text, ErrMalformedStock)
	}

	stock, err := strconv.Atoi(match)
	if err != nil {
		return 0, fmt.Errorf("parse stock %q: %w", text, ErrMalformedStock)
	}
	return stock, nil
}
