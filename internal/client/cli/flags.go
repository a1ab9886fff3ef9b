package cli

import (
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/iudanet/storefront/internal/client/storage"
)

// newFlagSet создает FlagSet, который пишет ошибки и usage в c.io
func (c *Cli) newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(c.io)
	return fs
}

// parseInterspersed разбирает флаги, стоящие в любом месте среди аргументов
func parseInterspersed(fs *flag.FlagSet, args []string) ([]string, error) {
	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		args = fs.Args()
		if len(args) == 0 {
			return positional, nil
		}
		positional = append(positional, args[0])
		args = args[1:]
	}
}

// parsePrice разбирает необязательную цену; пустая строка означает "не задано"
func parsePrice(name, value string) (*float64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	price, err := strconv.ParseFloat(value, 64)
	if err != nil || price < 0 {
		return nil, fmt.Errorf("invalid --%s value %q: must be a non-negative number", name, value)
	}
	return &price, nil
}

func parseSortField(value string) (storage.SortField, error) {
	switch field := storage.SortField(strings.ToLower(strings.TrimSpace(value))); field {
	case "", storage.SortByPrice, storage.SortByName, storage.SortByCreatedAt:
		return field, nil
	default:
		return "", fmt.Errorf("invalid --sort value %q: use price, name or created_at", value)
	}
}

func parseSortOrder(value string) (storage.SortOrder, error) {
	switch order := storage.SortOrder(strings.ToLower(strings.TrimSpace(value))); order {
	case "", storage.SortAsc, storage.SortDesc:
		return order, nil
	default:
		return "", fmt.Errorf("invalid --order value %q: use asc or desc", value)
	}
}

func formatPrice(price float64) string {
	return fmt.Sprintf("$%.2f", price)
}

func stars(rating int) string {
	if rating < 0 {
		rating = 0
	}
	if rating > 5 {
		rating = 5
	}
	return strings.Repeat("★", rating) + strings.Repeat("☆", 5-rating)
}
