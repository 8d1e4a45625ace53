package app

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"

	"github.com/xenking/market-checkout/internal/domain"
	"github.com/xenking/market-checkout/internal/domain/checkout"
	"github.com/xenking/market-checkout/internal/domain/customer"
	"github.com/xenking/market-checkout/internal/domain/discount"
	"github.com/xenking/market-checkout/internal/domain/order"
	"github.com/xenking/market-checkout/internal/domain/payment"
	"github.com/xenking/market-checkout/internal/domain/product"
)

// BuildScenario converts the scenario configuration into domain values.
func BuildScenario(cfg ScenarioConfig) (checkout.Scenario, error) {
	products, err := buildProducts(cfg.Products)
	if err != nil {
		return checkout.Scenario{}, errors.Wrap(err, "build products")
	}

	c, err := buildCustomer(cfg.Customer)
	if err != nil {
		return checkout.Scenario{}, errors.Wrap(err, "build customer")
	}

	policy, err := buildDiscount(cfg.Discount)
	if err != nil {
		return checkout.Scenario{}, errors.Wrap(err, "build discount")
	}

	kind, err := payment.ParseKind(cfg.Payment)
	if err != nil {
		return checkout.Scenario{}, errors.Wrap(err, "build payment")
	}
	method, err := payment.ForKind(kind)
	if err != nil {
		return checkout.Scenario{}, errors.Wrap(err, "build payment")
	}

	return checkout.Scenario{
		Customer: c,
		Products: products,
		Discount: policy,
		Payment:  method,
		OrderID:  cfg.OrderID,
		Status:   order.Status(cfg.Status),
	}, nil
}

// buildProducts parses "id:name:price" entries. Product IDs must be unique.
func buildProducts(entries []string) ([]*product.Product, error) {
	products := make([]*product.Product, 0, len(entries))
	seen := make(map[int64]struct{}, len(entries))
	for _, entry := range entries {
		p, err := parseProduct(entry)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[p.ID()]; dup {
			return nil, domain.InvalidArgument("id", fmt.Sprintf("duplicate product id %d", p.ID()))
		}
		seen[p.ID()] = struct{}{}
		products = append(products, p)
	}
	return products, nil
}

// parseProduct parses a single "id:name:price" entry. The name may itself
// contain colons.
func parseProduct(entry string) (*product.Product, error) {
	entry = strings.TrimSpace(entry)
	first := strings.Index(entry, ":")
	last := strings.LastIndex(entry, ":")
	if first < 0 || first == last {
		return nil, domain.InvalidArgument("product", fmt.Sprintf("expected id:name:price, got %q", entry))
	}

	id, err := strconv.ParseInt(strings.TrimSpace(entry[:first]), 10, 64)
	if err != nil {
		return nil, domain.InvalidArgument("id", fmt.Sprintf("parse %q: %v", entry[:first], err))
	}
	price, err := decimal.NewFromString(strings.TrimSpace(entry[last+1:]))
	if err != nil {
		return nil, domain.InvalidArgument("price", fmt.Sprintf("parse %q: %v", entry[last+1:], err))
	}

	p, err := product.New(id, strings.TrimSpace(entry[first+1:last]), price)
	if err != nil {
		return nil, errors.Wrapf(err, "product %d", id)
	}
	return p, nil
}

func buildCustomer(cfg CustomerConfig) (customer.Customer, error) {
	if strings.TrimSpace(cfg.Kind) == "" {
		return nil, nil
	}
	kind, err := customer.ParseKind(cfg.Kind)
	if err != nil {
		return nil, err
	}

	switch kind {
	case customer.KindCorporate:
		c, err := customer.NewCorporate(cfg.ID, cfg.FullName, cfg.CompanyName)
		if err != nil {
			return nil, err
		}
		return c, nil
	default:
		c, err := customer.NewIndividual(cfg.ID, cfg.FullName, cfg.NationalID)
		if err != nil {
			return nil, err
		}
		return c, nil
	}
}

func buildDiscount(cfg DiscountConfig) (discount.Policy, error) {
	if strings.TrimSpace(cfg.Type) == "" {
		return nil, nil
	}
	value, err := decimal.NewFromString(strings.TrimSpace(cfg.Value))
	if err != nil {
		return nil, domain.InvalidArgument("value", fmt.Sprintf("parse %q: %v", cfg.Value, err))
	}
	return discount.FromRule(discount.Rule{
		Type:  discount.Type(strings.TrimSpace(cfg.Type)),
		Value: value,
	})
}
