// Package customer models the two kinds of customer a checkout can serve.
package customer

import (
	"fmt"
	"strings"

	"github.com/xenking/market-checkout/internal/domain"
)

// Kind enumerates the customer variants.
type Kind string

const (
	// KindIndividual is a private person identified by a national ID.
	KindIndividual Kind = "individual"
	// KindCorporate is a person buying on behalf of a company.
	KindCorporate Kind = "corporate"
)

// ParseKind parses a case-insensitive customer kind.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case KindIndividual, KindCorporate:
		return k, nil
	default:
		return "", domain.InvalidArgument("kind", fmt.Sprintf("unknown customer kind %q", s))
	}
}

// Customer is implemented by Individual and Corporate.
type Customer interface {
	ID() int64
	FullName() string
	Kind() Kind
	Describe() string
}

var (
	_ Customer = (*Individual)(nil)
	_ Customer = (*Corporate)(nil)
)

// base holds the fields common to every customer.
type base struct {
	id       int64
	fullName string
}

func (b base) ID() int64        { return b.id }
func (b base) FullName() string { return b.fullName }

// Individual is a private customer.
type Individual struct {
	base
	nationalID string
}

// NewIndividual creates an Individual. Both the full name and the national ID
// are required.
func NewIndividual(id int64, fullName, nationalID string) (*Individual, error) {
	if err := required("fullName", fullName); err != nil {
		return nil, err
	}
	if err := required("nationalID", nationalID); err != nil {
		return nil, err
	}
	return &Individual{
		base:       base{id: id, fullName: fullName},
		nationalID: nationalID,
	}, nil
}

// NationalID returns the national identification number.
func (c *Individual) NationalID() string { return c.nationalID }

// Kind implements Customer.
func (c *Individual) Kind() Kind { return KindIndividual }

// Describe implements Customer.
func (c *Individual) Describe() string {
	return fmt.Sprintf("Individual customer - ID: %d, Name: %s, National ID: %s", c.id, c.fullName, c.nationalID)
}

// Corporate is a customer buying on behalf of a company.
type Corporate struct {
	base
	companyName string
}

// NewCorporate creates a Corporate customer. Both the full name and the
// company name are required.
func NewCorporate(id int64, fullName, companyName string) (*Corporate, error) {
	if err := required("fullName", fullName); err != nil {
		return nil, err
	}
	if err := required("companyName", companyName); err != nil {
		return nil, err
	}
	return &Corporate{
		base:        base{id: id, fullName: fullName},
		companyName: companyName,
	}, nil
}

// CompanyName returns the name of the company the customer buys for.
func (c *Corporate) CompanyName() string { return c.companyName }

// Kind implements Customer.
func (c *Corporate) Kind() Kind { return KindCorporate }

// Describe implements Customer.
func (c *Corporate) Describe() string {
	return fmt.Sprintf("Corporate customer - ID: %d, Company: %s, Name: %s", c.id, c.companyName, c.fullName)
}

func required(arg, v string) error {
	if strings.TrimSpace(v) == "" {
		return domain.InvalidArgument(arg, "is required")
	}
	return nil
}
