package entity

import "errors"

var ErrPackageNotFound = errors.New("package not found")
var ErrPageCountExceeded = errors.New("page count exceeds package maximum")

const (
	ServiceWebDesign = "web_design"
	ServiceMoving    = "moving"
	ServiceTransport = "transport"
)

// Package is a fixed-price service tier. The catalog is defined server-side
// only and is never built from client input; every checkout amount comes from
// a catalog lookup, not from the request body.
type Package struct {
	ID                  string  `json:"id"`
	Name                string  `json:"name"`
	BasePrice           float64 `json:"base_price"`
	IncludedPages       int     `json:"included_pages"`
	AdditionalPagePrice float64 `json:"additional_page_price"`
	MaxPages            int     `json:"max_pages"`
	ServiceType         string  `json:"service_type"`
	Description         string  `json:"description"`
}

// PriceQuote is derived per request and never persisted.
type PriceQuote struct {
	PackageID       string  `json:"package_id"`
	BasePrice       float64 `json:"base_price"`
	IncludedPages   int     `json:"included_pages"`
	TotalPages      int     `json:"total_pages"`
	AdditionalPages int     `json:"additional_pages"`
	AdditionalCost  float64 `json:"additional_cost"`
	FinalPrice      float64 `json:"final_price"`
	SavingsNote     string  `json:"savings_note,omitempty"`
}

var packageCatalog = []Package{
	{
		ID:                  "starter",
		Name:                "Starter Site",
		BasePrice:           325.00,
		IncludedPages:       3,
		AdditionalPagePrice: 106.00,
		MaxPages:            10,
		ServiceType:         ServiceWebDesign,
		Description:         "Launch-ready site for new businesses",
	},
	{
		ID:                  "growth",
		Name:                "Growth Site",
		BasePrice:           747.00,
		IncludedPages:       6,
		AdditionalPagePrice: 96.00,
		MaxPages:            25,
		ServiceType:         ServiceWebDesign,
		Description:         "Content-heavy site with blog and lead funnel",
	},
	{
		ID:                  "scale",
		Name:                "Scale Site",
		BasePrice:           1499.00,
		IncludedPages:       12,
		AdditionalPagePrice: 84.00,
		MaxPages:            50,
		ServiceType:         ServiceWebDesign,
		Description:         "Full marketing platform with custom integrations",
	},
	{
		ID:          "moving",
		Name:        "Moving Service Site",
		BasePrice:   499.00,
		ServiceType: ServiceMoving,
		Description: "Flat-rate package for moving companies",
	},
	{
		ID:          "transport",
		Name:        "Transport Service Site",
		BasePrice:   899.00,
		ServiceType: ServiceTransport,
		Description: "Flat-rate package for transport and logistics companies",
	},
}

// FindPackage looks up a catalog entry by id.
func FindPackage(id string) (*Package, error) {
	for i := range packageCatalog {
		if packageCatalog[i].ID == id {
			return &packageCatalog[i], nil
		}
	}
	return nil, ErrPackageNotFound
}

// ListPackages returns the full catalog. Callers must not mutate entries.
func ListPackages() []Package {
	out := make([]Package, len(packageCatalog))
	copy(out, packageCatalog)
	return out
}
