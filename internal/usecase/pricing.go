package usecase

import (
	"fmt"

	"github.com/pjcweb/site-backend/internal/entity"
)

// CalculatePrice is the only place a checkout amount can come from. It is a
// pure function over the server-side catalog; handlers call it immediately
// before creating a provider session so a client-supplied amount can never
// reach the ledger.
//
// totalPages <= 0 means the caller wants the base tier and is substituted
// with the package's included page count. Non-web service types ignore the
// page count entirely.
func CalculatePrice(packageID string, totalPages int) (*entity.PriceQuote, error) {
	pkg, err := entity.FindPackage(packageID)
	if err != nil {
		return nil, err
	}

	if pkg.ServiceType != entity.ServiceWebDesign {
		return &entity.PriceQuote{
			PackageID:   pkg.ID,
			BasePrice:   pkg.BasePrice,
			TotalPages:  0,
			FinalPrice:  pkg.BasePrice,
			SavingsNote: "Flat-rate service package",
		}, nil
	}

	if totalPages <= 0 {
		totalPages = pkg.IncludedPages
	}
	if totalPages > pkg.MaxPages {
		return nil, entity.ErrPageCountExceeded
	}

	additionalPages := totalPages - pkg.IncludedPages
	if additionalPages < 0 {
		additionalPages = 0
	}
	additionalCost := float64(additionalPages) * pkg.AdditionalPagePrice

	quote := &entity.PriceQuote{
		PackageID:       pkg.ID,
		BasePrice:       pkg.BasePrice,
		IncludedPages:   pkg.IncludedPages,
		TotalPages:      totalPages,
		AdditionalPages: additionalPages,
		AdditionalCost:  additionalCost,
		FinalPrice:      pkg.BasePrice + additionalCost,
	}

	if additionalPages == 0 {
		quote.SavingsNote = fmt.Sprintf("Includes up to %d pages at no extra cost", pkg.IncludedPages)
	} else {
		quote.SavingsNote = fmt.Sprintf("%d extra pages at $%.2f each", additionalPages, pkg.AdditionalPagePrice)
	}

	return quote, nil
}
