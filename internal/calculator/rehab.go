package calculator

import "fmt"

// defaultRetailMultiplier scales flip pricing up to retail grade when the
// catalog item does not carry its own multiplier.
const defaultRetailMultiplier = 1.5

// UnitPrice resolves the per-unit price of a catalog item for a grade.
// RETAIL uses the flip price (or the rental price when no flip price exists)
// times the retail multiplier.
func UnitPrice(item RehabItem, grade RehabClass) float64 {
	switch grade {
	case RehabRental:
		return item.RentalPrice
	case RehabFlip:
		return item.FlipPrice
	default:
		multiplier := item.RetailMultiplier
		if multiplier == 0 {
			multiplier = defaultRetailMultiplier
		}
		base := item.FlipPrice
		if base == 0 {
			base = item.RentalPrice
		}
		return base * multiplier
	}
}

// CalculateRehabTotal prices the enabled selections against the catalog at
// the given grade. A nil catalog uses DefaultCatalog. A selection referencing
// an unknown item id is a data-integrity defect and fails outright.
func CalculateRehabTotal(selections []RehabSelection, grade RehabClass, catalog []RehabItem) (*RehabTotalResult, error) {
	if catalog == nil {
		catalog = DefaultCatalog
	}

	byID := make(map[string]RehabItem, len(catalog))
	for _, item := range catalog {
		byID[item.ID] = item
	}

	result := &RehabTotalResult{LineItems: []RehabLineItem{}}

	for _, selection := range selections {
		if selection.Enabled != nil && !*selection.Enabled {
			continue
		}

		item, ok := byID[selection.ItemID]
		if !ok {
			return nil, fmt.Errorf("unknown rehab item: %s", selection.ItemID)
		}

		unitPrice := UnitPrice(item, grade)
		if grade == RehabRetail && selection.CustomRetailPrice != nil {
			unitPrice = *selection.CustomRetailPrice
		}
		if selection.CustomUnitPrice != nil {
			unitPrice = *selection.CustomUnitPrice
		}

		quantity := item.DefaultQuantity
		if selection.Quantity != nil {
			quantity = *selection.Quantity
		}

		lineTotal := unitPrice * quantity
		result.Total += lineTotal
		result.LineItems = append(result.LineItems, RehabLineItem{
			Item:      item,
			Quantity:  quantity,
			UnitPrice: unitPrice,
			LineTotal: lineTotal,
		})
	}

	return result, nil
}
