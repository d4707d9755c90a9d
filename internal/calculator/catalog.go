package calculator

// DefaultCatalog is the built-in rehab cost catalog. Prices are per-unit for
// the RENTAL and FLIP grades; RETAIL derives from the flip price via the
// retail multiplier.
var DefaultCatalog = []RehabItem{
	// Flooring
	{ID: "flooring-lvp", Label: "LVP Flooring (per sq ft)", Category: "Flooring", UnitType: PerSqft, RentalPrice: 4.5, FlipPrice: 6.5, DefaultQuantity: 1000},
	{ID: "flooring-carpet", Label: "Carpeting (per sq ft)", Category: "Flooring", UnitType: PerSqft, RentalPrice: 3, FlipPrice: 4.5, DefaultQuantity: 1000},
	{ID: "flooring-bath-tile", Label: "Tile for Bathroom Floor", Category: "Flooring", UnitType: PerBath, RentalPrice: 800, FlipPrice: 1200},
	// Kitchen
	{ID: "kitchen-cabinets", Label: "Kitchen Cabinets", Category: "Kitchen", UnitType: PerKitchen, RentalPrice: 5000, FlipPrice: 8000},
	{ID: "kitchen-countertops", Label: "Kitchen Countertops", Category: "Kitchen", UnitType: PerKitchen, RentalPrice: 3000, FlipPrice: 5000},
	{ID: "kitchen-appliances", Label: "Kitchen Appliance Package", Category: "Kitchen", UnitType: PerSet, RentalPrice: 2500, FlipPrice: 4000},
	{ID: "kitchen-sink", Label: "Kitchen Sink & Faucet", Category: "Kitchen", UnitType: PerUnit, RentalPrice: 400, FlipPrice: 700},
	// Bathrooms
	{ID: "bath-full-reno", Label: "Full Bathroom Renovation", Category: "Bathrooms", UnitType: PerBath, RentalPrice: 4500, FlipPrice: 7500},
	{ID: "bath-vanity", Label: "New Vanity with Sink", Category: "Bathrooms", UnitType: PerUnit, RentalPrice: 600, FlipPrice: 1200},
	{ID: "bath-toilet", Label: "New Toilet", Category: "Bathrooms", UnitType: PerUnit, RentalPrice: 300, FlipPrice: 500},
	{ID: "bath-mirror-light", Label: "Bathroom Mirror & Light", Category: "Bathrooms", UnitType: PerSet, RentalPrice: 200, FlipPrice: 400},
	// General
	{ID: "general-interior-paint", Label: "Interior Paint (per sq ft)", Category: "General", UnitType: PerSqft, RentalPrice: 1.5, FlipPrice: 2.5, DefaultQuantity: 1000},
	{ID: "general-drywall-repair", Label: "Drywall Repair (per sq ft)", Category: "General", UnitType: PerSqft, RentalPrice: 0.5, FlipPrice: 0.8, DefaultQuantity: 1000},
	{ID: "general-wall-prep", Label: "Wall Prep & Patching (per sq ft)", Category: "General", UnitType: PerSqft, RentalPrice: 0.3, FlipPrice: 0.5, DefaultQuantity: 1000},
	{ID: "general-interior-doors", Label: "New Interior Doors", Category: "General", UnitType: PerDoor, RentalPrice: 250, FlipPrice: 350, DefaultQuantity: 6},
	{ID: "general-door-knobs", Label: "Door Knobs and Hardware", Category: "General", UnitType: PerSet, RentalPrice: 35, FlipPrice: 65, DefaultQuantity: 6},
	{ID: "general-exterior-doors", Label: "New Exterior Doors", Category: "General", UnitType: PerDoor, RentalPrice: 500, FlipPrice: 800, DefaultQuantity: 2},
	{ID: "general-windows", Label: "New Windows", Category: "General", UnitType: PerWindow, RentalPrice: 450, FlipPrice: 650, DefaultQuantity: 10},
	{ID: "general-blinds", Label: "Window Blinds", Category: "General", UnitType: PerWindow, RentalPrice: 50, FlipPrice: 80, DefaultQuantity: 10},
	{ID: "general-smoke-co", Label: "Smoke/CO Detectors", Category: "General", UnitType: PerUnit, RentalPrice: 35, FlipPrice: 35, DefaultQuantity: 4},
	// Infrastructure
	{ID: "infra-exterior-paint", Label: "Exterior Paint", Category: "Infrastructure", UnitType: PerProject, RentalPrice: 4000, FlipPrice: 6000},
	{ID: "infra-roof", Label: "New Roof", Category: "Infrastructure", UnitType: PerProject, RentalPrice: 8000, FlipPrice: 10000},
	{ID: "infra-siding", Label: "New Siding/Fascia", Category: "Infrastructure", UnitType: PerProject, RentalPrice: 3500, FlipPrice: 5000},
	{ID: "infra-electrical", Label: "Electrical Update", Category: "Infrastructure", UnitType: PerProject, RentalPrice: 4000, FlipPrice: 6000},
	{ID: "infra-plumbing", Label: "Plumbing Update", Category: "Infrastructure", UnitType: PerProject, RentalPrice: 3500, FlipPrice: 5000},
	{ID: "infra-water-heater", Label: "Water Heater", Category: "Infrastructure", UnitType: PerUnit, RentalPrice: 1200, FlipPrice: 1800},
	{ID: "infra-ac", Label: "New AC Unit", Category: "Infrastructure", UnitType: PerUnit, RentalPrice: 5000, FlipPrice: 6500},
	{ID: "infra-furnace", Label: "New Furnace", Category: "Infrastructure", UnitType: PerUnit, RentalPrice: 4500, FlipPrice: 5500},
	{ID: "infra-landscaping", Label: "Landscaping", Category: "Infrastructure", UnitType: PerProject, RentalPrice: 2000, FlipPrice: 3500},
	{ID: "infra-concrete", Label: "Concrete/Porch Work", Category: "Infrastructure", UnitType: PerProject, RentalPrice: 2500, FlipPrice: 4000},
	{ID: "infra-waterproofing", Label: "Basement Waterproofing", Category: "Infrastructure", UnitType: PerProject, RentalPrice: 3000, FlipPrice: 4000},
	// Contingency / Custom
	{ID: "contingency", Label: "Contingency (per sq ft)", Category: "Contingency", UnitType: PerSqft, RentalPrice: 2, FlipPrice: 3, DefaultQuantity: 1000},
	{ID: "custom-1", Label: "Custom Item 1", Category: "Contingency", UnitType: PerCustom, RentalPrice: 0, FlipPrice: 0},
}
