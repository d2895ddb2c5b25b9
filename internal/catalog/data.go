package catalog

import (
	"github.com/kanvah/storefront-backend/pkg/enums"
	"github.com/shopspring/decimal"
)

// ColorHex maps catalog color tags to the swatch shown in the storefront.
var ColorHex = map[string]string{
	"black": "#1a1a1a",
	"white": "#f0f0f0",
	"gray":  "#666",
	"red":   "#c81020",
	"navy":  "#1a2744",
	"olive": "#4a5a3a",
	"brown": "#6b4226",
	"beige": "#c8b890",
}

// Sidebar option order for the free-form dimensions.
var (
	colorOrder    = []string{"black", "white", "gray", "red", "navy", "olive", "brown", "beige"}
	sizeOrder     = []string{"xs", "s", "m", "l", "xl", "xxl"}
	materialOrder = []string{"cotton", "nylon", "polyester", "fleece"}
)

func usd(amount int64) decimal.Decimal {
	return decimal.NewFromInt(amount)
}

func wasUSD(amount int64) *decimal.Decimal {
	d := decimal.NewFromInt(amount)
	return &d
}

var defaultProducts = []Product{
	{ID: 1, Name: "Shadow Hoodie", Category: enums.CategoryHoodies, Gender: enums.GenderUnisex, Colors: []string{"black", "gray"}, Sizes: []string{"s", "m", "l", "xl"}, Price: usd(189), Material: "cotton", Image: "/assets/images/collection-4.png", Badge: enums.BadgeNew, IsNew: true},
	{ID: 2, Name: "Storm Jacket", Category: enums.CategoryOuterwear, Gender: enums.GenderMen, Colors: []string{"black", "navy"}, Sizes: []string{"m", "l", "xl", "xxl"}, Price: usd(249), Material: "nylon", Image: "/assets/images/collection-1.png", Badge: enums.BadgeNew, IsNew: true},
	{ID: 3, Name: "Tactical Vest", Category: enums.CategoryTechwear, Gender: enums.GenderMen, Colors: []string{"black", "olive"}, Sizes: []string{"s", "m", "l", "xl"}, Price: usd(159), Material: "nylon", Image: "/assets/images/collection-2.png", Badge: enums.BadgeNew, IsNew: true},
	{ID: 4, Name: "Venom Parka", Category: enums.CategoryOuterwear, Gender: enums.GenderUnisex, Colors: []string{"black", "red"}, Sizes: []string{"m", "l", "xl"}, Price: usd(319), Material: "polyester", Image: "/assets/images/collection-3.png", Badge: enums.BadgeNew, IsNew: true},
	{ID: 5, Name: "Stealth Bomber", Category: enums.CategoryOuterwear, Gender: enums.GenderMen, Colors: []string{"black", "gray", "navy"}, Sizes: []string{"s", "m", "l", "xl", "xxl"}, Price: usd(279), Material: "nylon", Image: "/assets/images/collection-1.png", Badge: enums.BadgeLimited},
	{ID: 6, Name: "Midnight Pullover", Category: enums.CategoryHoodies, Gender: enums.GenderWomen, Colors: []string{"black", "white", "beige"}, Sizes: []string{"xs", "s", "m", "l"}, Price: usd(149), Material: "fleece", Image: "/assets/images/collection-4.png"},
	{ID: 7, Name: "Edge Cargo Pants", Category: enums.CategoryTechwear, Gender: enums.GenderMen, Colors: []string{"black", "olive", "gray"}, Sizes: []string{"s", "m", "l", "xl"}, Price: usd(179), Material: "cotton", Image: "/assets/images/collection-2.png"},
	{ID: 8, Name: "Core Tee", Category: enums.CategoryEssentials, Gender: enums.GenderUnisex, Colors: []string{"black", "white", "red", "gray"}, Sizes: []string{"xs", "s", "m", "l", "xl", "xxl"}, Price: usd(69), Material: "cotton", Image: "/assets/images/collection-3.png"},
	{ID: 9, Name: "Phantom Shell", Category: enums.CategoryOuterwear, Gender: enums.GenderMen, Colors: []string{"black", "navy"}, Sizes: []string{"m", "l", "xl"}, Price: usd(349), Material: "nylon", Image: "/assets/images/collection-1.png", Badge: enums.BadgeLimited},
	{ID: 10, Name: "Drift Hoodie", Category: enums.CategoryHoodies, Gender: enums.GenderWomen, Colors: []string{"gray", "beige", "white"}, Sizes: []string{"xs", "s", "m", "l"}, Price: usd(169), Material: "cotton", Image: "/assets/images/collection-4.png"},
	{ID: 11, Name: "Urban Tech Jacket", Category: enums.CategoryTechwear, Gender: enums.GenderUnisex, Colors: []string{"black", "olive"}, Sizes: []string{"s", "m", "l", "xl"}, Price: usd(229), OriginalPrice: wasUSD(289), Material: "polyester", Image: "/assets/images/collection-2.png", Badge: enums.BadgeSale},
	{ID: 12, Name: "Flux Joggers", Category: enums.CategoryEssentials, Gender: enums.GenderUnisex, Colors: []string{"black", "gray"}, Sizes: []string{"s", "m", "l", "xl"}, Price: usd(119), Material: "fleece", Image: "/assets/images/collection-3.png"},
	{ID: 13, Name: "Onyx Windbreaker", Category: enums.CategoryOuterwear, Gender: enums.GenderMen, Colors: []string{"black", "red"}, Sizes: []string{"m", "l", "xl", "xxl"}, Price: usd(199), Material: "nylon", Image: "/assets/images/collection-1.png"},
	{ID: 14, Name: "Crimson Hoodie", Category: enums.CategoryHoodies, Gender: enums.GenderUnisex, Colors: []string{"red", "black"}, Sizes: []string{"s", "m", "l", "xl"}, Price: usd(189), Material: "cotton", Image: "/assets/images/collection-4.png"},
	{ID: 15, Name: "Signal Vest", Category: enums.CategoryTechwear, Gender: enums.GenderWomen, Colors: []string{"black", "white"}, Sizes: []string{"xs", "s", "m", "l"}, Price: usd(139), OriginalPrice: wasUSD(179), Material: "nylon", Image: "/assets/images/collection-2.png", Badge: enums.BadgeSale},
	{ID: 16, Name: "Monolith Coat", Category: enums.CategoryOuterwear, Gender: enums.GenderMen, Colors: []string{"black", "brown"}, Sizes: []string{"m", "l", "xl"}, Price: usd(399), Material: "polyester", Image: "/assets/images/collection-1.png", Badge: enums.BadgeLimited},
	{ID: 17, Name: "Base Layer Tee", Category: enums.CategoryEssentials, Gender: enums.GenderUnisex, Colors: []string{"black", "white", "gray", "navy"}, Sizes: []string{"xs", "s", "m", "l", "xl", "xxl"}, Price: usd(59), Material: "cotton", Image: "/assets/images/collection-3.png"},
	{ID: 18, Name: "Apex Hoodie", Category: enums.CategoryHoodies, Gender: enums.GenderMen, Colors: []string{"black", "navy", "gray"}, Sizes: []string{"m", "l", "xl", "xxl"}, Price: usd(209), Material: "fleece", Image: "/assets/images/collection-4.png"},
	{ID: 19, Name: "Gray Vest", Category: enums.CategoryTechwear, Gender: enums.GenderWomen, Colors: []string{"gray", "white"}, Sizes: []string{"xs", "s", "m", "l"}, Price: usd(139), OriginalPrice: wasUSD(179), Material: "nylon", Image: "/assets/images/collection-5.jpeg", Badge: enums.BadgeSale},
}
