package materials

import "strings"

// Swatch is a colour offered in the configurator: its display name, RAL code, preview hex and
// the name of the library material it maps to.
type Swatch struct {
	Name    string `yaml:"name"`
	RAL     string `yaml:"ral"`
	Hex     string `yaml:"hex"`
	Library string `yaml:"library"`
}

// Catalog is the fixed list of frame colours, in display order.
var Catalog = []Swatch{
	{Name: "White", RAL: "9010", Hex: "#f4f4f4", Library: "White"},
	{Name: "Cream", RAL: "9001", Hex: "#fdf4d3", Library: "Creme"},
	{Name: "Ivory", RAL: "1015", Hex: "#eae3c6", Library: "Licht Ivoor"},
	{Name: "WineRed", RAL: "3005", Hex: "#5e1b22", Library: "Wijnrood"},
	{Name: "PineGreen", RAL: "6009", Hex: "#1c3c1b", Library: "Dennengroen"},
	{Name: "MonumentGreen", RAL: "6005", Hex: "#2f4538", Library: "Monumentengroen"},
	{Name: "BlueSteel", RAL: "5011", Hex: "#232c3f", Library: "Staalblauw"},
	{Name: "Golden Oak", RAL: "8003", Hex: "#a75b1f", Library: "Golden Oak"},
	{Name: "Mahogany", RAL: "8016", Hex: "#4c2f27", Library: "Mahonie"},
	{Name: "SilverGrey", RAL: "7001", Hex: "#c0c0c0", Library: "Zilvergrijs"},
	{Name: "BasaltGrey", RAL: "7012", Hex: "#4e5754", Library: "Basaltgrijs"},
	{Name: "QuartzGrey", RAL: "7039", Hex: "#6c6860", Library: "Kwartsgrijs"},
	{Name: "Anthracite", RAL: "7016", Hex: "#373f43", Library: "Antracietgrijs"},
	{Name: "BlackGrey", RAL: "7021", Hex: "#2e3234", Library: "Zwartgrijs"},
	{Name: "Black", RAL: "9005", Hex: "#0a0a0a", Library: "Zwart"},
}

// SwatchFor finds a catalog entry by display name, case-insensitively.
func SwatchFor(display string) (Swatch, bool) {
	for _, s := range Catalog {
		if strings.EqualFold(s.Name, display) {
			return s, true
		}
	}
	return Swatch{}, false
}

// DisplayName maps a library name back to its catalog display name. Unlisted names are
// returned unchanged.
func DisplayName(library string) string {
	for _, s := range Catalog {
		if s.Library == library {
			return s.Name
		}
	}
	return library
}
