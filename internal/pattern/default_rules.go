package pattern

// DefaultRules returns the built-in category suggestion rules. Order
// matters: more specific signals (grading marks) come before broader ones.
// The table is product data; deployments override it via config.
func DefaultRules() []Rule {
	return []Rule{
		// Graded and investment items outrank franchise matches.
		{
			Name:         "Graded Item",
			Pattern:      `psa\s*10|bgs\s*(black|9\.5|10)|cgc\s*\d|graded|gem\s*mint`,
			CategoryCode: "021",
		},
		{
			Name:         "Pokemon Cards",
			Pattern:      `pokemon|pikachu|charizard|snorlax|mewtwo|gengar|base\s*set`,
			CategoryCode: "011",
		},
		{
			Name:         "Yu-Gi-Oh Cards",
			Pattern:      `yu-?gi-?oh|blue-?eyes|dark\s*magician`,
			CategoryCode: "012",
		},
		{
			Name:         "One Piece Cards",
			Pattern:      `one\s*piece|luffy|zoro|shanks`,
			CategoryCode: "013",
		},
		{
			Name:         "Magic Cards",
			Pattern:      `\bmtg\b|magic:\s*the\s*gathering`,
			CategoryCode: "014",
		},
		{
			Name:         "Sports Cards",
			Pattern:      `\bnba\b|\bmlb\b|topps|panini|autograph\s*card|sports\s*card`,
			CategoryCode: "015",
		},

		// Cameras before generic electronics.
		{
			Name:         "Camera Body",
			Pattern:      `sony\s*(a7|a7r|a7s|a9|a1)|e[\s-]?mount|canon\s*(eos\s*r|5d|6d|rp|r5|r6)|nikon\s*(z\s*[67]|d\d{2,3})|fujifilm\s*(x-?t|x-?pro|gfx)|panasonic\s*(lumix|s\d)|olympus\s*om-?d|leica\s*(m|q|sl)`,
			CategoryCode: "231",
		},
		{
			Name:         "Lens",
			Pattern:      `\blens\b|telephoto|prime\s*lens|f/?\d+\.\d+|\b(24|35|50|85|135)mm\b|zoom\s*lens`,
			CategoryCode: "232",
		},
		{
			Name:         "Camera Accessory",
			Pattern:      `tripod|gimbal|strobe|speedlight|nd\s*filter|cpl\s*filter`,
			CategoryCode: "233",
		},

		// Books.
		{
			Name:         "Technical Book",
			Pattern:      `javascript|typescript|python|golang|\brust\b|react|vue|angular|docker|kubernetes|machine\s*learning|deep\s*learning|data\s*science|algorithms`,
			CategoryCode: "131",
		},
		{
			Name:         "Comics & Novels",
			Pattern:      `manga|comic|novel|paperback|light\s*novel|box\s*set`,
			CategoryCode: "133",
		},
		{
			Name:         "Study Guide",
			Pattern:      `past\s*exams?|textbook|workbook|study\s*guide|certification\s*prep`,
			CategoryCode: "134",
		},

		// Computers and gadgets.
		{
			Name:         "PC & Parts",
			Pattern:      `macbook\s*(air|pro)|imac|mac\s*mini|thinkpad|x1\s*carbon|ryzen|intel\s*i[3579]|geforce|rtx\s*\d{3,4}|radeon|external\s*ssd|m\.2\s*ssd|nvme`,
			CategoryCode: "211",
		},
		{
			Name:         "Gaming Gear",
			Pattern:      `gaming\s*(pc|mouse|keyboard)|mechanical\s*keyboard|monitor|144hz|240hz|ultrawide`,
			CategoryCode: "214",
		},
		{
			Name:         "Smartphone",
			Pattern:      `smartphone|iphone\s*(\d{1,2}|pro|max|plus|mini)|android|galaxy|pixel\s*\d`,
			CategoryCode: "212",
		},

		// Games.
		{
			Name:         "Console Games",
			Pattern:      `nintendo\s*switch|switch\s*game|ps[45]\s*game|retro\s*game|famicom|mega\s*drive|pc\s*game`,
			CategoryCode: "411",
		},

		// Fashion.
		{
			Name:         "Sneakers",
			Pattern:      `nike\s*dunk|air\s*jordan\s*(1|3|4|11)|yeezy\s*boost|new\s*balance\s*(990|2002|996)|sb\s*dunk|off[\s-]?white|supreme`,
			CategoryCode: "521",
		},
		{
			Name:         "Streetwear",
			Pattern:      `size\s*(us|eu)\s*\d|box\s*included|with\s*tags|deadstock`,
			CategoryCode: "523",
		},
	}
}

// DefaultHintCategories maps labels returned by the external image
// analysis service to category codes. Lookups are case-insensitive.
func DefaultHintCategories() map[string]string {
	return map[string]string{
		"trading card": "010",
		"pokemon":      "011",
		"yugioh":       "012",
		"card":         "010",
		"camera":       "231",
		"lens":         "232",
		"book":         "133",
		"textbook":     "134",
		"pc":           "211",
		"laptop":       "211",
		"smartphone":   "212",
		"game":         "411",
		"sneakers":     "521",
		"clothing":     "523",
		"other":        "C99",
	}
}
