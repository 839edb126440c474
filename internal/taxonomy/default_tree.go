package taxonomy

// DefaultTree returns the built-in classification tree, used verbatim when
// the remote category source is unavailable or returns an unusable payload.
// Category labels are product data; deployments localize them via the
// remote source or config, not by editing this table.
func DefaultTree() []Node {
	return []Node{
		{
			Code:  "010",
			Label: "Trading Cards",
			Children: []Node{
				{Code: "011", Label: "Pokemon"},
				{Code: "012", Label: "Yu-Gi-Oh"},
				{Code: "013", Label: "One Piece"},
				{Code: "014", Label: "Magic: The Gathering"},
				{Code: "015", Label: "Sports Cards"},
			},
		},
		{
			Code:  "020",
			Label: "Collectibles & Investment",
			Children: []Node{
				{Code: "021", Label: "Graded Items"},
				{Code: "022", Label: "Limited Editions"},
			},
		},
		{
			Code:  "130",
			Label: "Books",
			Children: []Node{
				{Code: "131", Label: "Technical Books"},
				{Code: "133", Label: "Comics & Novels"},
				{Code: "134", Label: "Study Guides"},
			},
		},
		{
			Code:  "210",
			Label: "Computers & Gadgets",
			Children: []Node{
				{Code: "211", Label: "PCs & Parts"},
				{Code: "212", Label: "Smartphones"},
				{Code: "214", Label: "Gaming Gear"},
			},
		},
		{
			Code:  "230",
			Label: "Cameras",
			Children: []Node{
				{Code: "231", Label: "Camera Bodies"},
				{Code: "232", Label: "Lenses"},
				{Code: "233", Label: "Camera Accessories"},
			},
		},
		{
			Code:  "410",
			Label: "Games",
			Children: []Node{
				{Code: "411", Label: "Console Games"},
				{Code: "412", Label: "Retro Games"},
			},
		},
		{
			Code:  "520",
			Label: "Fashion",
			Children: []Node{
				{Code: "521", Label: "Sneakers"},
				{Code: "523", Label: "Streetwear"},
			},
		},
		{
			Code:  "C90",
			Label: "Other",
			Children: []Node{
				{Code: "C99", Label: "Miscellaneous"},
			},
		},
	}
}
