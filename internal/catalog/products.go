package catalog

import "github.com/shopspring/decimal"

var categories = []string{"Trending", "Outerwear", "Tops", "Sneakers", "Accessories"}

var defaultProducts = []Product{
	{
		ID:          "p1",
		Name:        "Parisian Pre-Spring Coat",
		Price:       decimal.NewFromInt(15999),
		Category:    "Winterwear",
		Description: "Soft tailored coat with a clean lapel and relaxed drape.",
		Image:       "https://image.hm.com/content/dam/global_campaigns/season_03/women/startpage-category-entries-assets/wk02/Jackets-Coats-WCE-wk02.jpg?imwidth=1200",
		Gallery: []string{
			"https://image.hm.com/content/dam/global_campaigns/season_03/women/startpage-category-entries-assets/wk02/Jackets-Coats-WCE-wk02.jpg?imwidth=1200",
			"https://image.hm.com/content/dam/global_campaigns/season_03/women/startpage-category-entries-assets/wk02/Jackets-Coats-WCE-wk02.jpg?imwidth=1536",
		},
		Sizes: []string{"XS", "S", "M", "L", "XL"},
	},
	{
		ID:          "p2",
		Name:        "Cloud Brushed Knit",
		Price:       decimal.NewFromInt(2499),
		Category:    "Tops",
		Description: "Featherlight knit with a plush texture and modern crew neck.",
		Image:       "https://image.hm.com/content/dam/global_campaigns/season_03/women/startpage-category-entries-assets/wk02/Tops-WCE-wk02.jpg?imwidth=1200",
		Gallery: []string{
			"https://image.hm.com/content/dam/global_campaigns/season_03/women/startpage-category-entries-assets/wk02/Tops-WCE-wk02.jpg?imwidth=1200",
			"https://image.hm.com/content/dam/global_campaigns/season_03/women/startpage-category-entries-assets/wk02/Tops-WCE-wk02.jpg?imwidth=1536",
		},
		Sizes: []string{"XS", "S", "M", "L", "XL"},
	},
	{
		ID:          "p3",
		Name:        "Sculpted Leather Jacket",
		Price:       decimal.NewFromInt(8999),
		Category:    "Outerwear",
		Description: "Structured leather with clean seams and a minimal collar.",
		Image:       "https://encrypted-tbn3.gstatic.com/shopping?q=tbn:ANd9GcQv8JLRlOypw3F_h7eByOQcVmWDlW5z9JFJom2IVGqVrFCz_9uQUfXcFZeZQKtxIQndD2N6QJUe4LumjX-2xybgeDfwV86ma5OAefr91bE",
		Gallery: []string{
			"https://encrypted-tbn3.gstatic.com/shopping?q=tbn:ANd9GcQv8JLRlOypw3F_h7eByOQcVmWDlW5z9JFJom2IVGqVrFCz_9uQUfXcFZeZQKtxIQndD2N6QJUe4LumjX-2xybgeDfwV86ma5OAefr91bE",
			"https://images.unsplash.com/photo-1496747611180-206a5c8c46c2?auto=format&fit=crop&w=1200&q=80",
		},
		Sizes: []string{"XS", "S", "M", "L"},
	},
	{
		ID:          "p4",
		Name:        "Studio Denim Flare",
		Price:       decimal.NewFromInt(3499),
		Category:    "Denim",
		Description: "High-rise flare denim with deep indigo wash.",
		Image:       "https://image.hm.com/content/dam/ind-local-assets/IN_WK2_Denim_CE.jpg?imwidth=1200",
		Gallery: []string{
			"https://image.hm.com/content/dam/ind-local-assets/IN_WK2_Denim_CE.jpg?imwidth=1200",
			"https://image.hm.com/content/dam/ind-local-assets/IN_WK2_Denim_CE.jpg?imwidth=1536",
		},
		Sizes: []string{"24", "26", "28", "30", "32"},
	},
	{
		ID:          "p5",
		Name:        "Minimal Jersey Longsleeve",
		Price:       decimal.NewFromInt(1299),
		Category:    "Basics",
		Description: "Clean, close-to-body jersey with fine ribbed collar.",
		Image:       "https://image.hm.com/content/dam/global_campaigns/season_03/women/startpage-category-entries-assets/wk02/Basic-WCE-wk02.jpg?imwidth=1200",
		Gallery: []string{
			"https://image.hm.com/content/dam/global_campaigns/season_03/women/startpage-category-entries-assets/wk02/Basic-WCE-wk02.jpg?imwidth=1200",
			"https://image.hm.com/content/dam/global_campaigns/season_03/women/startpage-category-entries-assets/wk02/Basic-WCE-wk02.jpg?imwidth=1536",
		},
		Sizes: []string{"XS", "S", "M", "L", "XL"},
	},
	{
		ID:          "p6",
		Name:        "Virat Black Rectangular Sunglasses",
		Price:       decimal.NewFromInt(1999),
		Category:    "Accessories",
		Description: "Clean rectangular silhouette with a jet-black frame, deep black lenses and UV400 protection.",
		Image:       "https://salty.co.in/cdn/shop/files/SG0046-BK-BK_Model2.jpg?v=1764835843&width=1000",
		Gallery: []string{
			"https://salty.co.in/cdn/shop/files/SG0046-BK-BK_Model2.jpg?v=1764835843&width=1000",
		},
		Sizes: []string{"OS"},
	},
}
