package seed_samples

type sample struct {
	title       string
	description string
	price       float64
	category    string
}

// sampleProducts is the fixed baseline catalog inserted on first seed.
// All samples are in stock.
var sampleProducts = []sample{
	{
		title:       "Classic White T-Shirt",
		description: "Soft cotton tee for everyday wear.",
		price:       14.99,
		category:    "Clothes",
	},
	{
		title:       "Organic Granola",
		description: "Crunchy, honey-sweetened breakfast granola.",
		price:       7.49,
		category:    "Food",
	},
	{
		title:       "Bluetooth Headphones",
		description: "Noise-isolating on-ear headphones with 20h battery.",
		price:       59.99,
		category:    "Electronics",
	},
	{
		title:       "Stainless Water Bottle",
		description: "Keeps drinks cold for 24h and hot for 12h.",
		price:       19.99,
		category:    "Home",
	},
	{
		title:       "Gourmet Dark Chocolate",
		description: "70% cacao premium chocolate bar.",
		price:       3.99,
		category:    "Food",
	},
}
