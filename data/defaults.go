// Package data ships the fallback catalog. The public site serves these
// collections whenever the backing store cannot be reached, and they seed the
// database on first boot, so the marketing pages are never blank.
package data

import "github.com/colemarcuccilli/IBEwebsite/models"

func DefaultCategories() []models.Category {
	return []models.Category{
		{ID: "bakery", Name: "Bakery Products", SortOrder: 0},
		{ID: "blast-freeze", Name: "Blast Freeze Racks", SortOrder: 1},
		{ID: "carts", Name: "Carts", SortOrder: 2},
	}
}

func DefaultProducts() []models.Product {
	return []models.Product{
		{
			ID:          "bread-racks",
			Name:        "Bread Racks",
			Description: "For cooling, proofing or offloading the production line. Built with precision for maximum durability and efficiency.",
			ImageURL:    "/images/Breadrack.jpg",
			Category:    "bakery",
			SortOrder:   0,
		},
		{
			ID:          "pan-tree-racks",
			Name:        "Pan Tree Racks",
			Description: "Versatile storage solution for baking pans. Designed for easy access and optimal space utilization.",
			ImageURL:    "/images/Pan Rack Cropped new.jpg",
			Category:    "bakery",
			SortOrder:   1,
		},
		{
			ID:          "dough-troughs",
			Name:        "Dough Troughs",
			Description: "Heavy-duty containers for dough processing. Available in various sizes to meet your production needs.",
			ImageURL:    "/images/cropped tub.jpg",
			Category:    "bakery",
			SortOrder:   2,
		},
		{
			ID:          "icing-racks",
			Name:        "Icing Racks / Steam Pan Grates",
			Description: "Precision racks for icing and steam pan applications. Ensures even coating and proper drainage.",
			Category:    "bakery",
			SortOrder:   3,
		},
		{
			ID:          "pie-racks",
			Name:        "Pie Racks",
			Description: "Specialized racks for pie production and storage. Designed to protect delicate pastries during transport.",
			ImageURL:    "/images/Pie Rack.JPG",
			Category:    "bakery",
			SortOrder:   4,
		},
		{
			ID:          "bread-transport-display",
			Name:        "Bread Transport and Display Racks",
			Description: "Dual-purpose racks for transport and retail display. Seamlessly move from production to storefront.",
			ImageURL:    "/images/BreadTransport RackwithBuns.jpg",
			Category:    "bakery",
			SortOrder:   5,
		},
		{
			ID:          "glazing-racks",
			Name:        "Glazing Racks",
			Description: "Designed for efficient glazing operations. Features optimal spacing for consistent coverage.",
			ImageURL:    "/images/Glazing Rack.jpg",
			Category:    "bakery",
			SortOrder:   6,
		},
		{
			ID:          "fry-screens",
			Name:        "Fry Screens",
			Description: "Durable screens for frying applications. Heat-resistant construction for long-lasting performance.",
			Category:    "bakery",
			SortOrder:   7,
		},
		{
			ID:          "bagel-baskets",
			Name:        "Bagel Baskets",
			Description: "Custom baskets for bagel handling. Designed for efficient boiling and baking processes.",
			Category:    "bakery",
			SortOrder:   8,
		},
		{
			ID:          "donut-baskets",
			Name:        "Donut Nesting Baskets",
			Description: "Space-efficient nesting design for donuts. Maximizes storage while protecting product quality.",
			ImageURL:    "/images/Donut Basket.jpg",
			Category:    "bakery",
			SortOrder:   9,
		},
		{
			ID:          "bagel-scoops",
			Name:        "Bagel Scoops",
			Description: "Ergonomic scoops for bagel handling. Streamlines the production process.",
			Category:    "bakery",
			SortOrder:   10,
		},
		{
			ID:          "blast-freeze-racks",
			Name:        "Blast Freeze Racks",
			Description: "Industrial-grade racks designed for rapid freezing applications. Built to withstand extreme cold temperatures while maintaining structural integrity.",
			ImageURL:    "/images/Seafood Rack.jpg",
			Category:    "blast-freeze",
			SortOrder:   11,
		},
		{
			ID:          "mail-carts-ls3",
			Name:        "LS3 Mail Carts",
			Description: "Heavy-duty carts designed for mail and package transport. Compact design for efficient navigation.",
			ImageURL:    "/images/LS3 Mail Cart.jpg",
			Category:    "carts",
			SortOrder:   12,
		},
		{
			ID:          "mail-carts-ls4",
			Name:        "LS4 Mail Carts",
			Description: "Larger capacity mail carts for high-volume operations. Built for durability and ease of use.",
			ImageURL:    "/images/LS4 Mail Cart.jpg",
			Category:    "carts",
			SortOrder:   13,
		},
		{
			ID:          "grocery-carryout",
			Name:        "Grocery Carry Out Carts",
			Description: "Durable carts for grocery store customer service applications. Enhances the shopping experience.",
			ImageURL:    "/images/Carryout Cropped.jpg",
			Category:    "carts",
			SortOrder:   14,
		},
		{
			ID:          "receiving-carts",
			Name:        "Receiving Carts",
			Description: "Versatile receiving carts with multiple configurations. Available in closed, half-open, and fully open designs.",
			ImageURL:    "/images/Receiving Cart - Fully open.jpg",
			Category:    "carts",
			SortOrder:   15,
		},
	}
}

func DefaultEvents() []models.Event {
	return []models.Event{
		{
			ID:          "ibie-2025",
			Title:       "IBIE 2025 - International Baking Industry Exposition",
			Date:        "September 2025",
			Location:    "Las Vegas, NV",
			Description: "Visit us at the world's largest baking industry event. See our latest equipment and innovations.",
		},
	}
}
