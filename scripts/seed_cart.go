//go:build ignore

// This script seeds a local cart snapshot with the demo items so the service
// starts with a populated cart.
// Run with: go run scripts/seed_cart.go [path]
package main

import (
	"fmt"
	"os"

	"github.com/guttosm/cart-service/internal/domain/model"
	"github.com/guttosm/cart-service/internal/pricing"
	"github.com/guttosm/cart-service/internal/storage"
)

func main() {
	path := "data/cart.json"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	products := []struct {
		product  model.Product
		quantity int
	}{
		{
			product: model.Product{
				ID:        1,
				Title:     "Essence Mascara Lash Princess",
				Price:     9.99,
				Thumbnail: "https://cdn.dummyjson.com/product-images/beauty/essence-mascara-lash-princess/thumbnail.webp",
			},
			quantity: 2,
		},
		{
			product: model.Product{
				ID:        7,
				Title:     "Chanel Coco Noir Eau De",
				Price:     129.99,
				Thumbnail: "https://cdn.dummyjson.com/product-images/fragrances/chanel-coco-noir-eau-de/thumbnail.webp",
			},
			quantity: 1,
		},
		{
			product: model.Product{
				ID:        16,
				Title:     "Apple",
				Price:     1.99,
				Thumbnail: "https://cdn.dummyjson.com/product-images/groceries/apple/thumbnail.webp",
			},
			quantity: 5,
		},
	}

	items := make([]model.LineItem, 0, len(products))
	for i, p := range products {
		items = append(items, pricing.NewLineItem(p.product, int64(i+1), p.quantity))
	}

	data := model.CartData{Items: items, Summary: pricing.Summarize(items)}
	if err := storage.NewFileStorage(path).Save(data); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing cart snapshot: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Seeded %d items into %s (total %.2f)\n", len(items), path, data.Summary.Total)
}
