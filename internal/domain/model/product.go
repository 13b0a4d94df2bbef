package model

// Product is a read-only snapshot of a catalog product, sourced from the
// external catalog API. The cart engine never mutates or re-fetches it; adding
// a product to the cart copies the fields it needs into a LineItem.
//
// @Description Catalog product snapshot
type Product struct {
	ID                 int64    `json:"id" example:"1"`
	Title              string   `json:"title" example:"Essence Mascara Lash Princess"`
	Description        string   `json:"description,omitempty"`
	Category           string   `json:"category,omitempty" example:"beauty"`
	Price              float64  `json:"price" example:"9.99"`
	DiscountPercentage float64  `json:"discountPercentage" example:"7.17"`
	Rating             float64  `json:"rating,omitempty"`
	Stock              int      `json:"stock" example:"5"`
	Brand              string   `json:"brand,omitempty"`
	SKU                string   `json:"sku,omitempty"`
	Thumbnail          string   `json:"thumbnail"`
	Images             []string `json:"images,omitempty"`
}

// ProductsPage is one page of a paginated catalog listing.
type ProductsPage struct {
	Products []Product `json:"products"`
	Total    int       `json:"total"`
	Skip     int       `json:"skip"`
	Limit    int       `json:"limit"`
}
