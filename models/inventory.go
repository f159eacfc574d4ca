package models

// AdjustStockRequest is used for both stock increase and decrease calls.
type AdjustStockRequest struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}

// StockResponse reports the current stock of a product. Unknown products
// report zero; callers needing the distinction should fetch the product.
type StockResponse struct {
	ProductID string `json:"product_id"`
	Stock     int    `json:"stock"`
}
