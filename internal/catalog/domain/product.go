package domain

// Product adalah satu entri katalog. ID diberikan caller dan unik
// di seluruh katalog; urutan penyimpanan mengikuti urutan insert.
type Product struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

type CreateProductRequest struct {
	ID       string   `json:"id" binding:"required"`
	Name     string   `json:"name" binding:"required"`
	Price    *float64 `json:"price" binding:"required"`
	Quantity *int     `json:"quantity" binding:"required"`
}

// UpdateProductRequest memakai pointer untuk field opsional: nil berarti
// "tidak diubah", sedangkan pointer ke nol berarti "set ke nol".
type UpdateProductRequest struct {
	ID       string   `json:"-"`
	Name     *string  `json:"name,omitempty"`
	Price    *float64 `json:"price,omitempty"`
	Quantity *int     `json:"quantity,omitempty"`
}
