package request

// CreateCategoryRequest represents a category creation request
type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=255"`
	Image       string `json:"image" binding:"omitempty,url"`
	Description string `json:"description" binding:"max=2000"`
}

// CategoryFilterRequest represents category list parameters
type CategoryFilterRequest struct {
	Search  string `form:"search"`
	Page    int    `form:"page"`
	PerPage int    `form:"per_page"`
}

// CreateProductRequest represents a product creation request. Prices and
// available units are kept as text, the way the storefront stores them.
type CreateProductRequest struct {
	Name           string `json:"name" binding:"required,min=2,max=255"`
	Price          string `json:"price" binding:"required,numeric"`
	FinalPrice     string `json:"final_price" binding:"omitempty,numeric"`
	Category       string `json:"category" binding:"required"`
	Description    string `json:"description" binding:"max=5000"`
	AvailableUnits string `json:"available_units" binding:"omitempty,numeric"`
	Image          string `json:"image" binding:"omitempty,url"`
}

// ProductFilterRequest represents product filter parameters
type ProductFilterRequest struct {
	Search   string `form:"search"`
	Category string `form:"category"`
	Page     int    `form:"page"`
	PerPage  int    `form:"per_page"`
}

// CreateBannerRequest represents a banner creation request
type CreateBannerRequest struct {
	Title       string `json:"title" binding:"required,max=255"`
	Description string `json:"description" binding:"max=2000"`
	Image       string `json:"image" binding:"required,url"`
}
