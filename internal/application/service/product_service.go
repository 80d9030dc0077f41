package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/sangkips/shopadmin-api/internal/domain/entity"
	"github.com/sangkips/shopadmin-api/internal/domain/repository"
	"github.com/sangkips/shopadmin-api/pkg/apperror"
	"github.com/sangkips/shopadmin-api/pkg/pagination"
	"github.com/sangkips/shopadmin-api/pkg/utils"
)

// ProductService handles product-related operations
type ProductService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
}

// NewProductService creates a new product service
func NewProductService(productRepo repository.ProductRepository, categoryRepo repository.CategoryRepository) *ProductService {
	return &ProductService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
	}
}

// CreateProductInput represents the create product input
type CreateProductInput struct {
	Name           string
	Price          string
	FinalPrice     string
	Category       string
	Description    string
	AvailableUnits string
	Image          string
}

// CreateProduct creates a new product in an existing category
func (s *ProductService) CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error) {
	name := strings.TrimSpace(input.Name)
	slug := utils.Slugify(name)
	if slug == "" {
		return nil, apperror.NewBadRequestError("Product name is required")
	}

	category, err := s.categoryRepo.GetByName(ctx, input.Category)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "category", Message: "Category " + input.Category + " does not exist"},
		})
	}

	existing, err := s.productRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Product with this name already exists")
	}

	finalPrice := input.FinalPrice
	if finalPrice == "" {
		finalPrice = input.Price
	}

	product := &entity.Product{
		Name:           name,
		Slug:           slug,
		Price:          input.Price,
		FinalPrice:     finalPrice,
		Category:       category.Name,
		Description:    input.Description,
		AvailableUnits: input.AvailableUnits,
		Image:          input.Image,
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

// GetProduct retrieves a product by ID
func (s *ProductService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	return product, nil
}

// ListProducts lists products
func (s *ProductService) ListProducts(ctx context.Context, params *repository.ProductFilterParams) (*pagination.PaginatedResult[entity.Product], error) {
	if params.Pagination == nil {
		params.Pagination = pagination.DefaultPagination()
	}
	params.Pagination.Validate()

	products, total, err := s.productRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(products, pag), nil
}
