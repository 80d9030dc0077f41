package service

import (
	"context"
	"log"
	"strings"

	"github.com/sangkips/shopadmin-api/internal/domain/entity"
	"github.com/sangkips/shopadmin-api/internal/domain/repository"
	"github.com/sangkips/shopadmin-api/pkg/apperror"
	"github.com/sangkips/shopadmin-api/pkg/pagination"
	"github.com/sangkips/shopadmin-api/pkg/utils"
)

// CategoryListCache caches category list pages. Invalidate advances the
// generation; pages are read and written for an explicit generation.
type CategoryListCache interface {
	Generation(ctx context.Context) (int64, error)
	GetList(ctx context.Context, generation int64, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Category], bool, error)
	SetList(ctx context.Context, generation int64, params *pagination.PaginationParams, search string, result *pagination.PaginatedResult[entity.Category]) error
	Invalidate(ctx context.Context) error
}

// CategoryService handles category-related operations
type CategoryService struct {
	categoryRepo repository.CategoryRepository
	cache        CategoryListCache
}

// NewCategoryService creates a new category service. cache may be nil.
func NewCategoryService(categoryRepo repository.CategoryRepository, cache CategoryListCache) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo, cache: cache}
}

// CreateCategoryInput represents the create category input
type CreateCategoryInput struct {
	Name        string
	Image       string
	Description string
}

// CreateCategory creates a new category
func (s *CategoryService) CreateCategory(ctx context.Context, input *CreateCategoryInput) (*entity.Category, error) {
	name := strings.TrimSpace(input.Name)
	slug := utils.Slugify(name)
	if slug == "" {
		return nil, apperror.NewBadRequestError("Category name is required")
	}

	existing, err := s.categoryRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Category with this name already exists")
	}

	category := &entity.Category{
		Name:        name,
		Slug:        slug,
		Image:       input.Image,
		Description: input.Description,
	}

	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Invalidate(ctx); err != nil {
			log.Printf("Warning: failed to invalidate category cache: %v", err)
		}
	}

	return category, nil
}

// ListCategories lists categories, serving from the cache when possible.
// The page is cached under the generation read before the database query,
// so a category created meanwhile makes it unreachable.
func (s *CategoryService) ListCategories(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Category], error) {
	params.Validate()

	useCache := s.cache != nil
	var generation int64
	if useCache {
		var err error
		generation, err = s.cache.Generation(ctx)
		if err != nil {
			log.Printf("Warning: category cache unavailable: %v", err)
			useCache = false
		}
	}

	if useCache {
		cached, ok, err := s.cache.GetList(ctx, generation, params, search)
		if err != nil {
			log.Printf("Warning: category cache read failed: %v", err)
		} else if ok {
			return cached, nil
		}
	}

	categories, total, err := s.categoryRepo.List(ctx, params, search)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	result := pagination.NewPaginatedResult(categories, pag)

	if useCache {
		if err := s.cache.SetList(ctx, generation, params, search, result); err != nil {
			log.Printf("Warning: category cache write failed: %v", err)
		}
	}

	return result, nil
}
