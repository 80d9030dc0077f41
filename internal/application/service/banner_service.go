package service

import (
	"context"
	"strings"

	"github.com/sangkips/shopadmin-api/internal/domain/entity"
	"github.com/sangkips/shopadmin-api/internal/domain/repository"
	"github.com/sangkips/shopadmin-api/pkg/apperror"
	"github.com/sangkips/shopadmin-api/pkg/pagination"
)

// BannerService handles promotional banners
type BannerService struct {
	bannerRepo repository.BannerRepository
}

// NewBannerService creates a new banner service
func NewBannerService(bannerRepo repository.BannerRepository) *BannerService {
	return &BannerService{bannerRepo: bannerRepo}
}

// CreateBannerInput represents the create banner input
type CreateBannerInput struct {
	Title       string
	Description string
	Image       string
}

// CreateBanner creates a new banner
func (s *BannerService) CreateBanner(ctx context.Context, input *CreateBannerInput) (*entity.Banner, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, apperror.NewBadRequestError("Banner title is required")
	}
	if input.Image == "" {
		return nil, apperror.NewBadRequestError("Banner image is required")
	}

	banner := &entity.Banner{
		Title:       title,
		Description: input.Description,
		Image:       input.Image,
	}

	if err := s.bannerRepo.Create(ctx, banner); err != nil {
		return nil, err
	}

	return banner, nil
}

// ListBanners lists banners, newest first
func (s *BannerService) ListBanners(ctx context.Context, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.Banner], error) {
	params.Validate()

	banners, total, err := s.bannerRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(banners, pag), nil
}
