package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/sangkips/shopadmin-api/internal/domain/entity"
	"github.com/sangkips/shopadmin-api/internal/domain/repository"
	"github.com/sangkips/shopadmin-api/pkg/pagination"
)

var errDatabaseDown = errors.New("database down")

type fakeOrderRepo struct {
	orders []entity.Order
	err    error
	params *repository.OrderFilterParams
}

func (f *fakeOrderRepo) ListAll(ctx context.Context) ([]entity.Order, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.orders, nil
}

func (f *fakeOrderRepo) List(ctx context.Context, params *repository.OrderFilterParams) ([]entity.Order, int64, error) {
	f.params = params
	if f.err != nil {
		return nil, 0, f.err
	}
	return f.orders, int64(len(f.orders)), nil
}

func (f *fakeOrderRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.orders {
		if f.orders[i].ID == id {
			return &f.orders[i], nil
		}
	}
	return nil, nil
}

type fakeCategoryRepo struct {
	categories []entity.Category
	listCalls  int
	// afterList runs once the page has been read, before List returns
	afterList func()
}

func (f *fakeCategoryRepo) Create(ctx context.Context, category *entity.Category) error {
	category.ID = uuid.New()
	f.categories = append(f.categories, *category)
	return nil
}

func (f *fakeCategoryRepo) GetBySlug(ctx context.Context, slug string) (*entity.Category, error) {
	for i := range f.categories {
		if f.categories[i].Slug == slug {
			return &f.categories[i], nil
		}
	}
	return nil, nil
}

func (f *fakeCategoryRepo) GetByName(ctx context.Context, name string) (*entity.Category, error) {
	for i := range f.categories {
		if strings.EqualFold(f.categories[i].Name, name) {
			return &f.categories[i], nil
		}
	}
	return nil, nil
}

func (f *fakeCategoryRepo) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Category, int64, error) {
	f.listCalls++
	page := append([]entity.Category(nil), f.categories...)
	if f.afterList != nil {
		hook := f.afterList
		f.afterList = nil
		hook()
	}
	return page, int64(len(page)), nil
}

type fakeProductRepo struct {
	products []entity.Product
}

func (f *fakeProductRepo) Create(ctx context.Context, product *entity.Product) error {
	product.ID = uuid.New()
	f.products = append(f.products, *product)
	return nil
}

func (f *fakeProductRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	for i := range f.products {
		if f.products[i].ID == id {
			return &f.products[i], nil
		}
	}
	return nil, nil
}

func (f *fakeProductRepo) GetBySlug(ctx context.Context, slug string) (*entity.Product, error) {
	for i := range f.products {
		if f.products[i].Slug == slug {
			return &f.products[i], nil
		}
	}
	return nil, nil
}

func (f *fakeProductRepo) List(ctx context.Context, params *repository.ProductFilterParams) ([]entity.Product, int64, error) {
	return f.products, int64(len(f.products)), nil
}

type fakeBannerRepo struct {
	banners []entity.Banner
}

func (f *fakeBannerRepo) Create(ctx context.Context, banner *entity.Banner) error {
	banner.ID = uuid.New()
	f.banners = append(f.banners, *banner)
	return nil
}

func (f *fakeBannerRepo) List(ctx context.Context, params *pagination.PaginationParams) ([]entity.Banner, int64, error) {
	return f.banners, int64(len(f.banners)), nil
}

type fakeUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
	for _, u := range users {
		repo.users[u.ID] = u
	}
	return repo
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetWithRoles(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return f.users[id], nil
}

type memoryCategoryCache struct {
	mu          sync.Mutex
	generation  int64
	pages       map[string]*pagination.PaginatedResult[entity.Category]
	getErr      error
	invalidated int
}

func newMemoryCategoryCache() *memoryCategoryCache {
	return &memoryCategoryCache{pages: make(map[string]*pagination.PaginatedResult[entity.Category])}
}

func cacheKey(generation int64, params *pagination.PaginationParams, search string) string {
	return fmt.Sprintf("%d|%s|%d|%d", generation, search, params.Page, params.PerPage)
}

func (m *memoryCategoryCache) Generation(ctx context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return 0, m.getErr
	}
	return m.generation, nil
}

func (m *memoryCategoryCache) GetList(ctx context.Context, generation int64, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Category], bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return nil, false, m.getErr
	}
	page, ok := m.pages[cacheKey(generation, params, search)]
	return page, ok, nil
}

func (m *memoryCategoryCache) SetList(ctx context.Context, generation int64, params *pagination.PaginationParams, search string, result *pagination.PaginatedResult[entity.Category]) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pages[cacheKey(generation, params, search)] = result
	return nil
}

func (m *memoryCategoryCache) Invalidate(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.invalidated++
	m.generation++
	m.pages = make(map[string]*pagination.PaginatedResult[entity.Category])
	return nil
}

type recordingStorage struct {
	name, folder, body string
	err                error
}

func (r *recordingStorage) Upload(ctx context.Context, file io.Reader, name, folder string) (string, error) {
	if r.err != nil {
		return "", r.err
	}
	data, err := io.ReadAll(file)
	if err != nil {
		return "", err
	}
	r.name, r.folder, r.body = name, folder, string(data)
	return "https://cdn.test/" + folder + "/" + name, nil
}
