// Package catalog serves read-only queries over the fixed product
// collection: filtering, sorting, pagination, and search.
package catalog

import (
	"context"
	"sort"
	"strings"

	"shopease/internal/domain"
	categoryrepo "shopease/internal/repository/category"
	productrepo "shopease/internal/repository/product"
)

// Sort keys accepted by List.
const (
	SortPopular   = "popular"
	SortPriceLow  = "price_low"
	SortPriceHigh = "price_high"
	SortNewest    = "newest"
	SortRating    = "rating"
)

const maxSearchResults = 5

type Service struct {
	products   productrepo.Repository
	categories categoryrepo.Repository
}

func New(products productrepo.Repository, categories categoryrepo.Repository) *Service {
	return &Service{products: products, categories: categories}
}

// Params narrows and orders a product listing. Nil/empty fields mean "no
// constraint". Page is 1-based; pagination applies only when Page > 0.
type Params struct {
	CategoryID *int
	Brands     []string
	MinPrice   *int64
	MaxPrice   *int64
	Sort       string
	Page       int
	PageSize   int
}

// SearchResult is the lightweight summary projected for search suggestions.
type SearchResult struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	ImageURL string `json:"imageUrl"`
	Price    int64  `json:"price"`
	Category string `json:"category"`
}

// List applies filter, sort, and pagination over the catalog.
func (s *Service) List(ctx context.Context, params Params) ([]domain.Product, error) {
	products, err := s.products.List(ctx)
	if err != nil {
		return nil, err
	}
	filtered := filterProducts(products, params)
	sortProducts(filtered, params.Sort)
	return paginate(filtered, params.Page, params.PageSize), nil
}

func (s *Service) Get(ctx context.Context, id int) (*domain.Product, error) {
	return s.products.GetByID(ctx, id)
}

// ListByCategory returns products with an exact category id match, in source
// order. An unknown category yields an empty list, not an error.
func (s *Service) ListByCategory(ctx context.Context, categoryID int) ([]domain.Product, error) {
	return s.products.ListByCategory(ctx, categoryID)
}

func (s *Service) Categories(ctx context.Context) ([]domain.Category, error) {
	return s.categories.List(ctx)
}

func (s *Service) Category(ctx context.Context, id int) (*domain.Category, error) {
	return s.categories.GetByID(ctx, id)
}

// Search matches the query case-insensitively against product name,
// description, and brand, returning at most 5 summaries. A blank query yields
// an empty result set rather than the full catalog.
func (s *Service) Search(ctx context.Context, query string) ([]SearchResult, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return []SearchResult{}, nil
	}

	products, err := s.products.List(ctx)
	if err != nil {
		return nil, err
	}
	categories, err := s.categories.List(ctx)
	if err != nil {
		return nil, err
	}
	categoryNames := make(map[int]string, len(categories))
	for _, c := range categories {
		categoryNames[c.ID] = c.Name
	}

	results := make([]SearchResult, 0, maxSearchResults)
	for _, p := range products {
		if !strings.Contains(strings.ToLower(p.Name), q) &&
			!strings.Contains(strings.ToLower(p.Description), q) &&
			!strings.Contains(strings.ToLower(p.Brand), q) {
			continue
		}
		results = append(results, SearchResult{
			ID:       p.ID,
			Name:     p.Name,
			ImageURL: p.ImageURL,
			Price:    p.EffectivePrice(),
			Category: categoryNames[p.CategoryID],
		})
		if len(results) == maxSearchResults {
			break
		}
	}
	return results, nil
}

func filterProducts(products []domain.Product, params Params) []domain.Product {
	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if params.CategoryID != nil && p.CategoryID != *params.CategoryID {
			continue
		}
		if len(params.Brands) > 0 && !containsBrand(params.Brands, p.Brand) {
			continue
		}
		price := p.EffectivePrice()
		if params.MinPrice != nil && price < *params.MinPrice {
			continue
		}
		if params.MaxPrice != nil && price > *params.MaxPrice {
			continue
		}
		out = append(out, p)
	}
	return out
}

func containsBrand(brands []string, brand string) bool {
	for _, b := range brands {
		if strings.EqualFold(b, brand) {
			return true
		}
	}
	return false
}

// sortProducts orders in place. The sort is stable; ties keep their prior
// relative order. Unknown keys fall back to popular.
func sortProducts(products []domain.Product, key string) {
	var less func(a, b domain.Product) bool
	switch key {
	case SortPriceLow:
		less = func(a, b domain.Product) bool { return a.EffectivePrice() < b.EffectivePrice() }
	case SortPriceHigh:
		less = func(a, b domain.Product) bool { return a.EffectivePrice() > b.EffectivePrice() }
	case SortNewest:
		// descending id stands in for recency; the catalog has no explicit
		// timestamp ordering guarantee
		less = func(a, b domain.Product) bool { return a.ID > b.ID }
	case SortRating:
		less = func(a, b domain.Product) bool { return a.Rating > b.Rating }
	case SortPopular:
		fallthrough
	default:
		less = func(a, b domain.Product) bool { return a.ReviewCount > b.ReviewCount }
	}
	sort.SliceStable(products, func(i, j int) bool { return less(products[i], products[j]) })
}

// paginate slices out the 1-based page. Page <= 0 disables pagination;
// out-of-range pages yield an empty slice.
func paginate(products []domain.Product, page, pageSize int) []domain.Product {
	if page <= 0 || pageSize <= 0 {
		return products
	}
	start := (page - 1) * pageSize
	if start >= len(products) {
		return []domain.Product{}
	}
	end := start + pageSize
	if end > len(products) {
		end = len(products)
	}
	return products[start:end]
}
