// Package catalog holds the storefront read path: category resolution,
// filtered product listings and the facet values derived from product specs.
package catalog

import (
	"encoding/json"
	"errors"
	"sort"

	"xaymart/models"

	"gorm.io/gorm"
)

// Sort keys accepted by ListProducts. Anything else falls back to SortNewest.
const (
	SortNewest    = "newest"
	SortPriceAsc  = "price_asc"
	SortPriceDesc = "price_desc"
	SortNameAsc   = "name_asc"
)

const (
	DefaultPageSize     = 12
	DefaultRelatedLimit = 5
)

// ListParams narrows a category listing. Zero values mean "no filter".
type ListParams struct {
	Page          int
	PageSize      int
	Sort          string
	ProductTypeID uint
	CollectionID  uint
	Colors        []string
	Surfaces      []string
	Dimensions    []string
}

// FilterFacets are the distinct spec values available within a category.
type FilterFacets struct {
	Colors     []string `json:"colors"`
	Surfaces   []string `json:"surfaces"`
	Dimensions []string `json:"dimensions"`
}

// CategoryChild is a direct child annotated with its published product count.
type CategoryChild struct {
	models.Category
	ProductCount int64 `json:"product_count"`
}

// CategoryBySlug loads a category with its parent and its direct children
// annotated with published product counts. A missing slug returns
// (nil, nil, nil): not-found is a normal outcome on this path.
func CategoryBySlug(gdb *gorm.DB, slug string) (*models.Category, []CategoryChild, error) {
	var category models.Category
	err := gdb.Preload("Parent").Preload("Children").
		Where("slug = ?", slug).First(&category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, nil
		}
		return nil, nil, err
	}

	children := make([]CategoryChild, 0, len(category.Children))
	for _, child := range category.Children {
		var count int64
		if err := gdb.Model(&models.Product{}).
			Where("category_id = ? AND is_published = ?", child.ID, true).
			Count(&count).Error; err != nil {
			return nil, nil, err
		}
		children = append(children, CategoryChild{Category: child, ProductCount: count})
	}
	return &category, children, nil
}

// effectiveCategoryIDs is the category itself plus its direct children. The
// tree is one level deep in practice; grandchildren are deliberately not
// traversed.
func effectiveCategoryIDs(gdb *gorm.DB, category *models.Category) ([]uint, error) {
	ids := []uint{category.ID}
	var childIDs []uint
	if err := gdb.Model(&models.Category{}).
		Where("parent_id = ?", category.ID).
		Pluck("id", &childIDs).Error; err != nil {
		return nil, err
	}
	return append(ids, childIDs...), nil
}

// ListProducts returns one page of published products under the category slug
// (including its direct children) plus the total count under the same filter
// set. An unknown slug yields an empty page with total 0, not an error.
func ListProducts(gdb *gorm.DB, slug string, params ListParams) ([]models.Product, int64, error) {
	var category models.Category
	if err := gdb.Where("slug = ?", slug).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []models.Product{}, 0, nil
		}
		return nil, 0, err
	}

	ids, err := effectiveCategoryIDs(gdb, &category)
	if err != nil {
		return nil, 0, err
	}

	query := gdb.Model(&models.Product{}).
		Where("category_id IN ?", ids).
		Where("is_published = ?", true)
	if params.ProductTypeID != 0 {
		query = query.Where("product_type_id = ?", params.ProductTypeID)
	}
	if params.CollectionID != 0 {
		query = query.Where("collection_id = ?", params.CollectionID)
	}
	if len(params.Colors) > 0 {
		query = query.Where("color_name IN ?", params.Colors)
	}
	if len(params.Surfaces) > 0 {
		query = query.Where("surface IN ?", params.Surfaces)
	}
	if len(params.Dimensions) > 0 {
		query = query.Where("dimensions IN ?", params.Dimensions)
	}

	// Total must reflect the exact filter set the page is cut from.
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := params.Page
	if page < 1 {
		page = 1
	}
	pageSize := params.PageSize
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}

	var products []models.Product
	err = query.Order(orderClause(params.Sort)).
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Preload("Brand").Preload("Collection").
		Find(&products).Error
	if err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

func orderClause(sortKey string) string {
	switch sortKey {
	case SortPriceAsc:
		return "price ASC"
	case SortPriceDesc:
		return "price DESC"
	case SortNameAsc:
		return "name ASC"
	default:
		return "created_at DESC"
	}
}

// FilterValues scans the specs JSON of every published product in the
// category and collects the distinct values for the three fixed facet keys.
// Rows whose specs fail to parse are skipped, never fatal.
func FilterValues(gdb *gorm.DB, categoryID uint) (*FilterFacets, error) {
	var rows []string
	err := gdb.Model(&models.Product{}).
		Where("category_id = ? AND is_published = ? AND specs <> ''", categoryID, true).
		Pluck("specs", &rows).Error
	if err != nil {
		return nil, err
	}

	colors := map[string]bool{}
	surfaces := map[string]bool{}
	dimensions := map[string]bool{}
	for _, raw := range rows {
		var specs map[string]string
		if err := json.Unmarshal([]byte(raw), &specs); err != nil {
			continue
		}
		if v := specs["color"]; v != "" {
			colors[v] = true
		}
		if v := specs["surface"]; v != "" {
			surfaces[v] = true
		}
		if v := specs["dimensions"]; v != "" {
			dimensions[v] = true
		}
	}

	return &FilterFacets{
		Colors:     sortedKeys(colors),
		Surfaces:   sortedKeys(surfaces),
		Dimensions: sortedKeys(dimensions),
	}, nil
}

func sortedKeys(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// ProductBySlug loads a published product with its relations, or nil when
// unknown or unpublished.
func ProductBySlug(gdb *gorm.DB, slug string) (*models.Product, error) {
	var product models.Product
	err := gdb.Preload("Category").Preload("Brand").
		Preload("ProductType").Preload("Collection").
		Where("slug = ? AND is_published = ?", slug, true).
		First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

// RelatedProducts picks the most recent published products from the same
// category, excluding the product itself. Recency stands in for similarity.
func RelatedProducts(gdb *gorm.DB, categoryID, excludeID uint, limit int) ([]models.Product, error) {
	if limit <= 0 {
		limit = DefaultRelatedLimit
	}
	var products []models.Product
	err := gdb.Where("category_id = ? AND id <> ? AND is_published = ?", categoryID, excludeID, true).
		Order("created_at DESC").
		Limit(limit).
		Find(&products).Error
	return products, err
}

// CollectionBySlug returns the collection with its published products, or nil
// when unknown.
func CollectionBySlug(gdb *gorm.DB, slug string) (*models.Collection, error) {
	var collection models.Collection
	err := gdb.Preload("ProductType").
		Preload("Products", "is_published = ?", true).
		Where("slug = ?", slug).First(&collection).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &collection, nil
}

// CollectionsByCategory lists collections whose product type belongs to the
// category.
func CollectionsByCategory(gdb *gorm.DB, categoryID uint) ([]models.Collection, error) {
	var collections []models.Collection
	err := gdb.Joins("JOIN product_types ON product_types.id = collections.product_type_id").
		Where("product_types.category_id = ?", categoryID).
		Find(&collections).Error
	return collections, err
}

// ProductTypesByCategory lists the types directly under a category.
func ProductTypesByCategory(gdb *gorm.DB, categoryID uint) ([]models.ProductType, error) {
	var types []models.ProductType
	err := gdb.Where("category_id = ?", categoryID).Find(&types).Error
	return types, err
}

// SearchProducts matches published products by name.
func SearchProducts(gdb *gorm.DB, q string, limit int) ([]models.Product, error) {
	if limit <= 0 {
		limit = 20
	}
	var products []models.Product
	err := gdb.Preload("Category").Preload("Brand").
		Where("name LIKE ? AND is_published = ?", "%"+q+"%", true).
		Limit(limit).
		Find(&products).Error
	return products, err
}
