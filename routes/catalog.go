package routes

import (
	"xaymart/catalog"
	"xaymart/db"
	"xaymart/models"

	"github.com/gofiber/fiber/v2"
)

// categoryLookup resolves a category slug at most once per request. The
// browse page needs the category for the listing, the facets and the
// breadcrumb; the cache lives in c.Locals and dies with the request.
type categoryLookup struct {
	category *models.Category
	children []catalog.CategoryChild
}

func lookupCategory(c *fiber.Ctx, slug string) (*categoryLookup, error) {
	key := "category:" + slug
	if cached, ok := c.Locals(key).(*categoryLookup); ok {
		return cached, nil
	}
	category, children, err := catalog.CategoryBySlug(db.DB, slug)
	if err != nil {
		return nil, err
	}
	result := &categoryLookup{category: category, children: children}
	c.Locals(key, result)
	return result, nil
}

func getFeaturedCategories(c *fiber.Ctx) error {
	var categories []models.Category
	if err := db.DB.Preload("Children").
		Where("parent_id IS NULL").
		Order("is_featured DESC, name ASC").
		Find(&categories).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get categories",
		})
	}
	return c.JSON(categories)
}

func getCategoryBySlug(c *fiber.Ctx) error {
	lookup, err := lookupCategory(c, c.Params("slug"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get category",
		})
	}
	if lookup.category == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Category not found",
		})
	}
	return c.JSON(fiber.Map{
		"category": lookup.category,
		"children": lookup.children,
	})
}

func getCategoryProducts(c *fiber.Ctx) error {
	slug := c.Params("slug")

	params := catalog.ListParams{
		Page:          c.QueryInt("page", 1),
		PageSize:      c.QueryInt("page_size", catalog.DefaultPageSize),
		Sort:          c.Query("sort"),
		ProductTypeID: uint(c.QueryInt("product_type", 0)),
		CollectionID:  uint(c.QueryInt("collection", 0)),
		Colors:        splitValues(c.Query("color")),
		Surfaces:      splitValues(c.Query("surface")),
		Dimensions:    splitValues(c.Query("dimensions")),
	}

	products, total, err := catalog.ListProducts(db.DB, slug, params)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get products",
		})
	}

	return c.JSON(ProductListResponse{
		Products: products,
		Total:    total,
		Page:     params.Page,
		PageSize: params.PageSize,
	})
}

func getCategoryFilters(c *fiber.Ctx) error {
	lookup, err := lookupCategory(c, c.Params("slug"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get category",
		})
	}
	if lookup.category == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Category not found",
		})
	}

	facets, err := catalog.FilterValues(db.DB, lookup.category.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get filter values",
		})
	}

	types, err := catalog.ProductTypesByCategory(db.DB, lookup.category.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get product types",
		})
	}
	collections, err := catalog.CollectionsByCategory(db.DB, lookup.category.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get collections",
		})
	}

	return c.JSON(fiber.Map{
		"facets":        facets,
		"product_types": types,
		"collections":   collections,
	})
}

func getProductBySlug(c *fiber.Ctx) error {
	product, err := catalog.ProductBySlug(db.DB, c.Params("slug"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get product",
		})
	}
	if product == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Product not found",
		})
	}

	related, err := catalog.RelatedProducts(db.DB, product.CategoryID, product.ID, catalog.DefaultRelatedLimit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get related products",
		})
	}

	return c.JSON(fiber.Map{
		"product":       product,
		"display_price": product.DisplayPrice(),
		"related":       related,
	})
}

func searchProducts(c *fiber.Ctx) error {
	q := c.Query("q")
	if q == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Query parameter 'q' is required",
		})
	}
	products, err := catalog.SearchProducts(db.DB, q, 20)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to search products",
		})
	}
	return c.JSON(fiber.Map{"products": products})
}

func getCollectionBySlug(c *fiber.Ctx) error {
	collection, err := catalog.CollectionBySlug(db.DB, c.Params("slug"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get collection",
		})
	}
	if collection == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Collection not found",
		})
	}
	return c.JSON(collection)
}

func getPublishedPosts(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	pageSize := c.QueryInt("page_size", 10)
	if pageSize < 1 {
		pageSize = 10
	}

	var total int64
	if err := db.DB.Model(&models.Post{}).Where("is_published = ?", true).Count(&total).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to count posts",
		})
	}

	var posts []models.Post
	if err := db.DB.Where("is_published = ?", true).
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&posts).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get posts",
		})
	}

	return c.JSON(fiber.Map{
		"posts":     posts,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	})
}

func getPostBySlug(c *fiber.Ctx) error {
	var post models.Post
	if err := db.DB.Where("slug = ? AND is_published = ?", c.Params("slug"), true).
		First(&post).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Post not found",
		})
	}
	return c.JSON(post)
}

func getBanners(c *fiber.Ctx) error {
	var banners []models.Banner
	if err := db.DB.Order("sort_order ASC").Find(&banners).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get banners",
		})
	}
	return c.JSON(banners)
}

func getPartners(c *fiber.Ctx) error {
	var partners []models.Partner
	if err := db.DB.Find(&partners).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get partners",
		})
	}
	return c.JSON(partners)
}

func getProjects(c *fiber.Ctx) error {
	var projects []models.Project
	if err := db.DB.Order("created_at DESC").Find(&projects).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get projects",
		})
	}
	return c.JSON(projects)
}
