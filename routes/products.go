package routes

import (
	"errors"
	"log"
	"strings"

	"xaymart/db"
	"xaymart/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// productInput is the admin product form. Specs arrive as named fields and
// are encoded to JSON with empties omitted; the promoted columns are written
// in the same save.
type productInput struct {
	Name           string            `json:"name" validate:"required,min=2"`
	Slug           string            `json:"slug" validate:"required,min=2"`
	SKU            string            `json:"sku"`
	Price          *float64          `json:"price"`
	OriginalPrice  *float64          `json:"original_price"`
	ShowPrice      bool              `json:"show_price"`
	Thumbnail      string            `json:"thumbnail"`
	Images         []string          `json:"images"`
	Description    string            `json:"description"`
	Specs          models.SpecFields `json:"specs"`
	IsPublished    bool              `json:"is_published"`
	IsFeatured     bool              `json:"is_featured"`
	CategoryID     uint              `json:"category_id" validate:"required"`
	BrandID        *uint             `json:"brand_id"`
	ProductTypeID  *uint             `json:"product_type_id"`
	CollectionID   *uint             `json:"collection_id"`
	ProductGroupID *uint             `json:"product_group_id"`
}

func isUniqueViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) ||
		strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// checkProductRefs verifies every referenced parent row exists. Returns a
// field-keyed error map, empty when all references resolve.
func checkProductRefs(in *productInput) map[string]string {
	errs := map[string]string{}
	var category models.Category
	if err := db.DB.First(&category, in.CategoryID).Error; err != nil {
		errs["category_id"] = "Danh mục không tồn tại"
	}
	if in.BrandID != nil {
		var brand models.Brand
		if err := db.DB.First(&brand, *in.BrandID).Error; err != nil {
			errs["brand_id"] = "Thương hiệu không tồn tại"
		}
	}
	if in.ProductTypeID != nil {
		var pt models.ProductType
		if err := db.DB.First(&pt, *in.ProductTypeID).Error; err != nil {
			errs["product_type_id"] = "Loại sản phẩm không tồn tại"
		}
	}
	if in.CollectionID != nil {
		var col models.Collection
		if err := db.DB.First(&col, *in.CollectionID).Error; err != nil {
			errs["collection_id"] = "Bộ sưu tập không tồn tại"
		}
	}
	if in.ProductGroupID != nil {
		var pg models.ProductGroup
		if err := db.DB.First(&pg, *in.ProductGroupID).Error; err != nil {
			errs["product_group_id"] = "Nhóm sản phẩm không tồn tại"
		}
	}
	return errs
}

func (in *productInput) apply(p *models.Product) {
	p.Name = in.Name
	p.Slug = in.Slug
	p.SKU = in.SKU
	p.Price = in.Price
	p.OriginalPrice = in.OriginalPrice
	p.ShowPrice = in.ShowPrice
	p.Thumbnail = in.Thumbnail
	p.Images = in.Images
	if p.Images == nil {
		p.Images = []string{}
	}
	p.Description = in.Description
	p.ApplySpecs(in.Specs)
	p.IsPublished = in.IsPublished
	p.IsFeatured = in.IsFeatured
	p.CategoryID = in.CategoryID
	p.BrandID = in.BrandID
	p.ProductTypeID = in.ProductTypeID
	p.CollectionID = in.CollectionID
	p.ProductGroupID = in.ProductGroupID
}

func createProduct(c *fiber.Ctx) error {
	in := new(productInput)
	if err := c.BodyParser(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"errors": validationErrors(err),
		})
	}
	if errs := checkProductRefs(in); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"errors": errs,
		})
	}

	var product models.Product
	in.apply(&product)

	if err := db.DB.Create(&product).Error; err != nil {
		if isUniqueViolation(err) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "Slug already exists",
			})
		}
		log.Println("Create product error:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create product",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(product)
}

func getAllProducts(c *fiber.Ctx) error {
	var total int64
	var products []models.Product

	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	pageSize := c.QueryInt("page_size", 20)
	if pageSize < 1 {
		pageSize = 20
	}

	query := db.DB.Model(&models.Product{})
	if categoryID := c.QueryInt("category_id", 0); categoryID > 0 {
		query = query.Where("category_id = ?", categoryID)
	}
	if brandID := c.QueryInt("brand_id", 0); brandID > 0 {
		query = query.Where("brand_id = ?", brandID)
	}

	if err := query.Count(&total).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to count products",
		})
	}

	if err := query.Preload("Category").Preload("Brand").
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&products).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get products",
		})
	}

	return c.JSON(ProductListResponse{
		Products: products,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	})
}

func getProduct(c *fiber.Ctx) error {
	id := c.Params("id")
	var product models.Product

	if err := db.DB.Preload("Category").Preload("Brand").
		Preload("ProductType").Preload("Collection").Preload("ProductGroup").
		First(&product, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Product not found",
		})
	}

	return c.JSON(product)
}

func updateProduct(c *fiber.Ctx) error {
	id := c.Params("id")

	var existing models.Product
	if err := db.DB.First(&existing, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Product not found",
		})
	}

	in := new(productInput)
	if err := c.BodyParser(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"errors": validationErrors(err),
		})
	}
	if errs := checkProductRefs(in); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"errors": errs,
		})
	}

	in.apply(&existing)

	// Save, not Updates: the form is the full product, and zeroed fields
	// (show_price off, cleared price) must be written too.
	if err := db.DB.Save(&existing).Error; err != nil {
		if isUniqueViolation(err) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "Slug already exists",
			})
		}
		log.Println("Update product error:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update product",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Product updated successfully",
		"data":    existing,
	})
}

func deleteProduct(c *fiber.Ctx) error {
	id := c.Params("id")

	var product models.Product
	if err := db.DB.First(&product, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Product not found",
		})
	}

	// Quote items keep their product reference; drop them with the product.
	tx := db.DB.Begin()
	if err := tx.Where("product_id = ?", product.ID).Delete(&models.QuoteItem{}).Error; err != nil {
		tx.Rollback()
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete product",
		})
	}
	if err := tx.Delete(&product).Error; err != nil {
		tx.Rollback()
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete product",
		})
	}
	if err := tx.Commit().Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete product",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Product deleted successfully",
	})
}
