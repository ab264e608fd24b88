package routes

import (
	"log"

	"xaymart/db"
	"xaymart/models"

	"github.com/gofiber/fiber/v2"
)

// productsUsing counts products referencing a parent row through the given
// foreign key column. Delete handlers refuse while this is non-zero.
func productsUsing(column string, id string) (int64, error) {
	var count int64
	err := db.DB.Model(&models.Product{}).Where(column+" = ?", id).Count(&count).Error
	return count, err
}

// Category handlers

func createCategory(c *fiber.Ctx) error {
	category := new(models.Category)
	if err := c.BodyParser(category); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}
	if err := validate.Struct(category); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"errors": validationErrors(err),
		})
	}
	if category.ParentID != nil {
		var parent models.Category
		if err := db.DB.First(&parent, *category.ParentID).Error; err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"errors": fiber.Map{"parent_id": "Danh mục cha không tồn tại"},
			})
		}
	}

	category.Children = nil
	category.Products = nil

	if err := db.DB.Create(&category).Error; err != nil {
		if isUniqueViolation(err) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "Slug already exists",
			})
		}
		log.Println("Create category error:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create category",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(category)
}

func getAllCategories(c *fiber.Ctx) error {
	var categories []models.Category
	if err := db.DB.Preload("Children").Where("parent_id IS NULL").Find(&categories).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get categories",
		})
	}
	return c.JSON(categories)
}

func updateCategory(c *fiber.Ctx) error {
	id := c.Params("id")

	var existing models.Category
	if err := db.DB.First(&existing, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Category not found",
		})
	}

	category := new(models.Category)
	if err := c.BodyParser(category); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}
	if err := validate.Struct(category); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"errors": validationErrors(err),
		})
	}

	category.Children = nil
	category.Products = nil

	existing.Name = category.Name
	existing.Slug = category.Slug
	existing.Image = category.Image
	existing.IsFeatured = category.IsFeatured
	existing.ParentID = category.ParentID

	if err := db.DB.Save(&existing).Error; err != nil {
		if isUniqueViolation(err) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "Slug already exists",
			})
		}
		log.Println("Update category error:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update category",
		})
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Category updated successfully",
		"data":    existing,
	})
}

func deleteCategory(c *fiber.Ctx) error {
	id := c.Params("id")

	var category models.Category
	if err := db.DB.First(&category, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Category not found",
		})
	}

	count, err := productsUsing("category_id", id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to check products",
		})
	}
	if count > 0 {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Cannot delete: category still has products",
		})
	}

	var childCount int64
	if err := db.DB.Model(&models.Category{}).Where("parent_id = ?", id).Count(&childCount).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to check child categories",
		})
	}
	if childCount > 0 {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Cannot delete: category still has child categories",
		})
	}

	if err := db.DB.Delete(&category).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete category",
		})
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Category deleted successfully",
	})
}

// Brand handlers

func createBrand(c *fiber.Ctx) error {
	brand := new(models.Brand)
	if err := c.BodyParser(brand); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}
	if err := validate.Struct(brand); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"errors": validationErrors(err),
		})
	}

	var category models.Category
	if err := db.DB.First(&category, brand.CategoryID).Error; err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"errors": fiber.Map{"category_id": "Danh mục không tồn tại"},
		})
	}

	brand.Products = nil

	if err := db.DB.Create(&brand).Error; err != nil {
		if isUniqueViolation(err) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "Slug already exists",
			})
		}
		log.Println("Create brand error:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create brand",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(brand)
}

func getAllBrands(c *fiber.Ctx) error {
	query := db.DB.Preload("Category")
	if categoryID := c.QueryInt("category_id", 0); categoryID > 0 {
		query = query.Where("category_id = ?", categoryID)
	}
	var brands []models.Brand
	if err := query.Find(&brands).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get brands",
		})
	}
	return c.JSON(brands)
}

func updateBrand(c *fiber.Ctx) error {
	id := c.Params("id")

	var existing models.Brand
	if err := db.DB.First(&existing, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Brand not found",
		})
	}

	brand := new(models.Brand)
	if err := c.BodyParser(brand); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}
	if err := validate.Struct(brand); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"errors": validationErrors(err),
		})
	}

	existing.Name = brand.Name
	existing.Slug = brand.Slug
	existing.Logo = brand.Logo
	existing.CategoryID = brand.CategoryID

	if err := db.DB.Save(&existing).Error; err != nil {
		if isUniqueViolation(err) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "Slug already exists",
			})
		}
		log.Println("Update brand error:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update brand",
		})
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Brand updated successfully",
		"data":    existing,
	})
}

func deleteBrand(c *fiber.Ctx) error {
	id := c.Params("id")

	var brand models.Brand
	if err := db.DB.First(&brand, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Brand not found",
		})
	}

	count, err := productsUsing("brand_id", id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to check products",
		})
	}
	if count > 0 {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Cannot delete: brand still has products",
		})
	}

	if err := db.DB.Delete(&brand).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete brand",
		})
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Brand deleted successfully",
	})
}

// ProductType handlers

func createProductType(c *fiber.Ctx) error {
	pt := new(models.ProductType)
	if err := c.BodyParser(pt); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}
	if err := validate.Struct(pt); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"errors": validationErrors(err),
		})
	}

	var category models.Category
	if err := db.DB.First(&category, pt.CategoryID).Error; err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"errors": fiber.Map{"category_id": "Danh mục không tồn tại"},
		})
	}

	pt.Products = nil

	if err := db.DB.Create(&pt).Error; err != nil {
		if isUniqueViolation(err) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "Slug already exists",
			})
		}
		log.Println("Create product type error:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create product type",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(pt)
}

func getAllProductTypes(c *fiber.Ctx) error {
	query := db.DB.Preload("Category")
	if categoryID := c.QueryInt("category_id", 0); categoryID > 0 {
		query = query.Where("category_id = ?", categoryID)
	}
	var types []models.ProductType
	if err := query.Find(&types).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get product types",
		})
	}
	return c.JSON(types)
}

func updateProductType(c *fiber.Ctx) error {
	id := c.Params("id")

	var existing models.ProductType
	if err := db.DB.First(&existing, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Product type not found",
		})
	}

	pt := new(models.ProductType)
	if err := c.BodyParser(pt); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}
	if err := validate.Struct(pt); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"errors": validationErrors(err),
		})
	}

	existing.Name = pt.Name
	existing.Slug = pt.Slug
	existing.CategoryID = pt.CategoryID

	if err := db.DB.Save(&existing).Error; err != nil {
		if isUniqueViolation(err) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "Slug already exists",
			})
		}
		log.Println("Update product type error:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update product type",
		})
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Product type updated successfully",
		"data":    existing,
	})
}

func deleteProductType(c *fiber.Ctx) error {
	id := c.Params("id")

	var pt models.ProductType
	if err := db.DB.First(&pt, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Product type not found",
		})
	}

	count, err := productsUsing("product_type_id", id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to check products",
		})
	}
	if count > 0 {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Cannot delete: product type still has products",
		})
	}

	if err := db.DB.Delete(&pt).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete product type",
		})
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Product type deleted successfully",
	})
}

// Collection handlers

func createCollection(c *fiber.Ctx) error {
	collection := new(models.Collection)
	if err := c.BodyParser(collection); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}
	if err := validate.Struct(collection); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"errors": validationErrors(err),
		})
	}

	var pt models.ProductType
	if err := db.DB.First(&pt, collection.ProductTypeID).Error; err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"errors": fiber.Map{"product_type_id": "Loại sản phẩm không tồn tại"},
		})
	}

	collection.Products = nil

	if err := db.DB.Create(&collection).Error; err != nil {
		if isUniqueViolation(err) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "Slug already exists",
			})
		}
		log.Println("Create collection error:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create collection",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(collection)
}

func getAllCollections(c *fiber.Ctx) error {
	query := db.DB.Preload("ProductType")
	if productTypeID := c.QueryInt("product_type_id", 0); productTypeID > 0 {
		query = query.Where("product_type_id = ?", productTypeID)
	}
	var collections []models.Collection
	if err := query.Find(&collections).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get collections",
		})
	}
	return c.JSON(collections)
}

func updateCollection(c *fiber.Ctx) error {
	id := c.Params("id")

	var existing models.Collection
	if err := db.DB.First(&existing, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Collection not found",
		})
	}

	collection := new(models.Collection)
	if err := c.BodyParser(collection); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}
	if err := validate.Struct(collection); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"errors": validationErrors(err),
		})
	}

	existing.Name = collection.Name
	existing.Slug = collection.Slug
	existing.Image = collection.Image
	existing.ProductTypeID = collection.ProductTypeID

	if err := db.DB.Save(&existing).Error; err != nil {
		if isUniqueViolation(err) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "Slug already exists",
			})
		}
		log.Println("Update collection error:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update collection",
		})
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Collection updated successfully",
		"data":    existing,
	})
}

func deleteCollection(c *fiber.Ctx) error {
	id := c.Params("id")

	var collection models.Collection
	if err := db.DB.First(&collection, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Collection not found",
		})
	}

	count, err := productsUsing("collection_id", id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to check products",
		})
	}
	if count > 0 {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Cannot delete: collection still has products",
		})
	}

	if err := db.DB.Delete(&collection).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete collection",
		})
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Collection deleted successfully",
	})
}

// ProductGroup handlers

func createProductGroup(c *fiber.Ctx) error {
	pg := new(models.ProductGroup)
	if err := c.BodyParser(pg); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}
	if err := validate.Struct(pg); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"errors": validationErrors(err),
		})
	}

	var pt models.ProductType
	if err := db.DB.First(&pt, pg.ProductTypeID).Error; err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"errors": fiber.Map{"product_type_id": "Loại sản phẩm không tồn tại"},
		})
	}

	pg.Products = nil

	if err := db.DB.Create(&pg).Error; err != nil {
		log.Println("Create product group error:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create product group",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(pg)
}

func getAllProductGroups(c *fiber.Ctx) error {
	query := db.DB.Preload("ProductType")
	if productTypeID := c.QueryInt("product_type_id", 0); productTypeID > 0 {
		query = query.Where("product_type_id = ?", productTypeID)
	}
	var groups []models.ProductGroup
	if err := query.Find(&groups).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get product groups",
		})
	}
	return c.JSON(groups)
}

func updateProductGroup(c *fiber.Ctx) error {
	id := c.Params("id")

	var existing models.ProductGroup
	if err := db.DB.First(&existing, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Product group not found",
		})
	}

	pg := new(models.ProductGroup)
	if err := c.BodyParser(pg); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}
	if err := validate.Struct(pg); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"errors": validationErrors(err),
		})
	}

	existing.Name = pg.Name
	existing.ProductTypeID = pg.ProductTypeID

	if err := db.DB.Save(&existing).Error; err != nil {
		log.Println("Update product group error:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update product group",
		})
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Product group updated successfully",
		"data":    existing,
	})
}

func deleteProductGroup(c *fiber.Ctx) error {
	id := c.Params("id")

	var pg models.ProductGroup
	if err := db.DB.First(&pg, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Product group not found",
		})
	}

	count, err := productsUsing("product_group_id", id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to check products",
		})
	}
	if count > 0 {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Cannot delete: product group still has products",
		})
	}

	if err := db.DB.Delete(&pg).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete product group",
		})
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Product group deleted successfully",
	})
}
