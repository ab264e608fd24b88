package routes

import (
	"log"

	"xaymart/db"
	"xaymart/models"

	"github.com/gofiber/fiber/v2"
)

// Post handlers

func createPost(c *fiber.Ctx) error {
	post := new(models.Post)
	if err := c.BodyParser(post); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}
	if err := validate.Struct(post); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"errors": validationErrors(err),
		})
	}

	if err := db.DB.Create(&post).Error; err != nil {
		if isUniqueViolation(err) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "Slug already exists",
			})
		}
		log.Println("Create post error:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create post",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(post)
}

func getAllPosts(c *fiber.Ctx) error {
	var posts []models.Post
	if err := db.DB.Order("created_at DESC").Find(&posts).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get posts",
		})
	}
	return c.JSON(posts)
}

func updatePost(c *fiber.Ctx) error {
	id := c.Params("id")

	var existing models.Post
	if err := db.DB.First(&existing, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Post not found",
		})
	}

	post := new(models.Post)
	if err := c.BodyParser(post); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}
	if err := validate.Struct(post); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"errors": validationErrors(err),
		})
	}

	existing.Title = post.Title
	existing.Slug = post.Slug
	existing.Content = post.Content
	existing.Thumbnail = post.Thumbnail
	existing.IsPublished = post.IsPublished

	if err := db.DB.Save(&existing).Error; err != nil {
		if isUniqueViolation(err) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "Slug already exists",
			})
		}
		log.Println("Update post error:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update post",
		})
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Post updated successfully",
		"data":    existing,
	})
}

func deletePost(c *fiber.Ctx) error {
	id := c.Params("id")

	var post models.Post
	if err := db.DB.First(&post, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Post not found",
		})
	}
	if err := db.DB.Delete(&post).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete post",
		})
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Post deleted successfully",
	})
}

// Banner handlers

func createBanner(c *fiber.Ctx) error {
	banner := new(models.Banner)
	if err := c.BodyParser(banner); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}
	if err := validate.Struct(banner); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"errors": validationErrors(err),
		})
	}
	if err := db.DB.Create(&banner).Error; err != nil {
		log.Println("Create banner error:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create banner",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(banner)
}

func getAllBannersAdmin(c *fiber.Ctx) error {
	var banners []models.Banner
	if err := db.DB.Order("sort_order ASC").Find(&banners).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get banners",
		})
	}
	return c.JSON(banners)
}

func updateBanner(c *fiber.Ctx) error {
	id := c.Params("id")

	var existing models.Banner
	if err := db.DB.First(&existing, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Banner not found",
		})
	}

	banner := new(models.Banner)
	if err := c.BodyParser(banner); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}
	if err := validate.Struct(banner); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"errors": validationErrors(err),
		})
	}

	existing.Title = banner.Title
	existing.Image = banner.Image
	existing.Link = banner.Link
	existing.SortOrder = banner.SortOrder

	if err := db.DB.Save(&existing).Error; err != nil {
		log.Println("Update banner error:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update banner",
		})
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Banner updated successfully",
		"data":    existing,
	})
}

func deleteBanner(c *fiber.Ctx) error {
	id := c.Params("id")

	var banner models.Banner
	if err := db.DB.First(&banner, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Banner not found",
		})
	}
	if err := db.DB.Delete(&banner).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete banner",
		})
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Banner deleted successfully",
	})
}

// Partner handlers

func createPartner(c *fiber.Ctx) error {
	partner := new(models.Partner)
	if err := c.BodyParser(partner); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}
	if err := validate.Struct(partner); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"errors": validationErrors(err),
		})
	}
	if err := db.DB.Create(&partner).Error; err != nil {
		log.Println("Create partner error:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create partner",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(partner)
}

func getAllPartners(c *fiber.Ctx) error {
	var partners []models.Partner
	if err := db.DB.Find(&partners).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get partners",
		})
	}
	return c.JSON(partners)
}

func updatePartner(c *fiber.Ctx) error {
	id := c.Params("id")

	var existing models.Partner
	if err := db.DB.First(&existing, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Partner not found",
		})
	}

	partner := new(models.Partner)
	if err := c.BodyParser(partner); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}
	if err := validate.Struct(partner); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"errors": validationErrors(err),
		})
	}

	existing.Name = partner.Name
	existing.Logo = partner.Logo
	existing.Website = partner.Website

	if err := db.DB.Save(&existing).Error; err != nil {
		log.Println("Update partner error:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update partner",
		})
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Partner updated successfully",
		"data":    existing,
	})
}

func deletePartner(c *fiber.Ctx) error {
	id := c.Params("id")

	var partner models.Partner
	if err := db.DB.First(&partner, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Partner not found",
		})
	}
	if err := db.DB.Delete(&partner).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete partner",
		})
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Partner deleted successfully",
	})
}

// Project handlers

func createProject(c *fiber.Ctx) error {
	project := new(models.Project)
	if err := c.BodyParser(project); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}
	if err := validate.Struct(project); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"errors": validationErrors(err),
		})
	}
	if project.Images == nil {
		project.Images = []string{}
	}
	if err := db.DB.Create(&project).Error; err != nil {
		log.Println("Create project error:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create project",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(project)
}

func getAllProjects(c *fiber.Ctx) error {
	var projects []models.Project
	if err := db.DB.Order("created_at DESC").Find(&projects).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get projects",
		})
	}
	return c.JSON(projects)
}

func updateProject(c *fiber.Ctx) error {
	id := c.Params("id")

	var existing models.Project
	if err := db.DB.First(&existing, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Project not found",
		})
	}

	project := new(models.Project)
	if err := c.BodyParser(project); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}
	if err := validate.Struct(project); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"errors": validationErrors(err),
		})
	}

	existing.Name = project.Name
	existing.Description = project.Description
	existing.Location = project.Location
	existing.Images = project.Images
	if existing.Images == nil {
		existing.Images = []string{}
	}

	if err := db.DB.Save(&existing).Error; err != nil {
		log.Println("Update project error:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update project",
		})
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Project updated successfully",
		"data":    existing,
	})
}

func deleteProject(c *fiber.Ctx) error {
	id := c.Params("id")

	var project models.Project
	if err := db.DB.First(&project, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Project not found",
		})
	}
	if err := db.DB.Delete(&project).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete project",
		})
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Project deleted successfully",
	})
}
