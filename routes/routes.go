package routes

import (
	"reflect"
	"strings"

	"xaymart/config"
	"xaymart/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

var cfg *config.Config

func init() {
	// Report validation errors under the json field name, not the Go one.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// validationErrors flattens validator output into a field-keyed message map.
func validationErrors(err error) map[string]string {
	out := map[string]string{}
	if verrs, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range verrs {
			switch fe.Tag() {
			case "required":
				out[fe.Field()] = "Trường này là bắt buộc"
			case "min":
				out[fe.Field()] = "Giá trị quá ngắn (tối thiểu " + fe.Param() + ")"
			default:
				out[fe.Field()] = "Giá trị không hợp lệ"
			}
		}
	} else {
		out["_"] = "Dữ liệu không hợp lệ"
	}
	return out
}

type ProductListResponse struct {
	Products []models.Product `json:"products"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}

// splitValues parses a comma-joined query value list, dropping empties.
func splitValues(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func SetupRoutes(app *fiber.App, c *config.Config) {
	cfg = c

	go runNotifyHub()

	// Storefront
	api := app.Group("/api")
	api.Get("/categories", getFeaturedCategories)
	api.Get("/categories/:slug", getCategoryBySlug)
	api.Get("/categories/:slug/products", getCategoryProducts)
	api.Get("/categories/:slug/filters", getCategoryFilters)
	api.Get("/products/search", searchProducts)
	api.Get("/products/:slug", getProductBySlug)
	api.Get("/collections/:slug", getCollectionBySlug)
	api.Get("/posts", getPublishedPosts)
	api.Get("/posts/:slug", getPostBySlug)
	api.Get("/banners", getBanners)
	api.Get("/partners", getPartners)
	api.Get("/projects", getProjects)
	api.Post("/quotes", createQuoteRequest)

	app.Get("/sitemap.xml", getSitemap)

	// Admin
	admin := api.Group("/admin")
	admin.Post("/login", adminLogin)
	admin.Post("/logout", adminLogout)

	authed := admin.Use(requireAdmin)
	authed.Get("/me", adminMe)
	authed.Post("/upload", uploadImage)

	categories := authed.Group("/categories")
	categories.Post("/", createCategory)
	categories.Get("/", getAllCategories)
	categories.Put("/:id", updateCategory)
	categories.Delete("/:id", deleteCategory)

	products := authed.Group("/products")
	products.Post("/", createProduct)
	products.Get("/", getAllProducts)
	products.Get("/:id", getProduct)
	products.Put("/:id", updateProduct)
	products.Delete("/:id", deleteProduct)

	brands := authed.Group("/brands")
	brands.Post("/", createBrand)
	brands.Get("/", getAllBrands)
	brands.Put("/:id", updateBrand)
	brands.Delete("/:id", deleteBrand)

	productTypes := authed.Group("/product-types")
	productTypes.Post("/", createProductType)
	productTypes.Get("/", getAllProductTypes)
	productTypes.Put("/:id", updateProductType)
	productTypes.Delete("/:id", deleteProductType)

	collections := authed.Group("/collections")
	collections.Post("/", createCollection)
	collections.Get("/", getAllCollections)
	collections.Put("/:id", updateCollection)
	collections.Delete("/:id", deleteCollection)

	productGroups := authed.Group("/product-groups")
	productGroups.Post("/", createProductGroup)
	productGroups.Get("/", getAllProductGroups)
	productGroups.Put("/:id", updateProductGroup)
	productGroups.Delete("/:id", deleteProductGroup)

	posts := authed.Group("/posts")
	posts.Post("/", createPost)
	posts.Get("/", getAllPosts)
	posts.Put("/:id", updatePost)
	posts.Delete("/:id", deletePost)

	banners := authed.Group("/banners")
	banners.Post("/", createBanner)
	banners.Get("/", getAllBannersAdmin)
	banners.Put("/:id", updateBanner)
	banners.Delete("/:id", deleteBanner)

	partners := authed.Group("/partners")
	partners.Post("/", createPartner)
	partners.Get("/", getAllPartners)
	partners.Put("/:id", updatePartner)
	partners.Delete("/:id", deletePartner)

	projects := authed.Group("/projects")
	projects.Post("/", createProject)
	projects.Get("/", getAllProjects)
	projects.Put("/:id", updateProject)
	projects.Delete("/:id", deleteProject)

	quotes := authed.Group("/quotes")
	quotes.Get("/", getAllQuoteRequests)
	quotes.Get("/:id", getQuoteRequest)
	quotes.Put("/:id/status", updateQuoteStatus)
	quotes.Delete("/:id", deleteQuoteRequest)

	// Admin dashboard notifications
	app.Get("/ws/admin", notifyHandler())
}
