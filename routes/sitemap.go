package routes

import (
	"encoding/xml"
	"time"

	"xaymart/db"
	"xaymart/models"

	"github.com/gofiber/fiber/v2"
)

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

// getSitemap enumerates published categories, products, collections and posts.
func getSitemap(c *fiber.Ctx) error {
	base := cfg.Site.BaseURL
	urls := []sitemapURL{{Loc: base + "/"}}

	var categories []models.Category
	if err := db.DB.Find(&categories).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("failed to build sitemap")
	}
	for _, cat := range categories {
		urls = append(urls, sitemapURL{
			Loc:     base + "/danh-muc/" + cat.Slug,
			LastMod: cat.UpdatedAt.Format(time.DateOnly),
		})
	}

	var products []models.Product
	if err := db.DB.Where("is_published = ?", true).Find(&products).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("failed to build sitemap")
	}
	for _, p := range products {
		urls = append(urls, sitemapURL{
			Loc:     base + "/san-pham/" + p.Slug,
			LastMod: p.UpdatedAt.Format(time.DateOnly),
		})
	}

	var collections []models.Collection
	if err := db.DB.Find(&collections).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("failed to build sitemap")
	}
	for _, col := range collections {
		urls = append(urls, sitemapURL{
			Loc:     base + "/bo-suu-tap/" + col.Slug,
			LastMod: col.UpdatedAt.Format(time.DateOnly),
		})
	}

	var posts []models.Post
	if err := db.DB.Where("is_published = ?", true).Find(&posts).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("failed to build sitemap")
	}
	for _, post := range posts {
		urls = append(urls, sitemapURL{
			Loc:     base + "/tin-tuc/" + post.Slug,
			LastMod: post.UpdatedAt.Format(time.DateOnly),
		})
	}

	out, err := xml.MarshalIndent(sitemapURLSet{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}, "", "  ")
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("failed to build sitemap")
	}

	c.Set(fiber.HeaderContentType, "application/xml")
	return c.SendString(xml.Header + string(out))
}
