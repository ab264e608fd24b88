package catalog

import (
	"testing"
	"time"

	"xaymart/db"
	"xaymart/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return gdb
}

func ptr(f float64) *float64 { return &f }

// seedCatalog builds a two-level category tree with published, unpublished
// and out-of-tree products.
func seedCatalog(t *testing.T, gdb *gorm.DB) (parent, child, other models.Category) {
	t.Helper()

	parent = models.Category{Name: "Gạch ốp lát", Slug: "gach-op-lat"}
	if err := gdb.Create(&parent).Error; err != nil {
		t.Fatalf("seed parent: %v", err)
	}
	child = models.Category{Name: "Gạch ốp tường", Slug: "gach-op-tuong", ParentID: &parent.ID}
	if err := gdb.Create(&child).Error; err != nil {
		t.Fatalf("seed child: %v", err)
	}
	other = models.Category{Name: "Thiết bị vệ sinh", Slug: "thiet-bi-ve-sinh"}
	if err := gdb.Create(&other).Error; err != nil {
		t.Fatalf("seed other: %v", err)
	}

	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	products := []models.Product{
		{Name: "Gạch A", Slug: "gach-a", CategoryID: parent.ID, IsPublished: true,
			Price: ptr(300000), ColorName: "Trắng", CreatedAt: base.Add(1 * time.Hour)},
		{Name: "Gạch B", Slug: "gach-b", CategoryID: parent.ID, IsPublished: true,
			Price: ptr(100000), ColorName: "Xám", CreatedAt: base.Add(2 * time.Hour)},
		{Name: "Gạch C", Slug: "gach-c", CategoryID: child.ID, IsPublished: true,
			Price: ptr(200000), ColorName: "Trắng", CreatedAt: base.Add(3 * time.Hour)},
		{Name: "Gạch nháp", Slug: "gach-nhap", CategoryID: parent.ID, IsPublished: false,
			Price: ptr(50000), CreatedAt: base.Add(4 * time.Hour)},
		{Name: "Bồn cầu", Slug: "bon-cau", CategoryID: other.ID, IsPublished: true,
			Price: ptr(900000), CreatedAt: base.Add(5 * time.Hour)},
	}
	for i := range products {
		if err := gdb.Create(&products[i]).Error; err != nil {
			t.Fatalf("seed product %s: %v", products[i].Slug, err)
		}
	}
	return parent, child, other
}

func TestListProductsScopesToCategoryAndChildren(t *testing.T) {
	gdb := openTestDB(t)
	parent, child, _ := seedCatalog(t, gdb)

	products, total, err := ListProducts(gdb, "gach-op-lat", ListParams{})
	if err != nil {
		t.Fatalf("ListProducts: %v", err)
	}
	if total != 3 {
		t.Fatalf("expected total 3, got %d", total)
	}
	for _, p := range products {
		if p.CategoryID != parent.ID && p.CategoryID != child.ID {
			t.Errorf("product %s outside category tree", p.Slug)
		}
		if !p.IsPublished {
			t.Errorf("unpublished product %s returned", p.Slug)
		}
	}
}

func TestListProductsTotalStableAcrossPages(t *testing.T) {
	gdb := openTestDB(t)
	seedCatalog(t, gdb)

	_, total1, err := ListProducts(gdb, "gach-op-lat", ListParams{Page: 1, PageSize: 2})
	if err != nil {
		t.Fatalf("page 1: %v", err)
	}
	page2, total2, err := ListProducts(gdb, "gach-op-lat", ListParams{Page: 2, PageSize: 2})
	if err != nil {
		t.Fatalf("page 2: %v", err)
	}
	if total1 != total2 {
		t.Errorf("total changed across pages: %d vs %d", total1, total2)
	}
	if len(page2) != 1 {
		t.Errorf("expected 1 product on page 2, got %d", len(page2))
	}
}

func TestListProductsSortPriceAsc(t *testing.T) {
	gdb := openTestDB(t)
	seedCatalog(t, gdb)

	products, _, err := ListProducts(gdb, "gach-op-lat", ListParams{Sort: SortPriceAsc})
	if err != nil {
		t.Fatalf("ListProducts: %v", err)
	}
	for i := 1; i < len(products); i++ {
		if *products[i-1].Price > *products[i].Price {
			t.Fatalf("prices not non-decreasing at index %d", i)
		}
	}
}

func TestListProductsUnknownSortFallsBackToNewest(t *testing.T) {
	gdb := openTestDB(t)
	seedCatalog(t, gdb)

	unknown, _, err := ListProducts(gdb, "gach-op-lat", ListParams{Sort: "bogus"})
	if err != nil {
		t.Fatalf("unknown sort: %v", err)
	}
	newest, _, err := ListProducts(gdb, "gach-op-lat", ListParams{Sort: SortNewest})
	if err != nil {
		t.Fatalf("newest sort: %v", err)
	}
	if len(unknown) != len(newest) {
		t.Fatalf("result length differs: %d vs %d", len(unknown), len(newest))
	}
	for i := range unknown {
		if unknown[i].ID != newest[i].ID {
			t.Errorf("order differs at index %d", i)
		}
	}
	if len(newest) > 1 && newest[0].CreatedAt.Before(newest[1].CreatedAt) {
		t.Error("newest sort is not descending by creation time")
	}
}

func TestListProductsUnknownSlug(t *testing.T) {
	gdb := openTestDB(t)
	seedCatalog(t, gdb)

	products, total, err := ListProducts(gdb, "khong-ton-tai", ListParams{})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if total != 0 || len(products) != 0 {
		t.Errorf("expected empty result, got %d products, total %d", len(products), total)
	}
}

func TestListProductsFiltersCombineWithAnd(t *testing.T) {
	gdb := openTestDB(t)
	parent, _, _ := seedCatalog(t, gdb)

	pt := models.ProductType{Name: "Gạch men", Slug: "gach-men", CategoryID: parent.ID}
	if err := gdb.Create(&pt).Error; err != nil {
		t.Fatalf("seed type: %v", err)
	}
	col := models.Collection{Name: "Vân đá", Slug: "van-da", ProductTypeID: pt.ID}
	if err := gdb.Create(&col).Error; err != nil {
		t.Fatalf("seed collection: %v", err)
	}
	// Only one product carries both the type and the collection.
	if err := gdb.Model(&models.Product{}).Where("slug = ?", "gach-a").
		Updates(map[string]interface{}{"product_type_id": pt.ID, "collection_id": col.ID}).Error; err != nil {
		t.Fatalf("tag gach-a: %v", err)
	}
	if err := gdb.Model(&models.Product{}).Where("slug = ?", "gach-b").
		Update("product_type_id", pt.ID).Error; err != nil {
		t.Fatalf("tag gach-b: %v", err)
	}

	_, total, err := ListProducts(gdb, "gach-op-lat", ListParams{ProductTypeID: pt.ID})
	if err != nil {
		t.Fatalf("type filter: %v", err)
	}
	if total != 2 {
		t.Errorf("type filter: expected 2, got %d", total)
	}

	products, total, err := ListProducts(gdb, "gach-op-lat", ListParams{
		ProductTypeID: pt.ID,
		CollectionID:  col.ID,
	})
	if err != nil {
		t.Fatalf("combined filter: %v", err)
	}
	if total != 1 || len(products) != 1 || products[0].Slug != "gach-a" {
		t.Errorf("combined filter: expected only gach-a, got total %d", total)
	}
}

func TestListProductsColorFilter(t *testing.T) {
	gdb := openTestDB(t)
	seedCatalog(t, gdb)

	products, total, err := ListProducts(gdb, "gach-op-lat", ListParams{Colors: []string{"Trắng"}})
	if err != nil {
		t.Fatalf("color filter: %v", err)
	}
	if total != 2 {
		t.Fatalf("expected 2 white products, got %d", total)
	}
	for _, p := range products {
		if p.ColorName != "Trắng" {
			t.Errorf("product %s has color %q", p.Slug, p.ColorName)
		}
	}
}

func TestFilterValuesRoundTrip(t *testing.T) {
	gdb := openTestDB(t)

	category := models.Category{Name: "Gạch lát nền", Slug: "gach-lat-nen"}
	if err := gdb.Create(&category).Error; err != nil {
		t.Fatalf("seed category: %v", err)
	}

	var p models.Product
	p.Name = "Gạch bóng"
	p.Slug = "gach-bong"
	p.CategoryID = category.ID
	p.IsPublished = true
	p.ApplySpecs(models.SpecFields{Surface: "Bóng", Dimensions: "600x600", Color: "Trắng"})
	if err := gdb.Create(&p).Error; err != nil {
		t.Fatalf("seed product: %v", err)
	}
	// A row with broken specs must be skipped, not kill the scan.
	broken := models.Product{Name: "Gạch hỏng", Slug: "gach-hong", CategoryID: category.ID,
		IsPublished: true, Specs: "{not json"}
	if err := gdb.Create(&broken).Error; err != nil {
		t.Fatalf("seed broken product: %v", err)
	}

	facets, err := FilterValues(gdb, category.ID)
	if err != nil {
		t.Fatalf("FilterValues: %v", err)
	}
	if len(facets.Surfaces) != 1 || facets.Surfaces[0] != "Bóng" {
		t.Errorf("surfaces = %v, want [Bóng]", facets.Surfaces)
	}
	if len(facets.Dimensions) != 1 || facets.Dimensions[0] != "600x600" {
		t.Errorf("dimensions = %v, want [600x600]", facets.Dimensions)
	}
	if len(facets.Colors) != 1 || facets.Colors[0] != "Trắng" {
		t.Errorf("colors = %v, want [Trắng]", facets.Colors)
	}
}

func TestFilterValuesDistinctSorted(t *testing.T) {
	gdb := openTestDB(t)

	category := models.Category{Name: "Gạch", Slug: "gach"}
	if err := gdb.Create(&category).Error; err != nil {
		t.Fatalf("seed category: %v", err)
	}
	surfaces := []string{"Nhám", "Bóng", "Nhám"}
	for i, s := range surfaces {
		var p models.Product
		p.Name = "Gạch"
		p.Slug = "gach-" + string(rune('a'+i))
		p.CategoryID = category.ID
		p.IsPublished = true
		p.ApplySpecs(models.SpecFields{Surface: s})
		if err := gdb.Create(&p).Error; err != nil {
			t.Fatalf("seed product %d: %v", i, err)
		}
	}

	facets, err := FilterValues(gdb, category.ID)
	if err != nil {
		t.Fatalf("FilterValues: %v", err)
	}
	if len(facets.Surfaces) != 2 || facets.Surfaces[0] != "Bóng" || facets.Surfaces[1] != "Nhám" {
		t.Errorf("surfaces = %v, want sorted distinct [Bóng Nhám]", facets.Surfaces)
	}
}

func TestCategoryBySlug(t *testing.T) {
	gdb := openTestDB(t)
	parent, child, _ := seedCatalog(t, gdb)

	category, children, err := CategoryBySlug(gdb, "gach-op-lat")
	if err != nil {
		t.Fatalf("CategoryBySlug: %v", err)
	}
	if category == nil || category.ID != parent.ID {
		t.Fatal("expected the parent category")
	}
	if len(children) != 1 {
		t.Fatalf("expected 1 child, got %d", len(children))
	}
	if children[0].ID != child.ID || children[0].ProductCount != 1 {
		t.Errorf("child %d has product count %d, want 1", children[0].ID, children[0].ProductCount)
	}

	missing, _, err := CategoryBySlug(gdb, "khong-ton-tai")
	if err != nil {
		t.Fatalf("missing category: %v", err)
	}
	if missing != nil {
		t.Error("expected nil for unknown slug")
	}
}

func TestRelatedProducts(t *testing.T) {
	gdb := openTestDB(t)
	parent, _, _ := seedCatalog(t, gdb)

	var current models.Product
	if err := gdb.Where("slug = ?", "gach-a").First(&current).Error; err != nil {
		t.Fatalf("load product: %v", err)
	}

	related, err := RelatedProducts(gdb, parent.ID, current.ID, 0)
	if err != nil {
		t.Fatalf("RelatedProducts: %v", err)
	}
	if len(related) != 1 {
		t.Fatalf("expected 1 related product, got %d", len(related))
	}
	for _, p := range related {
		if p.ID == current.ID {
			t.Error("related products include the product itself")
		}
		if !p.IsPublished {
			t.Errorf("unpublished related product %s", p.Slug)
		}
	}
}

func TestProductBySlugUnpublished(t *testing.T) {
	gdb := openTestDB(t)
	seedCatalog(t, gdb)

	p, err := ProductBySlug(gdb, "gach-nhap")
	if err != nil {
		t.Fatalf("ProductBySlug: %v", err)
	}
	if p != nil {
		t.Error("unpublished product must not resolve on the storefront")
	}

	p, err = ProductBySlug(gdb, "gach-a")
	if err != nil {
		t.Fatalf("ProductBySlug: %v", err)
	}
	if p == nil || p.Slug != "gach-a" {
		t.Error("published product should resolve")
	}
}
