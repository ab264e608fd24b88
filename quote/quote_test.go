package quote

import (
	"errors"
	"testing"

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

func seedProduct(t *testing.T, gdb *gorm.DB) models.Product {
	t.Helper()
	category := models.Category{Name: "Gạch ốp lát", Slug: "gach-op-lat"}
	if err := gdb.Create(&category).Error; err != nil {
		t.Fatalf("seed category: %v", err)
	}
	product := models.Product{Name: "Gạch A", Slug: "gach-a", CategoryID: category.ID, IsPublished: true}
	if err := gdb.Create(&product).Error; err != nil {
		t.Fatalf("seed product: %v", err)
	}
	return product
}

func TestCreateNormalizesPhone(t *testing.T) {
	gdb := openTestDB(t)
	product := seedProduct(t, gdb)

	request, fieldErrs, err := Create(gdb, Input{
		CustomerName:  "Nguyễn Văn An",
		CustomerPhone: "098 765 4321",
		ProductID:     product.ID,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if len(fieldErrs) > 0 {
		t.Fatalf("unexpected field errors: %v", fieldErrs)
	}
	if request.CustomerPhone != "0987654321" {
		t.Errorf("phone = %q, want 0987654321", request.CustomerPhone)
	}
	if request.Status != models.QuoteStatusPending {
		t.Errorf("status = %q, want PENDING", request.Status)
	}
	if len(request.QuoteItems) != 1 || request.QuoteItems[0].Quantity != 1 {
		t.Fatalf("expected exactly one line item with quantity 1")
	}

	var stored models.QuoteRequest
	if err := gdb.Preload("QuoteItems").First(&stored, request.ID).Error; err != nil {
		t.Fatalf("reload request: %v", err)
	}
	if stored.CustomerPhone != "0987654321" {
		t.Errorf("stored phone = %q", stored.CustomerPhone)
	}
	if len(stored.QuoteItems) != 1 || stored.QuoteItems[0].ProductID != product.ID {
		t.Error("stored line item does not reference the product")
	}
}

func TestCreateRejectsInvalidPhone(t *testing.T) {
	gdb := openTestDB(t)
	product := seedProduct(t, gdb)

	_, fieldErrs, err := Create(gdb, Input{
		CustomerName:  "Nguyễn Văn An",
		CustomerPhone: "123456",
		ProductID:     product.ID,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if fieldErrs["customer_phone"] == "" {
		t.Fatal("expected a customer_phone error")
	}

	var count int64
	gdb.Model(&models.QuoteRequest{}).Count(&count)
	if count != 0 {
		t.Errorf("expected no write, found %d requests", count)
	}
}

func TestCreateRejectsShortName(t *testing.T) {
	gdb := openTestDB(t)
	product := seedProduct(t, gdb)

	_, fieldErrs, err := Create(gdb, Input{
		CustomerName:  " A ",
		CustomerPhone: "0987654321",
		ProductID:     product.ID,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if fieldErrs["customer_name"] == "" {
		t.Fatal("expected a customer_name error")
	}
}

func TestCreateRejectsInvalidEmail(t *testing.T) {
	gdb := openTestDB(t)
	product := seedProduct(t, gdb)

	_, fieldErrs, err := Create(gdb, Input{
		CustomerName:  "Nguyễn Văn An",
		CustomerPhone: "0987654321",
		CustomerEmail: "not-an-email",
		ProductID:     product.ID,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if fieldErrs["customer_email"] == "" {
		t.Fatal("expected a customer_email error")
	}
}

func TestCreateUnknownProduct(t *testing.T) {
	gdb := openTestDB(t)
	seedProduct(t, gdb)

	_, fieldErrs, err := Create(gdb, Input{
		CustomerName:  "Nguyễn Văn An",
		CustomerPhone: "0987654321",
		ProductID:     9999,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if fieldErrs["product_id"] == "" {
		t.Fatal("expected a product_id error")
	}

	var count int64
	gdb.Model(&models.QuoteRequest{}).Count(&count)
	if count != 0 {
		t.Error("dangling request created for unknown product")
	}
}

func TestCreateAcceptsPlus84(t *testing.T) {
	gdb := openTestDB(t)
	product := seedProduct(t, gdb)

	request, fieldErrs, err := Create(gdb, Input{
		CustomerName:  "Trần Thị Bình",
		CustomerPhone: "+84 987 654 321",
		ProductID:     product.ID,
	})
	if err != nil || len(fieldErrs) > 0 {
		t.Fatalf("Create: err=%v fieldErrs=%v", err, fieldErrs)
	}
	if request.CustomerPhone != "+84987654321" {
		t.Errorf("phone = %q, want +84987654321", request.CustomerPhone)
	}
}

func TestUpdateStatusAnyTransition(t *testing.T) {
	gdb := openTestDB(t)
	product := seedProduct(t, gdb)

	request, _, err := Create(gdb, Input{
		CustomerName:  "Nguyễn Văn An",
		CustomerPhone: "0987654321",
		ProductID:     product.ID,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	// Forward, then backward: no ordering is enforced.
	if _, err := UpdateStatus(gdb, request.ID, models.QuoteStatusDone); err != nil {
		t.Fatalf("PENDING -> DONE: %v", err)
	}
	if _, err := UpdateStatus(gdb, request.ID, models.QuoteStatusPending); err != nil {
		t.Fatalf("DONE -> PENDING: %v", err)
	}

	if _, err := UpdateStatus(gdb, request.ID, "SHIPPED"); err == nil {
		t.Fatal("expected an error for an unrecognized status")
	}
	if _, err := UpdateStatus(gdb, 9999, models.QuoteStatusDone); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteRemovesItemsFirst(t *testing.T) {
	gdb := openTestDB(t)
	product := seedProduct(t, gdb)

	request, _, err := Create(gdb, Input{
		CustomerName:  "Nguyễn Văn An",
		CustomerPhone: "0987654321",
		ProductID:     product.ID,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := Delete(gdb, request.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	var itemCount, requestCount int64
	gdb.Model(&models.QuoteItem{}).Where("quote_request_id = ?", request.ID).Count(&itemCount)
	gdb.Model(&models.QuoteRequest{}).Count(&requestCount)
	if itemCount != 0 {
		t.Errorf("expected 0 orphaned items, got %d", itemCount)
	}
	if requestCount != 0 {
		t.Errorf("expected 0 requests, got %d", requestCount)
	}
}

func TestDeleteUnknownID(t *testing.T) {
	gdb := openTestDB(t)

	if err := Delete(gdb, 9999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListFiltersByStatus(t *testing.T) {
	gdb := openTestDB(t)
	product := seedProduct(t, gdb)

	first, _, err := Create(gdb, Input{CustomerName: "Khách 1", CustomerPhone: "0911111111", ProductID: product.ID})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, _, err := Create(gdb, Input{CustomerName: "Khách 2", CustomerPhone: "0922222222", ProductID: product.ID}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := UpdateStatus(gdb, first.ID, models.QuoteStatusContacted); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}

	contacted, err := List(gdb, models.QuoteStatusContacted)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(contacted) != 1 || contacted[0].ID != first.ID {
		t.Errorf("expected only the contacted request, got %d results", len(contacted))
	}

	all, err := List(gdb, "")
	if err != nil {
		t.Fatalf("List all: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("expected 2 requests, got %d", len(all))
	}
}
