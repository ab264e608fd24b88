// Package quote implements the request-a-quote workflow: customer submission
// against one product, admin status changes and deletion.
package quote

import (
	"errors"
	"regexp"
	"strings"

	"xaymart/models"

	"gorm.io/gorm"
)

// ErrNotFound is returned for operations against an unknown quote request.
var ErrNotFound = errors.New("quote request not found")

// Vietnamese mobile numbers: optional +84 or a leading 0, then 8-10 digits.
// Whitespace is stripped before matching.
var phonePattern = regexp.MustCompile(`^(\+84|0)\d{8,10}$`)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Input is a customer quote submission.
type Input struct {
	CustomerName  string `json:"customer_name"`
	CustomerPhone string `json:"customer_phone"`
	CustomerEmail string `json:"customer_email"`
	Note          string `json:"note"`
	ProductID     uint   `json:"product_id"`
}

// Validate normalizes the input in place and returns field-keyed error
// messages. An empty map means the input is valid.
func (in *Input) Validate() map[string]string {
	errs := map[string]string{}

	in.CustomerName = strings.TrimSpace(in.CustomerName)
	if len([]rune(in.CustomerName)) < 2 {
		errs["customer_name"] = "Tên phải có ít nhất 2 ký tự"
	}

	in.CustomerPhone = strings.Join(strings.Fields(in.CustomerPhone), "")
	if !phonePattern.MatchString(in.CustomerPhone) {
		errs["customer_phone"] = "Số điện thoại không hợp lệ"
	}

	in.CustomerEmail = strings.TrimSpace(in.CustomerEmail)
	if in.CustomerEmail != "" && !emailPattern.MatchString(in.CustomerEmail) {
		errs["customer_email"] = "Email không hợp lệ"
	}

	if in.ProductID == 0 {
		errs["product_id"] = "Thiếu sản phẩm"
	}
	return errs
}

// Create validates the submission, verifies the product exists, and writes
// the request together with its single line item in one transaction. Field
// errors come back in the map; only unexpected failures come back as error.
func Create(gdb *gorm.DB, in Input) (*models.QuoteRequest, map[string]string, error) {
	if errs := in.Validate(); len(errs) > 0 {
		return nil, errs, nil
	}

	var product models.Product
	if err := gdb.First(&product, in.ProductID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, map[string]string{"product_id": "Không tìm thấy sản phẩm"}, nil
		}
		return nil, nil, err
	}

	request := models.QuoteRequest{
		CustomerName:  in.CustomerName,
		CustomerPhone: in.CustomerPhone,
		CustomerEmail: in.CustomerEmail,
		Note:          in.Note,
		Status:        models.QuoteStatusPending,
	}

	tx := gdb.Begin()
	if err := tx.Create(&request).Error; err != nil {
		tx.Rollback()
		return nil, nil, err
	}
	item := models.QuoteItem{
		QuoteRequestID: request.ID,
		ProductID:      product.ID,
		Quantity:       1,
	}
	if err := tx.Create(&item).Error; err != nil {
		tx.Rollback()
		return nil, nil, err
	}
	if err := tx.Commit().Error; err != nil {
		return nil, nil, err
	}

	request.QuoteItems = []models.QuoteItem{item}
	return &request, nil, nil
}

// UpdateStatus moves a request to any of the recognized statuses. There is no
// enforced ordering between them.
func UpdateStatus(gdb *gorm.DB, id uint, status string) (*models.QuoteRequest, error) {
	if !models.IsValidQuoteStatus(status) {
		return nil, errors.New("invalid status: " + status)
	}

	var request models.QuoteRequest
	if err := gdb.First(&request, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if err := gdb.Model(&request).Update("status", status).Error; err != nil {
		return nil, err
	}
	return &request, nil
}

// Delete removes the line items first, then the request itself; there is no
// cascade rule on quote_items.
func Delete(gdb *gorm.DB, id uint) error {
	var request models.QuoteRequest
	if err := gdb.First(&request, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	tx := gdb.Begin()
	if err := tx.Where("quote_request_id = ?", id).Delete(&models.QuoteItem{}).Error; err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Delete(&request).Error; err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit().Error
}

// List returns requests newest first, optionally filtered by status.
func List(gdb *gorm.DB, status string) ([]models.QuoteRequest, error) {
	query := gdb.Preload("QuoteItems.Product").Order("created_at DESC")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	var requests []models.QuoteRequest
	err := query.Find(&requests).Error
	return requests, err
}

// Get loads one request with its items and products.
func Get(gdb *gorm.DB, id uint) (*models.QuoteRequest, error) {
	var request models.QuoteRequest
	err := gdb.Preload("QuoteItems.Product").First(&request, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &request, nil
}
