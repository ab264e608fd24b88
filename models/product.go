package models

import (
	"encoding/json"
	"strconv"
	"time"
)

// ContactForQuote is rendered in place of a numeric price whenever a product
// hides its price.
const ContactForQuote = "Liên hệ báo giá"

type Product struct {
	ID            uint     `gorm:"primaryKey" json:"id"`
	Name          string   `json:"name" validate:"required,min=2"`
	Slug          string   `gorm:"uniqueIndex" json:"slug" validate:"required,min=2"`
	SKU           string   `json:"sku"`
	Price         *float64 `json:"price"`
	OriginalPrice *float64 `json:"original_price"`
	ShowPrice     bool     `json:"show_price"`
	Thumbnail     string   `json:"thumbnail"`
	Images        []string `json:"images" gorm:"type:text;serializer:json"`
	Description   string   `json:"description"`

	// Specs holds the free-form attribute map as raw JSON. The commonly
	// filtered keys below are promoted to their own columns at write time.
	Specs         string `gorm:"type:text" json:"specs"`
	Dimensions    string `json:"dimensions"`
	SimDimensions string `json:"sim_dimensions"`
	Surface       string `json:"surface"`
	Origin        string `json:"origin"`
	AntiSlip      string `json:"anti_slip"`
	PatternCount  string `json:"pattern_count"`
	ColorName     string `json:"color_name"`

	IsPublished bool `json:"is_published"`
	IsFeatured  bool `json:"is_featured"`

	CategoryID     uint          `json:"category_id" validate:"required"`
	BrandID        *uint         `json:"brand_id"`
	ProductTypeID  *uint         `json:"product_type_id"`
	CollectionID   *uint         `json:"collection_id"`
	ProductGroupID *uint         `json:"product_group_id"`
	Category       Category      `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Brand          *Brand        `gorm:"foreignKey:BrandID" json:"brand,omitempty"`
	ProductType    *ProductType  `gorm:"foreignKey:ProductTypeID" json:"product_type,omitempty"`
	Collection     *Collection   `gorm:"foreignKey:CollectionID" json:"collection,omitempty"`
	ProductGroup   *ProductGroup `gorm:"foreignKey:ProductGroupID" json:"product_group,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// DisplayPrice returns the storefront price string. A hidden or missing price
// always renders as the contact-for-quote sentinel, even when Price is set.
func (p *Product) DisplayPrice() string {
	if !p.ShowPrice || p.Price == nil {
		return ContactForQuote
	}
	return strconv.FormatFloat(*p.Price, 'f', -1, 64)
}

// SpecsMap decodes the raw specs JSON. Invalid or empty JSON decodes to an
// empty map, never an error.
func (p *Product) SpecsMap() map[string]string {
	out := map[string]string{}
	if p.Specs == "" {
		return out
	}
	if err := json.Unmarshal([]byte(p.Specs), &out); err != nil {
		return map[string]string{}
	}
	return out
}

// SpecFields is the fixed set of named spec inputs accepted by the admin
// product form.
type SpecFields struct {
	Surface       string `json:"surface"`
	Dimensions    string `json:"dimensions"`
	SimDimensions string `json:"sim_dimensions"`
	Origin        string `json:"origin"`
	AntiSlip      string `json:"anti_slip"`
	PatternCount  string `json:"pattern_count"`
	Color         string `json:"color"`
}

// EncodeSpecs builds the specs JSON from the named fields, omitting empty
// values instead of storing empty strings.
func EncodeSpecs(f SpecFields) string {
	m := map[string]string{}
	put := func(k, v string) {
		if v != "" {
			m[k] = v
		}
	}
	put("surface", f.Surface)
	put("dimensions", f.Dimensions)
	put("simDimensions", f.SimDimensions)
	put("origin", f.Origin)
	put("antiSlip", f.AntiSlip)
	put("patternCount", f.PatternCount)
	put("color", f.Color)
	b, _ := json.Marshal(m)
	return string(b)
}

// ApplySpecs writes both the encoded specs JSON and the promoted scalar
// columns so that filters never have to parse JSON.
func (p *Product) ApplySpecs(f SpecFields) {
	p.Specs = EncodeSpecs(f)
	p.Surface = f.Surface
	p.Dimensions = f.Dimensions
	p.SimDimensions = f.SimDimensions
	p.Origin = f.Origin
	p.AntiSlip = f.AntiSlip
	p.PatternCount = f.PatternCount
	p.ColorName = f.Color
}
