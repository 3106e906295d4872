package service

import (
	"time"

	"github.com/msolera/catalog-backend/internal/app/model"
	"github.com/msolera/catalog-backend/internal/i18n"
)

// ProductView is the response shape the admin frontend consumes: core
// fields plus display strings already resolved for the request locale.
// Options is populated only for option_group products, Items only for
// packs.
type ProductView struct {
	ID           uint                `json:"id"`
	MainImageURL *string             `json:"main_image_url"`
	Status       model.ProductStatus `json:"status"`
	Type         model.ProductType   `json:"type"`
	Price        float64             `json:"price"`
	Name         *string             `json:"name"`
	Description  *string             `json:"description"`
	Images       []string            `json:"images"`
	Options      []OptionView        `json:"options,omitempty"`
	Items        []PackItemView      `json:"items,omitempty"`
	Offers       []OfferView         `json:"offers,omitempty"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
}

// PackItemView is one constituent of a pack with its pivot quantity.
type PackItemView struct {
	ID           uint    `json:"id"`
	Name         *string `json:"name"`
	Quantity     int     `json:"quantity"`
	MainImageURL *string `json:"main_image_url"`
}

// OptionView is an option with its own resolved strings plus the parent
// product's resolved name.
type OptionView struct {
	ID          uint               `json:"id"`
	ProductID   uint               `json:"product_id"`
	ImageURL    *string            `json:"image_url"`
	Status      model.OptionStatus `json:"status"`
	Price       float64            `json:"price"`
	Name        *string            `json:"name"`
	Description *string            `json:"description"`
	ProductName *string            `json:"product_name"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

// OfferView is an offer record with the derived activity flag and the
// owning product's resolved name.
type OfferView struct {
	ID          uint              `json:"id"`
	ProductID   uint              `json:"product_id"`
	OfferPrice  float64           `json:"offer_price"`
	StartDate   time.Time         `json:"start_date"`
	EndDate     time.Time         `json:"end_date"`
	Status      model.OfferStatus `json:"status"`
	IsActive    bool              `json:"is_active"`
	ProductName *string           `json:"product_name,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// resolveName picks the display strings for the locale. With placeholder
// set, missing translations surface as "-" (the unfiltered listing);
// otherwise they stay null.
func resolveName(entries []i18n.Entry, locale string, placeholder bool) (name, description *string) {
	if entry, ok := i18n.Resolve(entries, locale); ok {
		return &entry.Name, entry.Description
	}
	if placeholder {
		dash := "-"
		return &dash, &dash
	}
	return nil, nil
}

// buildProductView shapes a loaded product for the response. Read-only:
// absent translations degrade to null or "-", never an error.
func buildProductView(p *model.Product, locale string, placeholder bool) ProductView {
	name, description := resolveName(model.ProductTranslationEntries(p.Translations), locale, placeholder)

	images := make([]string, 0, len(p.Images))
	for _, img := range p.Images {
		images = append(images, img.URL)
	}

	view := ProductView{
		ID:           p.ID,
		MainImageURL: p.MainImageURL,
		Status:       p.Status,
		Type:         p.Type,
		Price:        p.Price,
		Name:         name,
		Description:  description,
		Images:       images,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}

	switch p.Type {
	case model.TypeOptionGroup:
		for i := range p.Options {
			view.Options = append(view.Options, buildOptionView(&p.Options[i], p, locale))
		}
	case model.TypePack:
		for _, item := range p.PackItems {
			view.Items = append(view.Items, buildPackItemView(item, locale))
		}
	}

	for i := range p.Offers {
		view.Offers = append(view.Offers, buildOfferView(&p.Offers[i], nil, locale))
	}

	return view
}

func buildPackItemView(item model.PackItem, locale string) PackItemView {
	name, _ := resolveName(model.ProductTranslationEntries(item.Product.Translations), locale, false)
	return PackItemView{
		ID:           item.ProductID,
		Name:         name,
		Quantity:     item.Quantity,
		MainImageURL: item.Product.MainImageURL,
	}
}

// buildOptionView resolves the option's own translations and denormalizes
// the parent product's name. parent may be nil when the option row carries
// its Product relation.
func buildOptionView(o *model.Option, parent *model.Product, locale string) OptionView {
	if parent == nil {
		parent = &o.Product
	}

	name, description := resolveName(model.OptionTranslationEntries(o.Translations), locale, false)
	productName, _ := resolveName(model.ProductTranslationEntries(parent.Translations), locale, false)

	return OptionView{
		ID:          o.ID,
		ProductID:   o.ProductID,
		ImageURL:    o.ImageURL,
		Status:      o.Status,
		Price:       o.Price,
		Name:        name,
		Description: description,
		ProductName: productName,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
}

// buildOfferView shapes an offer. product may be nil when the caller does
// not want product_name denormalized (offers nested under a product view).
func buildOfferView(o *model.Offer, product *model.Product, locale string) OfferView {
	view := OfferView{
		ID:         o.ID,
		ProductID:  o.ProductID,
		OfferPrice: o.OfferPrice,
		StartDate:  o.StartDate,
		EndDate:    o.EndDate,
		Status:     o.Status,
		IsActive:   o.IsActive(time.Now()),
		CreatedAt:  o.CreatedAt,
		UpdatedAt:  o.UpdatedAt,
	}
	if product != nil {
		view.ProductName, _ = resolveName(model.ProductTranslationEntries(product.Translations), locale, false)
	}
	return view
}
