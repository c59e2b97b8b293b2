package catalog

import (
	"instock/pkg/models"
)

type CatalogItemRequest struct {
	Name     string  `json:"name" binding:"required"`
	Barcode  string  `json:"barcode" binding:"required"`
	Weight   float64 `json:"weight" binding:"gte=0"`
	Length   float64 `json:"length" binding:"gte=0"`
	Width    float64 `json:"width" binding:"gte=0"`
	Height   float64 `json:"height" binding:"gte=0"`
	Category string  `json:"category" binding:"required"`
}

func (r *CatalogItemRequest) ToModel() models.CatalogItem {
	return models.CatalogItem{
		Name:    r.Name,
		Barcode: r.Barcode,
		Weight:  r.Weight,
		Volume: models.Volume{
			Length: r.Length,
			Width:  r.Width,
			Height: r.Height,
		},
		Category: models.Category{
			Name: r.Category,
		},
	}
}
