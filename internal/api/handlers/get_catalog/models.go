package get_catalog

import (
	"github.com/m04kA/SMC-TheatreBooking/internal/domain"
	"github.com/m04kA/SMC-TheatreBooking/internal/pricing"
)

// OccasionResponse повод и его поля
type OccasionResponse struct {
	Name   string   `json:"name"`
	Fields []string `json:"fields"`
}

// AddOnPrices цены отдельных опций
type AddOnPrices struct {
	Decoration  int64 `json:"decoration"`
	Photography int64 `json:"photography"`
}

// GoldPackagePrices цена золотого пакета по типу зала
type GoldPackagePrices struct {
	Couples  int64 `json:"couples"`
	Standard int64 `json:"standard"`
}

// CatalogResponse всё, что нужно форме для выбора
type CatalogResponse struct {
	Locations   []string           `json:"locations"`
	Packages    []pricing.Item     `json:"packages"`
	Cakes       []pricing.Item     `json:"cakes"`
	FogEntries  []pricing.Item     `json:"fog_entries"`
	Occasions   []OccasionResponse `json:"occasions"`
	AddOns      AddOnPrices        `json:"add_ons"`
	GoldPackage GoldPackagePrices  `json:"gold_package"`
}

// FromCatalog конвертирует каталог в ответ
func FromCatalog(c *pricing.Catalog) *CatalogResponse {
	occasions := make([]OccasionResponse, 0, len(domain.AllOccasions))
	for _, kind := range domain.AllOccasions {
		occasions = append(occasions, OccasionResponse{
			Name:   string(kind),
			Fields: domain.OccasionFieldNames(kind),
		})
	}

	return &CatalogResponse{
		Locations:   append([]string(nil), domain.AllLocations...),
		Packages:    c.Packages,
		Cakes:       c.Cakes,
		FogEntries:  c.FogEntries,
		Occasions:   occasions,
		AddOns:      AddOnPrices{Decoration: pricing.DecorationPrice, Photography: pricing.PhotographyPrice},
		GoldPackage: GoldPackagePrices{Couples: pricing.GoldPackageCouples, Standard: pricing.GoldPackageStandard},
	}
}
