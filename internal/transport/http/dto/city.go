package dto

import (
	"github.com/baechuer/real-time-ressys/services/destination-service/internal/domain"
	"github.com/baechuer/real-time-ressys/services/destination-service/internal/flag"
)

// CityResp keeps the city_ascii/country keys browser clients already read.
type CityResp struct {
	Name    string `json:"city_ascii"`
	Country string `json:"country"`
	ISO2    string `json:"iso2"`
	Flag    string `json:"flag"`
}

type CountryResp struct {
	Country string `json:"country"`
	ISO2    string `json:"iso2"`
	Flag    string `json:"flag"`
}

type FlagResp struct {
	Code string `json:"code"`
	Flag string `json:"flag"`
}

func FromCity(c domain.City) CityResp {
	code, glyph := flag.ForCity(c)
	return CityResp{
		Name:    c.Name,
		Country: c.Country,
		ISO2:    code,
		Flag:    glyph,
	}
}

// FromCities never returns nil so empty results encode as [].
func FromCities(cities []domain.City) []CityResp {
	out := make([]CityResp, 0, len(cities))
	for _, c := range cities {
		out = append(out, FromCity(c))
	}
	return out
}

func FromCountries(names []string) []CountryResp {
	out := make([]CountryResp, 0, len(names))
	for _, n := range names {
		code, _ := flag.CodeForCountry(n)
		out = append(out, CountryResp{
			Country: n,
			ISO2:    code,
			Flag:    flag.ForCountry(n),
		})
	}
	return out
}
