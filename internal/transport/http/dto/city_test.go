package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baechuer/real-time-ressys/services/destination-service/internal/domain"
	"github.com/baechuer/real-time-ressys/services/destination-service/internal/flag"
)

func TestFromCity(t *testing.T) {
	t.Run("resolves_code_from_country_name", func(t *testing.T) {
		got := FromCity(domain.City{Name: "Paris", Country: "France"})
		assert.Equal(t, CityResp{Name: "Paris", Country: "France", ISO2: "FR", Flag: "🇫🇷"}, got)
	})

	t.Run("prefers_explicit_iso2", func(t *testing.T) {
		got := FromCity(domain.City{Name: "San Jose", Country: "Costa Rica", ISO2: "CR"})
		assert.Equal(t, "CR", got.ISO2)
		assert.Equal(t, "🇨🇷", got.Flag)
	})

	t.Run("unknown_country_gets_fallback", func(t *testing.T) {
		got := FromCity(domain.City{Name: "Atlantis", Country: "Nowhere"})
		assert.Equal(t, "", got.ISO2)
		assert.Equal(t, flag.Fallback, got.Flag)
	})

	t.Run("wire_keys", func(t *testing.T) {
		b, err := json.Marshal(FromCity(domain.City{Name: "Tokyo", Country: "Japan"}))
		require.NoError(t, err)
		assert.JSONEq(t, `{"city_ascii":"Tokyo","country":"Japan","iso2":"JP","flag":"🇯🇵"}`, string(b))
	})
}

func TestFromCities(t *testing.T) {
	t.Run("empty_encodes_as_array", func(t *testing.T) {
		b, err := json.Marshal(FromCities(nil))
		require.NoError(t, err)
		assert.Equal(t, "[]", string(b))
	})

	t.Run("keeps_order", func(t *testing.T) {
		got := FromCities([]domain.City{
			{Name: "Parma", Country: "Italy"},
			{Name: "Paris", Country: "France"},
		})
		require.Len(t, got, 2)
		assert.Equal(t, "Parma", got[0].Name)
		assert.Equal(t, "Paris", got[1].Name)
	})
}

func TestFromCountries(t *testing.T) {
	got := FromCountries([]string{"Japan", "Nowhere"})
	require.Len(t, got, 2)
	assert.Equal(t, CountryResp{Country: "Japan", ISO2: "JP", Flag: "🇯🇵"}, got[0])
	assert.Equal(t, CountryResp{Country: "Nowhere", ISO2: "", Flag: flag.Fallback}, got[1])
}
