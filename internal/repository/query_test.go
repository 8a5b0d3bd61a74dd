package repository

import (
	"strings"
	"testing"
	"time"

	"github.com/Domenick1991/airport/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestContainsPattern_EscapesWildcards(t *testing.T) {
	assert.Equal(t, "%Kyiv%", containsPattern("Kyiv"))
	assert.Equal(t, `%50\%\_off\\%`, containsPattern(`50%_off\`))
}

func TestBuildFlightListQuery_NoFilter(t *testing.T) {
	query, args := buildFlightListQuery(domain.FlightFilter{})

	assert.NotContains(t, query, "WHERE")
	assert.Contains(t, query, "COUNT(tk.id) AS tickets_available")
	assert.True(t, strings.HasSuffix(query, "ORDER BY f.departure_time, f.id"))
	assert.Empty(t, args)
}

func TestBuildFlightListQuery_AllFilters(t *testing.T) {
	date := time.Date(2026, 3, 14, 18, 30, 0, 0, time.UTC)
	query, args := buildFlightListQuery(domain.FlightFilter{
		Date:        &date,
		Airplane:    "boeing",
		Source:      "Bor",
		Destination: "Hea",
	})

	assert.Contains(t, query, "WHERE f.departure_time >= $1 AND f.departure_time < $2 AND a.name ILIKE $3 AND s.name ILIKE $4 AND d.name ILIKE $5")
	assert.Less(t, strings.Index(query, "WHERE"), strings.Index(query, "GROUP BY"))
	assert.Equal(t, []any{
		time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		"%boeing%", "%Bor%", "%Hea%",
	}, args)
}

func TestBuildRouteListQuery(t *testing.T) {
	query, args := buildRouteListQuery(domain.RouteFilter{Destination: "Lon"})

	assert.Contains(t, query, "WHERE d.name ILIKE $1")
	assert.NotContains(t, query, "s.name ILIKE")
	assert.Equal(t, []any{"%Lon%"}, args)
}

func TestBuildAirplaneListQuery(t *testing.T) {
	query, args := buildAirplaneListQuery(domain.AirplaneFilter{Name: "Mriya", AirplaneType: "cargo"})

	assert.Contains(t, query, "WHERE a.name = $1 AND t.name ILIKE $2")
	assert.Equal(t, []any{"Mriya", "%cargo%"}, args)
}
