package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticSearcherLookup(t *testing.T) {
	s := NewStaticSearcher()

	lat, lon, err := s.LookupCoordinate("India")
	require.NoError(t, err)
	assert.Equal(t, 20.593684, lat)
	assert.Equal(t, 78.96288, lon)
}

func TestStaticSearcherUnknownCountry(t *testing.T) {
	s := NewStaticSearcher()

	_, _, err := s.LookupCoordinate("Atlantis")
	assert.Equal(t, ErrCountryNotFound, err)
}

func TestLookupCoordinateWithoutSearcher(t *testing.T) {
	SetCoordinateSearcher(nil)
	defer SetCoordinateSearcher(NewStaticSearcher())

	_, _, err := LookupCoordinate("India")
	assert.Equal(t, ErrSearcherNotInitialized, err)
}

func TestLookupCoordinateDefaultSearcher(t *testing.T) {
	SetCoordinateSearcher(NewStaticSearcher())

	lat, _, err := LookupCoordinate("Brazil")
	require.NoError(t, err)
	assert.InDelta(t, -14.235, lat, 0.001)
}
