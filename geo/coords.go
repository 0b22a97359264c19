package geo

import "fmt"

var (
	ErrCountryNotFound        = fmt.Errorf("country coordinate is not found")
	ErrSearcherNotInitialized = fmt.Errorf("coordinate searcher is not initialized")
)

// CoordinateSearcher resolves a country name to a representative
// latitude/longitude for marker placement.
type CoordinateSearcher interface {
	LookupCoordinate(country string) (float64, float64, error)
}

// StaticSearcher serves lookups from a compiled-in table of country
// centroids covering the highest-burden countries in the dataset.
type StaticSearcher struct {
	coords map[string][2]float64
}

func NewStaticSearcher() *StaticSearcher {
	return &StaticSearcher{coords: countryCentroids}
}

func (s *StaticSearcher) LookupCoordinate(country string) (float64, float64, error) {
	c, ok := s.coords[country]
	if !ok {
		return 0, 0, ErrCountryNotFound
	}
	return c[0], c[1], nil
}

var defaultSearcher CoordinateSearcher

// SetCoordinateSearcher installs the process-wide searcher used by
// LookupCoordinate.
func SetCoordinateSearcher(searcher CoordinateSearcher) {
	defaultSearcher = searcher
}

// LookupCoordinate resolves a country name with the installed searcher.
func LookupCoordinate(country string) (float64, float64, error) {
	if defaultSearcher == nil {
		return 0, 0, ErrSearcherNotInitialized
	}
	return defaultSearcher.LookupCoordinate(country)
}

// countryCentroids covers the countries the marker layer can plot. The map
// export silently skips countries that are absent.
var countryCentroids = map[string][2]float64{
	"Afghanistan":                      {33.93911, 67.709953},
	"Angola":                           {-11.202692, 17.873887},
	"Bangladesh":                       {23.684994, 90.356331},
	"Brazil":                           {-14.235004, -51.92528},
	"Cambodia":                         {12.565679, 104.990963},
	"China":                            {35.86166, 104.195397},
	"Democratic Republic of the Congo": {-4.038333, 21.758664},
	"Ethiopia":                         {9.145, 40.489673},
	"India":                            {20.593684, 78.96288},
	"Indonesia":                        {-0.789275, 113.921327},
	"Kenya":                            {-0.023559, 37.906193},
	"Lesotho":                          {-29.609988, 28.233608},
	"Mozambique":                       {-18.665695, 35.529562},
	"Myanmar":                          {21.913965, 95.956223},
	"Namibia":                          {-22.95764, 18.49041},
	"Nigeria":                          {9.081999, 8.675277},
	"Pakistan":                         {30.375321, 69.345116},
	"Philippines":                      {12.879721, 121.774017},
	"Russian Federation":               {61.52401, 105.318756},
	"South Africa":                     {-30.559482, 22.937506},
	"Thailand":                         {15.870032, 100.992541},
	"United Republic of Tanzania":      {-6.369028, 34.888822},
	"Viet Nam":                         {14.058324, 108.277199},
	"Zambia":                           {-13.133897, 27.849332},
	"Zimbabwe":                         {-19.015438, 29.154857},
}
