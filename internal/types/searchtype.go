package types

import "github.com/perkinsfund/traceix-go/internal/errors"

// SearchType selects which hash-search endpoint variant to call.
type SearchType int

const (
	// SearchCapa searches prior capability-extraction results.
	SearchCapa SearchType = iota

	// SearchExif searches prior metadata-extraction results.
	SearchExif
)

// String returns the lowercase endpoint name for the search type.
func (t SearchType) String() string {
	switch t {
	case SearchCapa:
		return "capa"
	case SearchExif:
		return "exif"
	default:
		return "invalid"
	}
}

// SearchPath maps the search type to its endpoint path. Values outside the
// known set (reachable through an out-of-range conversion) yield an
// InvalidSearchType error.
func (t SearchType) SearchPath() (string, error) {
	switch t {
	case SearchCapa:
		return "/api/traceix/v1/capa/search", nil
	case SearchExif:
		return "/api/traceix/v1/exif/search", nil
	default:
		return "", errors.NewInvalidSearchType(int(t))
	}
}
