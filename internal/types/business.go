package types

// BusinessPhoto is one entry of a business's ordered photo list.
// At most one photo per business should have IsPrimary set; that is
// enforced by whatever writes the list, not by readers.
type BusinessPhoto struct {
	ID        string `json:"id"`
	URL       string `json:"url"`
	IsPrimary bool   `json:"is_primary"`
	AltText   string `json:"alt_text,omitempty"`
}

// Business matches the businesses table structure and is also the record
// shape of the static fallback dataset. IDs are directory-assigned strings
// (e.g. "manchester-plumber-003"), unique within a (city, trade) bucket.
type Business struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Trade          string          `json:"trade"`
	City           string          `json:"city"`
	Rating         float64         `json:"rating"`
	ReviewCount    int             `json:"review_count"`
	Address        string          `json:"address"`
	Hours          string          `json:"hours"`
	IsOpen24Hours  bool            `json:"is_open_24_hours"`
	Phone          string          `json:"phone"`
	Website        string          `json:"website,omitempty"`
	Email          string          `json:"email,omitempty"`
	FeaturedReview string          `json:"featured_review,omitempty"`
	IsAvailableNow bool            `json:"is_available_now"`
	Verified       bool            `json:"verified"`
	Photos         []BusinessPhoto `json:"photos,omitempty"`
}

// Availability values accepted by BusinessFilter.
const (
	AvailabilityAll = "all"
	AvailabilityNow = "now"
)

// Sort keys accepted by BusinessFilter.
const (
	SortByRating   = "rating"
	SortByReviews  = "reviews"
	SortByName     = "name"
	SortByDistance = "distance"
)

// BusinessFilter is the session-local filter/sort state applied to a
// materialized list of businesses. Zero value means "no filtering,
// sort by rating".
type BusinessFilter struct {
	SearchQuery  string  `json:"search_query"`
	Availability string  `json:"availability"`
	MinRating    float64 `json:"min_rating"`
	MaxDistance  float64 `json:"max_distance"`
	SortBy       string  `json:"sort_by"`
	HasWebsite   bool    `json:"has_website"`
	Is24Hours    bool    `json:"is_24_hours"`
}

// Trade is one of the directory's fixed trade categories.
type Trade struct {
	Slug string `json:"slug"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}
