package site

// Page is a top-level destination in the site navigation.
type Page struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Path        string   `json:"path"`
	Description string   `json:"description"`
	Keywords    []string `json:"keywords,omitempty"`
	// Nav pages show up in the top bar.
	Nav bool `json:"nav"`
}

// HeroVariant is one arm of the landing page hero experiment.
type HeroVariant struct {
	ID          string `json:"id"`
	Headline    string `json:"headline"`
	Subheadline string `json:"subheadline"`
	CTALabel    string `json:"ctaLabel"`
	CTAPath     string `json:"ctaPath"`
	Weight      int    `json:"weight"`
}

// HeroAssignment is the variant a visitor sees.
type HeroAssignment struct {
	VisitorID string      `json:"visitorId"`
	Variant   HeroVariant `json:"variant"`
	// Forced is true when SITE_HERO_VARIANT overrides bucketing.
	Forced bool `json:"forced"`
}

type ListPagesResponse struct {
	Pages []Page `json:"pages"`
	Total int    `json:"total"`
}
