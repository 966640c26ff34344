package domain

import "time"

// Post is a blog entry pulled from the CMS. Title, Content and Excerpt hold raw HTML.
type Post struct {
	ID            int            `json:"id"`
	Title         string         `json:"title"`
	Content       string         `json:"content"`
	Excerpt       string         `json:"excerpt"`
	Date          time.Time      `json:"date"`
	Slug          string         `json:"slug"`
	FeaturedMedia *FeaturedMedia `json:"featuredMedia,omitempty"`
}

// FeaturedMedia is the embedded featured image of a post.
type FeaturedMedia struct {
	SourceURL string `json:"sourceUrl"`
	AltText   string `json:"altText"`
}

// Page is a CMS page with optional custom fields.
type Page struct {
	ID      int            `json:"id"`
	Title   string         `json:"title"`
	Content string         `json:"content"`
	Slug    string         `json:"slug"`
	Fields  map[string]any `json:"fields,omitempty"`
}

// MenuItem is a navigation entry; Parent is 0 for root items.
type MenuItem struct {
	ID       int        `json:"id"`
	Title    string     `json:"title"`
	URL      string     `json:"url"`
	Order    int        `json:"order"`
	Parent   int        `json:"parent"`
	Children []MenuItem `json:"children,omitempty"`
}

// Certification describes a single certification track.
type Certification struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	ShortName   string `json:"shortName"`
	Description string `json:"description"`
	ForWho      string `json:"forWho"`
}

// HomePageData is assembled from the "home" page custom fields or from defaults.
type HomePageData struct {
	Hero  Hero  `json:"hero"`
	About About `json:"about"`
	WhyUs WhyUs `json:"whyUs"`
}

// Hero is the banner block of the home page.
type Hero struct {
	Title      string `json:"title"`
	Subtitle   string `json:"subtitle"`
	ButtonText string `json:"buttonText"`
}

// About is the introduction block of the home page.
type About struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// WhyUs lists the organization's selling points.
type WhyUs struct {
	Title string      `json:"title"`
	Items []WhyUsItem `json:"items"`
}

// WhyUsItem is one bullet of the WhyUs block.
type WhyUsItem struct {
	ID   int    `json:"id"`
	Text string `json:"text"`
}

// Availability enumerates the memoized backend reachability states.
type Availability int32

const (
	AvailabilityUnknown Availability = iota
	AvailabilityAvailable
	AvailabilityUnavailable
)

func (a Availability) String() string {
	switch a {
	case AvailabilityAvailable:
		return "available"
	case AvailabilityUnavailable:
		return "unavailable"
	default:
		return "unknown"
	}
}

// StaticPage is a built-in page body rendered from markdown.
type StaticPage struct {
	Slug  string
	Title string
	Lead  string
	HTML  string
}

// ConnectionReport is the outcome of an ad hoc CMS connection test.
type ConnectionReport struct {
	Status             string `json:"status"`
	Message            string `json:"message,omitempty"`
	Error              string `json:"error,omitempty"`
	Disabled           bool   `json:"disabled,omitempty"`
	RawURL             string `json:"rawUrl,omitempty"`
	FormattedURL       string `json:"formattedUrl,omitempty"`
	ResponseStatus     int    `json:"responseStatus,omitempty"`
	ResponseStatusText string `json:"responseStatusText,omitempty"`
	Data               any    `json:"data,omitempty"`
}

// OK reports whether the connection test succeeded.
func (r ConnectionReport) OK() bool {
	return r.Status == "success"
}
