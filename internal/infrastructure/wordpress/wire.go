package wordpress

import (
	"bytes"
	"encoding/json"
	"slices"
	"strconv"
	"strings"
	"time"

	"AllianceSite/internal/content"
	"AllianceSite/internal/domain"
)

var dateLayouts = []string{"2006-01-02T15:04:05", time.RFC3339}

// rendered is the {"rendered": "..."} wrapper WordPress uses for HTML fields.
// Plain strings are accepted too; some plugins flatten the object.
type rendered struct {
	Rendered string
}

func (r *rendered) UnmarshalJSON(data []byte) error {
	var plain string
	if err := json.Unmarshal(data, &plain); err == nil {
		r.Rendered = plain
		return nil
	}

	var obj struct {
		Rendered string `json:"rendered"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	r.Rendered = obj.Rendered
	return nil
}

// flexInt accepts JSON numbers and numeric strings; anything else decodes to 0.
type flexInt int

func (n *flexInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		data = []byte(strings.TrimSpace(s))
	}

	if v, err := strconv.ParseFloat(string(data), 64); err == nil {
		*n = flexInt(v)
		return nil
	}
	*n = 0
	return nil
}

type wireMedia struct {
	SourceURL string `json:"source_url"`
	AltText   string `json:"alt_text"`
}

type wirePost struct {
	ID       flexInt  `json:"id"`
	Title    rendered `json:"title"`
	Content  rendered `json:"content"`
	Excerpt  rendered `json:"excerpt"`
	Date     string   `json:"date"`
	Slug     string   `json:"slug"`
	Embedded struct {
		FeaturedMedia []wireMedia `json:"wp:featuredmedia"`
	} `json:"_embedded"`
}

type wirePage struct {
	ID      flexInt         `json:"id"`
	Title   rendered        `json:"title"`
	Content rendered        `json:"content"`
	Slug    string          `json:"slug"`
	ACF     json.RawMessage `json:"acf"`
}

type wireCertification struct {
	ID      flexInt         `json:"id"`
	Title   rendered        `json:"title"`
	Excerpt rendered        `json:"excerpt"`
	ACF     json.RawMessage `json:"acf"`
}

type wireMenu struct {
	Items []map[string]json.RawMessage `json:"items"`
}

func decodePosts(body []byte) ([]domain.Post, error) {
	var raw []wirePost
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, err
	}

	posts := make([]domain.Post, 0, len(raw))
	for _, p := range raw {
		posts = append(posts, p.toDomain())
	}
	return posts, nil
}

func (p wirePost) toDomain() domain.Post {
	post := domain.Post{
		ID:      int(p.ID),
		Title:   p.Title.Rendered,
		Content: p.Content.Rendered,
		Excerpt: p.Excerpt.Rendered,
		Date:    parseDate(p.Date),
		Slug:    p.Slug,
	}
	if len(p.Embedded.FeaturedMedia) > 0 && p.Embedded.FeaturedMedia[0].SourceURL != "" {
		media := p.Embedded.FeaturedMedia[0]
		post.FeaturedMedia = &domain.FeaturedMedia{SourceURL: media.SourceURL, AltText: media.AltText}
	}
	return post
}

func decodePages(body []byte) ([]domain.Page, error) {
	var raw []wirePage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, err
	}

	pages := make([]domain.Page, 0, len(raw))
	for _, p := range raw {
		pages = append(pages, domain.Page{
			ID:      int(p.ID),
			Title:   p.Title.Rendered,
			Content: p.Content.Rendered,
			Slug:    p.Slug,
			Fields:  decodeFields(p.ACF),
		})
	}
	return pages, nil
}

func decodeCertifications(body []byte) ([]domain.Certification, error) {
	var raw []wireCertification
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, err
	}

	certs := make([]domain.Certification, 0, len(raw))
	for _, c := range raw {
		fields := decodeFields(c.ACF)
		title := c.Title.Rendered
		certs = append(certs, domain.Certification{
			ID:          int(c.ID),
			Title:       title,
			ShortName:   firstNonEmpty(stringField(fields, "short_name"), content.Initials(title)),
			Description: firstNonEmpty(stringField(fields, "description"), c.Excerpt.Rendered),
			ForWho:      stringField(fields, "for_who"),
		})
	}
	return certs, nil
}

func decodeMenu(body []byte) ([]domain.MenuItem, error) {
	var menu wireMenu
	if err := json.Unmarshal(body, &menu); err != nil {
		return nil, err
	}
	return menuItems(menu.Items), nil
}

// menuItems maps both the plain {id, order, parent, children} shape and the
// menus plugin {ID, menu_order, menu_item_parent, child_items} shape.
func menuItems(raw []map[string]json.RawMessage) []domain.MenuItem {
	if len(raw) == 0 {
		return nil
	}

	items := make([]domain.MenuItem, 0, len(raw))
	for _, fields := range raw {
		var (
			id, order, parent flexInt
			title             rendered
			link              string
			children          []map[string]json.RawMessage
		)
		pick(fields, &id, "id", "ID")
		pick(fields, &title, "title")
		pick(fields, &link, "url")
		pick(fields, &order, "order", "menu_order")
		pick(fields, &parent, "parent", "menu_item_parent")
		pick(fields, &children, "children", "child_items")

		items = append(items, domain.MenuItem{
			ID:       int(id),
			Title:    title.Rendered,
			URL:      link,
			Order:    int(order),
			Parent:   int(parent),
			Children: menuItems(children),
		})
	}

	slices.SortStableFunc(items, func(a, b domain.MenuItem) int {
		return a.Order - b.Order
	})
	return items
}

// pick decodes the first present key into dst; undecodable values leave dst untouched.
func pick(fields map[string]json.RawMessage, dst any, keys ...string) {
	for _, key := range keys {
		raw, ok := fields[key]
		if !ok {
			continue
		}
		if err := json.Unmarshal(raw, dst); err == nil {
			return
		}
	}
}

// decodeFields reads ACF custom fields. WordPress sends false or [] when a
// post has none; those decode to nil.
func decodeFields(raw json.RawMessage) map[string]any {
	if len(raw) == 0 {
		return nil
	}
	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil
	}
	return fields
}

func stringField(fields map[string]any, key string) string {
	if s, ok := fields[key].(string); ok {
		return s
	}
	return ""
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func parseDate(value string) time.Time {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	return time.Time{}
}
