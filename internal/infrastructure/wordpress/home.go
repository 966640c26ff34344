package wordpress

import (
	"encoding/json"

	"AllianceSite/internal/domain"
)

// homePageFrom merges the "home" page over the defaults. Without custom fields
// only the about content is taken from the page body; with them every field
// falls back to its default individually.
func homePageFrom(page *domain.Page) domain.HomePageData {
	data := domain.DefaultHomePageData()
	if page == nil {
		return data
	}

	if page.Fields == nil {
		data.About.Content = firstNonEmpty(page.Content, data.About.Content)
		return data
	}

	f := page.Fields
	data.Hero = domain.Hero{
		Title:      firstNonEmpty(stringField(f, "hero_title"), data.Hero.Title),
		Subtitle:   firstNonEmpty(stringField(f, "hero_subtitle"), data.Hero.Subtitle),
		ButtonText: firstNonEmpty(stringField(f, "hero_button_text"), data.Hero.ButtonText),
	}
	data.About = domain.About{
		Title:   firstNonEmpty(stringField(f, "about_title"), data.About.Title),
		Content: firstNonEmpty(stringField(f, "about_content"), page.Content, data.About.Content),
	}
	data.WhyUs.Title = firstNonEmpty(stringField(f, "why_us_title"), data.WhyUs.Title)
	if items := whyUsItems(f["why_us_items"]); len(items) > 0 {
		data.WhyUs.Items = items
	}
	return data
}

// whyUsItems reads the ACF repeater; malformed input yields nil.
func whyUsItems(value any) []domain.WhyUsItem {
	if value == nil {
		return nil
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return nil
	}

	var rows []struct {
		ID   flexInt `json:"id"`
		Text string  `json:"text"`
	}
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil
	}

	items := make([]domain.WhyUsItem, 0, len(rows))
	for i, row := range rows {
		if row.Text == "" {
			continue
		}
		id := int(row.ID)
		if id == 0 {
			id = i + 1
		}
		items = append(items, domain.WhyUsItem{ID: id, Text: row.Text})
	}
	return items
}
