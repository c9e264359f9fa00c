package content

import (
	"fmt"
	"strings"
)

const defaultStatIcon = "fas fa-star"

// Section update payloads. All textual fields are required and trimmed of
// incidental whitespace before being applied; a failed validation leaves the
// document untouched.

type HomeUpdate struct {
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle"`
	Description string `json:"description"`
}

type MissionUpdate struct {
	Title         string `json:"title"`
	Subtitle      string `json:"subtitle"`
	Heading       string `json:"heading"`
	Paragraph1    string `json:"paragraph1"`
	Paragraph2    string `json:"paragraph2"`
	ImagePosition string `json:"imagePosition"`
}

type AboutUpdate struct {
	Title         string `json:"title"`
	Subtitle      string `json:"subtitle"`
	Heading       string `json:"heading"`
	Paragraph1    string `json:"paragraph1"`
	Paragraph2    string `json:"paragraph2"`
	Paragraph3    string `json:"paragraph3"`
	ImagePosition string `json:"imagePosition"`
}

type ImpactUpdate struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Stats    []Stat `json:"stats"`
}

func requireAll(fields ...string) error {
	for _, f := range fields {
		if strings.TrimSpace(f) == "" {
			return fmt.Errorf("%w: all fields are required", ErrValidation)
		}
	}
	return nil
}

// SetHome replaces the home section text.
func (d *Document) SetHome(u HomeUpdate) error {
	if err := requireAll(u.Title, u.Subtitle, u.Description); err != nil {
		return err
	}
	d.Home.Title = strings.TrimSpace(u.Title)
	d.Home.Subtitle = strings.TrimSpace(u.Subtitle)
	d.Home.Description = strings.TrimSpace(u.Description)
	return nil
}

// SetMission replaces the mission section text. ImagePosition is an optional
// presentational hint; an empty value keeps the current one.
func (d *Document) SetMission(u MissionUpdate) error {
	if err := requireAll(u.Title, u.Subtitle, u.Heading, u.Paragraph1, u.Paragraph2); err != nil {
		return err
	}
	d.Mission.Title = strings.TrimSpace(u.Title)
	d.Mission.Subtitle = strings.TrimSpace(u.Subtitle)
	d.Mission.Heading = strings.TrimSpace(u.Heading)
	d.Mission.Paragraph1 = strings.TrimSpace(u.Paragraph1)
	d.Mission.Paragraph2 = strings.TrimSpace(u.Paragraph2)
	if u.ImagePosition != "" {
		d.Mission.ImagePosition = u.ImagePosition
	}
	return nil
}

// SetAbout replaces the about section text.
func (d *Document) SetAbout(u AboutUpdate) error {
	if err := requireAll(u.Title, u.Subtitle, u.Heading, u.Paragraph1, u.Paragraph2, u.Paragraph3); err != nil {
		return err
	}
	d.About.Title = strings.TrimSpace(u.Title)
	d.About.Subtitle = strings.TrimSpace(u.Subtitle)
	d.About.Heading = strings.TrimSpace(u.Heading)
	d.About.Paragraph1 = strings.TrimSpace(u.Paragraph1)
	d.About.Paragraph2 = strings.TrimSpace(u.Paragraph2)
	d.About.Paragraph3 = strings.TrimSpace(u.Paragraph3)
	if u.ImagePosition != "" {
		d.About.ImagePosition = u.ImagePosition
	}
	return nil
}

// SetImpact replaces the impact strip. A complete strip carries exactly four
// stats; each stat needs a non-empty number and label. Missing icons fall back
// to the default.
func (d *Document) SetImpact(u ImpactUpdate) error {
	if err := requireAll(u.Title, u.Subtitle); err != nil {
		return err
	}
	if len(u.Stats) != 4 {
		return fmt.Errorf("%w: exactly 4 stats are required", ErrValidation)
	}
	stats := make([]Stat, 0, len(u.Stats))
	for _, s := range u.Stats {
		if err := requireAll(s.Number, s.Label); err != nil {
			return err
		}
		icon := s.Icon
		if icon == "" {
			icon = defaultStatIcon
		}
		stats = append(stats, Stat{
			Number: strings.TrimSpace(s.Number),
			Label:  strings.TrimSpace(s.Label),
			Icon:   icon,
		})
	}
	d.Impact.Title = strings.TrimSpace(u.Title)
	d.Impact.Subtitle = strings.TrimSpace(u.Subtitle)
	d.Impact.Stats = stats
	return nil
}

// SetSectionImage associates an already-stored asset path with a named slot.
// All five slots are replace-only through this operation.
func (d *Document) SetSectionImage(section, imageURL string) error {
	if strings.TrimSpace(section) == "" || strings.TrimSpace(imageURL) == "" {
		return fmt.Errorf("%w: section and image URL are required", ErrValidation)
	}
	switch section {
	case "home":
		d.Home.BackgroundImage = imageURL
	case "mission":
		d.Mission.Image = imageURL
	case "about":
		d.About.Image = imageURL
	case "logo":
		d.Logo = imageURL
	case "favicon":
		d.Favicon = imageURL
	default:
		return fmt.Errorf("%w: %q", ErrUnknownSection, section)
	}
	return nil
}

// ClearSectionImage empties a slot. Only the mission and about slots support
// clearing; the home background, logo and favicon are replace-only.
func (d *Document) ClearSectionImage(section string) error {
	switch section {
	case "mission":
		d.Mission.Image = ""
	case "about":
		d.About.Image = ""
	default:
		return fmt.Errorf("%w: only mission and about images can be removed", ErrUnknownSection)
	}
	return nil
}
