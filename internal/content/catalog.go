package content

import (
	"fmt"
	"strings"
	"time"
)

const defaultProjectIcon = "fas fa-star"

// nextItemID derives a new identifier from the current timestamp, bumping past
// any existing id so that two additions within the same millisecond stay
// unique. Uniqueness, not ordering, is the contract.
func nextItemID(taken func(int64) bool) int64 {
	id := time.Now().UnixMilli()
	for taken(id) {
		id++
	}
	return id
}

func (d *Document) hasProject(id int64) bool {
	for _, p := range d.Projects {
		if p.ID == id {
			return true
		}
	}
	return false
}

func (d *Document) hasStory(id int64) bool {
	for _, s := range d.Stories {
		if s.ID == id {
			return true
		}
	}
	return false
}

// AddProject validates and appends a new project, returning it with its
// assigned id. An empty icon falls back to the default.
func (d *Document) AddProject(title, description, image, icon string) (Project, error) {
	if err := requireAll(title, description, image); err != nil {
		return Project{}, err
	}
	if icon == "" {
		icon = defaultProjectIcon
	}
	p := Project{
		ID:          nextItemID(d.hasProject),
		Title:       strings.TrimSpace(title),
		Description: strings.TrimSpace(description),
		Image:       strings.TrimSpace(image),
		Icon:        icon,
	}
	d.Projects = append(d.Projects, p)
	return p, nil
}

// UpdateProject replaces the project with the given id in place. An empty icon
// keeps the existing one. Surviving entries are never reordered.
func (d *Document) UpdateProject(id int64, title, description, image, icon string) (Project, error) {
	if err := requireAll(title, description, image); err != nil {
		return Project{}, err
	}
	for i, p := range d.Projects {
		if p.ID != id {
			continue
		}
		if icon == "" {
			icon = p.Icon
		}
		d.Projects[i] = Project{
			ID:          id,
			Title:       strings.TrimSpace(title),
			Description: strings.TrimSpace(description),
			Image:       strings.TrimSpace(image),
			Icon:        icon,
		}
		return d.Projects[i], nil
	}
	return Project{}, fmt.Errorf("%w: project %d", ErrItemNotFound, id)
}

// DeleteProject removes the project with the given id, preserving the order of
// the remaining entries.
func (d *Document) DeleteProject(id int64) error {
	for i, p := range d.Projects {
		if p.ID == id {
			d.Projects = append(d.Projects[:i], d.Projects[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: project %d", ErrItemNotFound, id)
}

// AddStory validates and appends a new story, returning it with its assigned id.
func (d *Document) AddStory(name, story, image string) (Story, error) {
	if err := requireAll(name, story, image); err != nil {
		return Story{}, err
	}
	s := Story{
		ID:    nextItemID(d.hasStory),
		Name:  strings.TrimSpace(name),
		Story: strings.TrimSpace(story),
		Image: strings.TrimSpace(image),
	}
	d.Stories = append(d.Stories, s)
	return s, nil
}

// UpdateStory replaces the story with the given id in place.
func (d *Document) UpdateStory(id int64, name, story, image string) (Story, error) {
	if err := requireAll(name, story, image); err != nil {
		return Story{}, err
	}
	for i, s := range d.Stories {
		if s.ID != id {
			continue
		}
		d.Stories[i] = Story{
			ID:    id,
			Name:  strings.TrimSpace(name),
			Story: strings.TrimSpace(story),
			Image: strings.TrimSpace(image),
		}
		return d.Stories[i], nil
	}
	return Story{}, fmt.Errorf("%w: story %d", ErrItemNotFound, id)
}

// DeleteStory removes the story with the given id.
func (d *Document) DeleteStory(id int64) error {
	for i, s := range d.Stories {
		if s.ID == id {
			d.Stories = append(d.Stories[:i], d.Stories[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: story %d", ErrItemNotFound, id)
}
