package content

import "errors"

var (
	// ErrNotFound means the backing resource for the document is missing.
	ErrNotFound = errors.New("content document not found")
	// ErrCorrupt means the backing resource exists but does not parse.
	ErrCorrupt = errors.New("content document corrupt")
	// ErrValidation means a mutation payload is missing required fields.
	ErrValidation = errors.New("validation failed")
	// ErrItemNotFound means a referenced project or story id does not exist.
	ErrItemNotFound = errors.New("item not found")
	// ErrUnknownSection means an image operation referenced an unsupported slot.
	ErrUnknownSection = errors.New("unknown section")
)

// Document is the single structured record holding all editable site content.
// It is loaded fresh from storage at the start of every operation and rewritten
// in full on every successful mutation.
type Document struct {
	Home     Home      `json:"home" bson:"home"`
	Mission  Mission   `json:"mission" bson:"mission"`
	About    About     `json:"about" bson:"about"`
	Impact   Impact    `json:"impact" bson:"impact"`
	Logo     string    `json:"logo" bson:"logo"`
	Favicon  string    `json:"favicon" bson:"favicon"`
	Projects []Project `json:"projects" bson:"projects"`
	Stories  []Story   `json:"stories" bson:"stories"`
}

type Home struct {
	Title           string `json:"title" bson:"title"`
	Subtitle        string `json:"subtitle" bson:"subtitle"`
	Description     string `json:"description" bson:"description"`
	BackgroundImage string `json:"backgroundImage" bson:"backgroundImage"`
}

type Mission struct {
	Title         string `json:"title" bson:"title"`
	Subtitle      string `json:"subtitle" bson:"subtitle"`
	Heading       string `json:"heading" bson:"heading"`
	Paragraph1    string `json:"paragraph1" bson:"paragraph1"`
	Paragraph2    string `json:"paragraph2" bson:"paragraph2"`
	Image         string `json:"image" bson:"image"`
	ImagePosition string `json:"imagePosition,omitempty" bson:"imagePosition,omitempty"`
}

type About struct {
	Title         string `json:"title" bson:"title"`
	Subtitle      string `json:"subtitle" bson:"subtitle"`
	Heading       string `json:"heading" bson:"heading"`
	Paragraph1    string `json:"paragraph1" bson:"paragraph1"`
	Paragraph2    string `json:"paragraph2" bson:"paragraph2"`
	Paragraph3    string `json:"paragraph3" bson:"paragraph3"`
	Image         string `json:"image" bson:"image"`
	ImagePosition string `json:"imagePosition,omitempty" bson:"imagePosition,omitempty"`
}

// Impact holds the headline statistics strip. A fully-edited document carries
// exactly four stats; older partial documents may carry fewer and are tolerated
// on load.
type Impact struct {
	Title    string `json:"title" bson:"title"`
	Subtitle string `json:"subtitle" bson:"subtitle"`
	Stats    []Stat `json:"stats" bson:"stats"`
}

type Stat struct {
	Number string `json:"number" bson:"number"`
	Label  string `json:"label" bson:"label"`
	Icon   string `json:"icon" bson:"icon"`
}

// Project ids are derived from the creation timestamp; uniqueness, not
// ordering, is the contract. List order is insertion order.
type Project struct {
	ID          int64  `json:"id" bson:"id"`
	Title       string `json:"title" bson:"title"`
	Description string `json:"description" bson:"description"`
	Image       string `json:"image" bson:"image"`
	Icon        string `json:"icon" bson:"icon"`
}

type Story struct {
	ID    int64  `json:"id" bson:"id"`
	Name  string `json:"name" bson:"name"`
	Story string `json:"story" bson:"story"`
	Image string `json:"image" bson:"image"`
}
