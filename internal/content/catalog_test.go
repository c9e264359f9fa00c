package content

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddThenDeleteProjectRestoresList(t *testing.T) {
	doc := sampleDocument()
	before := append([]Project(nil), doc.Projects...)

	p, err := doc.AddProject("Clean Water", "Wells for villages", "/images/abc.jpg", "")
	require.NoError(t, err)
	assert.Equal(t, defaultProjectIcon, p.Icon)
	require.Len(t, doc.Projects, len(before)+1)
	assert.Equal(t, p, doc.Projects[len(doc.Projects)-1])

	require.NoError(t, doc.DeleteProject(p.ID))
	assert.Equal(t, before, doc.Projects)
}

func TestAddProjectAssignsUniqueIDs(t *testing.T) {
	doc := &Document{}
	seen := map[int64]bool{}
	for i := 0; i < 10; i++ {
		p, err := doc.AddProject("t", "d", "/images/i.jpg", "fas fa-star")
		require.NoError(t, err)
		if seen[p.ID] {
			t.Fatalf("duplicate project id %d", p.ID)
		}
		seen[p.ID] = true
	}
}

func TestAddProjectValidation(t *testing.T) {
	doc := &Document{}
	_, err := doc.AddProject("t", "", "/images/i.jpg", "")
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	assert.Empty(t, doc.Projects)
}

func TestUpdateProject(t *testing.T) {
	doc := &Document{}
	p1, _ := doc.AddProject("One", "d1", "/images/1.jpg", "fas fa-one")
	p2, _ := doc.AddProject("Two", "d2", "/images/2.jpg", "fas fa-two")

	// empty icon keeps the existing one
	got, err := doc.UpdateProject(p1.ID, " One v2 ", "d1b", "/images/1b.jpg", "")
	require.NoError(t, err)
	assert.Equal(t, "One v2", got.Title)
	assert.Equal(t, "fas fa-one", got.Icon)

	// order preserved
	assert.Equal(t, p1.ID, doc.Projects[0].ID)
	assert.Equal(t, p2.ID, doc.Projects[1].ID)

	_, err = doc.UpdateProject(999, "x", "y", "/images/z.jpg", "")
	if !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
}

func TestDeleteProjectPreservesOrder(t *testing.T) {
	doc := &Document{}
	a, _ := doc.AddProject("A", "d", "/images/a.jpg", "")
	b, _ := doc.AddProject("B", "d", "/images/b.jpg", "")
	c, _ := doc.AddProject("C", "d", "/images/c.jpg", "")

	require.NoError(t, doc.DeleteProject(b.ID))
	require.Len(t, doc.Projects, 2)
	assert.Equal(t, a.ID, doc.Projects[0].ID)
	assert.Equal(t, c.ID, doc.Projects[1].ID)

	if err := doc.DeleteProject(b.ID); !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound on second delete, got %v", err)
	}
}

func TestStoryLifecycle(t *testing.T) {
	doc := &Document{}
	s, err := doc.AddStory("Aisha", "Her story", "/images/s.jpg")
	require.NoError(t, err)
	require.Len(t, doc.Stories, 1)

	got, err := doc.UpdateStory(s.ID, "Aisha K", "Updated", "/images/s2.jpg")
	require.NoError(t, err)
	assert.Equal(t, "Aisha K", got.Name)
	assert.Equal(t, s.ID, got.ID)

	require.NoError(t, doc.DeleteStory(s.ID))
	assert.Empty(t, doc.Stories)

	if _, err := doc.UpdateStory(s.ID, "x", "y", "/images/z.jpg"); !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
	if err := doc.DeleteStory(s.ID); !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
}
