package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chinarfoundation/charity-site/internal/content"
)

// ProjectRequest covers add, update and delete. The id arrives as either a
// JSON number or a decimal string depending on the client, so it is bound as
// json.Number and parsed explicitly.
type ProjectRequest struct {
	ID          json.Number `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Image       string      `json:"image"`
	Icon        string      `json:"icon"`
}

type StoryRequest struct {
	ID    json.Number `json:"id"`
	Name  string      `json:"name"`
	Story string      `json:"story"`
	Image string      `json:"image"`
}

// itemID parses the bound id, distinguishing "absent" from "unparseable".
func itemID(n json.Number) (int64, bool) {
	if n.String() == "" {
		return 0, false
	}
	id, err := n.Int64()
	if err != nil {
		return 0, false
	}
	return id, true
}

func (h *ContentHandler) AddProject(c *gin.Context) {
	var req ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	doc, ok := loadDoc(c, h.repo)
	if !ok {
		return
	}
	p, err := doc.AddProject(req.Title, req.Description, req.Image, req.Icon)
	if err != nil {
		fail(c, http.StatusBadRequest, "Title, description and image are required")
		return
	}
	saveDoc(c, h.repo, doc, "Project added successfully", gin.H{"project": p})
}

func (h *ContentHandler) UpdateProject(c *gin.Context) {
	var req ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	id, ok := itemID(req.ID)
	if !ok {
		fail(c, http.StatusBadRequest, "Project ID is required")
		return
	}
	doc, ok := loadDoc(c, h.repo)
	if !ok {
		return
	}
	p, err := doc.UpdateProject(id, req.Title, req.Description, req.Image, req.Icon)
	if err != nil {
		if errors.Is(err, content.ErrItemNotFound) {
			fail(c, http.StatusNotFound, "Project not found")
			return
		}
		fail(c, http.StatusBadRequest, "Title, description and image are required")
		return
	}
	saveDoc(c, h.repo, doc, "Project updated successfully", gin.H{"project": p})
}

func (h *ContentHandler) DeleteProject(c *gin.Context) {
	var req ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	id, ok := itemID(req.ID)
	if !ok {
		fail(c, http.StatusBadRequest, "Project ID is required")
		return
	}
	doc, ok := loadDoc(c, h.repo)
	if !ok {
		return
	}
	if err := doc.DeleteProject(id); err != nil {
		fail(c, http.StatusNotFound, "Project not found")
		return
	}
	saveDoc(c, h.repo, doc, "Project deleted successfully", nil)
}

func (h *ContentHandler) AddStory(c *gin.Context) {
	var req StoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	doc, ok := loadDoc(c, h.repo)
	if !ok {
		return
	}
	s, err := doc.AddStory(req.Name, req.Story, req.Image)
	if err != nil {
		fail(c, http.StatusBadRequest, "Name, story and image are required")
		return
	}
	saveDoc(c, h.repo, doc, "Story added successfully", gin.H{"story": s})
}

func (h *ContentHandler) UpdateStory(c *gin.Context) {
	var req StoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	id, ok := itemID(req.ID)
	if !ok {
		fail(c, http.StatusBadRequest, "Story ID is required")
		return
	}
	doc, ok := loadDoc(c, h.repo)
	if !ok {
		return
	}
	s, err := doc.UpdateStory(id, req.Name, req.Story, req.Image)
	if err != nil {
		if errors.Is(err, content.ErrItemNotFound) {
			fail(c, http.StatusNotFound, "Story not found")
			return
		}
		fail(c, http.StatusBadRequest, "Name, story and image are required")
		return
	}
	saveDoc(c, h.repo, doc, "Story updated successfully", gin.H{"story": s})
}

func (h *ContentHandler) DeleteStory(c *gin.Context) {
	var req StoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	id, ok := itemID(req.ID)
	if !ok {
		fail(c, http.StatusBadRequest, "Story ID is required")
		return
	}
	doc, ok := loadDoc(c, h.repo)
	if !ok {
		return
	}
	if err := doc.DeleteStory(id); err != nil {
		fail(c, http.StatusNotFound, "Story not found")
		return
	}
	saveDoc(c, h.repo, doc, "Story deleted successfully", nil)
}
