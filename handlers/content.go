package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chinarfoundation/charity-site/internal/content"
)

// ContentHandler serves the structured site document: the public read, the
// authenticated read and the per-section text and image mutations.
type ContentHandler struct {
	repo content.Repository
}

func NewContentHandler(repo content.Repository) *ContentHandler {
	return &ContentHandler{repo: repo}
}

// Register mounts the public read on the root router and everything else in
// the authenticated group.
func (h *ContentHandler) Register(r gin.IRouter, admin *gin.RouterGroup) {
	r.GET("/api/content", h.GetContent)

	admin.GET("/content", h.GetContent)
	admin.POST("/update-home", h.UpdateHome)
	admin.POST("/update-mission", h.UpdateMission)
	admin.POST("/update-about", h.UpdateAbout)
	admin.POST("/update-impact", h.UpdateImpact)
	admin.POST("/update-image", h.UpdateImage)
	admin.POST("/remove-section-image", h.RemoveSectionImage)

	admin.POST("/add-project", h.AddProject)
	admin.POST("/update-project", h.UpdateProject)
	admin.POST("/delete-project", h.DeleteProject)
	admin.POST("/add-story", h.AddStory)
	admin.POST("/update-story", h.UpdateStory)
	admin.POST("/delete-story", h.DeleteStory)
}

// GetContent returns the full document as stored. The same representation
// backs the public site and the admin editor.
func (h *ContentHandler) GetContent(c *gin.Context) {
	doc, ok := loadDoc(c, h.repo)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, doc)
}

func (h *ContentHandler) UpdateHome(c *gin.Context) {
	var req content.HomeUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	doc, ok := loadDoc(c, h.repo)
	if !ok {
		return
	}
	if err := doc.SetHome(req); err != nil {
		fail(c, http.StatusBadRequest, "All fields are required")
		return
	}
	saveDoc(c, h.repo, doc, "Home section updated successfully", nil)
}

func (h *ContentHandler) UpdateMission(c *gin.Context) {
	var req content.MissionUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	doc, ok := loadDoc(c, h.repo)
	if !ok {
		return
	}
	if err := doc.SetMission(req); err != nil {
		fail(c, http.StatusBadRequest, "All fields are required")
		return
	}
	saveDoc(c, h.repo, doc, "Mission section updated successfully", nil)
}

func (h *ContentHandler) UpdateAbout(c *gin.Context) {
	var req content.AboutUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	doc, ok := loadDoc(c, h.repo)
	if !ok {
		return
	}
	if err := doc.SetAbout(req); err != nil {
		fail(c, http.StatusBadRequest, "All fields are required")
		return
	}
	saveDoc(c, h.repo, doc, "About section updated successfully", nil)
}

func (h *ContentHandler) UpdateImpact(c *gin.Context) {
	var req content.ImpactUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	doc, ok := loadDoc(c, h.repo)
	if !ok {
		return
	}
	if err := doc.SetImpact(req); err != nil {
		fail(c, http.StatusBadRequest, "Title, subtitle and exactly 4 complete stats are required")
		return
	}
	saveDoc(c, h.repo, doc, "Impact section updated successfully", nil)
}

// UpdateImageRequest points a named section slot at an already-uploaded asset.
type UpdateImageRequest struct {
	Section  string `json:"section"`
	ImageURL string `json:"imageUrl"`
}

func (h *ContentHandler) UpdateImage(c *gin.Context) {
	var req UpdateImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	doc, ok := loadDoc(c, h.repo)
	if !ok {
		return
	}
	if err := doc.SetSectionImage(req.Section, req.ImageURL); err != nil {
		switch {
		case errors.Is(err, content.ErrUnknownSection):
			fail(c, http.StatusBadRequest, "Invalid section")
		default:
			fail(c, http.StatusBadRequest, "Section and image URL are required")
		}
		return
	}
	saveDoc(c, h.repo, doc, "Image updated successfully", nil)
}

type RemoveSectionImageRequest struct {
	Section string `json:"section"`
}

func (h *ContentHandler) RemoveSectionImage(c *gin.Context) {
	var req RemoveSectionImageRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Section == "" {
		fail(c, http.StatusBadRequest, "Section is required")
		return
	}
	doc, ok := loadDoc(c, h.repo)
	if !ok {
		return
	}
	if err := doc.ClearSectionImage(req.Section); err != nil {
		fail(c, http.StatusBadRequest, "Invalid section. Only mission and about images can be removed.")
		return
	}
	saveDoc(c, h.repo, doc, "Image removed successfully", nil)
}
