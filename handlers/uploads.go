package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chinarfoundation/charity-site/internal/assets"
	"github.com/chinarfoundation/charity-site/internal/content"
	"github.com/chinarfoundation/charity-site/pkg/logger"
	"github.com/chinarfoundation/charity-site/pkg/metrics"
)

// UploadHandler serves asset uploads and deletions. Branding uploads also
// mutate the content document so that the new logo or favicon path takes
// effect atomically with the stored file.
type UploadHandler struct {
	mgr  *assets.Manager
	repo content.Repository
}

func NewUploadHandler(mgr *assets.Manager, repo content.Repository) *UploadHandler {
	return &UploadHandler{mgr: mgr, repo: repo}
}

func (h *UploadHandler) Register(admin *gin.RouterGroup) {
	admin.POST("/upload-image", h.UploadImage)
	admin.POST("/upload-branding", h.UploadBranding)
	admin.POST("/delete-image", h.DeleteImage)
}

// rejectUpload translates a policy error into the client response and counts
// the rejection by reason.
func rejectUpload(c *gin.Context, err error, pol assets.Policy) bool {
	switch {
	case errors.Is(err, assets.ErrWrongType):
		metrics.UploadsRejected.WithLabelValues("type").Inc()
		switch pol.Name {
		case "logo":
			fail(c, http.StatusBadRequest, "Logo must be a PNG file")
		case "favicon":
			fail(c, http.StatusBadRequest, "Favicon must be an ICO file")
		default:
			fail(c, http.StatusBadRequest, "Only image files are allowed")
		}
		return true
	case errors.Is(err, assets.ErrTooLarge):
		metrics.UploadsRejected.WithLabelValues("size").Inc()
		fail(c, http.StatusBadRequest, fmt.Sprintf("File too large (max %d MB)", pol.MaxBytes>>20))
		return true
	case err != nil:
		logger.Errorf("failed to store upload: %v", err)
		fail(c, http.StatusInternalServerError, "Failed to store file")
		return true
	}
	return false
}

// UploadImage stores a generic content image and returns its public path. The
// caller associates it with a section or catalog item in a follow-up request.
func (h *UploadHandler) UploadImage(c *gin.Context) {
	fh, err := c.FormFile("image")
	if err != nil {
		fail(c, http.StatusBadRequest, "No image file provided")
		return
	}
	f, err := fh.Open()
	if err != nil {
		fail(c, http.StatusInternalServerError, "Failed to read uploaded file")
		return
	}
	defer f.Close()

	path, err := h.mgr.Save(c.Request.Context(), fh.Filename, f, fh.Size, fh.Header.Get("Content-Type"), assets.ImagePolicy)
	if rejectUpload(c, err, assets.ImagePolicy) {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"message":  "Image uploaded successfully",
		"imageUrl": path,
	})
}

// UploadBranding replaces the site logo or favicon. The superseded file is
// deleted unless it is the shipped default, and the document slot is updated
// in the same request.
func (h *UploadHandler) UploadBranding(c *gin.Context) {
	fh, err := c.FormFile("image")
	if err != nil {
		fail(c, http.StatusBadRequest, "No file provided")
		return
	}
	kind := c.PostForm("type")
	var pol assets.Policy
	switch kind {
	case "logo":
		pol = assets.LogoPolicy
	case "favicon":
		pol = assets.FaviconPolicy
	default:
		fail(c, http.StatusBadRequest, "Invalid branding type")
		return
	}

	doc, ok := loadDoc(c, h.repo)
	if !ok {
		return
	}
	old := doc.Logo
	if kind == "favicon" {
		old = doc.Favicon
	}

	f, err := fh.Open()
	if err != nil {
		fail(c, http.StatusInternalServerError, "Failed to read uploaded file")
		return
	}
	defer f.Close()

	path, err := h.mgr.Replace(c.Request.Context(), old, fh.Filename, f, fh.Size, fh.Header.Get("Content-Type"), pol)
	if rejectUpload(c, err, pol) {
		return
	}
	if kind == "favicon" {
		doc.Favicon = path
	} else {
		doc.Logo = path
	}
	msg := "Logo uploaded successfully"
	if kind == "favicon" {
		msg = "Favicon uploaded successfully"
	}
	saveDoc(c, h.repo, doc, msg, gin.H{"imageUrl": path})
}

type DeleteImageRequest struct {
	ImagePath string `json:"imagePath"`
}

// DeleteImage removes a stored asset by its public path. The shipped default
// logo is refused.
func (h *UploadHandler) DeleteImage(c *gin.Context) {
	var req DeleteImageRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ImagePath == "" {
		fail(c, http.StatusBadRequest, "Image path is required")
		return
	}
	err := h.mgr.Delete(c.Request.Context(), req.ImagePath)
	switch {
	case errors.Is(err, assets.ErrProtected):
		fail(c, http.StatusBadRequest, "Cannot delete default logo")
	case errors.Is(err, assets.ErrNotFound):
		fail(c, http.StatusNotFound, "Image not found")
	case err != nil:
		logger.Errorf("failed to delete asset %s: %v", req.ImagePath, err)
		fail(c, http.StatusInternalServerError, "Failed to delete image")
	default:
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Image deleted successfully"})
	}
}
