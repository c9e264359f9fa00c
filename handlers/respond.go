package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/chinarfoundation/charity-site/internal/content"
	"github.com/chinarfoundation/charity-site/pkg/metrics"
)

// fail writes the uniform error envelope used by every endpoint.
func fail(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": false, "message": message})
}

// loadDoc fetches a fresh document or writes a 500 and reports false. Every
// mutation starts here; a load failure aborts before anything is touched.
func loadDoc(c *gin.Context, repo content.Repository) (*content.Document, bool) {
	doc, err := repo.Load(c.Request.Context())
	if err != nil {
		fail(c, 500, "Failed to load content")
		return nil, false
	}
	return doc, true
}

// saveDoc persists the mutated document and writes the success envelope,
// merging any extra fields (an echoed entity, an asset URL).
func saveDoc(c *gin.Context, repo content.Repository, doc *content.Document, message string, extra gin.H) {
	if err := repo.Save(c.Request.Context(), doc); err != nil {
		fail(c, 500, "Failed to save content")
		return
	}
	metrics.ContentSaves.Inc()
	resp := gin.H{"success": true, "message": message}
	for k, v := range extra {
		resp[k] = v
	}
	c.JSON(200, resp)
}
