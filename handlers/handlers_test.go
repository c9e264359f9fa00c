package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/chinarfoundation/charity-site/internal/assets"
	"github.com/chinarfoundation/charity-site/internal/config"
	"github.com/chinarfoundation/charity-site/internal/content"
	"github.com/chinarfoundation/charity-site/internal/mailer"
	"github.com/chinarfoundation/charity-site/internal/sessions"
	"github.com/chinarfoundation/charity-site/pkg/middleware"
)

// testEnv wires a full router against temp-dir storage, mirroring the way
// main assembles the service.
type testEnv struct {
	router   *gin.Engine
	repo     content.Repository
	sessions *sessions.Service
	assetDir string
	cfg      *config.Config
}

func seedDocument() *content.Document {
	return &content.Document{
		Home:    content.Home{Title: "Welcome", Subtitle: "Hope", Description: "We help.", BackgroundImage: "/images/bg.jpg"},
		Mission: content.Mission{Title: "Mission", Subtitle: "Sub", Heading: "Head", Paragraph1: "p1", Paragraph2: "p2", Image: "/images/mission.jpg"},
		About:   content.About{Title: "About", Subtitle: "Sub", Heading: "Head", Paragraph1: "p1", Paragraph2: "p2", Paragraph3: "p3"},
		Impact: content.Impact{Title: "Impact", Subtitle: "Numbers", Stats: []content.Stat{
			{Number: "100", Label: "Meals", Icon: "fas fa-utensils"},
			{Number: "20", Label: "Schools", Icon: "fas fa-school"},
			{Number: "5", Label: "Clinics", Icon: "fas fa-clinic-medical"},
			{Number: "300", Label: "Volunteers", Icon: "fas fa-hands-helping"},
		}},
		Logo:    "/images/logo.png",
		Favicon: "/images/favicon.ico",
		Projects: []content.Project{
			{ID: 1, Title: "Clean Water", Description: "Wells", Image: "/images/water.jpg", Icon: "fas fa-tint"},
		},
		Stories: []content.Story{
			{ID: 1, Name: "Amina", Story: "Found hope", Image: "/images/amina.jpg"},
		},
	}
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	repo := content.NewFileRepository(filepath.Join(dir, "content.json"))
	require.NoError(t, repo.Save(t.Context(), seedDocument()))

	assetDir := filepath.Join(dir, "images")
	store, err := assets.NewDiskStore(assetDir)
	require.NoError(t, err)
	mgr := assets.NewManager(store, "logo.png")

	svc := sessions.NewService(sessions.NewMemoryRepository(), 2*time.Hour)
	cfg := &config.Config{}
	cfg.Admin.Email = "admin@chinarfoundation.org"
	cfg.Admin.PasswordSHA256 = sessions.DigestSecret("Admin@123")
	cfg.Admin.PathSegment = "9374205"

	r := gin.New()
	admin := r.Group("/admin", middleware.SessionAuth(svc))
	NewAuthHandler(cfg, svc).Register(r, admin)
	NewContentHandler(repo).Register(r, admin)
	NewUploadHandler(mgr, repo).Register(admin)
	NewJoinHandler(mailer.New(mailer.Config{})).Register(r)

	return &testEnv{router: r, repo: repo, sessions: svc, assetDir: assetDir, cfg: cfg}
}

// login issues a session through the real login endpoint and returns the token.
func (e *testEnv) login(t *testing.T) string {
	t.Helper()
	w := e.postJSON(t, "/9374205/login", "", map[string]any{
		"email":    "admin@chinarfoundation.org",
		"password": "Admin@123",
	})
	require.Equal(t, 200, w.Code, w.Body.String())
	var resp struct {
		SessionID string `json:"sessionId"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.SessionID)
	return resp.SessionID
}

func (e *testEnv) postJSON(t *testing.T, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest("POST", path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set(middleware.SessionHeader, token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) get(t *testing.T, path, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("GET", path, nil)
	if token != "" {
		req.Header.Set(middleware.SessionHeader, token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}
