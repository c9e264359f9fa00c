package mailer

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigured(t *testing.T) {
	cases := []struct {
		name string
		cfg  Config
		want bool
	}{
		{"complete", Config{Host: "smtp.example.org", Username: "u@example.org", Password: "p"}, true},
		{"no host", Config{Username: "u@example.org", Password: "p"}, false},
		{"no user", Config{Host: "smtp.example.org", Password: "p"}, false},
		{"no pass", Config{Host: "smtp.example.org", Username: "u@example.org"}, false},
		{"placeholder user", Config{Host: "smtp.example.org", Username: "your-email@gmail.com", Password: "p"}, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.cfg.Configured(), tc.name)
	}
}

func TestRenderBodyContainsFields(t *testing.T) {
	s := Submission{
		Name:    "Farah",
		Email:   "farah@example.org",
		Phone:   "+91 555 0100",
		Age:     "29",
		State:   "Kashmir",
		Country: "India",
		Message: "I would like to volunteer.",
	}
	body, err := RenderBody(s)
	require.NoError(t, err)
	for _, want := range []string{s.Name, s.Email, s.Phone, s.Age, s.State, s.Country, s.Message} {
		assert.Contains(t, body, want)
	}
}

func TestRenderBodyEscapesHTML(t *testing.T) {
	s := Submission{Name: "<script>alert(1)</script>", Email: "e", Phone: "p", Age: "a", State: "s", Country: "c", Message: "m"}
	body, err := RenderBody(s)
	require.NoError(t, err)
	assert.NotContains(t, body, "<script>")
	assert.True(t, strings.Contains(body, "&lt;script&gt;"))
}

func TestNewAppliesDefaultTimeout(t *testing.T) {
	m := New(Config{Host: "smtp.example.org"})
	assert.Equal(t, 10*time.Second, m.cfg.Timeout)
}
