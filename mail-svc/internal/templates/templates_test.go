package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderEveryTemplate(t *testing.T) {
	data := map[string]any{
		"Name": "Ann", "Email": "a@b.co", "Role": "employer", "Link": "https://x.test/",
		"CompanyName": "Acme", "ApplicantName": "Bo", "JobTitle": "Dev", "StatusLabel": "Hired",
	}
	for _, name := range []string{Welcome, ApplicationReceived, StatusChanged} {
		out, err := Render(name, data)
		require.NoError(t, err, name)
		assert.Contains(t, out, "ECOBA Careers", name)
		assert.Contains(t, out, `href="https://x.test/"`, name)
	}

	out, err := Render(Welcome, data)
	require.NoError(t, err)
	assert.Contains(t, out, "post your first job")
}

func TestRenderUnknown(t *testing.T) {
	_, err := Render("missing.html", nil)
	assert.Error(t, err)
}
