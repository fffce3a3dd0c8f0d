package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectLanguage(t *testing.T) {
	cases := map[string]string{
		"Travaux de construction de la route et fourniture des équipements": "fr",
		"Supply and installation of equipment for the project":              "en",
		"Obras de construcción para el proyecto con licitación":             "es",
		"Ausschreibung für die Lieferung und der Bau von Schulen":           "de",
	}
	for text, want := range cases {
		got, ok := DetectLanguage(text)
		require.True(t, ok, text)
		assert.Equal(t, want, got, text)
	}

	_, ok := DetectLanguage("short")
	assert.False(t, ok)
}

func TestSectorsFromText(t *testing.T) {
	assert.Equal(t, []string{"transport", "water"}, SectorsFromText("Rural road and water supply"))

	got, ok := SectorFromText("Rehabilitation of district hospitals")
	assert.True(t, ok)
	assert.Equal(t, "health", got)

	_, ok = SectorFromText("nothing to see")
	assert.False(t, ok)
}

func TestOrganizationFromText(t *testing.T) {
	got, ok := OrganizationFromText("The Ministry of Health, Kenya invites sealed bids")
	require.True(t, ok)
	assert.Equal(t, "Ministry of Health", got)

	got, ok = OrganizationFromText("Purchaser: National Roads Authority; deadline in July")
	require.True(t, ok)
	assert.Equal(t, "National Roads Authority", got)

	_, ok = OrganizationFromText("no org here")
	assert.False(t, ok)
}

func TestExtractOrganization(t *testing.T) {
	got, ok := ExtractOrganization("", "N/A", "  Acme Ltd. ")
	require.True(t, ok)
	assert.Equal(t, "Acme Ltd", got)

	_, ok = ExtractOrganization("-", "x")
	assert.False(t, ok)
}

func TestNormalizeLanguageCode(t *testing.T) {
	for raw, want := range map[string]string{"ENG": "en", "French": "fr", "fr-FR": "fr", "Español": "es", "deu": "de"} {
		got, ok := NormalizeLanguageCode(raw)
		require.True(t, ok, raw)
		assert.Equal(t, want, got, raw)
	}
	_, ok := NormalizeLanguageCode("klingon")
	assert.False(t, ok)
}
