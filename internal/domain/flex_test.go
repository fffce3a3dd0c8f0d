package domain

import (
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexString(t *testing.T) {
	var rec struct {
		A FlexString `json:"a"`
		B FlexString `json:"b"`
		C FlexString `json:"c"`
		D FlexString `json:"d"`
		E FlexString `json:"e"`
	}
	err := sonic.Unmarshal([]byte(`{"a":"  x ","b":12.5,"c":null,"d":"   ","e":true}`), &rec)
	require.NoError(t, err)

	v, ok := rec.A.Value()
	assert.True(t, ok)
	assert.Equal(t, "x", v)
	assert.Equal(t, "12.5", rec.B.String())
	assert.True(t, rec.C.IsEmpty())
	assert.True(t, rec.D.IsEmpty(), "whitespace counts as absent")
	assert.Equal(t, "true", rec.E.String())
	assert.Equal(t, "12.5", rec.D.Or(rec.C, rec.B).String())
}

func TestFlexJSON(t *testing.T) {
	var rec struct {
		Embedded FlexJSON `json:"embedded"`
		Stringed FlexJSON `json:"stringed"`
		List     FlexJSON `json:"list"`
		Plain    FlexJSON `json:"plain"`
		Empty    FlexJSON `json:"empty"`
	}
	payload := `{
		"embedded": {"url": "https://a"},
		"stringed": "{\"url\": \"https://b\"}",
		"list": [{"url": "https://c"}],
		"plain": "https://d",
		"empty": ""
	}`
	require.NoError(t, sonic.Unmarshal([]byte(payload), &rec))

	assert.Equal(t, "https://a", rec.Embedded.Object()["url"])
	assert.Equal(t, "https://b", rec.Stringed.Object()["url"])
	assert.Len(t, rec.List.Object()["items"], 1)
	assert.Equal(t, []any{"https://d"}, rec.Plain.List())
	assert.True(t, rec.Empty.IsEmpty())
	assert.Nil(t, rec.Empty.Object())
}

func TestParseSourceKind(t *testing.T) {
	k, err := ParseSourceKind("TED_EU")
	require.NoError(t, err)
	assert.Equal(t, SourceTED, k)

	k, err = ParseSourceKind("samgov")
	require.NoError(t, err)
	assert.Equal(t, "opportunity_id", k.IDColumn())
	assert.Equal(t, "sam_gov_mapper", k.Method())

	_, err = ParseSourceKind("nope")
	require.Error(t, err)

	kinds, err := ParseSourceKinds(nil)
	require.NoError(t, err)
	assert.Len(t, kinds, 9)
}

func TestDocumentLinksScan(t *testing.T) {
	var links DocumentLinks
	require.NoError(t, links.Scan([]byte(`[{"url":"https://x","type":"notice"}]`)))
	assert.Equal(t, []string{"https://x"}, links.URLs())

	v, err := DocumentLinks(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", v)
}
