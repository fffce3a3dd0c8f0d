package mapper

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ougirez/tender-normalizer/internal/domain"
	"github.com/ougirez/tender-normalizer/internal/pkg/constants"
)

var testNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func testEnv() Env {
	return NewEnv(context.Background(), testNow)
}

func mapJSON(t *testing.T, kind domain.SourceKind, id, payload string) *domain.UnifiedTender {
	t.Helper()

	tender, err := NewRegistry().Map(testEnv(), kind, domain.SourceRow{SourceID: id, Payload: []byte(payload)})
	require.NoError(t, err)
	require.NotNil(t, tender)
	return tender
}

func TestRegistryCoversAllSources(t *testing.T) {
	reg := NewRegistry()

	assert.Equal(t, 9, reg.Len())
	for _, k := range domain.AllSources {
		assert.True(t, reg.Has(k), k)
	}
}

func TestRegistryUnknownSource(t *testing.T) {
	_, err := NewRegistry().Map(testEnv(), "nope", domain.SourceRow{SourceID: "1", Payload: []byte(`{}`)})
	assert.ErrorIs(t, err, constants.ErrUnknownSource)
}

func TestRegistryUndecodablePayload(t *testing.T) {
	_, err := NewRegistry().Map(testEnv(), domain.SourceTED, domain.SourceRow{SourceID: "1", Payload: []byte(`{not json`)})
	assert.ErrorIs(t, err, constants.ErrMapping)
}

func TestTypedMapperRecoversPanic(t *testing.T) {
	m := typedMapper[domain.TEDRecord]{
		kind: domain.SourceTED,
		fn: func(Env, *domain.TEDRecord) *domain.UnifiedTender {
			panic("boom")
		},
	}

	tender, err := m.Map(testEnv(), domain.SourceRow{SourceID: "1", Payload: []byte(`{}`)})
	assert.Nil(t, tender)
	require.ErrorIs(t, err, constants.ErrMapping)
	assert.Contains(t, err.Error(), "boom")
}

func TestRegistryMissingID(t *testing.T) {
	_, err := NewRegistry().Map(testEnv(), domain.SourceAIIB, domain.SourceRow{Payload: []byte(`{}`)})
	assert.ErrorIs(t, err, constants.ErrMapping)
}

func TestEmptyRecordsAlwaysHaveTitle(t *testing.T) {
	for _, kind := range domain.AllSources {
		t.Run(string(kind), func(t *testing.T) {
			tender := mapJSON(t, kind, "42", `{}`)

			assert.NotEmpty(t, tender.Title)
			assert.Equal(t, kind, tender.SourceTable)
			assert.Equal(t, "42", tender.SourceID)
			assert.True(t, strings.HasPrefix(tender.NormalizedMethod, kind.Method()), tender.NormalizedMethod)
			assert.Equal(t, "tender-normalizer/"+kind.Method(), tender.NormalizedBy)
			assert.NotNil(t, tender.DocumentLinks)
			assert.Equal(t, []byte(`{}`), tender.OriginalData)
		})
	}
}

func TestTitleFallbackIsMarked(t *testing.T) {
	tender := mapJSON(t, domain.SourceTED, "T0", `{"title": "  ", "summary": null}`)

	assert.Equal(t, domain.UntitledTender, tender.Title)
	assert.Equal(t, "ted_eu_mapper+fallback", tender.NormalizedMethod)
	require.NotNil(t, tender.FallbackReason)
	assert.Equal(t, "missing title", *tender.FallbackReason)
}

func TestMappingIsDeterministic(t *testing.T) {
	payload := `{"id": "OP9", "title": "Supply of vaccines", "description": "Ministry of Health of Ghana", "deadline": "2024-07-01"}`

	first := mapJSON(t, domain.SourceWorldBank, "OP9", payload)
	second := mapJSON(t, domain.SourceWorldBank, "OP9", payload)
	assert.Equal(t, first, second)
}

func TestErrorFallback(t *testing.T) {
	tender := ErrorFallback(domain.SourceAFD, "9", errors.New("boom"))

	assert.Equal(t, "AFD tender 9", tender.Title)
	assert.Equal(t, "error_fallback", tender.NormalizedMethod)
	require.NotNil(t, tender.FallbackReason)
	assert.Equal(t, "Error: boom", *tender.FallbackReason)
	assert.Equal(t, domain.SourceAFD, tender.SourceTable)
}
