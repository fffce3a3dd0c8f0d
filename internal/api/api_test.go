package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ougirez/tender-normalizer/internal/domain"
	"github.com/ougirez/tender-normalizer/internal/mapper"
	"github.com/ougirez/tender-normalizer/internal/pkg/constants"
	"github.com/ougirez/tender-normalizer/internal/pkg/store/storetest"
	"github.com/ougirez/tender-normalizer/internal/pkg/utils"
	"github.com/ougirez/tender-normalizer/internal/service/fixer"
	"github.com/ougirez/tender-normalizer/internal/service/normalizer"
)

const testSecret = "s3cret"

type testAPI struct {
	t     *testing.T
	svc   *APIService
	store *storetest.Memory
	token string
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	viper.Set(constants.ViperSecretKey, testSecret)
	t.Cleanup(func() { viper.Set(constants.ViperSecretKey, "") })

	st := storetest.NewMemory()
	st.AddRow(domain.SourceTED, "T1", `{"title": "Road works", "summary": "Build a road", "country": "France"}`)
	st.AddRow(domain.SourceTED, "T9", `42`)

	norm := normalizer.NewNormalizerService(st, mapper.NewRegistry(), nil, normalizer.Options{RetryInterval: time.Millisecond})
	svc, err := NewAPIService(st, norm, fixer.NewFixerService(st))
	require.NoError(t, err)
	t.Cleanup(func() { svc.cancel() })

	token, err := utils.GenerateAuthToken(&utils.AuthTokenWrapper{Secret: testSecret, Operator: "test"}, time.Hour)
	require.NoError(t, err)

	return &testAPI{t: t, svc: svc, store: st, token: token}
}

func (a *testAPI) do(method, path, body string, auth bool) (*httptest.ResponseRecorder, map[string]any) {
	a.t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if auth {
		req.Header.Set(constants.HeaderAuthorization, "Bearer "+a.token)
	}

	rec := httptest.NewRecorder()
	a.svc.Router().ServeHTTP(rec, req)

	var out map[string]any
	if rec.Body.Len() > 0 {
		require.NoError(a.t, sonic.Unmarshal(rec.Body.Bytes(), &out))
	}
	return rec, out
}

func TestHealth(t *testing.T) {
	a := newTestAPI(t)

	rec, body := a.do(http.MethodGet, "/api/v1/health", "", false)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", body["status"])
}

func TestAdminRoutesRequireToken(t *testing.T) {
	a := newTestAPI(t)

	rec, body := a.do(http.MethodPost, "/api/v1/normalize/tedeu/T1", "", false)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.EqualValues(t, http.StatusUnauthorized, body["code"])

	req := httptest.NewRequest(http.MethodPost, "/api/v1/normalize/tedeu/T1", nil)
	req.Header.Set(constants.HeaderAuthorization, "Bearer not-a-token")
	rec = httptest.NewRecorder()
	a.svc.Router().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminCookie(t *testing.T) {
	a := newTestAPI(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/fix/countries", nil)
	req.AddCookie(&http.Cookie{Name: constants.CookieKeySecretToken, Value: a.token})
	rec := httptest.NewRecorder()
	a.svc.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestNormalizeAndGetTender(t *testing.T) {
	a := newTestAPI(t)

	rec, _ := a.do(http.MethodGet, "/api/v1/tenders/tedeu/T1", "", false)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, body := a.do(http.MethodPost, "/api/v1/normalize/ted_eu/T1", "", true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Road works", body["title"])
	assert.Equal(t, "ted_eu_mapper", body["normalized_method"])

	rec, body = a.do(http.MethodGet, "/api/v1/tenders/tedeu/T1", "", false)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "France", body["country"])
	assert.Equal(t, 1, a.store.TenderCount())
}

func TestNormalizeErrors(t *testing.T) {
	a := newTestAPI(t)

	rec, body := a.do(http.MethodPost, "/api/v1/normalize/tedeu/T9", "", true)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	fallback, ok := body["fallback"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "TED.eu tender T9", fallback["title"])
	assert.Equal(t, "error_fallback", fallback["normalized_method"])
	assert.Equal(t, 0, a.store.TenderCount())

	rec, _ = a.do(http.MethodPost, "/api/v1/normalize/nope/T1", "", true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = a.do(http.MethodPost, "/api/v1/normalize/tedeu/missing", "", true)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRuns(t *testing.T) {
	a := newTestAPI(t)

	rec, _ := a.do(http.MethodPost, "/api/v1/runs", `{"tables": ["tedeu"], "batch_size": 20000}`, true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = a.do(http.MethodPost, "/api/v1/runs", `{"tables": ["nope"]}`, true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, body := a.do(http.MethodPost, "/api/v1/runs", `{"tables": ["tedeu"], "process_all": true}`, true)
	require.Equal(t, http.StatusAccepted, rec.Code)
	runID, ok := body["run_id"].(string)
	require.True(t, ok)

	var run map[string]any
	require.Eventually(t, func() bool {
		rec, run = a.do(http.MethodGet, "/api/v1/runs/"+runID, "", false)
		return rec.Code == http.StatusOK && run["status"] != "running"
	}, 5*time.Second, 10*time.Millisecond)

	assert.Equal(t, "succeeded", run["status"])
	report, ok := run["report"].(map[string]any)
	require.True(t, ok)
	tables, ok := report["tables"].([]any)
	require.True(t, ok)
	require.Len(t, tables, 1)
	stats := tables[0].(map[string]any)
	assert.EqualValues(t, 1, stats["processed"])
	assert.EqualValues(t, 1, stats["failed"])

	rec, _ = a.do(http.MethodGet, "/api/v1/runs/not-a-uuid", "", false)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = a.do(http.MethodGet, "/api/v1/runs/6f1c3e0e-8f7e-4f57-9d6a-3f0c1f2b9a11", "", false)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestFixCountriesDryRun(t *testing.T) {
	a := newTestAPI(t)
	a.store.PutTender(&domain.UnifiedTender{
		Title:            "Old",
		Country:          utils.StrPtr("Various"),
		NormalizedMethod: "tedeu_mapper",
		SourceTable:      domain.SourceTED,
		SourceID:         "OLD",
	})

	rec, body := a.do(http.MethodPost, "/api/v1/fix/countries", `{"dry_run": true}`, true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 1, body["checked"])
	assert.EqualValues(t, 1, body["fixed"])
	assert.Equal(t, true, body["dry_run"])

	tender, _ := a.store.Tender(domain.Key{SourceTable: domain.SourceTED, SourceID: "OLD"})
	assert.Equal(t, "Various", *tender.Country)
}

func TestFixOrganizations(t *testing.T) {
	a := newTestAPI(t)
	a.store.PutTender(&domain.UnifiedTender{
		Title:            "Rehabilitation works for the Ministry of Water, Senegal",
		NormalizedMethod: "wb_mapper",
		SourceTable:      domain.SourceWorldBank,
		SourceID:         "ORG1",
	})

	rec, body := a.do(http.MethodPost, "/api/v1/fix/organizations", `{}`, true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 1, body["checked"])
	assert.EqualValues(t, 1, body["fixed"])

	tender, _ := a.store.Tender(domain.Key{SourceTable: domain.SourceWorldBank, SourceID: "ORG1"})
	require.NotNil(t, tender.OrganizationName)
	assert.Equal(t, "Ministry of Water", *tender.OrganizationName)
}
