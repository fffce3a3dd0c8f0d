package fixer

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ougirez/tender-normalizer/internal/domain"
	"github.com/ougirez/tender-normalizer/internal/pkg/store/storetest"
	"github.com/ougirez/tender-normalizer/internal/pkg/utils"
)

func seed(st *storetest.Memory, id string, country *string, method string) domain.Key {
	t := &domain.UnifiedTender{
		ID:               uuid.New(),
		Title:            "Tender " + id,
		Country:          country,
		NormalizedMethod: method,
		SourceTable:      domain.SourceWorldBank,
		SourceID:         id,
	}
	st.PutTender(t)
	return t.Key()
}

func TestFixCountries(t *testing.T) {
	st := storetest.NewMemory()
	ok := seed(st, "1", utils.StrPtr("France"), "wb_mapper")
	alias := seed(st, "2", utils.StrPtr("Cote d'Ivoire"), "wb_mapper+text")
	various := seed(st, "3", utils.StrPtr("Various"), "wb_mapper")
	project := seed(st, "4", utils.StrPtr("Program for Integrated Rural Sanitation"), "wb_mapper")
	legacy := seed(st, "5", nil, "worldbank_offline")
	empty := seed(st, "6", nil, "")

	report, err := NewFixerService(st).FixCountries(context.Background(), FixOptions{BatchSize: 2})
	require.NoError(t, err)

	assert.Equal(t, 6, report.Checked)
	assert.Equal(t, 5, report.Fixed)
	assert.Equal(t, 1, report.ByCountry["Ivory Coast"])
	assert.Equal(t, 4, report.ByCountry[nullCountry])

	get := func(k domain.Key) *domain.UnifiedTender {
		tender, found := st.Tender(k)
		require.True(t, found)
		return tender
	}

	assert.Equal(t, "France", *get(ok).Country)
	assert.Equal(t, "Ivory Coast", *get(alias).Country)
	assert.Equal(t, "wb_mapper+text", get(alias).NormalizedMethod)
	assert.Nil(t, get(various).Country)
	assert.Nil(t, get(project).Country)
	assert.Equal(t, "wb_mapper", get(legacy).NormalizedMethod)
	assert.Equal(t, "wb_mapper", get(empty).NormalizedMethod)
}

func TestFixCountriesDryRun(t *testing.T) {
	st := storetest.NewMemory()
	k := seed(st, "1", utils.StrPtr("Various"), "wb_mapper")

	report, err := NewFixerService(st).FixCountries(context.Background(), FixOptions{DryRun: true})
	require.NoError(t, err)
	assert.Equal(t, 1, report.Fixed)
	assert.True(t, report.DryRun)

	tender, _ := st.Tender(k)
	require.NotNil(t, tender.Country)
	assert.Equal(t, "Various", *tender.Country)
}

func TestFixOrganizations(t *testing.T) {
	st := storetest.NewMemory()
	put := func(id string, org, project *string, title string) domain.Key {
		tender := &domain.UnifiedTender{
			ID:               uuid.New(),
			Title:            title,
			Country:          utils.StrPtr("Kenya"),
			OrganizationName: org,
			ProjectName:      project,
			NormalizedMethod: "wb_mapper",
			SourceTable:      domain.SourceWorldBank,
			SourceID:         id,
		}
		st.PutTender(tender)
		return tender.Key()
	}

	kept := put("1", utils.StrPtr("World Bank"), utils.StrPtr("Kenya Rural Roads Authority"), "Roads")
	fromProject := put("2", nil, utils.StrPtr("Kenya Rural Roads Authority"), "Supply of vehicles for the Ministry of Health, Kenya")
	fromTitle := put("3", utils.StrPtr("NA"), utils.StrPtr("Rural roads"), "Supply of vehicles for the Ministry of Health, Kenya")
	nothing := put("4", nil, nil, "Supply of vehicles")

	report, err := NewFixerService(st).FixOrganizations(context.Background(), FixOptions{BatchSize: 3})
	require.NoError(t, err)
	assert.Equal(t, 4, report.Checked)
	assert.Equal(t, 2, report.Fixed)

	org := func(k domain.Key) *string {
		tender, found := st.Tender(k)
		require.True(t, found)
		assert.Equal(t, "Kenya", *tender.Country)
		assert.Equal(t, "wb_mapper", tender.NormalizedMethod)
		return tender.OrganizationName
	}

	assert.Equal(t, "World Bank", *org(kept))
	assert.Equal(t, "Kenya Rural Roads Authority", *org(fromProject))
	assert.Equal(t, "Ministry of Health", *org(fromTitle))
	assert.Nil(t, org(nothing))
}

func TestFixOrganizationsDryRun(t *testing.T) {
	st := storetest.NewMemory()
	tender := &domain.UnifiedTender{
		ID:               uuid.New(),
		Title:            "Works for the Ministry of Water, Senegal",
		NormalizedMethod: "wb_mapper",
		SourceTable:      domain.SourceWorldBank,
		SourceID:         "1",
	}
	st.PutTender(tender)

	report, err := NewFixerService(st).FixOrganizations(context.Background(), FixOptions{DryRun: true})
	require.NoError(t, err)
	assert.Equal(t, 1, report.Fixed)

	got, _ := st.Tender(tender.Key())
	assert.Nil(t, got.OrganizationName)
}

func TestFixCountriesKeepsOrganization(t *testing.T) {
	st := storetest.NewMemory()
	tender := &domain.UnifiedTender{
		ID:               uuid.New(),
		Title:            "Tender",
		Country:          utils.StrPtr("Cote d'Ivoire"),
		OrganizationName: utils.StrPtr("Ministry of Health"),
		NormalizedMethod: "wb_mapper",
		SourceTable:      domain.SourceWorldBank,
		SourceID:         "1",
	}
	st.PutTender(tender)

	_, err := NewFixerService(st).FixCountries(context.Background(), FixOptions{})
	require.NoError(t, err)

	got, _ := st.Tender(tender.Key())
	assert.Equal(t, "Ivory Coast", *got.Country)
	assert.Equal(t, "Ministry of Health", *got.OrganizationName)
}

func TestRepairMethod(t *testing.T) {
	cases := []struct {
		table  domain.SourceKind
		method string
		want   string
		fix    bool
	}{
		{domain.SourceTED, "ted_eu_mapper", "", false},
		{domain.SourceTED, "ted_eu_mapper+fallback", "", false},
		{domain.SourceTED, "error_fallback", "", false},
		{domain.SourceTED, "", "ted_eu_mapper", true},
		{domain.SourceSAMGov, "samgov_mapper", "sam_gov_mapper", true},
		{"legacy_table", "", "", false},
	}

	for _, tc := range cases {
		t.Run(string(tc.table)+"/"+tc.method, func(t *testing.T) {
			got, fix := repairMethod(tc.table, tc.method)
			assert.Equal(t, tc.fix, fix)
			assert.Equal(t, tc.want, got)
		})
	}
}
