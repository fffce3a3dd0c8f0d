package store

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/ougirez/tender-normalizer/internal/domain"
)

// tenderColumns без id: он задаётся только при вставке.
var tenderColumns = []string{
	"title", "description", "tender_type", "status", "publication_date", "deadline_date",
	"country", "city", "organization_name", "organization_id", "buyer",
	"project_name", "project_id", "project_number", "sector",
	"estimated_value", "currency",
	"contact_name", "contact_email", "contact_phone", "contact_address",
	"url", "document_links", "language", "notice_id", "reference_number", "procurement_method", "tags",
	"title_english", "description_english", "organization_name_english", "buyer_english", "project_name_english",
	"original_data", "fallback_reason", "normalized_method", "normalized_by", "normalized_at",
	"source_table", "source_id",
}

var upsertTenderSuffix = buildUpsertSuffix()

func buildUpsertSuffix() string {
	sets := make([]string, 0, len(tenderColumns))
	for _, c := range tenderColumns {
		if c == "source_table" || c == "source_id" {
			continue
		}
		sets = append(sets, fmt.Sprintf("%s = excluded.%s", c, c))
	}

	return fmt.Sprintf("on conflict on constraint %s do update set %s", constraintUniqSource, strings.Join(sets, ", "))
}

func tenderValues(t *domain.UnifiedTender) []any {
	links := t.DocumentLinks
	if links == nil {
		links = domain.DocumentLinks{}
	}
	tags := t.Tags
	if tags == nil {
		tags = []string{}
	}

	var original any
	if len(t.OriginalData) > 0 {
		original = string(t.OriginalData)
	}

	return []any{
		t.Title, t.Description, string(t.TenderType), string(t.Status), t.PublicationDate, t.DeadlineDate,
		t.Country, t.City, t.OrganizationName, t.OrganizationID, t.Buyer,
		t.ProjectName, t.ProjectID, t.ProjectNumber, t.Sector,
		t.EstimatedValue, t.Currency,
		t.ContactName, t.ContactEmail, t.ContactPhone, t.ContactAddress,
		t.URL, links, t.Language, t.NoticeID, t.ReferenceNumber, t.ProcurementMethod, tags,
		t.TitleEnglish, t.DescriptionEnglish, t.OrganizationNameEnglish, t.BuyerEnglish, t.ProjectNameEnglish,
		original, t.FallbackReason, t.NormalizedMethod, t.NormalizedBy, t.NormalizedAt,
		string(t.SourceTable), t.SourceID,
	}
}

func (s *store) UpsertTender(ctx context.Context, tender *domain.UnifiedTender) error {
	if err := s.UpsertTenders(ctx, []*domain.UnifiedTender{tender}); err != nil {
		return err
	}
	return nil
}

// UpsertTenders inserts new tenders and rewrites existing ones in place, keyed by
// (source_table, source_id). The id of an existing row is kept.
func (s *store) UpsertTenders(ctx context.Context, tenders []*domain.UnifiedTender) error {
	if len(tenders) == 0 {
		return nil
	}

	query := builder().Insert(tableUnifiedTenders).
		Columns(append([]string{"id"}, tenderColumns...)...)

	for _, t := range tenders {
		if t.ID == uuid.Nil {
			t.ID = uuid.New()
		}
		query = query.Values(append([]any{t.ID}, tenderValues(t)...)...)
	}

	query = query.Suffix(upsertTenderSuffix)

	if _, err := s.pool.Execx(ctx, query); err != nil {
		return fmt.Errorf("store.UpsertTenders, table-%s, count-%d: %w", tenders[0].SourceTable, len(tenders), err)
	}

	return nil
}

func (s *store) GetTender(ctx context.Context, key domain.Key) (*domain.UnifiedTender, error) {
	query := builder().Select(append([]string{"id"}, tenderColumns...)...).
		From(tableUnifiedTenders).
		Where(sq.Eq{
			"source_table": string(key.SourceTable),
			"source_id":    key.SourceID,
		})

	var selected domain.UnifiedTender
	if err := s.pool.Getx(ctx, &selected, query); err != nil {
		return nil, fmt.Errorf("store.GetTender, key-%s/%s: %w", key.SourceTable, key.SourceID, wrapErr(err))
	}

	return &selected, nil
}

type ListTendersPageOpts struct {
	AfterID uuid.UUID
	Limit   uint64
}

var tenderFixColumns = []string{
	"id", "country", "normalized_method", "source_table", "source_id",
	"organization_name", "project_name", "title",
}

// ListTendersPage returns a keyset page ordered by id, with only the columns the fixer reads.
func (s *store) ListTendersPage(ctx context.Context, opts ListTendersPageOpts) ([]*domain.UnifiedTender, error) {
	query := builder().Select(tenderFixColumns...).
		From(tableUnifiedTenders).
		OrderBy("id")

	if opts.AfterID != uuid.Nil {
		query = query.Where(sq.Gt{"id": opts.AfterID})
	}
	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}

	var selected []*domain.UnifiedTender
	if err := s.pool.Selectx(ctx, &selected, query); err != nil {
		return nil, fmt.Errorf("store.ListTendersPage, after-%s: %w", opts.AfterID, wrapErr(err))
	}

	return selected, nil
}

// TenderFix carries the full set of fixer-owned columns, changed or not.
type TenderFix struct {
	ID               uuid.UUID
	Country          *string
	NormalizedMethod string
	OrganizationName *string
}

func (s *store) UpdateTenderFixes(ctx context.Context, fixes []TenderFix) error {
	for _, fix := range fixes {
		query := builder().Update(tableUnifiedTenders).
			Set("country", fix.Country).
			Set("normalized_method", fix.NormalizedMethod).
			Set("organization_name", fix.OrganizationName).
			Where(sq.Eq{"id": fix.ID})

		if _, err := s.pool.Execx(ctx, query); err != nil {
			return fmt.Errorf("store.UpdateTenderFixes, id-%s: %w", fix.ID, err)
		}
	}

	return nil
}
