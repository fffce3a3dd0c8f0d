package normalizer

import (
	"context"

	"github.com/ougirez/tender-normalizer/internal/domain"
	"github.com/ougirez/tender-normalizer/internal/pkg/translation"
	"github.com/ougirez/tender-normalizer/internal/pkg/utils"
)

// translateTender fills the *_english fields. A field stays nil when its text is English or
// could not be translated.
func (s *Service) translateTender(ctx context.Context, tr translation.Translator, t *domain.UnifiedTender) {
	hint := utils.Deref(t.Language)
	if hint == "en" {
		return
	}

	t.TitleEnglish = english(ctx, tr, t.Title, hint)
	t.DescriptionEnglish = english(ctx, tr, utils.Deref(t.Description), hint)
	t.OrganizationNameEnglish = english(ctx, tr, utils.Deref(t.OrganizationName), hint)
	t.BuyerEnglish = english(ctx, tr, utils.Deref(t.Buyer), hint)
	t.ProjectNameEnglish = english(ctx, tr, utils.Deref(t.ProjectName), hint)
}

func english(ctx context.Context, tr translation.Translator, text, hint string) *string {
	if text == "" {
		return nil
	}

	res := tr.Translate(ctx, text, hint)
	if !res.Translated() {
		return nil
	}
	return utils.StrPtr(res.Text)
}
