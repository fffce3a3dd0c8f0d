package domain

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TenderStatus string

const (
	StatusActive    TenderStatus = "active"
	StatusComplete  TenderStatus = "complete"
	StatusCancelled TenderStatus = "cancelled"
	StatusPlanned   TenderStatus = "planned"
	StatusUnknown   TenderStatus = "unknown"
)

type TenderType string

const (
	TenderTypeGoods      TenderType = "goods"
	TenderTypeWorks      TenderType = "works"
	TenderTypeServices   TenderType = "services"
	TenderTypeConsulting TenderType = "consulting"
	TenderTypeUnknown    TenderType = "unknown"
)

const UntitledTender = "Untitled tender"

type DocumentLink struct {
	URL         string `json:"url"`
	Type        string `json:"type,omitempty"`
	Description string `json:"description,omitempty"`
	Language    string `json:"language,omitempty"`
}

// DocumentLinks is stored as jsonb.
type DocumentLinks []DocumentLink

func (d DocumentLinks) Value() (driver.Value, error) {
	if d == nil {
		return "[]", nil
	}
	b, err := sonic.Marshal([]DocumentLink(d))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (d *DocumentLinks) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*d = nil
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("DocumentLinks.Scan: unsupported type %T", src)
	}

	var links []DocumentLink
	if err := sonic.Unmarshal(raw, &links); err != nil {
		return fmt.Errorf("DocumentLinks.Scan: %w", err)
	}
	*d = links
	return nil
}

func (d DocumentLinks) URLs() []string {
	urls := make([]string, 0, len(d))
	for _, l := range d {
		urls = append(urls, l.URL)
	}
	return urls
}

type UnifiedTender struct {
	ID uuid.UUID `db:"id" json:"id"`

	Title            string        `db:"title" json:"title" validate:"required"`
	Description      *string       `db:"description" json:"description,omitempty"`
	TenderType       TenderType    `db:"tender_type" json:"tender_type" validate:"oneof=goods works services consulting unknown"`
	Status           TenderStatus  `db:"status" json:"status" validate:"oneof=active complete cancelled planned unknown"`
	PublicationDate  *time.Time    `db:"publication_date" json:"publication_date,omitempty"`
	DeadlineDate     *time.Time    `db:"deadline_date" json:"deadline_date,omitempty"`
	Country          *string       `db:"country" json:"country,omitempty"`
	City             *string       `db:"city" json:"city,omitempty"`
	OrganizationName *string       `db:"organization_name" json:"organization_name,omitempty"`
	OrganizationID   *string       `db:"organization_id" json:"organization_id,omitempty"`
	Buyer            *string       `db:"buyer" json:"buyer,omitempty"`
	ProjectName      *string       `db:"project_name" json:"project_name,omitempty"`
	ProjectID        *string       `db:"project_id" json:"project_id,omitempty"`
	ProjectNumber    *string       `db:"project_number" json:"project_number,omitempty"`
	Sector           *string       `db:"sector" json:"sector,omitempty"`

	EstimatedValue decimal.NullDecimal `db:"estimated_value" json:"estimated_value"`
	Currency       *string             `db:"currency" json:"currency,omitempty" validate:"omitempty,len=3"`

	ContactName    *string `db:"contact_name" json:"contact_name,omitempty"`
	ContactEmail   *string `db:"contact_email" json:"contact_email,omitempty"`
	ContactPhone   *string `db:"contact_phone" json:"contact_phone,omitempty"`
	ContactAddress *string `db:"contact_address" json:"contact_address,omitempty"`

	URL               *string       `db:"url" json:"url,omitempty"`
	DocumentLinks     DocumentLinks `db:"document_links" json:"document_links"`
	Language          *string       `db:"language" json:"language,omitempty"`
	NoticeID          *string       `db:"notice_id" json:"notice_id,omitempty"`
	ReferenceNumber   *string       `db:"reference_number" json:"reference_number,omitempty"`
	ProcurementMethod *string       `db:"procurement_method" json:"procurement_method,omitempty"`
	Tags              []string      `db:"tags" json:"tags,omitempty"`

	TitleEnglish            *string `db:"title_english" json:"title_english,omitempty"`
	DescriptionEnglish      *string `db:"description_english" json:"description_english,omitempty"`
	OrganizationNameEnglish *string `db:"organization_name_english" json:"organization_name_english,omitempty"`
	BuyerEnglish            *string `db:"buyer_english" json:"buyer_english,omitempty"`
	ProjectNameEnglish      *string `db:"project_name_english" json:"project_name_english,omitempty"`

	OriginalData     []byte     `db:"original_data" json:"-"`
	FallbackReason   *string    `db:"fallback_reason" json:"fallback_reason,omitempty"`
	NormalizedMethod string     `db:"normalized_method" json:"normalized_method" validate:"required"`
	NormalizedBy     string     `db:"normalized_by" json:"normalized_by"`
	NormalizedAt     time.Time  `db:"normalized_at" json:"normalized_at"`
	SourceTable      SourceKind `db:"source_table" json:"source_table" validate:"required"`
	SourceID         string     `db:"source_id" json:"source_id" validate:"required"`
}

// Key is the natural key of a unified tender.
type Key struct {
	SourceTable SourceKind
	SourceID    string
}

func (t *UnifiedTender) Key() Key {
	return Key{SourceTable: t.SourceTable, SourceID: t.SourceID}
}
