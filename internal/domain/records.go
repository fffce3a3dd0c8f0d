package domain

// Typed source rows. Every optional column is an explicit field; a column missing from the
// table simply decodes to its zero value.

type TEDRecord struct {
	ID                    FlexString `json:"id"`
	PublicationNumber     FlexString `json:"publication_number"`
	ProcedureType         FlexString `json:"procedure_type"`
	Title                 FlexString `json:"title"`
	Summary               FlexString `json:"summary"`
	PublicationDate       FlexString `json:"publication_date"`
	DeadlineDate          FlexString `json:"deadline_date"`
	Language              FlexString `json:"language"`
	Country               FlexString `json:"country"`
	OrganisationID        FlexString `json:"organisation_id"`
	OrganisationName      FlexString `json:"organisation_name"`
	OrganisationCountry   FlexString `json:"organisation_country"`
	NUTSCode              FlexString `json:"nuts_code"`
	City                  FlexString `json:"city"`
	ContactEmail          FlexString `json:"contact_email"`
	ContactPhone          FlexString `json:"contact_phone"`
	ContactURL            FlexString `json:"contact_url"`
	NoticeStatus          FlexString `json:"notice_status"`
	NoticeType            FlexString `json:"notice_type"`
	NoticeIdentifier      FlexString `json:"notice_identifier"`
	DocumentID            FlexString `json:"document_id"`
	IsCorrigendum         FlexString `json:"is_corrigendum"`
	AdditionalInformation FlexString `json:"additional_information"`
	ValueMagnitude        FlexString `json:"value_magnitude"`
	Currency              FlexString `json:"currency"`
	Lots                  FlexJSON   `json:"lots"`
	Links                 FlexJSON   `json:"links"`
}

type WorldBankRecord struct {
	ID                    FlexString `json:"id"`
	Title                 FlexString `json:"title"`
	Description           FlexString `json:"description"`
	Country               FlexString `json:"country"`
	ProjectCountryName    FlexString `json:"project_ctry_name"`
	PublicationDate       FlexString `json:"publication_date"`
	Deadline              FlexString `json:"deadline"`
	TenderType            FlexString `json:"tender_type"`
	NoticeType            FlexString `json:"notice_type"`
	NoticeStatus          FlexString `json:"notice_status"`
	NoticeText            FlexString `json:"notice_text"`
	URL                   FlexString `json:"url"`
	DocumentLinks         FlexJSON   `json:"document_links"`
	BidReferenceNo        FlexString `json:"bid_reference_no"`
	ContactOrganization   FlexString `json:"contact_organization"`
	ContactName           FlexString `json:"contact_name"`
	ContactEmail          FlexString `json:"contact_email"`
	ContactPhone          FlexString `json:"contact_phone"`
	ContactAddress        FlexString `json:"contact_address"`
	ProjectID             FlexString `json:"project_id"`
	ProjectName           FlexString `json:"project_name"`
	ProcurementMethod     FlexString `json:"procurement_method"`
	ProcurementMethodCode FlexString `json:"procurement_method_code"`
	ProcurementMethodName FlexString `json:"procurement_method_name"`
}

type AFDRecord struct {
	ID               FlexString `json:"id"`
	NoticeID         FlexString `json:"notice_id"`
	NoticeTitle      FlexString `json:"notice_title"`
	Country          FlexString `json:"country"`
	CityLocality     FlexString `json:"city_locality"`
	PublicationDate  FlexString `json:"publication_date"`
	Deadline         FlexString `json:"deadline"`
	Agency           FlexString `json:"agency"`
	Buyer            FlexString `json:"buyer"`
	OriginalLanguage FlexString `json:"original_language"`
	Address          FlexString `json:"address"`
	Email            FlexString `json:"email"`
	Services         FlexJSON   `json:"services"`
	URL              FlexString `json:"url"`
	NoticeContent    FlexString `json:"notice_content"`
}

type ADBRecord struct {
	ID              FlexString `json:"id"`
	Type            FlexString `json:"type"`
	Country         FlexString `json:"country"`
	NoticeTitle     FlexString `json:"notice_title"`
	ProjectName     FlexString `json:"project_name"`
	ProjectNumber   FlexString `json:"project_number"`
	PublicationDate FlexString `json:"publication_date"`
	DueDate         FlexString `json:"due_date"`
	Sector          FlexString `json:"sector"`
	LoanNumber      FlexString `json:"loan_number"`
	Contractor      FlexString `json:"contractor"`
	ContractAmount  FlexString `json:"contract_amount"`
	ProjectID       FlexString `json:"project_id"`
	BorrowerBidNo   FlexString `json:"borrower_bid_no"`
	Description     FlexString `json:"description"`
	PDFURL          FlexString `json:"pdf_url"`
	PDFContent      FlexString `json:"pdf_content"`
}

type IADBRecord struct {
	ProjectNumber   FlexString `json:"project_number"`
	Type            FlexString `json:"type"`
	Country         FlexString `json:"country"`
	NoticeTitle     FlexString `json:"notice_title"`
	ProjectName     FlexString `json:"project_name"`
	PublicationDate FlexString `json:"publication_date"`
	PueDate         FlexString `json:"pue_date"`
	URL             FlexString `json:"url"`
	URLPDF          FlexString `json:"url_pdf"`
}

type AFDBRecord struct {
	ID              FlexString `json:"id"`
	Title           FlexString `json:"title"`
	TenderType      FlexString `json:"tender_type"`
	Country         FlexString `json:"country"`
	PublicationDate FlexString `json:"publication_date"`
	ClosingDate     FlexString `json:"closing_date"`
	Description     FlexString `json:"description"`
	URL             FlexString `json:"url"`
	DocumentLinks   FlexJSON   `json:"document_links"`
	Status          FlexString `json:"status"`
	Sector          FlexString `json:"sector"`
	ProjectID       FlexString `json:"project_id"`
	ProjectName     FlexString `json:"project_name"`
	EstimatedValue  FlexString `json:"estimated_value"`
	Currency        FlexString `json:"currency"`
	IsMultinational FlexString `json:"is_multinational"`
}

type AIIBRecord struct {
	ID            FlexString `json:"id"`
	Date          FlexString `json:"date"`
	Member        FlexString `json:"member"`
	ProjectNotice FlexString `json:"project_notice"`
	Sector        FlexString `json:"sector"`
	Type          FlexString `json:"type"`
	PDFContent    FlexString `json:"pdf_content"`
}

type SAMGovRecord struct {
	OpportunityID      FlexString `json:"opportunity_id"`
	SolicitationNumber FlexString `json:"solicitation_number"`
	OpportunityTitle   FlexString `json:"opportunity_title"`
	OpportunityType    FlexString `json:"opportunity_type"`
	PublishDate        FlexString `json:"publish_date"`
	ResponseDate       FlexString `json:"response_date"`
	Description        FlexString `json:"description"`
	OpportunityStatus  FlexString `json:"opportunity_status"`
	ClassificationCode FlexString `json:"classification_code"`
	NAICSCode          FlexString `json:"naics_code"`
	SetAside           FlexString `json:"set_aside"`
	PlaceOfPerformance FlexJSON   `json:"place_of_performance"`
	OrganizationID     FlexString `json:"organization_id"`
	OrgKey             FlexString `json:"org_key"`
	Contacts           FlexJSON   `json:"contacts"`
}

type UNGMRecord struct {
	ID                   FlexString `json:"id"`
	Title                FlexString `json:"title"`
	Status               FlexString `json:"status"`
	Reference            FlexString `json:"reference"`
	BeneficiaryCountries FlexString `json:"beneficiary_countries"`
	RegistrationLevel    FlexString `json:"registration_level"`
	PublishedOn          FlexString `json:"published_on"`
	DeadlineOn           FlexString `json:"deadline_on"`
	Description          FlexString `json:"description"`
	Documents            FlexJSON   `json:"documents"`
	Contacts             FlexJSON   `json:"contacts"`
	Sustainability       FlexJSON   `json:"sustainability"`
	Links                FlexJSON   `json:"links"`
	UNSPSCs              FlexJSON   `json:"unspscs"`
	Revisions            FlexJSON   `json:"revisions"`
	Countries            FlexJSON   `json:"countries"`
}
