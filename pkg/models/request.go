package models

// SetSelectionRequest changes the store's selection cursor. The resume ID is
// taken verbatim; an empty string clears the selection.
type SetSelectionRequest struct {
	ResumeID string `json:"resume_id"`
}

// UpdateResumeRequest carries the top-level fields to replace on a resume.
type UpdateResumeRequest struct {
	ContactInfo *ContactInfo `json:"contact_info,omitempty"`
}

// ExperienceSectionRequest is the work experience editor's submitted draft.
// Entry IDs, if present, are ignored: commits are full-replace and every
// entry gets a freshly generated ID.
type ExperienceSectionRequest struct {
	Experiences []WorkExperience `json:"experiences"`
}

// EducationSectionRequest is the education editor's submitted draft.
type EducationSectionRequest struct {
	Education []Education `json:"education"`
}

// SkillsSectionRequest is the skills editor's submitted draft.
type SkillsSectionRequest struct {
	Skills []Skill `json:"skills"`
}

// GenerateCoverLetterRequest carries the validated letter fields plus the
// resume used as generation context.
type GenerateCoverLetterRequest struct {
	RecipientName  string `json:"recipient_name" validate:"required,min=2"`
	RecipientTitle string `json:"recipient_title" validate:"required,min=2"`
	CompanyName    string `json:"company_name" validate:"required,min=2"`
	CompanyAddress string `json:"company_address" validate:"required,min=5"`
	JobTitle       string `json:"job_title" validate:"required,min=2"`
	ResumeID       string `json:"resume_id" validate:"required"`
}

// CoverLetterPreviewRequest renders a letter draft against a resume without
// calling the generator.
type CoverLetterPreviewRequest struct {
	GenerateCoverLetterRequest
	Content string `json:"content"`
}
