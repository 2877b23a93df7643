package models

import "time"

// SkillLevel is the fixed proficiency scale used across the builder.
type SkillLevel string

const (
	SkillLevelBeginner     SkillLevel = "Beginner"
	SkillLevelIntermediate SkillLevel = "Intermediate"
	SkillLevelAdvanced     SkillLevel = "Advanced"
	SkillLevelExpert       SkillLevel = "Expert"
)

// SkillLevels lists every valid proficiency level in ascending order.
var SkillLevels = []SkillLevel{
	SkillLevelBeginner,
	SkillLevelIntermediate,
	SkillLevelAdvanced,
	SkillLevelExpert,
}

// Valid reports whether the level is one of the fixed enumeration values.
func (l SkillLevel) Valid() bool {
	switch l {
	case SkillLevelBeginner, SkillLevelIntermediate, SkillLevelAdvanced, SkillLevelExpert:
		return true
	}
	return false
}

// ContactInfo is the singleton contact section of a resume.
type ContactInfo struct {
	FullName string `json:"full_name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,min=5,max=100,email"`
	Phone    string `json:"phone" validate:"required,min=10,max=20,phone"`
	Location string `json:"location" validate:"required,min=2,max=100"`
	Website  string `json:"website,omitempty" validate:"omitempty,url,max=200"`
	LinkedIn string `json:"linkedin,omitempty" validate:"omitempty,url,max=200,linkedin_url"`
}

// WorkExperience represents a single work history entry. Dates are stored as
// "YYYY-MM" strings; EndDate is ignored by consumers when Current is true.
type WorkExperience struct {
	ID          string   `json:"id"`
	Company     string   `json:"company" validate:"required,min=2"`
	Position    string   `json:"position" validate:"required,min=2"`
	Location    string   `json:"location" validate:"required,min=2"`
	StartDate   string   `json:"start_date" validate:"required"`
	EndDate     string   `json:"end_date" validate:"required_unless=Current true"`
	Current     bool     `json:"current"`
	Description []string `json:"description" validate:"min=1,dive,required"`
}

// Education represents a single education entry.
type Education struct {
	ID          string   `json:"id"`
	Institution string   `json:"institution" validate:"required,min=2"`
	Degree      string   `json:"degree" validate:"required,min=2"`
	Field       string   `json:"field" validate:"required,min=2"`
	Location    string   `json:"location" validate:"required,min=2"`
	StartDate   string   `json:"start_date" validate:"required"`
	EndDate     string   `json:"end_date" validate:"required"`
	GPA         *float64 `json:"gpa,omitempty" validate:"omitempty,gte=0,lte=4"`
}

// Skill represents a single skill entry.
type Skill struct {
	ID       string     `json:"id"`
	Name     string     `json:"name" validate:"required,min=2"`
	Level    SkillLevel `json:"level" validate:"required,oneof=Beginner Intermediate Advanced Expert"`
	Category string     `json:"category" validate:"required,min=2"`
}

// Resume is the root document aggregating all sections. Collection order is
// meaningful for display only; entry identity lives in the generated IDs.
type Resume struct {
	ID             string           `json:"id"`
	ContactInfo    ContactInfo      `json:"contact_info"`
	WorkExperience []WorkExperience `json:"work_experience"`
	Education      []Education      `json:"education"`
	Skills         []Skill          `json:"skills"`
	LastUpdated    time.Time        `json:"last_updated"`
}

// Clone returns a deep copy of the resume so callers never alias the
// store-held slices.
func (r Resume) Clone() Resume {
	out := r
	if r.WorkExperience != nil {
		out.WorkExperience = make([]WorkExperience, len(r.WorkExperience))
		for i, exp := range r.WorkExperience {
			out.WorkExperience[i] = exp.Clone()
		}
	}
	if r.Education != nil {
		out.Education = make([]Education, len(r.Education))
		for i, edu := range r.Education {
			out.Education[i] = edu.Clone()
		}
	}
	if r.Skills != nil {
		out.Skills = append([]Skill(nil), r.Skills...)
	}
	return out
}

// Clone returns a deep copy of the entry.
func (e WorkExperience) Clone() WorkExperience {
	out := e
	if e.Description != nil {
		out.Description = append([]string(nil), e.Description...)
	}
	return out
}

// Clone returns a deep copy of the entry.
func (e Education) Clone() Education {
	out := e
	if e.GPA != nil {
		gpa := *e.GPA
		out.GPA = &gpa
	}
	return out
}

// CoverLetter holds the letter fields plus generated prose. ResumeID is a
// reference to an existing resume, not an ownership relation; letters are
// never persisted alongside resumes.
type CoverLetter struct {
	ID             string    `json:"id"`
	RecipientName  string    `json:"recipient_name"`
	RecipientTitle string    `json:"recipient_title"`
	CompanyName    string    `json:"company_name"`
	CompanyAddress string    `json:"company_address"`
	JobTitle       string    `json:"job_title"`
	ResumeID       string    `json:"resume_id"`
	Content        string    `json:"content"`
	LastUpdated    time.Time `json:"last_updated"`
}

// ResumePatch carries optional top-level field replacements for UpdateResume.
type ResumePatch struct {
	ContactInfo *ContactInfo `json:"contact_info,omitempty"`
}

// WorkExperiencePatch carries optional field replacements for a single entry.
type WorkExperiencePatch struct {
	Company     *string   `json:"company,omitempty"`
	Position    *string   `json:"position,omitempty"`
	Location    *string   `json:"location,omitempty"`
	StartDate   *string   `json:"start_date,omitempty"`
	EndDate     *string   `json:"end_date,omitempty"`
	Current     *bool     `json:"current,omitempty"`
	Description *[]string `json:"description,omitempty"`
}

// EducationPatch carries optional field replacements for a single entry.
type EducationPatch struct {
	Institution *string  `json:"institution,omitempty"`
	Degree      *string  `json:"degree,omitempty"`
	Field       *string  `json:"field,omitempty"`
	Location    *string  `json:"location,omitempty"`
	StartDate   *string  `json:"start_date,omitempty"`
	EndDate     *string  `json:"end_date,omitempty"`
	GPA         *float64 `json:"gpa,omitempty"`
}

// SkillPatch carries optional field replacements for a single entry.
type SkillPatch struct {
	Name     *string     `json:"name,omitempty"`
	Level    *SkillLevel `json:"level,omitempty"`
	Category *string     `json:"category,omitempty"`
}
