package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumeforge/pkg/models"
)

func validContact() models.ContactInfo {
	return models.ContactInfo{
		FullName: "Jane Doe",
		Email:    "jane@example.com",
		Phone:    "+1 (555) 123-4567",
		Location: "Berlin",
	}
}

func fieldMessages(t *testing.T, err error) map[string]string {
	t.Helper()

	verr, ok := AsError(err)
	require.True(t, ok, "expected a validation error, got %v", err)

	out := make(map[string]string, len(verr.Fields))
	for _, fe := range verr.Fields {
		out[fe.Field] = fe.Message
	}
	return out
}

func TestContactInfo_Valid(t *testing.T) {
	info := validContact()
	info.Website = "https://janedoe.dev"
	info.LinkedIn = "https://www.linkedin.com/in/janedoe"

	assert.NoError(t, ContactInfo(info))
}

func TestContactInfo_OptionalFieldsMayBeEmpty(t *testing.T) {
	assert.NoError(t, ContactInfo(validContact()))
}

func TestContactInfo_FieldFailures(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*models.ContactInfo)
		field   string
		message string
	}{
		{
			name:    "short name",
			mutate:  func(ci *models.ContactInfo) { ci.FullName = "J" },
			field:   "full_name",
			message: "Full name must be at least 2 characters",
		},
		{
			name:    "bad email",
			mutate:  func(ci *models.ContactInfo) { ci.Email = "not-an-email" },
			field:   "email",
			message: "Invalid email address",
		},
		{
			name:    "bad phone format",
			mutate:  func(ci *models.ContactInfo) { ci.Phone = "abcdefghijk" },
			field:   "phone",
			message: "Invalid phone number format",
		},
		{
			name:    "short phone",
			mutate:  func(ci *models.ContactInfo) { ci.Phone = "555" },
			field:   "phone",
			message: "Phone number must be at least 10 characters",
		},
		{
			name:    "non-linkedin url",
			mutate:  func(ci *models.ContactInfo) { ci.LinkedIn = "https://example.com/janedoe" },
			field:   "linkedin",
			message: "Must be a valid LinkedIn URL",
		},
		{
			name:    "bad website",
			mutate:  func(ci *models.ContactInfo) { ci.Website = "not a url" },
			field:   "website",
			message: "Invalid website URL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := validContact()
			tt.mutate(&info)

			msgs := fieldMessages(t, ContactInfo(info))
			assert.Equal(t, tt.message, msgs[tt.field])
		})
	}
}

func TestWorkExperiences(t *testing.T) {
	valid := models.WorkExperience{
		Company:     "Acme Corp",
		Position:    "Engineer",
		Location:    "Remote",
		StartDate:   "2022-01",
		EndDate:     "2023-06",
		Description: []string{"Shipped features"},
	}

	t.Run("valid list", func(t *testing.T) {
		assert.NoError(t, WorkExperiences([]models.WorkExperience{valid}))
	})

	t.Run("empty list", func(t *testing.T) {
		assert.NoError(t, WorkExperiences(nil))
	})

	t.Run("current position needs no end date", func(t *testing.T) {
		entry := valid
		entry.EndDate = ""
		entry.Current = true
		assert.NoError(t, WorkExperiences([]models.WorkExperience{entry}))
	})

	t.Run("past position needs an end date", func(t *testing.T) {
		entry := valid
		entry.EndDate = ""

		msgs := fieldMessages(t, WorkExperiences([]models.WorkExperience{entry}))
		assert.Equal(t, "End date is required", msgs["experiences[0].end_date"])
	})

	t.Run("empty description list", func(t *testing.T) {
		entry := valid
		entry.Description = nil

		msgs := fieldMessages(t, WorkExperiences([]models.WorkExperience{entry}))
		assert.Equal(t, "At least one bullet point is required", msgs["experiences[0].description"])
	})

	t.Run("blank bullet", func(t *testing.T) {
		entry := valid
		entry.Description = []string{"fine", ""}

		msgs := fieldMessages(t, WorkExperiences([]models.WorkExperience{entry}))
		assert.Equal(t, "Description cannot be empty", msgs["experiences[0].description[1]"])
	})

	t.Run("errors carry the entry index", func(t *testing.T) {
		bad := valid
		bad.Company = "A"

		msgs := fieldMessages(t, WorkExperiences([]models.WorkExperience{valid, bad}))
		assert.Equal(t, "Company name must be at least 2 characters", msgs["experiences[1].company"])
	})
}

func TestEducationEntries(t *testing.T) {
	valid := models.Education{
		Institution: "MIT",
		Degree:      "BSc",
		Field:       "Computer Science",
		Location:    "Cambridge",
		StartDate:   "2018-09",
		EndDate:     "2022-06",
	}

	t.Run("valid entry", func(t *testing.T) {
		assert.NoError(t, EducationEntries([]models.Education{valid}))
	})

	t.Run("gpa bounds", func(t *testing.T) {
		tests := []struct {
			name  string
			gpa   float64
			valid bool
		}{
			{"zero", 0, true},
			{"max", 4.0, true},
			{"above max", 4.01, false},
			{"negative", -0.1, false},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				entry := valid
				gpa := tt.gpa
				entry.GPA = &gpa

				err := EducationEntries([]models.Education{entry})
				if tt.valid {
					assert.NoError(t, err)
				} else {
					msgs := fieldMessages(t, err)
					assert.Equal(t, "GPA must be between 0 and 4", msgs["education[0].gpa"])
				}
			})
		}
	})

	t.Run("nil gpa is fine", func(t *testing.T) {
		assert.NoError(t, EducationEntries([]models.Education{valid}))
	})
}

func TestSkills(t *testing.T) {
	valid := models.Skill{Name: "Go", Level: models.SkillLevelExpert, Category: "Languages"}

	t.Run("valid entry", func(t *testing.T) {
		assert.NoError(t, Skills([]models.Skill{valid}))
	})

	t.Run("unknown level", func(t *testing.T) {
		entry := valid
		entry.Level = "Wizard"

		msgs := fieldMessages(t, Skills([]models.Skill{entry}))
		assert.Equal(t, "Please select a skill level", msgs["skills[0].level"])
	})

	t.Run("missing level", func(t *testing.T) {
		entry := valid
		entry.Level = ""

		msgs := fieldMessages(t, Skills([]models.Skill{entry}))
		assert.Equal(t, "Please select a skill level", msgs["skills[0].level"])
	})
}

func TestCoverLetterRequest(t *testing.T) {
	valid := models.GenerateCoverLetterRequest{
		RecipientName:  "John Smith",
		RecipientTitle: "Hiring Manager",
		CompanyName:    "Acme Corp",
		CompanyAddress: "1 Main Street, Springfield",
		JobTitle:       "Senior Engineer",
		ResumeID:       "resume-1",
	}

	t.Run("valid request", func(t *testing.T) {
		assert.NoError(t, CoverLetterRequest(valid))
	})

	t.Run("short address", func(t *testing.T) {
		req := valid
		req.CompanyAddress = "abc"

		msgs := fieldMessages(t, CoverLetterRequest(req))
		assert.Equal(t, "Company address must be at least 5 characters", msgs["company_address"])
	})

	t.Run("missing resume", func(t *testing.T) {
		req := valid
		req.ResumeID = ""

		msgs := fieldMessages(t, CoverLetterRequest(req))
		assert.Equal(t, "Please select a resume", msgs["resume_id"])
	})
}
