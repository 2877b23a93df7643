// Package preview projects resume documents into display form. It is a pure
// read-only renderer: no store access, no mutation.
package preview

import (
	"fmt"
	"strings"
	"time"

	"resumeforge/pkg/models"
)

// EmptyStateMessage is shown when there is no resume to render.
const EmptyStateMessage = "No resume data available. Start by adding your contact information."

// Preview is the display projection of a resume. Sections are emitted only
// for non-empty collections.
type Preview struct {
	Empty    bool           `json:"empty"`
	Message  string         `json:"message,omitempty"`
	Contact  *ContactHeader `json:"contact,omitempty"`
	Sections []Section      `json:"sections,omitempty"`
}

// ContactHeader is the rendered contact block at the top of a resume.
type ContactHeader struct {
	Name    string   `json:"name"`
	Details []string `json:"details"`
	Links   []string `json:"links,omitempty"`
}

// Section is one titled block of rendered entries.
type Section struct {
	Title string `json:"title"`
	Items []Item `json:"items"`
}

// Item is one rendered entry within a section.
type Item struct {
	Heading    string   `json:"heading"`
	Subheading string   `json:"subheading,omitempty"`
	Dates      string   `json:"dates,omitempty"`
	Bullets    []string `json:"bullets,omitempty"`
}

// LetterPreview is the business-letter projection of a cover letter draft.
type LetterPreview struct {
	SenderLines    []string `json:"sender_lines"`
	Date           string   `json:"date"`
	RecipientLines []string `json:"recipient_lines"`
	Content        string   `json:"content"`
}

// FormatMonthYear renders a stored "YYYY-MM" date as "Jan 2006". Values that
// do not parse are passed through unchanged.
func FormatMonthYear(value string) string {
	t, err := time.Parse("2006-01", value)
	if err != nil {
		return value
	}
	return t.Format("Jan 2006")
}

// dateRange renders "Jan 2022 - Jan 2023", substituting "Present" when the
// entry is marked current.
func dateRange(start, end string, current bool) string {
	to := "Present"
	if !current {
		to = FormatMonthYear(end)
	}
	return FormatMonthYear(start) + " - " + to
}

// RenderResume projects a resume into its preview. A nil resume yields the
// empty-state projection.
func RenderResume(resume *models.Resume) Preview {
	if resume == nil {
		return Preview{Empty: true, Message: EmptyStateMessage}
	}

	p := Preview{
		Contact: renderContact(resume.ContactInfo),
	}

	if len(resume.WorkExperience) > 0 {
		section := Section{Title: "Work Experience"}
		for _, exp := range resume.WorkExperience {
			section.Items = append(section.Items, Item{
				Heading:    exp.Position,
				Subheading: joinNonEmpty(" | ", exp.Company, exp.Location),
				Dates:      dateRange(exp.StartDate, exp.EndDate, exp.Current),
				Bullets:    append([]string(nil), exp.Description...),
			})
		}
		p.Sections = append(p.Sections, section)
	}

	if len(resume.Education) > 0 {
		section := Section{Title: "Education"}
		for _, edu := range resume.Education {
			item := Item{
				Heading:    joinNonEmpty(" in ", edu.Degree, edu.Field),
				Subheading: joinNonEmpty(" | ", edu.Institution, edu.Location),
				Dates:      dateRange(edu.StartDate, edu.EndDate, false),
			}
			if edu.GPA != nil {
				item.Bullets = append(item.Bullets, fmt.Sprintf("GPA: %.2f", *edu.GPA))
			}
			section.Items = append(section.Items, item)
		}
		p.Sections = append(p.Sections, section)
	}

	if len(resume.Skills) > 0 {
		section := Section{Title: "Skills"}
		for _, category := range skillCategories(resume.Skills) {
			var parts []string
			for _, skill := range resume.Skills {
				if skill.Category == category {
					parts = append(parts, fmt.Sprintf("%s (%s)", skill.Name, skill.Level))
				}
			}
			section.Items = append(section.Items, Item{
				Heading:    category,
				Subheading: strings.Join(parts, ", "),
			})
		}
		p.Sections = append(p.Sections, section)
	}

	return p
}

// RenderCoverLetter projects a letter draft plus its resume into the
// business-letter layout. Content may be empty when generation has not run.
func RenderCoverLetter(req models.GenerateCoverLetterRequest, content string, resume *models.Resume, now time.Time) LetterPreview {
	letter := LetterPreview{
		Date:    now.Format("January 2, 2006"),
		Content: content,
	}

	if resume != nil {
		ci := resume.ContactInfo
		letter.SenderLines = nonEmpty(ci.FullName, ci.Location, ci.Email, ci.Phone)
	}

	letter.RecipientLines = nonEmpty(
		req.RecipientName,
		req.RecipientTitle,
		req.CompanyName,
		req.CompanyAddress,
	)

	return letter
}

// PlainText flattens the preview into plain text for text/plain consumers.
func (p Preview) PlainText() string {
	if p.Empty {
		return p.Message
	}

	var b strings.Builder
	if p.Contact != nil {
		b.WriteString(p.Contact.Name + "\n")
		b.WriteString(strings.Join(p.Contact.Details, " | ") + "\n")
		for _, link := range p.Contact.Links {
			b.WriteString(link + "\n")
		}
	}

	for _, section := range p.Sections {
		b.WriteString("\n" + section.Title + "\n")
		for _, item := range section.Items {
			line := item.Heading
			if item.Subheading != "" {
				line += " - " + item.Subheading
			}
			if item.Dates != "" {
				line += " (" + item.Dates + ")"
			}
			b.WriteString(line + "\n")
			for _, bullet := range item.Bullets {
				b.WriteString("  - " + bullet + "\n")
			}
		}
	}

	return b.String()
}

func renderContact(ci models.ContactInfo) *ContactHeader {
	return &ContactHeader{
		Name:    ci.FullName,
		Details: nonEmpty(ci.Email, ci.Phone, ci.Location),
		Links:   nonEmpty(ci.Website, ci.LinkedIn),
	}
}

// skillCategories returns categories in first-seen order.
func skillCategories(skills []models.Skill) []string {
	var out []string
	seen := make(map[string]bool)
	for _, skill := range skills {
		if !seen[skill.Category] {
			seen[skill.Category] = true
			out = append(out, skill.Category)
		}
	}
	return out
}

func nonEmpty(values ...string) []string {
	var out []string
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

func joinNonEmpty(sep string, values ...string) string {
	return strings.Join(nonEmpty(values...), sep)
}
