package llm

import (
	"fmt"
	"strings"

	"resumeforge/pkg/models"
)

// CoverLetterSystemPrompt frames every cover letter generation call.
const CoverLetterSystemPrompt = "You are a professional cover letter writer. Create compelling, personalized cover letters that highlight the candidate's relevant experience and qualifications."

// BuildCoverLetterPrompt assembles the generation prompt from the letter
// fields and the selected resume. Work history dates pass through in their
// stored form; current positions read "Present".
func BuildCoverLetterPrompt(req models.GenerateCoverLetterRequest, resume models.Resume) string {
	var b strings.Builder

	b.WriteString("Write a professional cover letter with the following details:\n\n")

	b.WriteString("Sender Information:\n")
	fmt.Fprintf(&b, "- Name: %s\n", resume.ContactInfo.FullName)
	fmt.Fprintf(&b, "- Email: %s\n", resume.ContactInfo.Email)
	fmt.Fprintf(&b, "- Phone: %s\n", resume.ContactInfo.Phone)
	fmt.Fprintf(&b, "- Location: %s\n", resume.ContactInfo.Location)

	b.WriteString("\nRecipient Information:\n")
	fmt.Fprintf(&b, "- Name: %s\n", req.RecipientName)
	fmt.Fprintf(&b, "- Title: %s\n", req.RecipientTitle)
	fmt.Fprintf(&b, "- Company: %s\n", req.CompanyName)
	fmt.Fprintf(&b, "- Address: %s\n", req.CompanyAddress)
	fmt.Fprintf(&b, "- Job Title: %s\n", req.JobTitle)

	b.WriteString("\nWork Experience:\n")
	for _, exp := range resume.WorkExperience {
		end := exp.EndDate
		if exp.Current {
			end = "Present"
		}
		fmt.Fprintf(&b, "- %s at %s (%s to %s)\n", exp.Position, exp.Company, exp.StartDate, end)
		for _, desc := range exp.Description {
			fmt.Fprintf(&b, "  - %s\n", desc)
		}
	}

	b.WriteString("\nEducation:\n")
	for _, edu := range resume.Education {
		fmt.Fprintf(&b, "- %s in %s from %s (%s to %s)\n", edu.Degree, edu.Field, edu.Institution, edu.StartDate, edu.EndDate)
	}

	b.WriteString("\nSkills:\n")
	for _, skill := range resume.Skills {
		fmt.Fprintf(&b, "- %s (%s)\n", skill.Name, skill.Level)
	}

	b.WriteString("\nPlease write a compelling cover letter that:\n")
	fmt.Fprintf(&b, "1. Uses a professional business letter format\n")
	fmt.Fprintf(&b, "2. Highlights relevant experience and skills for the %s position\n", req.JobTitle)
	fmt.Fprintf(&b, "3. Shows enthusiasm for working at %s\n", req.CompanyName)
	b.WriteString("4. Demonstrates understanding of the company's needs\n")
	b.WriteString("5. Includes a call to action in the closing paragraph\n")
	b.WriteString("6. Maintains a professional yet personable tone\n")
	b.WriteString("7. Is concise and focused (around 300-400 words)")

	return b.String()
}
