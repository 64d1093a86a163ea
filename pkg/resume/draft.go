package resume

import (
	"regexp"
	"strings"

	"github.com/artem13815/resume-editor/pkg/nlp"
)

const maxSummaryChars = 600 // runes

var (
	reEmail = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)
	rePhone = regexp.MustCompile(`\+?\d[\d ()\-.]{6,}\d`)
)

// BuildDraft fills a Resume from extracted text as a starting point for the
// editor. Experience and education are left empty.
func BuildDraft(text string) Resume {
	lines := splitLines(text)

	d := Resume{
		Experience:       []ExperienceEntry{},
		Education:        []EducationEntry{},
		Skills:           nlp.DetectSkills(text, nlp.DefaultCatalog),
		EnhancedSections: []string{},
	}
	d.PersonalInfo.Email = reEmail.FindString(text)
	d.PersonalInfo.Phone = findPhone(text)

	for _, l := range lines {
		if isContactLine(l) {
			continue
		}
		d.PersonalInfo.Name = l
		break
	}
	d.Summary = firstParagraph(text, d.PersonalInfo.Name)
	return d
}

func splitLines(text string) []string {
	var out []string
	for _, l := range strings.Split(text, "\n") {
		if l = strings.TrimSpace(l); l != "" {
			out = append(out, l)
		}
	}
	return out
}

// findPhone prefers numbers written with a country code or area code in
// parentheses, so date ranges like 2019-01 - 2021-06 lose to real numbers.
func findPhone(text string) string {
	all := rePhone.FindAllString(text, -1)
	for _, m := range all {
		if strings.HasPrefix(m, "+") || strings.Contains(m, "(") {
			return strings.TrimSpace(m)
		}
	}
	if len(all) > 0 {
		return strings.TrimSpace(all[0])
	}
	return ""
}

func isContactLine(l string) bool {
	return reEmail.MatchString(l) || rePhone.MatchString(l)
}

// firstParagraph picks the first block that reads like prose: at least eight
// words and not a contact line.
func firstParagraph(text, name string) string {
	for _, block := range strings.Split(text, "\n\n") {
		block = strings.Join(strings.Fields(block), " ")
		if block == "" || block == name || isContactLine(block) {
			continue
		}
		if len(strings.Fields(block)) < 8 {
			continue
		}
		if r := []rune(block); len(r) > maxSummaryChars {
			block = strings.TrimSpace(string(r[:maxSummaryChars]))
		}
		return block
	}
	return ""
}
