package enhance

import "strings"

// Template is the fixed wording wrapped around a section's content.
type Template struct {
	Prefix string
	Suffix string
}

var templates = map[string]Template{
	"summary": {
		Prefix: "Dynamic and results-driven professional with",
		Suffix: "Proven track record of delivering high-impact solutions and driving organizational success through innovative approaches and collaborative leadership.",
	},
	"experience": {
		Prefix: "Successfully",
		Suffix: "Demonstrated exceptional problem-solving abilities and consistently exceeded performance targets while maintaining the highest standards of quality and efficiency.",
	},
	"education": {
		Prefix: "Comprehensive academic foundation in",
		Suffix: "Developed strong analytical and critical thinking skills through rigorous coursework and practical application of theoretical concepts.",
	},
	"skills": {
		Prefix: "Advanced proficiency in",
		Suffix: "with extensive hands-on experience and continuous learning mindset to stay current with industry best practices.",
	},
}

// Fallback is used for any section kind without its own template.
var Fallback = Template{
	Prefix: "Enhanced",
	Suffix: "with improved clarity and impact.",
}

// Sections lists the recognised section kinds in display order.
func Sections() []string {
	return []string{"summary", "experience", "education", "skills"}
}

// Lookup returns the template for section and whether it is a recognised kind.
func Lookup(section string) (Template, bool) {
	t, ok := templates[section]
	if !ok {
		return Fallback, false
	}
	return t, true
}

// Enhance rewrites content using the template for section.
// Blank content gets a generic body; otherwise the content is lowercased
// and placed between prefix and suffix.
func Enhance(section, content string) string {
	t, _ := Lookup(section)
	if strings.TrimSpace(content) == "" {
		return t.Prefix + " your expertise. " + t.Suffix
	}
	return t.Prefix + " " + strings.ToLower(content) + " " + t.Suffix
}
