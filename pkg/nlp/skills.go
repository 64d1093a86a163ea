package nlp

// DefaultCatalog is the set of skills recognised in uploaded resumes, in the
// order they are reported.
var DefaultCatalog = []string{
	"Go", "Python", "Java", "JavaScript", "TypeScript", "Rust", "Kotlin", "Swift", "PHP", "Ruby",
	"React", "Vue", "Angular", "Node.js", "Django", "Flask", "Spring",
	"SQL", "PostgreSQL", "MySQL", "MongoDB", "Redis", "Kafka", "RabbitMQ", "GraphQL", "REST API", "gRPC",
	"Docker", "Kubernetes", "Terraform", "AWS", "GCP", "Azure", "Linux", "Git", "CI/CD",
	"Machine Learning", "Data Analysis", "Project Management", "Agile", "Scrum",
}

// aliases maps a normalized skill to the other spellings that count as it.
var aliases = map[string][]string{
	"postgresql": {"postgres"},
	"kubernetes": {"k8s"},
	"go":         {"golang"},
	"javascript": {"js"},
	"typescript": {"ts"},
	"rest api":   {"rest", "restful api"},
	"ci cd":      {"cicd"},
	"node js":    {"nodejs"},
}

// SkillVariants returns the normalized spellings that match skill.
func SkillVariants(skill string) []string {
	base := NormalizeText(skill)
	if base == "" {
		return []string{}
	}
	out := []string{base}
	for _, a := range aliases[base] {
		out = append(out, NormalizeText(a))
	}
	return out
}

// DetectSkills returns the catalog entries mentioned in text, in catalog
// order, each at most once.
func DetectSkills(text string, catalog []string) []string {
	norm := NormalizeText(text)
	found := []string{}
	if norm == "" {
		return found
	}
	seen := map[string]struct{}{}
	for _, skill := range catalog {
		key := NormalizeText(skill)
		if _, ok := seen[key]; ok {
			continue
		}
		for _, v := range SkillVariants(skill) {
			if ContainsPhrase(norm, v) {
				seen[key] = struct{}{}
				found = append(found, skill)
				break
			}
		}
	}
	return found
}
