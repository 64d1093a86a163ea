package resume

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildDraft(t *testing.T) {
	text := strings.Join([]string{
		"Jane Doe",
		"jane.doe@example.com | +1 (555) 123-4567",
		"",
		"Backend engineer with eight years of experience building Golang services on Kubernetes and Postgres.",
		"",
		"Experience",
		"Tech Corp 2019-01 - 2021-06",
	}, "\n")

	d := BuildDraft(text)

	assert.Equal(t, "Jane Doe", d.PersonalInfo.Name)
	assert.Equal(t, "jane.doe@example.com", d.PersonalInfo.Email)
	assert.Equal(t, "+1 (555) 123-4567", d.PersonalInfo.Phone)
	assert.Equal(t, "Backend engineer with eight years of experience building Golang services on Kubernetes and Postgres.", d.Summary)
	assert.Equal(t, []string{"Go", "PostgreSQL", "Kubernetes"}, d.Skills)
	assert.Empty(t, d.ID)
	assert.NotNil(t, d.Experience)
	assert.NotNil(t, d.Education)
	assert.NotNil(t, d.EnhancedSections)
}

func TestBuildDraft_ValidatesOnceNamed(t *testing.T) {
	d := BuildDraft("John Smith\nSome text")
	assert.NoError(t, Validate(&d))
}

func TestBuildDraft_LongSummaryIsTruncated(t *testing.T) {
	long := strings.Repeat("word ", 300)
	d := BuildDraft("Name\n\n" + long)

	assert.Len(t, []rune(d.Summary), maxSummaryChars-1) // trailing space trimmed
}
