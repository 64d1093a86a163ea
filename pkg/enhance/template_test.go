package enhance

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnhance_EmptyContentPerKind(t *testing.T) {
	for _, kind := range Sections() {
		tpl, ok := Lookup(kind)
		require.True(t, ok, kind)

		want := tpl.Prefix + " your expertise. " + tpl.Suffix
		assert.Equal(t, want, Enhance(kind, ""), kind)
		assert.Equal(t, want, Enhance(kind, "  \t\n "), kind)
	}
}

func TestEnhance_Summary(t *testing.T) {
	got := Enhance("summary", "Five Years in SALES")

	assert.Equal(t,
		"Dynamic and results-driven professional with five years in sales "+
			"Proven track record of delivering high-impact solutions and driving organizational success through innovative approaches and collaborative leadership.",
		got,
	)
}

func TestEnhance_ExactJoin(t *testing.T) {
	tests := []struct {
		section string
		content string
		want    string
	}{
		{
			section: "experience",
			content: "Led a team of 5",
			want:    "Successfully led a team of 5 Demonstrated exceptional problem-solving abilities and consistently exceeded performance targets while maintaining the highest standards of quality and efficiency.",
		},
		{
			section: "education",
			content: "Computer Science",
			want:    "Comprehensive academic foundation in computer science Developed strong analytical and critical thinking skills through rigorous coursework and practical application of theoretical concepts.",
		},
		{
			section: "skills",
			content: "Go, Kubernetes",
			want:    "Advanced proficiency in go, kubernetes with extensive hands-on experience and continuous learning mindset to stay current with industry best practices.",
		},
		{
			// content is lowercased but not trimmed
			section: "skills",
			content: " SQL ",
			want:    "Advanced proficiency in  sql  with extensive hands-on experience and continuous learning mindset to stay current with industry best practices.",
		},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, Enhance(tc.section, tc.content), tc.section)
	}
}

func TestEnhance_UnknownKindUsesFallback(t *testing.T) {
	assert.Equal(t, "Enhanced x with improved clarity and impact.", Enhance("unknown_kind", "x"))
	assert.Equal(t, "Enhanced your expertise. with improved clarity and impact.", Enhance("unknown_kind", ""))

	// lookup is case sensitive
	_, ok := Lookup("Summary")
	assert.False(t, ok)
	assert.Equal(t, "Enhanced x with improved clarity and impact.", Enhance("Summary", "X"))
}

func TestService_Enhance(t *testing.T) {
	svc := NewService()

	got, err := svc.Enhance(context.Background(), "experience", "Shipped v2")

	require.NoError(t, err)
	assert.Equal(t, Enhance("experience", "Shipped v2"), got)
}
