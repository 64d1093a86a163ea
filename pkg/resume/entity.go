package resume

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned when an id is in neither memory nor storage.
	ErrNotFound = errors.New("resume not found")
)

type PersonalInfo struct {
	Name    string `json:"name" yaml:"name" validate:"required"`
	Email   string `json:"email" yaml:"email"`
	Phone   string `json:"phone" yaml:"phone"`
	Address string `json:"address" yaml:"address"`
}

type ExperienceEntry struct {
	ID          string `json:"id" yaml:"id"`
	Company     string `json:"company" yaml:"company"`
	Position    string `json:"position" yaml:"position"`
	StartDate   string `json:"startDate" yaml:"startDate"` // opaque, e.g. "2020-01"
	EndDate     string `json:"endDate" yaml:"endDate"`
	Description string `json:"description" yaml:"description"`
	Enhanced    bool   `json:"enhanced" yaml:"enhanced"`
}

type EducationEntry struct {
	ID          string `json:"id" yaml:"id"`
	Institution string `json:"institution" yaml:"institution"`
	Degree      string `json:"degree" yaml:"degree"`
	StartDate   string `json:"startDate" yaml:"startDate"`
	EndDate     string `json:"endDate" yaml:"endDate"`
	Description string `json:"description" yaml:"description"`
	Enhanced    bool   `json:"enhanced" yaml:"enhanced"`
}

// Resume is the full document edited by the client and stored as <id>.json.
type Resume struct {
	ID               string            `json:"id,omitempty" yaml:"id,omitempty" validate:"omitempty,resumeid"`
	PersonalInfo     PersonalInfo      `json:"personalInfo" yaml:"personalInfo"`
	Summary          string            `json:"summary" yaml:"summary"`
	Experience       []ExperienceEntry `json:"experience" yaml:"experience" validate:"required"`
	Education        []EducationEntry  `json:"education" yaml:"education" validate:"required"`
	Skills           []string          `json:"skills" yaml:"skills" validate:"required"`
	EnhancedSections []string          `json:"enhancedSections" yaml:"enhancedSections"`
}

// Clone returns a deep copy so cached records never share slices with callers.
func (r Resume) Clone() Resume {
	out := r
	if r.Experience != nil {
		out.Experience = append([]ExperienceEntry{}, r.Experience...)
	}
	if r.Education != nil {
		out.Education = append([]EducationEntry{}, r.Education...)
	}
	if r.Skills != nil {
		out.Skills = append([]string{}, r.Skills...)
	}
	if r.EnhancedSections != nil {
		out.EnhancedSections = append([]string{}, r.EnhancedSections...)
	}
	return out
}

// Origin tells where a listed resume was found.
type Origin string

const (
	OriginMemory Origin = "In Memory"
	OriginFile   Origin = "File"
)

// UnknownName is reported for records without a name.
const UnknownName = "Unknown"

// Summary is one row of the resume listing.
type Summary struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	SavedAt Origin `json:"saved_at"`
}

// ListResult holds listing rows and the files that could not be read.
type ListResult struct {
	Items   []Summary
	Skipped []string
}

// Repository описывает порт доступа к резюме.
type Repository interface {
	Save(ctx context.Context, r Resume) (string, error)
	Get(ctx context.Context, id string) (Resume, error)
	List(ctx context.Context) (ListResult, error)
}
