package resume

import (
	"context"
	"fmt"
	"strings"
)

// UseCase describes the resume editor scenarios: persist, fetch, list and
// draft from an uploaded file.
type UseCase interface {
	Save(ctx context.Context, r Resume) (string, error)
	Get(ctx context.Context, id string) (Resume, error)
	List(ctx context.Context) (ListResult, error)
	Import(ctx context.Context, filename string, data []byte) (Resume, error)
}

type service struct {
	repo Repository
}

// NewService creates the default implementation.
func NewService(repo Repository) UseCase {
	return &service{repo: repo}
}

func (s *service) Save(ctx context.Context, r Resume) (string, error) {
	if err := Validate(&r); err != nil {
		return "", err
	}
	return s.repo.Save(ctx, r)
}

func (s *service) Get(ctx context.Context, id string) (Resume, error) {
	if !ValidID(id) {
		return Resume{}, ErrNotFound
	}
	return s.repo.Get(ctx, id)
}

func (s *service) List(ctx context.Context) (ListResult, error) {
	return s.repo.List(ctx)
}

func (s *service) Import(_ context.Context, filename string, data []byte) (Resume, error) {
	text, err := ParseResumeText(filename, data)
	if err != nil {
		return Resume{}, fmt.Errorf("failed to read resume: %w", err)
	}
	if strings.TrimSpace(text) == "" {
		return Resume{}, fmt.Errorf("empty resume content")
	}
	return BuildDraft(text), nil
}
