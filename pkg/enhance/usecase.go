package enhance

import "context"

// UseCase enhances a single resume section.
type UseCase interface {
	Enhance(ctx context.Context, section, content string) (string, error)
}

type service struct{}

// NewService creates the template-backed implementation.
func NewService() UseCase {
	return &service{}
}

func (s *service) Enhance(_ context.Context, section, content string) (string, error) {
	return Enhance(section, content), nil
}
