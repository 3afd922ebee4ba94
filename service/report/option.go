package report

type Option func(*Service)

// WithSections replaces the rendered sections
func WithSections(sections ...Section) Option {
	return func(s *Service) {
		s.sections = sections
	}
}
