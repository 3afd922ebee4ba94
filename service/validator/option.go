package validator

type Option func(*Service)

// WithMinSteps sets the step count below which a warning is reported
func WithMinSteps(count int) Option {
	return func(s *Service) {
		s.minSteps = count
	}
}

// WithPlaceholder sets the text used for a step without summary
func WithPlaceholder(placeholder string) Option {
	return func(s *Service) {
		s.placeholder = placeholder
	}
}
