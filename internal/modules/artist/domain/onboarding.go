package domain

import "github.com/saransh1220/artistly/internal/shared/utils"

const OnboardingSteps = 3

// Submission is the onboarding wizard form.
type Submission struct {
	Name       string   `json:"name"`
	Email      string   `json:"email"`
	Phone      string   `json:"phone"`
	Location   string   `json:"location"`
	Bio        string   `json:"bio"`
	Category   []string `json:"category"`
	Languages  []string `json:"languages"`
	Experience string   `json:"experience"`
	FeeRange   string   `json:"feeRange"`
	Portfolio  string   `json:"portfolio"`
}

// ValidateStep checks the fields one wizard step requires.
func (s Submission) ValidateStep(step int) error {
	var missing []string
	switch step {
	case 1:
		missing = utils.MissingFields("name", s.Name, "email", s.Email, "phone", s.Phone, "location", s.Location)
	case 2:
		missing = utils.MissingFields("bio", s.Bio)
		if len(s.Category) == 0 {
			missing = append(missing, "category")
		}
		if len(s.Languages) == 0 {
			missing = append(missing, "languages")
		}
	case 3:
		missing = utils.MissingFields("experience", s.Experience, "feeRange", s.FeeRange)
	default:
		return ErrInvalidStep
	}
	if len(missing) > 0 {
		return &ValidationError{Step: step, Fields: missing}
	}
	return nil
}

// Validate runs every step in order and reports the first failure.
func (s Submission) Validate() error {
	for step := 1; step <= OnboardingSteps; step++ {
		if err := s.ValidateStep(step); err != nil {
			return err
		}
	}
	return nil
}

// NewArtist builds a pending application from a validated submission.
func (s Submission) NewArtist(id, createdAt string) Artist {
	return Artist{
		ID:         id,
		Name:       s.Name,
		Email:      s.Email,
		Phone:      s.Phone,
		Location:   s.Location,
		Bio:        s.Bio,
		Category:   append([]string(nil), s.Category...),
		Languages:  append([]string(nil), s.Languages...),
		FeeRange:   s.FeeRange,
		Experience: s.Experience,
		Portfolio:  s.Portfolio,
		Status:     StatusPending,
		CreatedAt:  createdAt,
	}
}
