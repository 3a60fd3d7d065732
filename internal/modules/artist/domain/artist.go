package domain

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Artist is a performer record, created by onboarding or by the demo catalog
// seed. Optional catalog fields are omitted from JSON when unset.
type Artist struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	Phone        string   `json:"phone"`
	Location     string   `json:"location"`
	Bio          string   `json:"bio"`
	Category     []string `json:"category"`
	Languages    []string `json:"languages"`
	FeeRange     string   `json:"feeRange"`
	Fee          string   `json:"fee,omitempty"`
	Experience   string   `json:"experience"`
	Portfolio    string   `json:"portfolio,omitempty"`
	ProfileImage string   `json:"profileImage,omitempty"`
	Rating       float64  `json:"rating,omitempty"`
	Availability bool     `json:"availability"`
	Status       Status   `json:"status"`
	CreatedAt    string   `json:"createdAt"`
}

func (a Artist) RecordID() string { return a.ID }

// ByEmail returns the artist registered under email. An empty email matches nothing.
func ByEmail(artists []Artist, email string) (Artist, bool) {
	if email == "" {
		return Artist{}, false
	}
	for _, a := range artists {
		if a.Email == email {
			return a, true
		}
	}
	return Artist{}, false
}

// QuotedFee is the fee copied onto a booking: the explicit fee when set,
// otherwise the fee-range label.
func (a Artist) QuotedFee() string {
	if a.Fee != "" {
		return a.Fee
	}
	return a.FeeRange
}

// Review moves a pending application to approved or rejected.
func (a *Artist) Review(to Status) error {
	if a.Status != StatusPending || (to != StatusApproved && to != StatusRejected) {
		return ErrInvalidTransition
	}
	a.Status = to
	return nil
}
