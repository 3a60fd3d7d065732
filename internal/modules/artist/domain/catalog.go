package domain

// Catalog is the reference data browse filters and the onboarding wizard
// offer as choices.
type Catalog struct {
	Categories           []string `json:"categories"`
	Languages            []string `json:"languages"`
	FeeRanges            []string `json:"feeRanges"`
	Cities               []string `json:"cities"`
	PriceBrackets        []string `json:"priceBrackets"`
	OnboardingCategories []string `json:"onboardingCategories"`
	OnboardingFeeRanges  []string `json:"onboardingFeeRanges"`
	ExperienceLevels     []string `json:"experienceLevels"`
}

func DefaultCatalog() Catalog {
	return Catalog{
		Categories: []string{"Singers", "Dancers", "Speakers", "DJs", "Musicians", "Comedians", "Magicians", "Bands"},
		Languages: []string{
			"English", "Hindi", "Tamil", "Telugu", "Marathi",
			"Bengali", "Gujarati", "Punjabi", "Malayalam", "Kannada",
		},
		FeeRanges: []string{
			"Under ₹10,000",
			"₹10,000 - ₹25,000",
			"₹25,000 - ₹50,000",
			"₹50,000 - ₹1,00,000",
			"Above ₹1,00,000",
		},
		Cities: []string{
			"Mumbai", "Delhi", "Bangalore", "Chennai", "Kolkata",
			"Hyderabad", "Pune", "Ahmedabad", "Jaipur", "Lucknow",
		},
		PriceBrackets: []string{BracketUnder50k, Bracket50kTo100k, BracketAbove100k},
		OnboardingCategories: []string{
			"Singer", "Musician", "Dancer", "Comedian", "Magician",
			"DJ", "Band", "Classical", "Folk", "Stand-up Comedy",
			"Mime Artist", "Puppeteer", "Storyteller",
		},
		OnboardingFeeRanges: []string{
			"₹5,000 - ₹15,000",
			"₹15,000 - ₹30,000",
			"₹30,000 - ₹50,000",
			"₹50,000 - ₹1,00,000",
			"₹1,00,000+",
		},
		ExperienceLevels: []string{
			"Beginner (0-2 years)",
			"Intermediate (2-5 years)",
			"Advanced (5-10 years)",
			"Expert (10+ years)",
		},
	}
}
