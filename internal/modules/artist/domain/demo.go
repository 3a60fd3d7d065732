package domain

const demoCreatedAt = "2024-06-01T00:00:00.000Z"

// DemoArtists is the approved catalog shown before anyone has onboarded.
func DemoArtists() []Artist {
	return []Artist{
		{
			ID: "1", Name: "Priya Sharma",
			Bio:      "Professional classical singer with 10+ years of experience in Bollywood and classical music.",
			Category: []string{"Singers"}, Languages: []string{"Hindi", "English"},
			FeeRange: "₹25,000 - ₹50,000", Location: "Mumbai",
			ProfileImage: "https://images.unsplash.com/photo-1494790108755-2616c7e016e5?w=400&h=400&fit=crop&crop=face",
			Rating:       4.8, Experience: "10+ years",
			Email: "priya.sharma@email.com", Phone: "+91 9876543210",
			Availability: true, Status: StatusApproved, CreatedAt: demoCreatedAt,
		},
		{
			ID: "2", Name: "DJ Arjun",
			Bio:      "Electronic music producer and DJ specializing in wedding and party events.",
			Category: []string{"DJs"}, Languages: []string{"Hindi", "English", "Punjabi"},
			FeeRange: "₹50,000 - ₹1,00,000", Location: "Delhi",
			ProfileImage: "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=400&h=400&fit=crop&crop=face",
			Rating:       4.6, Experience: "8+ years",
			Email: "dj.arjun@email.com", Phone: "+91 9876543211",
			Availability: true, Status: StatusApproved, CreatedAt: demoCreatedAt,
		},
		{
			ID: "3", Name: "Meera Dance Academy",
			Bio:      "Traditional and contemporary dance group performing Bharatanatyam, Hip-hop, and Bollywood.",
			Category: []string{"Dancers"}, Languages: []string{"Tamil", "English", "Hindi"},
			FeeRange: "₹10,000 - ₹25,000", Location: "Chennai",
			ProfileImage: "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?w=400&h=400&fit=crop&crop=face",
			Rating:       4.9, Experience: "12+ years",
			Email: "meera.dance@email.com", Phone: "+91 9876543212",
			Availability: true, Status: StatusApproved, CreatedAt: demoCreatedAt,
		},
		{
			ID: "4", Name: "Dr. Rajesh Kumar",
			Bio:      "Motivational speaker and corporate trainer with expertise in leadership and personal development.",
			Category: []string{"Speakers"}, Languages: []string{"English", "Hindi"},
			FeeRange: "Above ₹1,00,000", Location: "Bangalore",
			ProfileImage: "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=400&h=400&fit=crop&crop=face",
			Rating:       4.7, Experience: "15+ years",
			Email: "dr.rajesh@email.com", Phone: "+91 9876543213",
			Availability: true, Status: StatusApproved, CreatedAt: demoCreatedAt,
		},
		{
			ID: "5", Name: "Rohan Stand-Up",
			Bio:      "Stand-up comedian and entertainer perfect for corporate events and private parties.",
			Category: []string{"Comedians"}, Languages: []string{"English", "Hindi", "Marathi"},
			FeeRange: "₹25,000 - ₹50,000", Location: "Pune",
			ProfileImage: "https://images.unsplash.com/photo-1500648767791-00dcc994a43e?w=400&h=400&fit=crop&crop=face",
			Rating:       4.5, Experience: "6+ years",
			Email: "rohan.comedy@email.com", Phone: "+91 9876543214",
			Availability: true, Status: StatusApproved, CreatedAt: demoCreatedAt,
		},
		{
			ID: "6", Name: "Acoustic Vibes Band",
			Bio:      "Live acoustic band specializing in Bollywood covers and original compositions.",
			Category: []string{"Musicians", "Bands"}, Languages: []string{"Hindi", "English"},
			FeeRange: "₹50,000 - ₹1,00,000", Location: "Mumbai",
			ProfileImage: "https://images.unsplash.com/photo-1493225457124-a3eb161ffa5f?w=400&h=400&fit=crop&crop=face",
			Rating:       4.8, Experience: "9+ years",
			Email: "acoustic.vibes@email.com", Phone: "+91 9876543215",
			Availability: true, Status: StatusApproved, CreatedAt: demoCreatedAt,
		},
	}
}
