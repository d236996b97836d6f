package content

import "katwate/models"

func defaultFAQs() []models.FAQ {
	return []models.FAQ{
		{
			Question: "What are the check-in and check-out times?",
			Answer:   "For day passes: 9:30 AM to 5:00 PM. For overnight stays: Either 11:00 AM to 10:00 AM the next day, or 5:00 PM to 4:00 PM the next day.",
		},
		{
			Question: "Do you allow pets?",
			Answer:   "Yes, pets are allowed in rooms.",
		},
		{
			Question: "How far is the beach from the resort?",
			Answer:   "Kelva Beach is just a 2-minute walk from our resort, making it very convenient for our guests to enjoy the beach.",
		},
		{
			Question: "What food options are available?",
			Answer:   "We offer both vegetarian and non-vegetarian options with home-style cooking. Meals are typically served as buffets. We also have customized seafood available for guests who enjoy fresh catch from the nearby coast.",
		},
		{
			Question: "Are there any nearby attractions?",
			Answer:   "Yes, Shitla Devi Temple is just a 2-minute walk away, and Kelve Fort is about 5 minutes from our resort. Both are popular tourist attractions worth visiting.",
		},
		{
			Question: "Is there WiFi available?",
			Answer:   "Yes, we provide complimentary high-speed WiFi throughout the resort, including in all guest rooms and common areas.",
		},
		{
			Question: "Is there parking available?",
			Answer:   "Yes, we offer free parking for our guests.",
		},
	}
}

func defaultReviews() []models.Review {
	return []models.Review{
		{
			ID:        1,
			Name:      "Priya Sharma",
			Avatar:    "/assets/images/avatar-1.jpg",
			Rating:    5,
			Date:      "March 15, 2023",
			Text:      "Absolutely loved our stay at Katwate's Resort! The proximity to Kelva Beach was perfect for morning walks. The staff was incredibly attentive and the food was delicious. Will definitely be coming back with family.",
			Source:    "Google",
			Highlight: true,
		},
		{
			ID:     2,
			Name:   "Rahul Mehta",
			Avatar: "/assets/images/avatar-2.jpg",
			Rating: 5,
			Date:   "February 8, 2023",
			Text:   "Our corporate retreat at Katwate's Resort was a huge success. The spacious grounds and excellent service made our team-building activities enjoyable. The swimming pool is well-maintained and the rooms are comfortable.",
			Source: "TripAdvisor",
		},
		{
			ID:        3,
			Name:      "Ananya Patel",
			Avatar:    "/assets/images/avatar-3.jpg",
			Rating:    4,
			Date:      "April 22, 2023",
			Text:      "A perfect weekend getaway from Mumbai! The resort is peaceful and the beach is just a short walk away. We enjoyed the day package with access to all amenities. The high tea was a delightful surprise!",
			Source:    "Google",
			Highlight: true,
		},
		{
			ID:     4,
			Name:   "Vikram Singh",
			Avatar: "/assets/images/avatar-4.jpg",
			Rating: 5,
			Date:   "January 30, 2023",
			Text:   "My wife and I celebrated our anniversary at Katwate's Resort and it was magical. The staff arranged a special dinner for us. The nearby Kelve Fort and temple were interesting places to visit during our stay.",
			Source: "Booking.com",
		},
		{
			ID:        5,
			Name:      "Meera Desai",
			Avatar:    "/assets/images/avatar-5.jpg",
			Rating:    5,
			Date:      "May 12, 2023",
			Text:      "The day package at Katwate's Resort was perfect for our family outing. Kids loved the swimming pool and the food was excellent. The resort is very well-maintained and the staff is friendly and helpful.",
			Source:    "Google",
			Highlight: true,
		},
	}
}

func defaultLocation() models.Location {
	return models.Location{
		Address: "Katwate's Resort, Near Shitla Devi Temple Road, Bokharpada, Kelva Beach Road, Kelva, Palghar, Maharashtra 401404, India",
		MapURL:  "https://www.google.com/maps/embed?pb=!1m18!1m12!1m3!1d5319.013568541845!2d72.72916569853116!3d19.608598641929206!2m3!1f0!2f0!3f0!3m2!1i1024!2i768!4f13.1!3m3!1m2!1s0x3be70269c5bd33c9%3A0x6eb080e571cd3c50!2sKatwate%20Resort!5e0!3m2!1sen!2sin!4v1743435953487!5m2!1sen!2sin",
		Directions: []models.Direction{
			{Mode: "car", Icon: "fa-car", Title: "By Car", Description: "Approximately 2 hours drive from Mumbai via NH48 and Kelva Beach Road"},
			{Mode: "train", Icon: "fa-train", Title: "By Train", Description: "Take a train to Palghar Station, then a 20-minute auto-rickshaw ride to the resort"},
			{Mode: "bus", Icon: "fa-bus", Title: "By Bus", Description: "Regular buses from Mumbai to Palghar, followed by a short auto-rickshaw ride"},
		},
	}
}

func defaultAttractions() []models.Attraction {
	return []models.Attraction{
		{
			Name:        "Kelva Beach",
			Image:       "/assets/images/kelve-beach.JPG",
			Distance:    "2 min walk",
			Description: "Beautiful sandy beach with clear waters, perfect for relaxation and sunset views.",
		},
		{
			Name:        "Shitla Devi Temple",
			Image:       "/assets/images/shitladevi-temple.jpg",
			Distance:    "2 min walk",
			Description: "Historic temple dedicated to Goddess Shitla Devi, a popular pilgrimage site.",
		},
		{
			Name:        "Kelve Fort",
			Image:       "/assets/images/kelve-fort.jpg",
			Distance:    "5 min walk",
			Description: "Ancient fort with historical significance, offering panoramic views of the Arabian Sea.",
		},
	}
}

func defaultContact() models.ContactInfo {
	return models.ContactInfo{
		Phone:   "+91 7738052224",
		Email:   "katwate01@gmail.com",
		Address: "Near Shitla Devi Temple Road, Bokharpada, Kelva Beach Road, Kelva, Palghar, Maharashtra 401404, India",
		Social: []models.SocialLink{
			{Icon: "fa-facebook", URL: "https://www.facebook.com/people/Katwates-Resort/100069341206901/"},
			{Icon: "fa-instagram", URL: "https://instagram.com/katwatesresort"},
		},
	}
}

func defaultSections() []models.Section {
	return []models.Section{
		{Name: "Home", ID: "hero", Icon: "fa-home"},
		{Name: "About", ID: "about", Icon: "fa-info-circle"},
		{Name: "Tariffs", ID: "tariffs", Icon: "fa-tag"},
		{Name: "Reviews", ID: "reviews", Icon: "fa-star"},
		{Name: "Location", ID: "location", Icon: "fa-map-marker-alt"},
	}
}
