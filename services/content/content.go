package content

import "katwate/models"

// ContentService serves the informational sections of the site.
type ContentService interface {
	FAQs() []models.FAQ
	Reviews() []models.Review
	HighlightedReviews() []models.Review
	Location() models.Location
	Attractions() []models.Attraction
	Contact() models.ContactInfo
	Sections() []models.Section
}

// DefaultContentService serves the built-in site content.
type DefaultContentService struct {
	faqs        []models.FAQ
	reviews     []models.Review
	location    models.Location
	attractions []models.Attraction
	contact     models.ContactInfo
	sections    []models.Section
}

func NewContentService() *DefaultContentService {
	return &DefaultContentService{
		faqs:        defaultFAQs(),
		reviews:     defaultReviews(),
		location:    defaultLocation(),
		attractions: defaultAttractions(),
		contact:     defaultContact(),
		sections:    defaultSections(),
	}
}

func (s *DefaultContentService) FAQs() []models.FAQ { return s.faqs }

func (s *DefaultContentService) Reviews() []models.Review { return s.reviews }

// HighlightedReviews keeps the catalog order of reviews flagged for the slider.
func (s *DefaultContentService) HighlightedReviews() []models.Review {
	out := make([]models.Review, 0, len(s.reviews))
	for _, r := range s.reviews {
		if r.Highlight {
			out = append(out, r)
		}
	}
	return out
}

func (s *DefaultContentService) Location() models.Location { return s.location }

func (s *DefaultContentService) Attractions() []models.Attraction { return s.attractions }

func (s *DefaultContentService) Contact() models.ContactInfo { return s.contact }

func (s *DefaultContentService) Sections() []models.Section { return s.sections }
