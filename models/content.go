package models

import "time"

type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type Review struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Avatar    string `json:"avatar"`
	Rating    int    `json:"rating"`
	Date      string `json:"date"`
	Text      string `json:"text"`
	Source    string `json:"source"`
	Highlight bool   `json:"highlight"`
}

type Direction struct {
	Mode        string `json:"mode"`
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type Location struct {
	Address    string      `json:"address"`
	MapURL     string      `json:"mapUrl"`
	Directions []Direction `json:"directions"`
}

type Attraction struct {
	Name        string `json:"name"`
	Image       string `json:"image"`
	Distance    string `json:"distance"`
	Description string `json:"description"`
}

type SocialLink struct {
	Icon string `json:"icon"`
	URL  string `json:"url"`
}

type ContactInfo struct {
	Phone   string       `json:"phone"`
	Email   string       `json:"email"`
	Address string       `json:"address"`
	Social  []SocialLink `json:"social"`
}

type Section struct {
	Name string `json:"name"`
	ID   string `json:"id"`
	Icon string `json:"icon"`
}

// GalleryItem is an image shown in the public gallery.
type GalleryItem struct {
	ID        string    `json:"id" firestore:"-" bson:"_id"`
	PublicID  string    `json:"publicId" firestore:"publicId" bson:"publicId"`
	URL       string    `json:"url" firestore:"url" bson:"url"`
	Caption   string    `json:"caption" firestore:"caption" bson:"caption"`
	Category  string    `json:"category" firestore:"category" bson:"category"`
	CreatedAt time.Time `json:"createdAt" firestore:"createdAt" bson:"createdAt"`
}
