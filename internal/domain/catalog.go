package domain

// Monastery is a static catalog record.
type Monastery struct {
	ID             int      `json:"id"`
	Name           string   `json:"name"`
	Location       string   `json:"location"`
	Year           int      `json:"year"`
	Description    string   `json:"description"`
	Image          string   `json:"image"`
	VirtualTourURL string   `json:"virtualTourUrl"`
	Latitude       float64  `json:"latitude"`
	Longitude      float64  `json:"longitude"`
	Festivals      []string `json:"festivals"`
}

// Festival is a static catalog record for a monastery festival.
type Festival struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Date        string `json:"date"`
	Location    string `json:"location"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

// Image is a gallery entry.
type Image struct {
	Src     string `json:"src"`
	Caption string `json:"caption"`
}

// AudioGuide locates the narration for one monastery in one language.
type AudioGuide struct {
	MonasteryID int    `json:"monasteryId"`
	Language    string `json:"language"`
	Src         string `json:"src"`
}
