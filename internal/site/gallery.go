package site

// GalleryItem is one photo or video on the gallery page.
type GalleryItem struct {
	ID        int    `json:"id"`
	Type      string `json:"type"`
	Src       string `json:"src"`
	Alt       string `json:"alt"`
	Title     string `json:"title"`
	Category  string `json:"category"`
	Thumbnail string `json:"thumbnail,omitempty"`
	Priority  bool   `json:"priority,omitempty"`
}

type GalleryCategory struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

var GalleryCategories = []GalleryCategory{
	{ID: "all", Name: "All"},
	{ID: "baraat", Name: "Baraat"},
	{ID: "item", Name: "Band Items"},
	{ID: "video", Name: "Videos"},
}

// Gallery is the bundled catalogue served from /static when no bucket is configured.
var Gallery = []GalleryItem{
	{ID: 1, Type: "image", Src: "/static/gallery/image1.jpg", Alt: "Modern Band Royal Car For Baraat", Title: "Modern Band Royal Car", Category: "item", Priority: true},
	{ID: 2, Type: "image", Src: "/static/gallery/image2.jpg", Alt: "Baraat procession with royal DJ", Title: "Royal DJ", Category: "baraat", Priority: true},
	{ID: 3, Type: "image", Src: "/static/gallery/image8.jpg", Alt: "Won Best Band Award in Ram Leela Mainpuri 2025", Title: "Best Band Award 2025", Category: "item", Priority: true},
	{ID: 4, Type: "image", Src: "/static/gallery/image4.jpg", Alt: "Fancy Light For Baraat", Title: "Fancy Lights", Category: "item"},
	{ID: 5, Type: "image", Src: "/static/gallery/image6.jpg", Alt: "Royal Baggi For Baraat", Title: "Royal Baggi", Category: "item", Priority: true},
	{ID: 6, Type: "image", Src: "/static/gallery/image5.jpg", Alt: "Crystal Lighting For Baraat", Title: "Crystal Lighting", Category: "item"},
	{ID: 7, Type: "image", Src: "/static/gallery/image3.jpg", Alt: "Baraat Decoration", Title: "Baraat Decoration", Category: "baraat"},
	{ID: 8, Type: "video", Src: "/static/gallery/video1.MOV", Alt: "Baraat Procession", Title: "Baraat Procession", Category: "video"},
	{ID: 9, Type: "video", Src: "/static/gallery/video2.MOV", Alt: "Ram baraat dance performance", Title: "Ram Baraat 2025", Category: "video"},
	{ID: 10, Type: "video", Src: "/static/gallery/video3.MOV", Alt: "Baraat Procession", Title: "Baraat Procession", Category: "video"},
	{ID: 11, Type: "video", Src: "/static/gallery/video4.mp4", Alt: "Baggi Celebration With Fireworks", Title: "Firework Celebration", Category: "video"},
}
