package newsapi

// Filter selects a page of top headlines.
type Filter struct {
	Language string
	PageSize int
	Page     int
	Category string
	Sources  string
}

type Source struct {
	ID   *string `json:"id"`
	Name string  `json:"name"`
}

// RawArticle is an article exactly as the provider returns it.
type RawArticle struct {
	Source      *Source `json:"source"`
	Author      *string `json:"author"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
	URL         *string `json:"url"`
	URLToImage  *string `json:"urlToImage"`
	PublishedAt *string `json:"publishedAt"`
	Content     *string `json:"content"`
}

type headlinesResponse struct {
	Status       string       `json:"status"`
	TotalResults int          `json:"totalResults"`
	Articles     []RawArticle `json:"articles"`
	Code         string       `json:"code"`
	Message      string       `json:"message"`
}
