package posts

// Post is one entry of the posts index.
type Post struct {
	Slug  string `json:"slug"`
	Title string `json:"title"`
}
