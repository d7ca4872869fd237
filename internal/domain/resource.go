package domain

type Resource struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Tag         string `json:"tag"`
}

type Achievement struct {
	Title  string `json:"title"`
	Detail string `json:"detail"`
}
