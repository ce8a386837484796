package blog

import "time"

// Frontmatter is the YAML header of a post file.
type Frontmatter struct {
	Title       string   `yaml:"title"`
	Slug        string   `yaml:"slug"`
	Description string   `yaml:"description"`
	Date        string   `yaml:"date"`
	Author      string   `yaml:"author"`
	Tags        []string `yaml:"tags"`
	Draft       bool     `yaml:"draft"`
}

// Post is a parsed blog post including its markdown body.
type Post struct {
	Slug        string    `json:"slug"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Author      string    `json:"author,omitempty"`
	Tags        []string  `json:"tags"`
	Date        time.Time `json:"date"`
	Path        string    `json:"path"`
	ReadTime    int       `json:"readTime"`
	Content     string    `json:"content"`
}

// PostMeta is a post without its body.
type PostMeta struct {
	Slug        string    `json:"slug"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Author      string    `json:"author,omitempty"`
	Tags        []string  `json:"tags"`
	Date        time.Time `json:"date"`
	ReadTime    int       `json:"readTime"`
}

// Meta strips the body.
func (p *Post) Meta() PostMeta {
	return PostMeta{
		Slug:        p.Slug,
		Title:       p.Title,
		Description: p.Description,
		Author:      p.Author,
		Tags:        p.Tags,
		Date:        p.Date,
		ReadTime:    p.ReadTime,
	}
}

// URL is the site path of the post.
func (p *Post) URL() string {
	return "/blog/" + p.Slug
}

type PostList struct {
	Posts []PostMeta `json:"posts"`
	Total int        `json:"total"`
}

type SearchResponse struct {
	Query string     `json:"query"`
	Posts []PostMeta `json:"posts"`
	Total int        `json:"total"`
}

type TagsResponse struct {
	Tags  []TagCount `json:"tags"`
	Total int        `json:"total"`
}

type TagCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}
