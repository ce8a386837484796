package blog

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"slices"
	"strings"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"gopkg.in/yaml.v3"

	"github.com/supernalintelligence/interface-docs-sub001/internal/config"
	"github.com/supernalintelligence/interface-docs-sub001/pkg/fuzzy"
	"github.com/supernalintelligence/interface-docs-sub001/pkg/logger"
	"github.com/supernalintelligence/interface-docs-sub001/pkg/tracing"
)

var ErrPostNotFound = errors.New("post not found")

const wordsPerMinute = 200

// Service indexes markdown posts from a filesystem and answers lookups
// from memory. Refresh swaps the whole index atomically.
type Service struct {
	fsys   fs.FS
	log    *slog.Logger
	mu     sync.RWMutex
	posts  []*Post
	bySlug map[string]*Post
	loaded time.Time
}

// NewService reads posts from cfg.Blog.Dir.
func NewService(cfg *config.Config, log *slog.Logger) *Service {
	return NewServiceFS(os.DirFS(cfg.Blog.Dir), log)
}

// NewServiceFS reads posts from fsys.
func NewServiceFS(fsys fs.FS, log *slog.Logger) *Service {
	return &Service{
		fsys:   fsys,
		log:    log.With(logger.Scope("blog")),
		bySlug: make(map[string]*Post),
	}
}

func parseFrontmatter(content []byte) (*Frontmatter, string, error) {
	content = bytes.ReplaceAll(content, []byte("\r\n"), []byte("\n"))
	if !bytes.HasPrefix(content, []byte("---\n")) {
		return nil, string(content), nil
	}

	parts := bytes.SplitN(content[4:], []byte("\n---\n"), 2)
	if len(parts) != 2 {
		return nil, string(content), fmt.Errorf("invalid frontmatter: missing closing delimiter")
	}

	var fm Frontmatter
	if err := yaml.Unmarshal(parts[0], &fm); err != nil {
		return nil, string(content), fmt.Errorf("failed to parse frontmatter: %w", err)
	}

	return &fm, string(parts[1]), nil
}

func slugFromPath(p string) string {
	base := path.Base(p)
	return strings.TrimSuffix(base, path.Ext(base))
}

func readTime(body string) int {
	words := len(strings.Fields(body))
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	return max(minutes, 1)
}

func (s *Service) parsePost(p string) (*Post, error) {
	content, err := fs.ReadFile(s.fsys, p)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	fm, body, err := parseFrontmatter(content)
	if err != nil {
		return nil, err
	}
	if fm == nil {
		return nil, fmt.Errorf("post missing frontmatter: %s", p)
	}
	if fm.Draft {
		return nil, nil
	}
	if strings.TrimSpace(fm.Title) == "" {
		return nil, fmt.Errorf("post missing title: %s", p)
	}

	slug := fm.Slug
	if slug == "" {
		slug = slugFromPath(p)
	}

	var date time.Time
	if fm.Date != "" {
		date, err = time.Parse(time.DateOnly, fm.Date)
		if err != nil {
			return nil, fmt.Errorf("invalid date %q in %s: %w", fm.Date, p, err)
		}
	}

	tags := fm.Tags
	if tags == nil {
		tags = []string{}
	}

	body = strings.TrimSpace(body)
	return &Post{
		Slug:        slug,
		Title:       fm.Title,
		Description: fm.Description,
		Author:      fm.Author,
		Tags:        tags,
		Date:        date,
		Path:        p,
		ReadTime:    readTime(body),
		Content:     body,
	}, nil
}

// Refresh re-reads every *.md file. Bad files are logged and skipped; a
// duplicate slug keeps the first file found.
func (s *Service) Refresh(ctx context.Context) error {
	_, span := tracing.Start(ctx, "blog.refresh")
	defer span.End()

	var posts []*Post
	bySlug := make(map[string]*Post)

	err := fs.WalkDir(s.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(p, ".md") {
			return nil
		}

		post, err := s.parsePost(p)
		if err != nil {
			s.log.Warn("failed to parse post", slog.String("path", p), logger.Error(err))
			return nil
		}
		if post == nil {
			return nil
		}
		if prev, dup := bySlug[post.Slug]; dup {
			s.log.Warn("duplicate post slug",
				slog.String("slug", post.Slug),
				slog.String("path", p),
				slog.String("kept", prev.Path))
			return nil
		}

		bySlug[post.Slug] = post
		posts = append(posts, post)
		return nil
	})
	if err != nil {
		tracing.RecordError(span, err)
		return fmt.Errorf("failed to walk blog directory: %w", err)
	}

	slices.SortStableFunc(posts, func(a, b *Post) int {
		if c := b.Date.Compare(a.Date); c != 0 {
			return c
		}
		return strings.Compare(a.Slug, b.Slug)
	})

	s.mu.Lock()
	s.posts = posts
	s.bySlug = bySlug
	s.loaded = time.Now()
	s.mu.Unlock()

	span.SetAttributes(attribute.Int("blog.posts", len(posts)))
	s.log.Info("blog index refreshed", slog.Int("posts", len(posts)))
	return nil
}

// Loaded reports when the index was last refreshed; zero if never.
func (s *Service) Loaded() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// Count returns the number of indexed posts.
func (s *Service) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.posts)
}

func (s *Service) snapshot() []*Post {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.posts
}

// List returns posts newest first, optionally only those tagged tag.
func (s *Service) List(tag string) []PostMeta {
	out := []PostMeta{}
	for _, p := range s.snapshot() {
		if tag != "" && !slices.ContainsFunc(p.Tags, func(t string) bool { return strings.EqualFold(t, tag) }) {
			continue
		}
		out = append(out, p.Meta())
	}
	return out
}

// Get returns a post by slug.
func (s *Service) Get(slug string) (*Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.bySlug[slug]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrPostNotFound, slug)
	}
	return p, nil
}

func searchText(p *Post) []string {
	return append([]string{p.Title, p.Slug, p.Description}, p.Tags...)
}

func bestText(p *Post) []string {
	return append([]string{p.Title, p.Slug, strings.ReplaceAll(p.Slug, "-", " ")}, p.Tags...)
}

// Search ranks posts against query. limit <= 0 means no limit.
func (s *Service) Search(ctx context.Context, query string, limit int) []PostMeta {
	_, span := tracing.Start(ctx, "blog.search", attribute.String("blog.query", query))
	defer span.End()

	found := fuzzy.FindAll(s.snapshot(), query, searchText)
	if limit > 0 && len(found) > limit {
		found = found[:limit]
	}

	out := make([]PostMeta, 0, len(found))
	for _, p := range found {
		out = append(out, p.Meta())
	}
	span.SetAttributes(attribute.Int("blog.results", len(out)))
	return out
}

// Rank is Search with relevance scores kept.
func (s *Service) Rank(query string, limit int) []fuzzy.Match[PostMeta] {
	ranked := fuzzy.Rank(s.snapshot(), query, searchText)
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	out := make([]fuzzy.Match[PostMeta], len(ranked))
	for i, m := range ranked {
		out[i] = fuzzy.Match[PostMeta]{Item: m.Item.Meta(), Score: m.Score}
	}
	return out
}

// Best resolves a free-text reference ("the boilerplate post") to one post.
func (s *Service) Best(query string) (*Post, bool) {
	return fuzzy.FindBest(s.snapshot(), query, bestText)
}

// Tags counts posts per tag, most used first.
func (s *Service) Tags() []TagCount {
	counts := map[string]int{}
	var order []string
	for _, p := range s.snapshot() {
		for _, t := range p.Tags {
			if _, ok := counts[t]; !ok {
				order = append(order, t)
			}
			counts[t]++
		}
	}

	out := make([]TagCount, 0, len(order))
	for _, t := range order {
		out = append(out, TagCount{Name: t, Count: counts[t]})
	}
	slices.SortStableFunc(out, func(a, b TagCount) int {
		if a.Count != b.Count {
			return b.Count - a.Count
		}
		return strings.Compare(a.Name, b.Name)
	})
	return out
}

// Paragraphs splits a post body on blank lines for plain rendering.
func Paragraphs(body string) []string {
	var out []string
	for _, block := range strings.Split(strings.ReplaceAll(body, "\r\n", "\n"), "\n\n") {
		if b := strings.TrimSpace(block); b != "" {
			out = append(out, b)
		}
	}
	return out
}
