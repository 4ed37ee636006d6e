package service

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/jasvilladarez/ello-go/internal/logger"
	"github.com/jasvilladarez/ello-go/models"
)

// catalogEpoch anchors every generated timestamp so the catalog is the same
// on every run.
var catalogEpoch = time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)

var catalogCategories = []struct{ name, slug string }{
	{"Art", "art"},
	{"Photography", "photography"},
	{"Design", "design"},
	{"Illustration", "illustration"},
	{"Writing", "writing"},
}

const catalogUsers = 12

type catalog struct {
	pageSize int

	editorials []models.Editorial
	invites    []models.ArtistInvite
	categories []models.Category
	users      []models.User

	// posts are ordered newest first; postCategory[i] is the slug of posts[i].
	posts        []models.Post
	postCategory []string
	trending     []int

	logger *logger.Logger
}

// NewCatalog generates a deterministic catalog holding size items per
// collection and serving pageSize items per page.
func NewCatalog(size, pageSize int, log *logger.Logger) Catalog {
	c := &catalog{pageSize: pageSize, logger: log}
	c.generateUsers()
	c.generateCategories()
	c.generateEditorials(size)
	c.generateInvites(size)
	c.generatePosts(size)

	log.Info().Int("size", size).Int("page_size", pageSize).Msg("catalog generated")
	return c
}

func catalogImage(name string) *models.Image {
	return &models.Image{
		Mdpi:     &models.ImageVersion{URL: "https://assets.ello.test/" + name + "/mdpi.jpg"},
		Original: &models.ImageVersion{URL: "https://assets.ello.test/" + name + "/original.jpg"},
	}
}

func (c *catalog) generateUsers() {
	for i := 1; i <= catalogUsers; i++ {
		c.users = append(c.users, models.User{
			ID:       models.ID(strconv.Itoa(i)),
			Username: fmt.Sprintf("artist%d", i),
			Name:     fmt.Sprintf("Artist %d", i),
			Avatar:   catalogImage(fmt.Sprintf("avatars/%d", i)),
		})
	}
}

func (c *catalog) generateCategories() {
	for i, cat := range catalogCategories {
		c.categories = append(c.categories, models.Category{
			ID:        models.ID(strconv.Itoa(i + 1)),
			Name:      cat.name,
			Slug:      cat.slug,
			Order:     i,
			TileImage: catalogImage("categories/" + cat.slug),
		})
	}
}

func (c *catalog) generateEditorials(size int) {
	kinds := []models.EditorialKind{
		models.EditorialKindPost,
		models.EditorialKindExternal,
		models.EditorialKindInternal,
		models.EditorialKindPostStream,
	}

	for id := size; id >= 1; id-- {
		e := models.Editorial{
			ID:               models.ID(strconv.Itoa(id)),
			Kind:             kinds[id%len(kinds)],
			Title:            fmt.Sprintf("Editorial %d", id),
			Subtitle:         fmt.Sprintf("Story number %d", id),
			RenderedSubtitle: fmt.Sprintf("<p>Story number <b>%d</b></p>", id),
			Image:            catalogImage(fmt.Sprintf("editorials/%d", id)),
		}
		switch e.Kind {
		case models.EditorialKindPost:
			e.Links.Post = &models.PostLink{ID: e.ID, Href: "/api/v2/posts/" + string(e.ID)}
		case models.EditorialKindPostStream:
			e.Links.PostStream = &models.PostStreamLink{Href: "/api/v2/discover/posts/recent"}
		default:
			e.URL = fmt.Sprintf("https://ello.co/wtf/editorial-%d", id)
		}
		c.editorials = append(c.editorials, e)
	}
}

func (c *catalog) generateInvites(size int) {
	statuses := []models.ArtistInviteStatus{
		models.ArtistInviteStatusOpen,
		models.ArtistInviteStatusUpcoming,
		models.ArtistInviteStatusSelecting,
		models.ArtistInviteStatusClosed,
	}

	for i := range size {
		opened := catalogEpoch.AddDate(0, 0, -7*i)
		c.invites = append(c.invites, models.ArtistInvite{
			ID:               models.ID(strconv.Itoa(i + 1)),
			Slug:             fmt.Sprintf("invite-%d", i+1),
			Title:            fmt.Sprintf("Artist Invite %d", i+1),
			InviteType:       "Art Exhibition",
			ShortDescription: fmt.Sprintf("<p>Submit your work to invite <em>%d</em>.</p>", i+1),
			Description:      fmt.Sprintf("<p>Long description of invite %d.</p>", i+1),
			HeaderImage:      catalogImage(fmt.Sprintf("invites/%d/header", i+1)),
			LogoImage:        catalogImage(fmt.Sprintf("invites/%d/logo", i+1)),
			Status:           statuses[i%len(statuses)],
			OpenedAt:         opened.Format(models.ArtistInviteTimeLayout),
			ClosedAt:         opened.AddDate(0, 1, 0).Format(models.ArtistInviteTimeLayout),
		})
	}
}

func (c *catalog) generatePosts(size int) {
	for id := size; id >= 1; id-- {
		author := c.users[id%len(c.users)]
		summary := models.PostBlocks{
			models.TextBlock{Text: fmt.Sprintf("<p>Post <b>%d</b> by @%s</p>", id, author.Username)},
		}
		if id%2 == 0 {
			summary = append(summary, models.ImageBlock{Image: models.ImageVersion{
				URL: fmt.Sprintf("https://assets.ello.test/posts/%d.jpg", id),
			}})
		}

		c.posts = append(c.posts, models.Post{
			ID:       models.ID(strconv.Itoa(id)),
			Token:    fmt.Sprintf("post-%d", id),
			Href:     fmt.Sprintf("/api/v2/posts/%d", id),
			AuthorID: author.ID,
			Summary:  summary,
		})
		c.postCategory = append(c.postCategory, catalogCategories[id%len(catalogCategories)].slug)
	}

	// trending order is a fixed permutation of the posts
	c.trending = make([]int, len(c.posts))
	for i := range c.trending {
		c.trending[i] = i
	}
	slices.SortStableFunc(c.trending, func(a, b int) int {
		return (a*37)%101 - (b*37)%101
	})
}

func (c *catalog) Editorials(_ context.Context, before string) (models.EditorialStream, error) {
	page, next, err := pageBefore(c.editorials, func(e models.Editorial) models.ID { return e.ID }, before, c.pageSize)
	if err != nil {
		return models.EditorialStream{}, err
	}
	return models.EditorialStream{Editorials: page, Next: next}, nil
}

func (c *catalog) ArtistInvites(_ context.Context, page string) (models.ArtistInviteStream, error) {
	items, next, err := pageNumber(c.invites, page, c.pageSize)
	if err != nil {
		return models.ArtistInviteStream{}, err
	}
	return models.ArtistInviteStream{ArtistInvites: items, Next: next}, nil
}

func (c *catalog) Categories(_ context.Context, meta bool) ([]models.Category, error) {
	out := make([]models.Category, 0, len(c.categories)+3)
	if meta {
		for i, slug := range []string{models.CategorySlugFeatured, models.CategorySlugTrending, models.CategorySlugRecent} {
			out = append(out, models.Category{
				ID:    models.ID("meta-" + slug),
				Name:  strings.ToUpper(slug[:1]) + slug[1:],
				Slug:  slug,
				Order: i - 3,
			})
		}
	}
	return append(out, c.categories...), nil
}

func (c *catalog) CategoryPosts(_ context.Context, slug, before string) (models.PostStream, error) {
	if !slices.ContainsFunc(c.categories, func(cat models.Category) bool { return cat.Slug == slug }) {
		return models.PostStream{}, fmt.Errorf("%w: %s", ErrCategoryNotFound, slug)
	}
	return c.postsBefore(func(i int) bool { return c.postCategory[i] == slug }, before)
}

func (c *catalog) FeaturedPosts(_ context.Context, before string) (models.PostStream, error) {
	return c.postsBefore(func(i int) bool { return i%3 == 0 }, before)
}

func (c *catalog) RecentPosts(_ context.Context, before string) (models.PostStream, error) {
	return c.postsBefore(func(int) bool { return true }, before)
}

func (c *catalog) TrendingPosts(_ context.Context, page string, imagesOnly bool) (models.PostStream, error) {
	posts := make([]models.Post, 0, len(c.trending))
	for _, i := range c.trending {
		if imagesOnly && !hasImage(c.posts[i]) {
			continue
		}
		posts = append(posts, c.posts[i])
	}

	items, next, err := pageNumber(posts, page, c.pageSize)
	if err != nil {
		return models.PostStream{}, err
	}
	return c.postStream(items, next), nil
}

func (c *catalog) postsBefore(keep func(i int) bool, before string) (models.PostStream, error) {
	posts := make([]models.Post, 0, len(c.posts))
	for i, p := range c.posts {
		if keep(i) {
			posts = append(posts, p)
		}
	}

	items, next, err := pageBefore(posts, func(p models.Post) models.ID { return p.ID }, before, c.pageSize)
	if err != nil {
		return models.PostStream{}, err
	}
	return c.postStream(items, next), nil
}

// postStream side-loads the authors of posts.
func (c *catalog) postStream(posts []models.Post, next string) models.PostStream {
	stream := models.PostStream{Posts: posts, Next: next}
	for _, p := range posts {
		if slices.ContainsFunc(stream.Linked.Users, func(u models.User) bool { return u.ID == p.AuthorID }) {
			continue
		}
		if i := slices.IndexFunc(c.users, func(u models.User) bool { return u.ID == p.AuthorID }); i >= 0 {
			stream.Linked.Users = append(stream.Linked.Users, c.users[i])
		}
	}
	return stream
}

func hasImage(p models.Post) bool {
	return slices.ContainsFunc(p.Summary, func(b models.PostBlock) bool {
		_, ok := b.(models.ImageBlock)
		return ok
	})
}

// pageBefore returns up to size items whose numeric id is lower than before.
// Items must be ordered by descending id. The next cursor is the id of the
// last returned item when more items follow.
func pageBefore[T any](items []T, id func(T) models.ID, before string, size int) ([]T, string, error) {
	start := 0
	if before != "" {
		cursor, err := strconv.Atoi(before)
		if err != nil {
			return nil, "", fmt.Errorf("%w: %q", ErrInvalidCursor, before)
		}
		start = len(items)
		for i, item := range items {
			if n, _ := strconv.Atoi(string(id(item))); n < cursor {
				start = i
				break
			}
		}
	}

	end := min(start+size, len(items))
	page := slices.Clone(items[start:end])

	var next string
	if end < len(items) && len(page) > 0 {
		next = string(id(page[len(page)-1]))
	}
	return page, next, nil
}

// pageNumber returns the 1-based page of size items. The next cursor is the
// following page number when more items follow.
func pageNumber[T any](items []T, page string, size int) ([]T, string, error) {
	n := 1
	if page != "" {
		var err error
		if n, err = strconv.Atoi(page); err != nil || n < 1 {
			return nil, "", fmt.Errorf("%w: %q", ErrInvalidCursor, page)
		}
	}

	start := min((n-1)*size, len(items))
	end := min(start+size, len(items))

	var next string
	if end < len(items) {
		next = strconv.Itoa(n + 1)
	}
	return slices.Clone(items[start:end]), next, nil
}
