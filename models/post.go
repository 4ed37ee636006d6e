package models

// Post is a user post as returned in post streams.
type Post struct {
	ID       ID     `json:"id"`
	Token    string `json:"token"`
	Href     string `json:"href"`
	AuthorID ID     `json:"author_id"`

	// Summary is the truncated body shown in lists; Content is the full body.
	Summary PostBlocks `json:"summary,omitempty"`
	Content PostBlocks `json:"content,omitempty"`

	Links PostLinks `json:"links"`
}

// PostLinks references side-loaded resources of a post.
type PostLinks struct {
	Author     *AuthorLink `json:"author,omitempty"`
	Categories []ID        `json:"categories,omitempty"`
	Assets     []ID        `json:"assets,omitempty"`
}

// AuthorLink references the author of a post.
type AuthorLink struct {
	ID ID `json:"id"`
}

// Author returns the id of the post author, preferring the explicit
// author_id field over the links entry.
func (p Post) Author() ID {
	if p.AuthorID != "" {
		return p.AuthorID
	}
	if p.Links.Author != nil {
		return p.Links.Author.ID
	}
	return ""
}

// User is a post author.
type User struct {
	ID       ID     `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Avatar   *Image `json:"avatar,omitempty"`
}

// Asset is an uploaded attachment referenced by image blocks.
type Asset struct {
	ID         ID     `json:"id"`
	Attachment *Image `json:"attachment,omitempty"`
}

// Linked carries resources side-loaded with a post stream.
type Linked struct {
	Users      []User     `json:"users,omitempty"`
	Categories []Category `json:"categories,omitempty"`
	Assets     []Asset    `json:"assets,omitempty"`
}

// User returns the side-loaded user with the given id.
func (l Linked) User(id ID) (User, bool) {
	for _, u := range l.Users {
		if u.ID == id {
			return u, true
		}
	}
	return User{}, false
}

// PostStream is one page of posts plus side-loaded resources.
type PostStream struct {
	Linked Linked `json:"linked"`
	Posts  []Post `json:"posts"`

	// Next is the cursor for the following page. Depending on the endpoint
	// it is either a "before" timestamp or a page number. Empty means there
	// are no further pages.
	Next string `json:"-"`
}
