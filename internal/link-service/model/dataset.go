package model

import "strings"

// Dataset is a catalog dataset as returned by the catalog search index.
type Dataset struct {
	ID              string            `json:"id"`
	Name            string            `json:"name"`
	Title           string            `json:"title"`
	Organization    string            `json:"organization"`
	MaintainerEmail string            `json:"maintainer_email"`
	AuthorEmail     string            `json:"author_email"`
	Resources       []DatasetResource `json:"resources"`
}

type DatasetResource struct {
	ID string `json:"id"`
}

type Organization struct {
	Name  string `json:"name"`
	Title string `json:"title"`
}

// ContactEmail is the maintainer email, falling back to the author email.
// Blank addresses count as unset. Empty means the dataset has no contact.
func (d Dataset) ContactEmail() string {
	if email := strings.TrimSpace(d.MaintainerEmail); email != "" {
		return email
	}
	return strings.TrimSpace(d.AuthorEmail)
}
