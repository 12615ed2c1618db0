// Package catalog holds the user-configured projects and the activities
// allowed for each, and flattens them into the list shown by pickers.
package catalog

import "fmt"

// Project is one configured project and its allowed activity descriptions.
type Project struct {
	ID          int64    `toml:"id"`
	Name        string   `toml:"name"`
	WorkspaceID int64    `toml:"workspace_id"`
	Activities  []string `toml:"activities"`
}

// Catalog is the ordered list of configured projects.
type Catalog []Project

// Item pairs a project with one activity for a single selection prompt.
type Item struct {
	ProjectID   int64
	WorkspaceID int64
	ProjectName string
	Description string
}

// Label renders the item the way pickers display it: "activity @ project".
func (i Item) Label() string {
	return fmt.Sprintf("%s @ %s", i.Description, i.ProjectName)
}

// Project returns the project with the given id.
func (c Catalog) Project(id int64) (Project, bool) {
	for _, p := range c {
		if p.ID == id {
			return p, true
		}
	}
	return Project{}, false
}

// ProjectName returns the display name for id, or false if id is not configured.
func (c Catalog) ProjectName(id int64) (string, bool) {
	p, ok := c.Project(id)
	if !ok {
		return "", false
	}
	return p.Name, true
}

// Items flattens projects x activities in configuration order.
// The position of an item is its only identity.
func (c Catalog) Items() []Item {
	var items []Item
	for _, p := range c {
		for _, activity := range p.Activities {
			items = append(items, Item{
				ProjectID:   p.ID,
				WorkspaceID: p.WorkspaceID,
				ProjectName: p.Name,
				Description: activity,
			})
		}
	}
	return items
}

// Labels returns display strings index-aligned with items.
func Labels(items []Item) []string {
	labels := make([]string, len(items))
	for i, item := range items {
		labels[i] = item.Label()
	}
	return labels
}
