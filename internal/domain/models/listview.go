// internal/domain/models/listview.go
package models

// The public listing pages filter by an exact category (with an "All"
// sentinel) and search case-insensitively across the title plus one
// secondary field. These methods feed the listview helper; value
// receivers let store result slices be filtered without copying into
// pointer slices.

func (s Solution) FilterCategory() string { return s.Category }
func (s Solution) SearchFields() []string { return []string{s.Title, s.Author} }

func (p Problem) FilterCategory() string { return p.Category }
func (p Problem) SearchFields() []string { return []string{p.Title, p.SubmittedBy} }

func (b BlogPost) FilterCategory() string { return b.Category }
func (b BlogPost) SearchFields() []string { return []string{b.Title, b.Author} }

func (c Course) FilterCategory() string { return c.Category }
func (c Course) SearchFields() []string { return []string{c.Title, c.Instructor} }

func (p Program) FilterCategory() string { return p.Type }
func (p Program) SearchFields() []string { return []string{p.Title, p.Description} }

func (c CapstoneProject) FilterCategory() string { return c.University }
func (c CapstoneProject) SearchFields() []string { return []string{c.Title, c.Author} }
