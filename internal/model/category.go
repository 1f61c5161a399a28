package model

// Category groups step lists. Categories are owned by the store; dialogs only
// read them to populate selectors.
type Category struct {
	ID   int64
	Name string
	Icon string
}

// DisplayName returns the category label shown in selectors ("icon name").
func (c Category) DisplayName() string {
	if c.Icon == "" {
		return c.Name
	}
	return c.Icon + " " + c.Name
}
