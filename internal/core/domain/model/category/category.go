// Package category holds the read model for product categories. Categories
// are owned by the product service and are looked up by their natural key,
// the category name, rather than by a surrogate id.
package category

// Category is the externally owned category entity.
type Category struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Key returns the natural key the resolver dispatches on.
func (c Category) Key() string {
	return c.Name
}
