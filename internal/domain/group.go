package domain

import "fmt"

// ErrEmptyGroupName is returned when a group is created without a name.
var ErrEmptyGroupName = fmt.Errorf("%w: group name cannot be empty", ErrValidation)

// Group is a named collection of words and the scoping unit for a
// study session. Group names are unique across the whole catalog;
// the store enforces the uniqueness constraint.
type Group struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// NewGroup creates a new Group with the given name.
// The ID is assigned by the store on creation.
// Returns an error if validation fails.
func NewGroup(name string) (*Group, error) {
	group := &Group{Name: name}

	if err := group.Validate(); err != nil {
		return nil, err
	}

	return group, nil
}

// Validate checks if the Group has valid data.
func (g *Group) Validate() error {
	if g.Name == "" {
		return ErrEmptyGroupName
	}
	return nil
}
