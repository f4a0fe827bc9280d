package category

import (
	"fmt"
	"strings"
	"time"

	"quickdesk/internal/shared/biztime"
)

const (
	maxNameLength        = 100
	maxDescriptionLength = 500
)

type Category struct {
	id          uint
	name        string
	description string
	isActive    bool
	createdAt   time.Time
}

func NewCategory(name, description string) (*Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if len(name) > maxNameLength {
		return nil, fmt.Errorf("name exceeds maximum length of %d characters", maxNameLength)
	}
	if len(description) > maxDescriptionLength {
		return nil, fmt.Errorf("description exceeds maximum length of %d characters", maxDescriptionLength)
	}

	return &Category{
		name:        name,
		description: description,
		isActive:    true,
		createdAt:   biztime.NowUTC(),
	}, nil
}

func ReconstructCategory(
	id uint,
	name string,
	description string,
	isActive bool,
	createdAt time.Time,
) (*Category, error) {
	if id == 0 {
		return nil, fmt.Errorf("category ID cannot be zero")
	}
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}

	return &Category{
		id:          id,
		name:        name,
		description: description,
		isActive:    isActive,
		createdAt:   createdAt,
	}, nil
}

func (c *Category) ID() uint {
	return c.id
}

func (c *Category) Name() string {
	return c.name
}

func (c *Category) Description() string {
	return c.description
}

func (c *Category) IsActive() bool {
	return c.isActive
}

func (c *Category) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Category) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" || len(name) > maxNameLength {
		return fmt.Errorf("name must be between 1 and %d characters", maxNameLength)
	}
	c.name = name
	return nil
}

func (c *Category) UpdateDescription(description string) error {
	if len(description) > maxDescriptionLength {
		return fmt.Errorf("description exceeds maximum length of %d characters", maxDescriptionLength)
	}
	c.description = description
	return nil
}

func (c *Category) Activate() {
	c.isActive = true
}

func (c *Category) Deactivate() {
	c.isActive = false
}

func (c *Category) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("category ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("category ID cannot be zero")
	}
	c.id = id
	return nil
}
