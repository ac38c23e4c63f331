package models

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strings"
)

const ResourceDelimiter = ","

var ErrResourceDelimiter = errors.New("resource contains the list delimiter")

// ResourceList is the ordered list of resource hashes a level depends on.
// It is persisted as one comma joined column.
type ResourceList []string

// ParseResourceList unpacks a stored resource column. A value without a delimiter
// is a single resource and an empty value is an empty list.
func ParseResourceList(packed string) ResourceList {
	if packed == "" {
		return ResourceList{}
	}
	return ResourceList(strings.Split(packed, ResourceDelimiter))
}

func (r ResourceList) String() string {
	return strings.Join(r, ResourceDelimiter)
}

func (r ResourceList) Validate() error {
	for i, resource := range r {
		if strings.Contains(resource, ResourceDelimiter) {
			return fmt.Errorf("%w: index %d (%q)", ErrResourceDelimiter, i, resource)
		}
	}
	return nil
}

func (r ResourceList) Contains(hash string) bool {
	for _, resource := range r {
		if resource == hash {
			return true
		}
	}
	return false
}

func (r ResourceList) Value() (driver.Value, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r.String(), nil
}

func (r *ResourceList) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		*r = ResourceList{}
	case string:
		*r = ParseResourceList(v)
	case []byte:
		*r = ParseResourceList(string(v))
	default:
		return fmt.Errorf("cannot scan %T into ResourceList", value)
	}
	return nil
}
