package domain

import "strings"

type Crew struct {
	ID        int64
	FirstName string
	LastName  string
}

func (c *Crew) Validate() error {
	v := &ValidationError{}
	if strings.TrimSpace(c.FirstName) == "" {
		v.Add("first_name", "This field may not be blank.")
	}
	if strings.TrimSpace(c.LastName) == "" {
		v.Add("last_name", "This field may not be blank.")
	}
	return v.OrNil()
}

func (c Crew) FullName() string {
	return c.FirstName + " " + c.LastName
}

// ErrDuplicateCrewMessage is reported when the same first/last name pair exists.
const ErrDuplicateCrewMessage = "A crew member with the same first name and last name already exists."
