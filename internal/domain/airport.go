package domain

import "strings"

type Airport struct {
	ID             int64
	Name           string
	ClosestBigCity string
}

func (a *Airport) Validate() error {
	v := &ValidationError{}
	if strings.TrimSpace(a.Name) == "" {
		v.Add("name", "This field may not be blank.")
	}
	if strings.TrimSpace(a.ClosestBigCity) == "" {
		v.Add("closest_big_city", "This field may not be blank.")
	}
	return v.OrNil()
}

type Route struct {
	ID            int64
	SourceID      int64
	DestinationID int64
	Distance      int

	// Source and Destination are filled by read queries only.
	Source      Airport
	Destination Airport
}

// Validate rejects a route that starts and ends at the same airport.
func (r *Route) Validate() error {
	v := &ValidationError{}
	if r.SourceID <= 0 {
		v.Add("source", "This field is required.")
	}
	if r.DestinationID <= 0 {
		v.Add("destination", "This field is required.")
	}
	if r.Distance <= 0 {
		v.Add("distance", "Ensure this value is greater than 0.")
	}
	if r.SourceID > 0 && r.SourceID == r.DestinationID {
		v.Add(NonFieldErrors, "Source and destination cannot be the same.")
	}
	return v.OrNil()
}

// Label renders the route as "source - destination".
func (r Route) Label() string {
	return r.Source.Name + " - " + r.Destination.Name
}

type RouteFilter struct {
	Source      string
	Destination string
}
