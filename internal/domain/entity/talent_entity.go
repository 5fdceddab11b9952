package entity

import "time"

const (
	AvailabilityAvailableNow = "Available Now"
	AvailabilityLimited      = "Limited Availability"
	AvailabilityUnavailable  = "Unavailable"
)

// Availabilities lists the accepted Talent.Availability values.
var Availabilities = []string{AvailabilityAvailableNow, AvailabilityLimited, AvailabilityUnavailable}

// Talent is a directory entry for a freelancer. Rating and CompletedProjects
// are owned by the service and start at zero.
type Talent struct {
	ID                int64     `json:"id" yaml:"id"`
	Name              string    `json:"name" yaml:"name"`
	Role              string    `json:"role" yaml:"role"`
	Bio               string    `json:"bio" yaml:"bio"`
	Avatar            string    `json:"avatar" yaml:"avatar"`
	Rating            int       `json:"rating" yaml:"rating"`
	Skills            []string  `json:"skills" yaml:"skills"`
	Location          string    `json:"location" yaml:"location"`
	Availability      string    `json:"availability" yaml:"availability"`
	Email             string    `json:"email" yaml:"email"`
	LinkedIn          string    `json:"linkedIn,omitempty" yaml:"linkedIn"`
	Website           string    `json:"website,omitempty" yaml:"website"`
	CompletedProjects int       `json:"completedProjects" yaml:"completedProjects"`
	CreatedAt         time.Time `json:"createdAt" yaml:"createdAt"`
}
