package models

import "time"

// AgeGroup is the coarse age band used by the selector's difficulty policy.
type AgeGroup string

const (
	AgeGroupChild AgeGroup = "child"
	AgeGroupTeen  AgeGroup = "teen"
	AgeGroupAdult AgeGroup = "adult"
)

// AgeGroupFor maps an age in years onto its band.
func AgeGroupFor(age int) AgeGroup {
	switch {
	case age <= 12:
		return AgeGroupChild
	case age <= 17:
		return AgeGroupTeen
	default:
		return AgeGroupAdult
	}
}

type Profile struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Age       int       `json:"age"`
	AgeGroup  AgeGroup  `json:"age_group"`
	CreatedAt time.Time `json:"created_at"`
}
