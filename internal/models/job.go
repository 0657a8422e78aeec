package models

import (
	"encoding/json"
	"time"
)

// Job is a posting published through a placement cycle.
type Job struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Employer        string    `json:"employer"`
	Location        string    `json:"location"`
	Description     string    `json:"description"`
	Skills          []string  `json:"skills"`
	SalaryMin       float64   `json:"salaryMin"`
	SalaryMax       float64   `json:"salaryMax"`
	RemotePolicy    string    `json:"remotePolicy"`
	PlacementCycle  string    `json:"placementCycle"`
	ApplyBy         time.Time `json:"applyBy"`
	PostedAt        time.Time `json:"postedAt"`
	EligibleSchools []string  `json:"eligibleSchools"`
}

func (j Job) MarshalBinary() ([]byte, error) {
	return json.Marshal(j)
}

func (j *Job) UnmarshalBinary(data []byte) error {
	return json.Unmarshal(data, j)
}

// JobList exists so a whole page of postings can round-trip through the cache.
type JobList []Job

func (l JobList) MarshalBinary() ([]byte, error) {
	return json.Marshal(l)
}

func (l *JobList) UnmarshalBinary(data []byte) error {
	return json.Unmarshal(data, l)
}

// PlacementCycle is an administrative window jobs are grouped under.
type PlacementCycle struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	StartsAt time.Time `json:"startsAt"`
	EndsAt   time.Time `json:"endsAt"`
	Active   bool      `json:"active"`
}

// Campus is a physical campus students are affiliated with.
type Campus struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	City string `json:"city"`
}
