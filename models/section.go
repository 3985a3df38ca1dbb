package models

type Section struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Department string `json:"department"`
	Year       int    `json:"year"`
	AdvisorID  string `json:"advisor_id"`
}
