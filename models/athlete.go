package models

type Athlete struct {
	ID   string `json:"id"`
	Name string `json:"nome"`
}
