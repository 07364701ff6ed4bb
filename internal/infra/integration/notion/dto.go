package notion

import "time"

// Task is one row of the team task database, read-only.
type Task struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Status      string `json:"status"`
	Assignee    string `json:"assignee"`
	CreatedTime string `json:"createdTime"`
}

// BiometricRecord is one check-in/check-out row of the biometrics database.
type BiometricRecord struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	CheckIn    string `json:"checkIn"`
	CheckOut   string `json:"checkOut"`
	Status     string `json:"status"`
	Notes      string `json:"notes"`
	TotalHours string `json:"totalHours"`
}

// Wire shapes for the slice of the Notion API the hub touches.

type queryRequest struct {
	Filter any         `json:"filter,omitempty"`
	Sorts  []querySort `json:"sorts,omitempty"`
}

type querySort struct {
	Timestamp string `json:"timestamp"`
	Direction string `json:"direction"`
}

type queryResponse struct {
	Results []page `json:"results"`
}

type page struct {
	ID          string              `json:"id"`
	CreatedTime time.Time           `json:"created_time"`
	Properties  map[string]property `json:"properties"`
}

type property struct {
	Title    []richText    `json:"title"`
	RichText []richText    `json:"rich_text"`
	Select   *selectOption `json:"select"`
	People   []person      `json:"people"`
	Date     *dateValue    `json:"date"`
}

type richText struct {
	PlainText string `json:"plain_text"`
}

type selectOption struct {
	Name string `json:"name"`
}

type person struct {
	Name string `json:"name"`
}

type dateValue struct {
	Start string `json:"start"`
}

func (p property) plainTitle() string {
	text := ""
	for _, part := range p.Title {
		text += part.PlainText
	}
	return text
}

func (p property) plainText() string {
	text := ""
	for _, part := range p.RichText {
		text += part.PlainText
	}
	return text
}

func (p property) selectName() string {
	if p.Select == nil {
		return ""
	}
	return p.Select.Name
}

func (p property) firstPerson() string {
	if len(p.People) == 0 {
		return ""
	}
	return p.People[0].Name
}
