package resume

import (
	_ "embed"
	"encoding/json"
	"fmt"
)

//go:embed data.json
var resumeJSON []byte

// PersonalInfo is the header block of the résumé.
type PersonalInfo struct {
	Name         string `json:"name"`
	Title        string `json:"title"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Location     string `json:"location"`
	Website      string `json:"website"`
	GitHub       string `json:"github"`
	LinkedIn     string `json:"linkedin"`
	Medium       string `json:"medium"`
	ProfileImage string `json:"profile_image"`
}

type Experience struct {
	Position         string   `json:"position"`
	Company          string   `json:"company"`
	Location         string   `json:"location"`
	Duration         string   `json:"duration"`
	Description      string   `json:"description"`
	Responsibilities []string `json:"responsibilities"`
	Projects         []string `json:"projects"`
	Technologies     []string `json:"technologies"`
}

type SkillGroup struct {
	Icon   string   `json:"icon"`
	Skills []string `json:"skills"`
}

type Education struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Location    string `json:"location"`
}

type Certification struct {
	Name   string `json:"name"`
	Issuer string `json:"issuer"`
	Issued string `json:"issued,omitempty"`
	Code   string `json:"code,omitempty"`
	Icon   string `json:"icon"`
	Status string `json:"status"`
}

type Project struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	Highlights   []string `json:"highlights"`
}

// Document is the full résumé content served by the pages and the JSON API.
type Document struct {
	PersonalInfo   PersonalInfo          `json:"personal_info"`
	Bio            string                `json:"bio"`
	Experience     []Experience          `json:"experience"`
	Skills         map[string]SkillGroup `json:"skills"`
	Education      []Education           `json:"education"`
	Certifications []Certification       `json:"certifications"`
	Projects       []Project             `json:"projects"`
	Stats          map[string]string     `json:"stats"`
	Languages      []string              `json:"languages"`
	Interests      []string              `json:"interests"`
}

// Load parses the embedded résumé document.
func Load() (*Document, error) {
	var doc Document
	if err := json.Unmarshal(resumeJSON, &doc); err != nil {
		return nil, fmt.Errorf("parse embedded resume data: %w", err)
	}
	return &doc, nil
}

// MustLoad parses the embedded résumé document or panics. The data ships
// inside the binary, so a parse failure is a build defect.
func MustLoad() *Document {
	doc, err := Load()
	if err != nil {
		panic(err)
	}
	return doc
}
