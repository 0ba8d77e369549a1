package models

// SiteData is the single document holding every editable piece of site content.
type SiteData struct {
	Hero          Hero         `json:"hero" bson:"hero"`
	Projects      []Project    `json:"projects" bson:"projects" validate:"dive"`
	Team          []TeamMember `json:"team" bson:"team" validate:"dive"`
	Contact       Contact      `json:"contact" bson:"contact"`
	TrustedBrands []string     `json:"trustedBrands" bson:"trustedBrands" validate:"dive,max=120"`
	Stats         Stats        `json:"stats" bson:"stats"`
	About         About        `json:"about" bson:"about"`
}

type Hero struct {
	Title         string   `json:"title" bson:"title" validate:"max=300"`
	CarouselWords []string `json:"carouselWords" bson:"carouselWords" validate:"dive,max=120"`
}

type Contact struct {
	Email   string `json:"email" bson:"email" validate:"max=254"`
	Phone   string `json:"phone" bson:"phone" validate:"max=64"`
	Address string `json:"address" bson:"address" validate:"max=300"`
}

// Stats are the counters shown on the home and services pages.
type Stats struct {
	Projects   int `json:"projects" bson:"projects" validate:"min=0"`
	Clients    int `json:"clients" bson:"clients" validate:"min=0"`
	Engagement int `json:"engagement" bson:"engagement" validate:"min=0"`
}

// About carries the about-page figures and the saved display orders.
// TeamOrder and ProjectOrder may reference ids that no longer exist.
type About struct {
	YearsExperience int      `json:"yearsExperience" bson:"yearsExperience" validate:"min=0"`
	PartnerPrograms int      `json:"partnerPrograms" bson:"partnerPrograms" validate:"min=0"`
	TeamImage       string   `json:"teamImage" bson:"teamImage" validate:"max=2048"`
	TeamOrder       []string `json:"teamOrder,omitempty" bson:"teamOrder,omitempty"`
	ProjectOrder    []string `json:"projectOrder,omitempty" bson:"projectOrder,omitempty"`
}

// Normalize replaces nil collections with empty ones so the document always
// serializes with arrays. Empty order lists are collapsed to nil.
func (d *SiteData) Normalize() {
	if d.Hero.CarouselWords == nil {
		d.Hero.CarouselWords = []string{}
	}
	if d.Projects == nil {
		d.Projects = []Project{}
	}
	for i := range d.Projects {
		if d.Projects[i].Tags == nil {
			d.Projects[i].Tags = []string{}
		}
	}
	if d.Team == nil {
		d.Team = []TeamMember{}
	}
	if d.TrustedBrands == nil {
		d.TrustedBrands = []string{}
	}
	if len(d.About.TeamOrder) == 0 {
		d.About.TeamOrder = nil
	}
	if len(d.About.ProjectOrder) == 0 {
		d.About.ProjectOrder = nil
	}
}

// Clone returns a deep copy of the document.
func (d *SiteData) Clone() *SiteData {
	if d == nil {
		return nil
	}
	c := *d
	c.Hero.CarouselWords = cloneStrings(d.Hero.CarouselWords)
	if d.Projects != nil {
		c.Projects = make([]Project, len(d.Projects))
		for i, p := range d.Projects {
			c.Projects[i] = p.Clone()
		}
	}
	if d.Team != nil {
		c.Team = make([]TeamMember, len(d.Team))
		copy(c.Team, d.Team)
	}
	c.TrustedBrands = cloneStrings(d.TrustedBrands)
	c.About.TeamOrder = cloneStrings(d.About.TeamOrder)
	c.About.ProjectOrder = cloneStrings(d.About.ProjectOrder)
	return &c
}

func (d *SiteData) ProjectIDs() []string {
	ids := make([]string, len(d.Projects))
	for i, p := range d.Projects {
		ids[i] = p.ID
	}
	return ids
}

func (d *SiteData) TeamIDs() []string {
	ids := make([]string, len(d.Team))
	for i, m := range d.Team {
		ids[i] = m.ID
	}
	return ids
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}
