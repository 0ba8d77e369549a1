package models

// DefaultSiteData is the document seeded into an empty store on first read.
func DefaultSiteData() *SiteData {
	return &SiteData{
		Hero: Hero{
			Title:         "WE CREATE DIGITAL",
			CarouselWords: []string{"EXPERIENCES", "SOLUTIONS", "BRANDS", "INNOVATIONS"},
		},
		Projects: []Project{},
		Team:     []TeamMember{},
		Contact: Contact{
			Email:   "hello@viukon.com",
			Address: "123 Creative Street, Design City",
		},
		TrustedBrands: []string{},
		Stats: Stats{
			Projects:   150,
			Clients:    85,
			Engagement: 25000,
		},
		About: About{
			YearsExperience: 5,
			PartnerPrograms: 12,
			TeamImage:       "https://images.unsplash.com/photo-1522071820081-009f0129c71c?auto=format&fit=crop&q=80&w=1200",
		},
	}
}
