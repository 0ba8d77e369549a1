package editor

import (
	"viukon-cms/models"

	"github.com/oklog/ulid/v2"
)

// NewID returns a timestamp-derived, lexically sortable id.
func NewID() string {
	return ulid.Make().String()
}

func NewProjectTemplate(id string) models.Project {
	return models.Project{
		ID:          id,
		Title:       "New Project",
		Category:    models.CategoryBranding,
		Description: "Project description goes here...",
		Img:         "https://images.unsplash.com/photo-1460925895917-afdab827c52f?auto=format&fit=crop&q=80&w=800",
		Tags:        []string{"New", "Strategy"},
	}
}

func NewTeamMemberTemplate(id string) models.TeamMember {
	return models.TeamMember{
		ID:   id,
		Name: "New Member",
		Role: "Creative Lead",
		Img:  "https://i.pravatar.cc/400?u=" + id,
	}
}

// PlaceholderSiteData is shown when the initial fetch fails.
func PlaceholderSiteData() *models.SiteData {
	brands := []string{"FINTECH", "SNAP PAY", "IMOS", "MOE MEDIA", "SWC GLOBAL", "DFIT LABS", "VORTEX AI", "APEX SYSTEMS"}
	return &models.SiteData{
		Hero: models.Hero{
			Title:         "ENGINEERING",
			CarouselWords: []string{"FUTURE SCALE", "BRAND GROWTH", "DIGITAL IMPACT", "DATA VISION", "CREATIVE ROI"},
		},
		Projects: []models.Project{
			{ID: "1", Title: "Aura Fitness", Category: models.CategoryBrandIdentity, Img: "https://images.unsplash.com/photo-1517836357463-d25dfeac3438?auto=format&fit=crop&q=80&w=800", Tags: []string{"Strategy", "SEO"}},
			{ID: "2", Title: "Neon Vault", Category: models.CategoryECommerce, Img: "https://images.unsplash.com/photo-1563013544-824ae1b704d3?auto=format&fit=crop&q=80&w=800", Tags: []string{"Web Design", "UI"}},
			{ID: "3", Title: "Kinetix Hub", Category: models.CategoryAppDesign, Img: "https://images.unsplash.com/photo-1551434678-e076c223a692?auto=format&fit=crop&q=80&w=800", Tags: []string{"Full Stack", "Mobile"}},
			{ID: "4", Title: "Solaris Pro", Category: models.CategoryGrowthMarketing, Img: "https://images.unsplash.com/photo-1460925895917-afdab827c52f?auto=format&fit=crop&q=80&w=800", Tags: []string{"Ads", "Creative"}},
		},
		Team: []models.TeamMember{
			{ID: "1", Name: "Alex Thorne", Role: "Founder & CEO", Img: "https://i.pravatar.cc/400?u=alex"},
			{ID: "2", Name: "Sarah Chen", Role: "Head of Creative", Img: "https://i.pravatar.cc/400?u=sarah"},
			{ID: "3", Name: "Marcus Bell", Role: "Strategy Director", Img: "https://i.pravatar.cc/400?u=marcus"},
			{ID: "4", Name: "Elena Rodriguez", Role: "Operations Lead", Img: "https://i.pravatar.cc/400?u=elena"},
			{ID: "5", Name: "David Park", Role: "Data Scientist", Img: "https://i.pravatar.cc/400?u=david"},
			{ID: "6", Name: "Sophia Miller", Role: "Client Relations", Img: "https://i.pravatar.cc/400?u=sophia"},
		},
		Contact: models.Contact{
			Email:   "hello@viukon.com",
			Address: "32 Curzon St, London",
		},
		// The marquee repeats the brand strip twice.
		TrustedBrands: append(append([]string{}, brands...), brands...),
		Stats: models.Stats{
			Projects:   150,
			Clients:    85,
			Engagement: 25000,
		},
		About: models.About{
			YearsExperience: 5,
			PartnerPrograms: 12,
			TeamImage:       "https://images.unsplash.com/photo-1522071820081-009f0129c71c?auto=format&fit=crop&q=80&w=1200",
		},
	}
}
