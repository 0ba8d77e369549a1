package models

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/go-playground/assert/v2"
)

func sampleSiteData() *SiteData {
	doc := DefaultSiteData()
	doc.Projects = []Project{
		{ID: "p1", Title: "Aura Fitness", Category: CategoryBrandIdentity, Img: "https://example.com/a.jpg", Tags: []string{"Strategy", "SEO"}},
		{ID: "p2", Title: "Neon Vault", Category: CategoryECommerce, Img: "https://example.com/b.jpg", Tags: []string{"UI"}, Featured: true},
	}
	doc.Team = []TeamMember{
		{ID: "t1", Name: "Alex Thorne", Role: "Founder & CEO", Img: "https://example.com/alex.jpg"},
	}
	doc.TrustedBrands = []string{"FINTECH", "FINTECH", "IMOS"}
	doc.About.ProjectOrder = []string{"p2", "p1"}
	return doc
}

func TestSiteData_Clone(t *testing.T) {
	t.Run("should not share slices with the original", func(t *testing.T) {
		doc := sampleSiteData()
		clone := doc.Clone()
		assert.Equal(t, doc, clone)

		clone.Projects[0].Tags[0] = "changed"
		clone.Hero.CarouselWords[0] = "changed"
		clone.TrustedBrands[0] = "changed"
		clone.About.ProjectOrder[0] = "changed"
		clone.Team[0].Name = "changed"

		assert.Equal(t, "Strategy", doc.Projects[0].Tags[0])
		assert.Equal(t, "EXPERIENCES", doc.Hero.CarouselWords[0])
		assert.Equal(t, "FINTECH", doc.TrustedBrands[0])
		assert.Equal(t, "p2", doc.About.ProjectOrder[0])
		assert.Equal(t, "Alex Thorne", doc.Team[0].Name)
	})

	t.Run("should return nil for a nil document", func(t *testing.T) {
		var doc *SiteData
		assert.Equal(t, true, doc.Clone() == nil)
	})
}

func TestSiteData_Normalize(t *testing.T) {
	doc := &SiteData{
		Projects: []Project{{ID: "p1"}},
		About:    About{TeamOrder: []string{}},
	}
	doc.Normalize()

	assert.NotEqual(t, nil, doc.Hero.CarouselWords)
	assert.Equal(t, 0, len(doc.Team))
	assert.NotEqual(t, nil, doc.Team)
	assert.NotEqual(t, nil, doc.Projects[0].Tags)
	assert.NotEqual(t, nil, doc.TrustedBrands)
	assert.Equal(t, true, doc.About.TeamOrder == nil)

	out, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var raw map[string]any
	if err := json.Unmarshal(out, &raw); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	assert.Equal(t, []any{}, raw["team"])
	assert.Equal(t, []any{}, raw["trustedBrands"])
}

func TestDefaultSiteData(t *testing.T) {
	doc := DefaultSiteData()
	assert.NotEqual(t, "", doc.Hero.Title)
	assert.Equal(t, 0, len(doc.Projects))
	assert.Equal(t, 0, len(doc.Team))
	assert.Equal(t, nil, doc.Validate())
}

func TestSiteData_Validate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*SiteData)
		wantField string
	}{
		{
			name:      "should reject duplicate project ids",
			mutate:    func(d *SiteData) { d.Projects[1].ID = "p1" },
			wantField: "projects[1].id",
		},
		{
			name:      "should reject duplicate team ids",
			mutate:    func(d *SiteData) { d.Team = append(d.Team, TeamMember{ID: "t1"}) },
			wantField: "team[1].id",
		},
		{
			name:      "should reject an empty project id",
			mutate:    func(d *SiteData) { d.Projects[0].ID = "" },
			wantField: "projects[0].id",
		},
		{
			name:      "should reject negative stats",
			mutate:    func(d *SiteData) { d.Stats.Clients = -1 },
			wantField: "stats.clients",
		},
		{
			name:      "should reject negative about counters",
			mutate:    func(d *SiteData) { d.About.YearsExperience = -3 },
			wantField: "about.yearsExperience",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			doc := sampleSiteData()
			tc.mutate(doc)

			err := doc.Validate()
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("\nwanted:\n*ValidationError\ngot:\n%v", err)
			}
			assert.Equal(t, tc.wantField, verr.Problems[0].Field)
		})
	}

	t.Run("should accept duplicate trusted brands", func(t *testing.T) {
		doc := sampleSiteData()
		assert.Equal(t, nil, doc.Validate())
	})
}

func TestParseSiteData(t *testing.T) {
	t.Run("should decode a complete document", func(t *testing.T) {
		want := sampleSiteData()
		body, err := json.Marshal(want)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}

		got, err := ParseSiteData(body)
		if err != nil {
			t.Fatalf("\nwanted:\nnil\ngot:\n%v", err)
		}
		assert.Equal(t, want, got)
	})

	t.Run("should report missing sections", func(t *testing.T) {
		_, err := ParseSiteData([]byte(`{"hero":{"title":"x","carouselWords":[]},"projects":[]}`))
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("\nwanted:\n*ValidationError\ngot:\n%v", err)
		}
		assert.Equal(t, []FieldError{
			{Field: "team", Problem: "is required"},
			{Field: "contact", Problem: "is required"},
		}, verr.Problems)
	})

	t.Run("should reject a body that is not an object", func(t *testing.T) {
		_, err := ParseSiteData([]byte(`[1,2,3]`))
		var verr *ValidationError
		assert.Equal(t, true, errors.As(err, &verr))
		assert.Equal(t, "body", verr.Problems[0].Field)
	})

	t.Run("should report wrongly typed fields", func(t *testing.T) {
		_, err := ParseSiteData([]byte(`{"hero":{},"projects":[],"team":[],"contact":{},"stats":{"projects":"many"}}`))
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("\nwanted:\n*ValidationError\ngot:\n%v", err)
		}
		assert.Equal(t, "stats.projects", verr.Problems[0].Field)
	})

	t.Run("should fill omitted optional sections with empty values", func(t *testing.T) {
		doc, err := ParseSiteData([]byte(`{"hero":{"title":"x"},"projects":[],"team":[],"contact":{"email":"a@b.c"}}`))
		if err != nil {
			t.Fatalf("\nwanted:\nnil\ngot:\n%v", err)
		}
		assert.Equal(t, []string{}, doc.TrustedBrands)
		assert.Equal(t, Stats{}, doc.Stats)
		assert.Equal(t, []string{}, doc.Hero.CarouselWords)
	})
}
