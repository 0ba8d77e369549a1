package models

// Project is a portfolio entry. ID is assigned at creation and never changes.
type Project struct {
	ID          string   `json:"id" bson:"id" db:"id" validate:"required,max=64"`
	Title       string   `json:"title" bson:"title" db:"title" validate:"max=200"`
	Category    string   `json:"category" bson:"category" db:"category" validate:"max=120"`
	Description string   `json:"description,omitempty" bson:"description,omitempty" db:"description" validate:"max=5000"`
	Img         string   `json:"img" bson:"img" db:"img" validate:"max=2048"`
	Tags        []string `json:"tags" bson:"tags" validate:"dive,max=60"`
	Link        string   `json:"link,omitempty" bson:"link,omitempty" db:"link" validate:"max=2048"`
	Featured    bool     `json:"featured" bson:"featured" db:"featured"`
}

// Suggested categories offered by the admin editor. Category stays free text.
const (
	CategoryBrandIdentity   = "Brand Identity"
	CategoryECommerce       = "E-Commerce"
	CategoryAppDesign       = "App Design"
	CategoryGrowthMarketing = "Growth Marketing"
	CategoryBranding        = "Branding"
)

func ProjectCategories() []string {
	return []string{
		CategoryBrandIdentity,
		CategoryECommerce,
		CategoryAppDesign,
		CategoryGrowthMarketing,
		CategoryBranding,
	}
}

func (p Project) Clone() Project {
	p.Tags = cloneStrings(p.Tags)
	return p
}
