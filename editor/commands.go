// Package editor is the headless admin editing surface: typed edit commands,
// a single state owner, the drag-reorder control and the autosave loop.
package editor

import "viukon-cms/models"

// Command is one edit of the site document. The set is closed; Reduce
// handles every implementation.
type Command interface {
	commandName() string
}

type ContactField string

const (
	ContactEmail   ContactField = "email"
	ContactPhone   ContactField = "phone"
	ContactAddress ContactField = "address"
)

type StatField string

const (
	StatProjects   StatField = "projects"
	StatClients    StatField = "clients"
	StatEngagement StatField = "engagement"
)

type AboutCounter string

const (
	AboutYearsExperience AboutCounter = "yearsExperience"
	AboutPartnerPrograms AboutCounter = "partnerPrograms"
)

type ProjectField string

const (
	ProjectTitle       ProjectField = "title"
	ProjectCategory    ProjectField = "category"
	ProjectDescription ProjectField = "description"
	ProjectImg         ProjectField = "img"
	ProjectLink        ProjectField = "link"
)

type TeamField string

const (
	TeamName TeamField = "name"
	TeamRole TeamField = "role"
	TeamImg  TeamField = "img"
)

type SetHeroTitle struct {
	Title string
}

type SetCarouselWord struct {
	Index int
	Word  string
}

type AddCarouselWord struct {
	Word string
}

type RemoveCarouselWord struct {
	Index int
}

type SetContactField struct {
	Field ContactField
	Value string
}

type AddTrustedBrand struct {
	Name string
}

type SetTrustedBrand struct {
	Index int
	Name  string
}

type RemoveTrustedBrand struct {
	Index int
}

type SetStat struct {
	Field StatField
	Value int
}

type SetAboutCounter struct {
	Field AboutCounter
	Value int
}

type SetTeamImage struct {
	URL string
}

type AddProject struct {
	Project models.Project
}

type SetProjectField struct {
	ID    string
	Field ProjectField
	Value string
}

type SetProjectTags struct {
	ID   string
	Tags []string
}

type SetProjectFeatured struct {
	ID       string
	Featured bool
}

// RemoveProject also drops the id from the saved project order.
type RemoveProject struct {
	ID string
}

// ReorderProjects applies Order to the projects and saves the resulting
// sequence as the project order.
type ReorderProjects struct {
	Order []string
}

type AddTeamMember struct {
	Member models.TeamMember
}

type SetTeamMemberField struct {
	ID    string
	Field TeamField
	Value string
}

type RemoveTeamMember struct {
	ID string
}

type ReorderTeam struct {
	Order []string
}

// ReplaceDocument swaps in a whole document, e.g. after a fetch.
type ReplaceDocument struct {
	Doc *models.SiteData
}

func (SetHeroTitle) commandName() string       { return "SetHeroTitle" }
func (SetCarouselWord) commandName() string    { return "SetCarouselWord" }
func (AddCarouselWord) commandName() string    { return "AddCarouselWord" }
func (RemoveCarouselWord) commandName() string { return "RemoveCarouselWord" }
func (SetContactField) commandName() string    { return "SetContactField" }
func (AddTrustedBrand) commandName() string    { return "AddTrustedBrand" }
func (SetTrustedBrand) commandName() string    { return "SetTrustedBrand" }
func (RemoveTrustedBrand) commandName() string { return "RemoveTrustedBrand" }
func (SetStat) commandName() string            { return "SetStat" }
func (SetAboutCounter) commandName() string    { return "SetAboutCounter" }
func (SetTeamImage) commandName() string       { return "SetTeamImage" }
func (AddProject) commandName() string         { return "AddProject" }
func (SetProjectField) commandName() string    { return "SetProjectField" }
func (SetProjectTags) commandName() string     { return "SetProjectTags" }
func (SetProjectFeatured) commandName() string { return "SetProjectFeatured" }
func (RemoveProject) commandName() string      { return "RemoveProject" }
func (ReorderProjects) commandName() string    { return "ReorderProjects" }
func (AddTeamMember) commandName() string      { return "AddTeamMember" }
func (SetTeamMemberField) commandName() string { return "SetTeamMemberField" }
func (RemoveTeamMember) commandName() string   { return "RemoveTeamMember" }
func (ReorderTeam) commandName() string        { return "ReorderTeam" }
func (ReplaceDocument) commandName() string    { return "ReplaceDocument" }
