package editor

import (
	"errors"
	"fmt"

	"viukon-cms/models"
	"viukon-cms/ordering"
)

var (
	ErrUnknownID       = errors.New("no item with that id")
	ErrEmptyID         = errors.New("id must not be empty")
	ErrDuplicateID     = ordering.ErrDuplicateID
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrNegativeCounter = errors.New("counter must not be negative")
	ErrUnknownField    = errors.New("unknown field")
	ErrUnknownCommand  = errors.New("unknown command")
	ErrNilDocument     = errors.New("document must not be nil")
)

func projectID(p models.Project) string   { return p.ID }
func memberID(m models.TeamMember) string { return m.ID }

// Reduce applies cmd to doc in place. On error doc may be partially
// modified, so callers reduce into a copy.
func Reduce(doc *models.SiteData, cmd Command) error {
	switch c := cmd.(type) {
	case SetHeroTitle:
		doc.Hero.Title = c.Title

	case SetCarouselWord:
		if !inRange(c.Index, len(doc.Hero.CarouselWords)) {
			return fmt.Errorf("carousel word %d: %w", c.Index, ErrIndexOutOfRange)
		}
		doc.Hero.CarouselWords[c.Index] = c.Word

	case AddCarouselWord:
		doc.Hero.CarouselWords = append(doc.Hero.CarouselWords, c.Word)

	case RemoveCarouselWord:
		if !inRange(c.Index, len(doc.Hero.CarouselWords)) {
			return fmt.Errorf("carousel word %d: %w", c.Index, ErrIndexOutOfRange)
		}
		doc.Hero.CarouselWords = removeAt(doc.Hero.CarouselWords, c.Index)

	case SetContactField:
		switch c.Field {
		case ContactEmail:
			doc.Contact.Email = c.Value
		case ContactPhone:
			doc.Contact.Phone = c.Value
		case ContactAddress:
			doc.Contact.Address = c.Value
		default:
			return fmt.Errorf("contact %q: %w", c.Field, ErrUnknownField)
		}

	case AddTrustedBrand:
		doc.TrustedBrands = append(doc.TrustedBrands, c.Name)

	case SetTrustedBrand:
		if !inRange(c.Index, len(doc.TrustedBrands)) {
			return fmt.Errorf("trusted brand %d: %w", c.Index, ErrIndexOutOfRange)
		}
		doc.TrustedBrands[c.Index] = c.Name

	case RemoveTrustedBrand:
		if !inRange(c.Index, len(doc.TrustedBrands)) {
			return fmt.Errorf("trusted brand %d: %w", c.Index, ErrIndexOutOfRange)
		}
		doc.TrustedBrands = removeAt(doc.TrustedBrands, c.Index)

	case SetStat:
		if c.Value < 0 {
			return fmt.Errorf("stat %q: %w", c.Field, ErrNegativeCounter)
		}
		switch c.Field {
		case StatProjects:
			doc.Stats.Projects = c.Value
		case StatClients:
			doc.Stats.Clients = c.Value
		case StatEngagement:
			doc.Stats.Engagement = c.Value
		default:
			return fmt.Errorf("stat %q: %w", c.Field, ErrUnknownField)
		}

	case SetAboutCounter:
		if c.Value < 0 {
			return fmt.Errorf("about %q: %w", c.Field, ErrNegativeCounter)
		}
		switch c.Field {
		case AboutYearsExperience:
			doc.About.YearsExperience = c.Value
		case AboutPartnerPrograms:
			doc.About.PartnerPrograms = c.Value
		default:
			return fmt.Errorf("about %q: %w", c.Field, ErrUnknownField)
		}

	case SetTeamImage:
		doc.About.TeamImage = c.URL

	case AddProject:
		if c.Project.ID == "" {
			return fmt.Errorf("project: %w", ErrEmptyID)
		}
		if indexOf(doc.Projects, c.Project.ID, projectID) >= 0 {
			return fmt.Errorf("project %q: %w", c.Project.ID, ErrDuplicateID)
		}
		p := c.Project.Clone()
		if p.Tags == nil {
			p.Tags = []string{}
		}
		doc.Projects = append(doc.Projects, p)

	case SetProjectField:
		i := indexOf(doc.Projects, c.ID, projectID)
		if i < 0 {
			return fmt.Errorf("project %q: %w", c.ID, ErrUnknownID)
		}
		p := &doc.Projects[i]
		switch c.Field {
		case ProjectTitle:
			p.Title = c.Value
		case ProjectCategory:
			p.Category = c.Value
		case ProjectDescription:
			p.Description = c.Value
		case ProjectImg:
			p.Img = c.Value
		case ProjectLink:
			p.Link = c.Value
		default:
			return fmt.Errorf("project %q: %w", c.Field, ErrUnknownField)
		}

	case SetProjectTags:
		i := indexOf(doc.Projects, c.ID, projectID)
		if i < 0 {
			return fmt.Errorf("project %q: %w", c.ID, ErrUnknownID)
		}
		doc.Projects[i].Tags = uniqueTags(c.Tags)

	case SetProjectFeatured:
		i := indexOf(doc.Projects, c.ID, projectID)
		if i < 0 {
			return fmt.Errorf("project %q: %w", c.ID, ErrUnknownID)
		}
		doc.Projects[i].Featured = c.Featured

	case RemoveProject:
		i := indexOf(doc.Projects, c.ID, projectID)
		if i < 0 {
			return fmt.Errorf("project %q: %w", c.ID, ErrUnknownID)
		}
		doc.Projects = removeAt(doc.Projects, i)
		doc.About.ProjectOrder = dropID(doc.About.ProjectOrder, c.ID)

	case ReorderProjects:
		reordered, err := ordering.Apply(doc.Projects, c.Order, projectID)
		if err != nil {
			return fmt.Errorf("reordering projects: %w", err)
		}
		doc.Projects = reordered
		doc.About.ProjectOrder = ordering.IDs(reordered, projectID)

	case AddTeamMember:
		if c.Member.ID == "" {
			return fmt.Errorf("team member: %w", ErrEmptyID)
		}
		if indexOf(doc.Team, c.Member.ID, memberID) >= 0 {
			return fmt.Errorf("team member %q: %w", c.Member.ID, ErrDuplicateID)
		}
		doc.Team = append(doc.Team, c.Member)

	case SetTeamMemberField:
		i := indexOf(doc.Team, c.ID, memberID)
		if i < 0 {
			return fmt.Errorf("team member %q: %w", c.ID, ErrUnknownID)
		}
		m := &doc.Team[i]
		switch c.Field {
		case TeamName:
			m.Name = c.Value
		case TeamRole:
			m.Role = c.Value
		case TeamImg:
			m.Img = c.Value
		default:
			return fmt.Errorf("team member %q: %w", c.Field, ErrUnknownField)
		}

	case RemoveTeamMember:
		i := indexOf(doc.Team, c.ID, memberID)
		if i < 0 {
			return fmt.Errorf("team member %q: %w", c.ID, ErrUnknownID)
		}
		doc.Team = removeAt(doc.Team, i)
		doc.About.TeamOrder = dropID(doc.About.TeamOrder, c.ID)

	case ReorderTeam:
		reordered, err := ordering.Apply(doc.Team, c.Order, memberID)
		if err != nil {
			return fmt.Errorf("reordering team: %w", err)
		}
		doc.Team = reordered
		doc.About.TeamOrder = ordering.IDs(reordered, memberID)

	case ReplaceDocument:
		if c.Doc == nil {
			return ErrNilDocument
		}
		next := c.Doc.Clone()
		next.Normalize()
		*doc = *next

	default:
		return fmt.Errorf("%T: %w", cmd, ErrUnknownCommand)
	}

	doc.Normalize()
	return nil
}

func inRange(i, n int) bool {
	return i >= 0 && i < n
}

func indexOf[T any](items []T, id string, idOf func(T) string) int {
	for i, item := range items {
		if idOf(item) == id {
			return i
		}
	}
	return -1
}

// removeAt returns a new slice without element i.
func removeAt[T any](items []T, i int) []T {
	out := make([]T, 0, len(items)-1)
	out = append(out, items[:i]...)
	return append(out, items[i+1:]...)
}

func dropID(ids []string, id string) []string {
	if ids == nil {
		return nil
	}
	out := make([]string, 0, len(ids))
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}

// uniqueTags keeps the first occurrence of each non-empty tag.
func uniqueTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]bool, len(tags))
	for _, t := range tags {
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}
