package editor

import "strings"

type Page string

const (
	PageHome      Page = "home"
	PageAbout     Page = "about"
	PageServices  Page = "services"
	PagePortfolio Page = "portfolio"
	PageTeam      Page = "team"
	PageContact   Page = "contact"
	PageAdmin     Page = "admin"
)

func Pages() []Page {
	return []Page{PageHome, PageAbout, PageServices, PagePortfolio, PageTeam, PageContact, PageAdmin}
}

// PageFromPath maps a URL path to a page. Unknown paths render home.
func PageFromPath(path string) Page {
	name := strings.Trim(strings.ToLower(path), "/")
	if name == "" {
		return PageHome
	}
	for _, p := range Pages() {
		if string(p) == name {
			return p
		}
	}
	return PageHome
}
