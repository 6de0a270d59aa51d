package site

// NavItem is a navigation destination. Every item maps to exactly one page.
type NavItem struct {
	Name string
	Path string
	Icon string
}

// NavLink is a NavItem resolved against the current request path.
type NavLink struct {
	NavItem
	Active bool
}

var navItems = []NavItem{
	{Name: "Home", Path: "/", Icon: "home"},
	{Name: "About", Path: "/about", Icon: "user"},
	{Name: "Skills", Path: "/skills", Icon: "wrench"},
	{Name: "Projects", Path: "/projects", Icon: "briefcase"},
	{Name: "Contact", Path: "/contact", Icon: "mail"},
}

// Navigation marks the item whose path equals activePath exactly. Paths that
// match no item leave every link inactive.
func Navigation(activePath string) []NavLink {
	links := make([]NavLink, len(navItems))
	for i, item := range navItems {
		links[i] = NavLink{NavItem: item, Active: item.Path == activePath}
	}
	return links
}
