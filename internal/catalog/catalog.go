// Package catalog resolves user input into the applications a focus session
// permits
package catalog

import (
	"path/filepath"
	"slices"
	"strings"

	"github.com/maruel/natural"

	"github.com/ayoisaiah/locktfin/internal/models"
)

const customIcon = "📱"

// Defaults is the catalog used when the config file does not list any
// applications.
var Defaults = []models.Application{
	{Name: "Safari", Path: "/Applications/Safari.app", Icon: "🌐"},
	{Name: "Chrome", Path: "/Applications/Google Chrome.app", Icon: "🔵"},
	{Name: "Firefox", Path: "/Applications/Firefox.app", Icon: "🦊"},
	{Name: "VS Code", Path: "/Applications/Visual Studio Code.app", Icon: "💙"},
	{Name: "Figma", Path: "/Applications/Figma.app", Icon: "🎨"},
	{Name: "Notion", Path: "/Applications/Notion.app", Icon: "📝"},
	{Name: "Slack", Path: "/Applications/Slack.app", Icon: "💬"},
	{Name: "Discord", Path: "/Applications/Discord.app", Icon: "🎮"},
	{Name: "Terminal", Path: "/Applications/Utilities/Terminal.app", Icon: "⚫"},
	{Name: "Xcode", Path: "/Applications/Xcode.app", Icon: "🔨"},
}

// Catalog is a list of well-known applications.
type Catalog struct {
	apps []models.Application
}

// New returns a catalog of apps, falling back to Defaults when apps is empty.
func New(apps []models.Application) *Catalog {
	if len(apps) == 0 {
		apps = Defaults
	}

	return &Catalog{apps: slices.Clone(apps)}
}

// Sorted returns the catalog in natural order of application names.
func (c *Catalog) Sorted() []models.Application {
	apps := slices.Clone(c.apps)

	slices.SortStableFunc(apps, func(a, b models.Application) int {
		an, bn := strings.ToLower(a.Name), strings.ToLower(b.Name)

		switch {
		case natural.Less(an, bn):
			return -1
		case natural.Less(bn, an):
			return 1
		default:
			return 0
		}
	})

	return apps
}

// Lookup finds an application by name (case-insensitive) or path.
func (c *Catalog) Lookup(s string) (models.Application, bool) {
	for _, app := range c.apps {
		if app.Path == s || strings.EqualFold(app.Name, s) {
			return app, true
		}
	}

	return models.Application{}, false
}

// Resolve turns each input into an application. Inputs that are not in the
// catalog are treated as custom applications if they look like a path.
// Repeated applications are kept once, in first-seen order. Unknown names
// are returned separately.
func (c *Catalog) Resolve(inputs []string) (apps []models.Application, unknown []string) {
	seen := make(map[string]struct{})

	for _, in := range inputs {
		in = strings.TrimSpace(in)
		if in == "" {
			continue
		}

		app, ok := c.Lookup(in)
		if !ok {
			app, ok = Custom(in)
		}

		if !ok {
			unknown = append(unknown, in)
			continue
		}

		if _, dup := seen[app.Path]; dup {
			continue
		}

		seen[app.Path] = struct{}{}

		apps = append(apps, app)
	}

	return apps, unknown
}

// Custom builds an application from a path such as
// "/Applications/Obsidian.app". The name is the base name without its
// extension.
func Custom(path string) (models.Application, bool) {
	if !strings.ContainsRune(path, '/') && !strings.ContainsRune(path, filepath.Separator) {
		return models.Application{}, false
	}

	base := filepath.Base(path)
	name := strings.TrimSuffix(base, filepath.Ext(base))

	if name == "" || name == "." || name == string(filepath.Separator) {
		return models.Application{}, false
	}

	return models.Application{
		Name: name,
		Path: path,
		Icon: customIcon,
	}, true
}
