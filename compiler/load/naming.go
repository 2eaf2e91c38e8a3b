package load

import (
	"strings"

	"github.com/go-openapi/inflect"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// Exported converts a schema name to an exported Go identifier:
// "findUser" and "find_user" both become "FindUser". Generated declaration
// names and type annotations go through this so upstream naming quirks
// never leak into identifiers.
func Exported(name string) string {
	parts := strings.Split(inflect.Underscore(name), "_")
	for i, p := range parts {
		parts[i] = titleCaser.String(p)
	}
	return strings.Join(parts, "")
}
