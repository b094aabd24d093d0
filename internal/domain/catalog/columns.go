package catalog

import "travelbook/internal/pkg/textlist"

// ListColumn is a text column holding a free-text list.
type ListColumn struct {
	Table   string
	Column  string
	Options textlist.Options
}

// ListColumns returns every free-text list column with the preset used to
// read it. Maintenance tooling walks this to rewrite legacy encodings.
func ListColumns() []ListColumn {
	return []ListColumn{
		{Table: "destinations", Column: "attractions", Options: textlist.Attractions},
		{Table: "hotels", Column: "amenities", Options: textlist.Amenities},
		{Table: "packages", Column: "inclusions", Options: textlist.Inclusions},
		{Table: "packages", Column: "exclusions", Options: field(textlist.Inclusions, "exclusions")},
		{Table: "cruises", Column: "amenities", Options: textlist.Amenities},
		{Table: "drivers", Column: "languages", Options: textlist.Languages},
		{Table: "events", Column: "highlights", Options: field(textlist.Inclusions, "highlights")},
	}
}
