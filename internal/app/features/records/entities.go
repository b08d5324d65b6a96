// internal/app/features/records/entities.go
package records

// Entity describes one simple collection-backed entity: where its documents
// live and what the create endpoint must validate. There are no cross-entity
// invariants; each router operates on exactly one collection.
type Entity struct {
	// Name is the human-readable singular used in response messages.
	Name string

	// Collection is the Mongo collection name.
	Collection string

	// Required fields must be present and non-empty on create.
	Required []string

	// URLFields must be absolute http(s) URLs when present.
	URLFields []string

	// HTMLFields hold rich text and are sanitized before storage.
	HTMLFields []string

	// IntFields are coerced to integers on create, defaulting to 0 when
	// absent or non-numeric (legacy clients send these as strings).
	IntFields []string
}

// The club's simple entities. Collection names match the legacy database so
// existing documents keep working.
var (
	Blogs = Entity{
		Name:       "blog post",
		Collection: "blogs",
		Required:   []string{"title", "content"},
		HTMLFields: []string{"content"},
	}

	Team = Entity{
		Name:       "team member",
		Collection: "team",
		Required:   []string{"name", "position"},
	}

	Events = Entity{
		Name:       "event",
		Collection: "events",
		Required:   []string{"bannerUrl", "theme", "dates"},
		URLFields:  []string{"bannerUrl"},
		IntFields:  []string{"totalCommittees", "totalDelegates", "internationalDelegates"},
	}

	ExtraEvents = Entity{
		Name:       "extra event",
		Collection: "extra_events",
		Required:   []string{"title", "date"},
	}

	Committee = Entity{
		Name:       "committee member",
		Collection: "club_members",
		Required:   []string{"name", "role"},
	}

	Announcements = Entity{
		Name:       "announcement",
		Collection: "announcements",
		Required:   []string{"title", "message"},
		HTMLFields: []string{"message"},
	}
)
