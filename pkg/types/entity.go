package types

// EntityType identifies one of the fixed set of stored entity kinds. Each
// entity type owns a field schema (internal/schema) and is backed by one
// spreadsheet tab.
type EntityType string

// The full set of entity types, in declaration order.
const (
	EntityActivities              EntityType = "activities"
	EntityUsers                   EntityType = "users"
	EntityRegistrations           EntityType = "registrations"
	EntityReviews                 EntityType = "reviews"
	EntityFeedback                EntityType = "feedback"
	EntityOrganizationSuggestions EntityType = "organizationSuggestions"
	EntityLogins                  EntityType = "logins"
	EntitySessions                EntityType = "sessions"
	EntityPreorders               EntityType = "preorders"
	EntityI18n                    EntityType = "i18n"
)

// entities lists every entity type in declaration order.
var entities = []EntityType{
	EntityActivities,
	EntityUsers,
	EntityRegistrations,
	EntityReviews,
	EntityFeedback,
	EntityOrganizationSuggestions,
	EntityLogins,
	EntitySessions,
	EntityPreorders,
	EntityI18n,
}

// sheetNames maps each entity type to the title of the spreadsheet tab that
// backs it. The titles are the ones the spreadsheet editors actually use.
var sheetNames = map[EntityType]string{
	EntityActivities:              "Activities",
	EntityUsers:                   "Users",
	EntityRegistrations:           "Registrations",
	EntityReviews:                 "Reviews",
	EntityFeedback:                "Feedback",
	EntityOrganizationSuggestions: "Organization Suggestions",
	EntityLogins:                  "Logins",
	EntitySessions:                "Sessions",
	EntityPreorders:               "Preorders",
	EntityI18n:                    "i18n",
}

// Entities returns every entity type in declaration order.
func Entities() []EntityType {
	out := make([]EntityType, len(entities))
	copy(out, entities)
	return out
}

// SheetName returns the spreadsheet tab title backing the entity, or "" for
// an unknown entity type.
func (e EntityType) SheetName() string {
	return sheetNames[e]
}

// Valid reports whether e is one of the known entity types.
func (e EntityType) Valid() bool {
	_, ok := sheetNames[e]
	return ok
}
