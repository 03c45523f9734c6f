// Package schema maps raw spreadsheet headers to canonical field names.
//
// Headers are free text, edited by non-engineers in two languages, with
// several spellings per logical field. Each entity type owns an ordered
// alias table; resolution scans it in declaration order so that the first
// canonical field claiming a header wins. Resolution is total: a header no
// table recognizes resolves to its own normalized form, which keeps columns
// the schema has not been taught about round-tripping unchanged.
package schema

import (
	"strings"

	"github.com/kidorama/sheetstore/pkg/types"
)

// Field pairs a canonical field name with the raw header spellings that map
// to it. Aliases are literal, case- and accent-sensitive.
type Field struct {
	Name    string
	Aliases []string
}

// tables holds the per-entity field schemas. Order matters twice over: the
// field order is the canonical column order used when provisioning a sheet,
// and it is the priority order when an alias could be claimed by more than
// one field. Do not reorder entries.
var tables = map[types.EntityType][]Field{
	types.EntityActivities: {
		{"id", []string{"id", "ID", "Id"}},
		{"title", []string{"title", "Title", "Titre", "Nom"}},
		{"title_en", []string{"title_en", "title en", "Title EN", "Title (English)", "Titre Anglais", "Nom EN"}},
		{"title_fr", []string{"title_fr", "title fr", "Title FR", "Title (French)", "Titre Français", "Nom FR"}},
		{"description", []string{"description", "Description", "Desc"}},
		{"description_en", []string{"description_en", "description en", "Description EN", "Description (English)"}},
		{"description_fr", []string{"description_fr", "description fr", "Description FR", "Description (French)"}},
		{"categories", []string{"categories", "Category", "Categories", "Catégories"}},
		{"activityType", []string{"activityType", "activity_type", "Type d'activité", "Type d'activit_"}},
		{"adults", []string{"adults", "Adults", "Adultes"}},
		{"websiteLink", []string{"websiteLink", "website_link", "Lien du site", "Website Link"}},
		{"registrationLink", []string{"registrationLink", "registration_link", "Lien pour s'enregistrer", "Registration Link"}},
		{"disponibiliteJours", []string{"disponibiliteJours", "disponibilite_jours", "Disponibilité (jours)", "Availability (days)"}},
		{"disponibiliteDates", []string{"disponibiliteDates", "disponibilite_dates", "Disponibilité (dates)", "Availability (dates)"}},
		{"ageMin", []string{"ageMin", "age_min", "Age Min", "Age Minimum", "Âge Min"}},
		{"ageMax", []string{"ageMax", "age_max", "Age Max", "Age Maximum", "Âge Max"}},
		{"price", []string{"price", "Price", "Prix"}},
		{"price_amount", []string{"price_amount", "price amount", "Amount"}},
		{"currency", []string{"currency", "Currency", "Devise"}},
		{"schedule", []string{"schedule", "Schedule", "Dates", "Horaires"}},
		{"addresses", []string{"addresses", "Addresses", "Adresses", "locations"}},
		{"neighborhood", []string{"neighborhood", "Neighborhood", "Quartier", "Area"}},
		{"locationDetails", []string{"locationDetails", "location_details", "Location Details", "Détails Lieu", "schedule_info"}},
		{"images", []string{"images", "Images", "Photos"}},
		{"providerId", []string{"providerId", "provider_id", "Provider", "Prestataire"}},
		{"contactEmail", []string{"contactEmail", "contact_email", "Contact__Email_", "Contact Email", "Email Contact"}},
		{"contactPhone", []string{"contactPhone", "contact_phone", "Contact__T_l_phone_", "Contact Téléphone", "Contact Phone", "Téléphone Contact"}},
		{"additionalNotes", []string{"additionalNotes", "additional_notes", "Notes_sp_cifiques_additionelles", "Additional Notes", "Notes Additionnelles", "Notes spécifiques"}},
		{"createdAt", []string{"createdAt", "created_at", "Created At", "Date de création"}},
		{"updatedAt", []string{"updatedAt", "updated_at", "Updated At", "Date de mise à jour"}},
	},
	types.EntityUsers: {
		{"id", []string{"id", "ID", "Id"}},
		{"email", []string{"email", "Email", "E-mail"}},
		{"password", []string{"password", "Password", "Mot de passe"}},
		{"role", []string{"role", "Role", "Rôle"}},
		{"profile", []string{"profile", "Profile", "Profil"}},
		{"createdAt", []string{"createdAt", "created_at", "Created At", "Date de création"}},
		{"updatedAt", []string{"updatedAt", "updated_at", "Updated At", "Date de mise à jour"}},
	},
	types.EntityRegistrations: {
		{"id", []string{"id", "ID", "Id"}},
		{"activityId", []string{"activityId", "activity_id", "Activity ID", "Activité"}},
		{"parentId", []string{"parentId", "parent_id", "Parent ID", "Parent"}},
		{"childName", []string{"childName", "child_name", "Child Name", "Nom de l'enfant"}},
		{"parentName", []string{"parentName", "parent_name", "Parent Name", "Nom du parent"}},
		{"email", []string{"email", "Email", "E-mail", "Adresse e-mail"}},
		{"age", []string{"age", "Age", "Âge"}},
		{"specialRequests", []string{"specialRequests", "special_requests", "Special Requests", "Demandes spéciales"}},
		{"organizationName", []string{"organizationName", "organization_name", "Organization", "Organisation", "Organization Name"}},
		{"reservedAt", []string{"reservedAt", "reserved_at", "Reserved At", "Réservé le", "Reservation Time"}},
		{"status", []string{"status", "Status", "Statut"}},
		{"waitlist", []string{"waitlist", "Waitlist", "Liste d'attente"}},
		{"createdAt", []string{"createdAt", "created_at", "Created At", "Date de création"}},
		{"updatedAt", []string{"updatedAt", "updated_at", "Updated At", "Date de mise à jour"}},
	},
	types.EntityReviews: {
		{"id", []string{"id", "ID", "Id"}},
		{"activityId", []string{"activityId", "activity_id", "Activity ID"}},
		{"parentId", []string{"parentId", "parent_id", "Parent ID"}},
		{"rating", []string{"rating", "Rating", "Note", "Stars"}},
		{"comment", []string{"comment", "Comment", "Commentaire"}},
	},
	types.EntityI18n: {
		{"id", []string{"id", "ID", "Id"}},
		{"locale", []string{"locale", "Locale", "Langue"}},
		{"key", []string{"key", "Key", "Clé"}},
		{"value", []string{"value", "Value", "Valeur"}},
	},
	types.EntityFeedback: {
		{"id", []string{"id", "ID", "Id"}},
		{"userId", []string{"userId", "user_id", "User ID"}},
		{"feedback", []string{"feedback", "Feedback", "Commentaires", "Feedback Text"}},
		{"rating", []string{"rating", "Rating", "Évaluation"}},
		{"category", []string{"category", "Category", "Catégorie"}},
		{"suggestion", []string{"suggestion", "Suggestion", "Idée"}},
		{"status", []string{"status", "Status", "Statut"}},
		{"timestamp", []string{"timestamp", "Timestamp", "Date et heure"}},
		{"userAgent", []string{"userAgent", "user_agent", "User Agent"}},
		{"createdAt", []string{"createdAt", "created_at", "Created At", "Date de création"}},
		{"updatedAt", []string{"updatedAt", "updated_at", "Updated At", "Date de mise à jour"}},
	},
	types.EntityOrganizationSuggestions: {
		{"id", []string{"id", "ID", "Id"}},
		{"userId", []string{"userId", "user_id", "User ID"}},
		{"organizationName", []string{"organizationName", "organization_name", "Organization Name", "Nom de l'organisation"}},
		{"organizationEmail", []string{"organizationEmail", "organization_email", "Email", "Organisation Email"}},
		{"organizationPhone", []string{"organizationPhone", "organization_phone", "Phone", "Téléphone"}},
		{"organizationAddress", []string{"organizationAddress", "organization_address", "Address", "Adresse"}},
		{"activityName", []string{"activityName", "activity_name", "Activity Name", "Nom de l'activité"}},
		{"activityDescription", []string{"activityDescription", "activity_description", "Description"}},
		{"activityType", []string{"activityType", "activity_type", "Activity Type", "Type d'activité"}},
		{"categories", []string{"categories", "Categories", "Catégories"}},
		{"ageMin", []string{"ageMin", "age_min", "Min Age", "Âge Min"}},
		{"ageMax", []string{"ageMax", "age_max", "Max Age", "Âge Max"}},
		{"price", []string{"price", "Price", "Prix"}},
		{"websiteLink", []string{"websiteLink", "website_link", "Website Link", "Lien du site"}},
		{"additionalInfo", []string{"additionalInfo", "additional_info", "Additional Info", "Infos additionnelles"}},
		{"status", []string{"status", "Status", "Statut"}},
		{"reviewedBy", []string{"reviewedBy", "reviewed_by", "Reviewed By"}},
		{"reviewedAt", []string{"reviewedAt", "reviewed_at", "Reviewed At"}},
		{"timestamp", []string{"timestamp", "Timestamp", "Date et heure"}},
		{"userAgent", []string{"userAgent", "user_agent", "User Agent"}},
		{"createdAt", []string{"createdAt", "created_at", "Created At", "Date de création"}},
		{"updatedAt", []string{"updatedAt", "updated_at", "Updated At", "Date de mise à jour"}},
	},
	types.EntityLogins: {
		{"id", []string{"id", "ID", "Id"}},
		{"email", []string{"email", "Email", "E-mail"}},
		{"timestamp", []string{"timestamp", "Timestamp", "Date et heure", "Login Time"}},
		{"createdAt", []string{"createdAt", "created_at", "Created At", "Date de création"}},
		{"updatedAt", []string{"updatedAt", "updated_at", "Updated At", "Date de mise à jour"}},
	},
	types.EntitySessions: {
		{"id", []string{"id", "ID", "Id"}},
		{"userId", []string{"userId", "user_id", "User ID"}},
		{"email", []string{"email", "Email", "E-mail"}},
		{"startTime", []string{"startTime", "start_time", "Start Time", "Début"}},
		{"endTime", []string{"endTime", "end_time", "End Time", "Fin"}},
		{"duration", []string{"duration", "Duration", "Durée (secondes)", "Duration (seconds)"}},
		{"pageViews", []string{"pageViews", "page_views", "Page Views", "Pages vues"}},
		{"pages", []string{"pages", "Pages", "Pages visitées"}},
		{"userAgent", []string{"userAgent", "user_agent", "User Agent"}},
		{"ip", []string{"ip", "IP Address", "Adresse IP"}},
		{"createdAt", []string{"createdAt", "created_at", "Created At", "Date de création"}},
		{"updatedAt", []string{"updatedAt", "updated_at", "Updated At", "Date de mise à jour"}},
	},
	types.EntityPreorders: {
		{"id", []string{"id", "ID", "Id"}},
		{"userId", []string{"userId", "user_id", "User ID"}},
		{"userEmail", []string{"userEmail", "user_email", "Email", "E-mail"}},
		{"paymentIntentId", []string{"paymentIntentId", "payment_intent_id", "Payment Intent ID", "Stripe Payment ID"}},
		{"amount", []string{"amount", "Amount", "Montant"}},
		{"promoCode", []string{"promoCode", "promo_code", "Promo Code", "Code Promo"}},
		{"status", []string{"status", "Status", "Statut"}},
		{"createdAt", []string{"createdAt", "created_at", "Created At", "Date de création"}},
		{"updatedAt", []string{"updatedAt", "updated_at", "Updated At", "Date de mise à jour"}},
	},
}

// Fields returns the ordered canonical field names for the entity, or nil
// for an unknown entity type. The slice is a copy.
func Fields(entity types.EntityType) []string {
	schema, ok := tables[entity]
	if !ok {
		return nil
	}
	out := make([]string, len(schema))
	for i, f := range schema {
		out[i] = f.Name
	}
	return out
}

// Normalize reduces a raw header to its comparison form: surrounding
// whitespace trimmed, lowercased, and every character outside [a-z0-9_]
// replaced with '_'.
func Normalize(raw string) string {
	lowered := strings.ToLower(strings.TrimSpace(raw))
	var b strings.Builder
	b.Grow(len(lowered))
	for _, r := range lowered {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	return b.String()
}

// Resolve maps a raw header to a canonical field name for the entity.
// Exact alias matches are tried first in field declaration order, then
// normalized matches, and finally the normalized header itself is returned
// so every column resolves to some field. Resolution never fails.
func Resolve(entity types.EntityType, raw string) string {
	schema := tables[entity]

	for _, f := range schema {
		for _, alias := range f.Aliases {
			if raw == alias {
				return f.Name
			}
		}
	}

	normalized := Normalize(raw)
	for _, f := range schema {
		for _, alias := range f.Aliases {
			if normalized == Normalize(alias) {
				return f.Name
			}
		}
	}

	return normalized
}
