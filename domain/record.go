// Package domain defines the record model shared by all handlers.
//
// Books and users are intentionally schemaless: beyond their key attributes
// the store accepts whatever flat attribute set the client supplies, so
// records are carried as plain maps and marshalled to native DynamoDB
// attribute values at the persistence boundary.
package domain

// Attribute names the handlers rely on. Everything else on a record is
// opaque client data.
const (
	BookIDAttribute    = "bookUuid"
	BookOwnerAttribute = "userUuid"

	UserIDAttribute    = "uuid"
	UserRoleAttribute  = "role"
	UserEmailAttribute = "email"
)

// RoleAuthor is the only role with restricted book permissions: an Author
// may delete or update their own books only.
const RoleAuthor = "Author"

// Record is a flat, schemaless item as stored in DynamoDB.
type Record map[string]interface{}

// String returns the named attribute as a string, or "" when it is absent
// or not a string.
func (r Record) String(key string) string {
	if v, ok := r[key].(string); ok {
		return v
	}
	return ""
}
