// Package common contains shared constants and sentinel errors used across
// placementdesk components.
package common

// CollectionKeyPrefix namespaces every durable collection key, e.g.
// "company_applicants".
const CollectionKeyPrefix = "company_"

// CollectionKey returns the durable key for the named collection.
func CollectionKey(name string) string {
	return CollectionKeyPrefix + name
}
