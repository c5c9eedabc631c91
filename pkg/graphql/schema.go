// Package graphql holds the schema plumbing for the read-only query API.
package graphql

import "github.com/graphql-go/graphql"

// NewSchema builds a query-only schema. No Mutation object is registered,
// which makes the GraphQL surface read-only by construction.
func NewSchema(query *graphql.Object) (graphql.Schema, error) {
	return graphql.NewSchema(graphql.SchemaConfig{
		Query: query,
	})
}
