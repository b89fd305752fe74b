package repository

import (
	"encoding/json"

	"github.com/99designs/gqlgen/graphql"
)

// omittable returns a field marked as present, the same way JSON decoding does.
func omittable[T any](v T) graphql.Omittable[T] {
	var o graphql.Omittable[T]
	raw, _ := json.Marshal(v)
	_ = json.Unmarshal(raw, &o)
	return o
}
