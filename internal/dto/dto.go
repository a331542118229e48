// Package dto holds the transfer objects of the HTTP API: the JSON shapes
// returned to clients and the request types the handlers bind into.
//
// Request types carry `param`, `query` and `json` tags for echo's binder and
// `validate` tags for validator. Path and query fields are tagged json:"-"
// so a body cannot overwrite them.
package dto

import "github.com/deppfellow/pokemon-review/internal/validation"

// Mutation results are reported as a bare JSON string.
const (
	MsgCreated = "Successfully Created"
	MsgUpdated = "Successfully Updated"
	MsgDeleted = "Successfully Deleted"
)

// ListRequest is bound by list endpoints that take no input.
type ListRequest struct{}

func (r *ListRequest) Validate() error { return nil }

// matchIDs runs the tag rules and then checks that the id in the body
// names the same record as the id in the path.
func matchIDs(r any, pathParam string, pathID, bodyID int) error {
	if err := validation.Struct(r); err != nil {
		return err
	}
	if pathID != bodyID {
		return validation.CustomValidationErrors{
			{Field: "id", Message: "must match " + pathParam + " in the path"},
		}
	}
	return nil
}
