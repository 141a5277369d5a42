package mycontainer

import "strings"

// ReferencePrefix marks a string as a reference to another service.
const ReferencePrefix = "@"

// Reference points to another container entry by id.
type Reference struct {
	ID string
}

func NewReference(id string) Reference {
	return Reference{ID: id}
}

func (r Reference) String() string {
	return r.ID
}

// InflateString turns "@id" into a Reference. A doubled prefix escapes it:
// "@@id" becomes the literal string "@id". Anything else is returned unchanged.
func InflateString(s string) any {
	if !strings.HasPrefix(s, ReferencePrefix) {
		return s
	}
	rest := strings.TrimPrefix(s, ReferencePrefix)
	if strings.HasPrefix(rest, ReferencePrefix) {
		return rest
	}
	return Reference{ID: rest}
}
