package deploy

import "fmt"

// DuplicateRevisionError is returned by Upload when the revision identifier
// already has an uploaded object and overwriting is disallowed.
type DuplicateRevisionError struct {
	Revision string
}

func (e *DuplicateRevisionError) Error() string {
	return fmt.Sprintf("revision %q already exists (pass overwrite to replace it)", e.Revision)
}

// RevisionNotFoundError is returned by Activate when the revision identifier
// has no uploaded object. The revision must be uploaded first.
type RevisionNotFoundError struct {
	Revision string
}

func (e *RevisionNotFoundError) Error() string {
	return fmt.Sprintf("revision %q has not been uploaded", e.Revision)
}
