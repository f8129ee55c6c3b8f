package client

import (
	"fmt"
	"strings"
)

// PageErrorPolicy decides what a traversal does when a page cannot be fetched or parsed,
// or when one of its records cannot be turned into the requested value.
type PageErrorPolicy string

const (
	// Abort stops the traversal and makes the error visible through Iterator.Err.
	Abort PageErrorPolicy = "abort"
	// Skip drops the rest of the failing page and continues with its next link, if known.
	Skip PageErrorPolicy = "skip"
	// Collect behaves like Skip and keeps the errors for Iterator.Errors.
	Collect PageErrorPolicy = "collect"
)

func ParsePageErrorPolicy(policy string) (PageErrorPolicy, error) {
	switch p := PageErrorPolicy(strings.ToLower(strings.TrimSpace(policy))); p {
	case Abort, Skip, Collect:
		return p, nil
	case "":
		return Skip, nil
	}

	return "", fmt.Errorf("unknown page error policy %q (expected abort, skip or collect)", policy)
}
