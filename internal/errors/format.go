package errors

import (
	"fmt"
	"strings"
)

// FormatForCLI formats an error for the terminal:
//
//	Error: file not found
//	  path: notes.txt
//	  Hint: Check the path or create the file
//	  Code: ERR_201_FILE_NOT_FOUND
//
// Errors without an AmanError in their chain are reported as internal.
func FormatForCLI(err error) string {
	if err == nil {
		return ""
	}

	ae, ok := As(err)
	if !ok {
		ae = Wrap(ErrCodeInternal, err)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Error: %s\n", ae.Message)
	if ae.Cause != nil && ae.Cause.Error() != ae.Message {
		fmt.Fprintf(&sb, "  Cause: %s\n", ae.Cause)
	}
	for _, k := range ae.detailKeys() {
		fmt.Fprintf(&sb, "  %s: %s\n", k, ae.Details[k])
	}
	if ae.Suggestion != "" {
		fmt.Fprintf(&sb, "  Hint: %s\n", ae.Suggestion)
	}
	fmt.Fprintf(&sb, "  Code: %s\n", ae.Code)

	return sb.String()
}
