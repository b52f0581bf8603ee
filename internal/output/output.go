// Package output holds the spacing and connector tokens shared by every
// rendered surface, so prompts and command output line up.
package output

const (
	Indent       = "  "
	StepPrefix   = "›"
	LogConnector = "└─"
)
