// Package prompt asks for a masked value on the terminal.
//
// A Prompt formats whatever the user types through a selector and re-asks
// until the mask is complete. The terminal side sits behind Driver so the
// flow can be scripted in tests; NewSurveyDriver is the interactive one.
package prompt
