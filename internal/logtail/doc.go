// Package logtail reads the end of tock's session log for the in-app log
// overlay. The file is read in full on each call; session logs stay small.
package logtail
