// Package events implements the zoo event schedule.
//
// Events carry an RFC 3339 start time and may feature one animal. As with
// employees the animal reference is stored unchecked and listings attach the
// resolved record when it still exists.
package events
