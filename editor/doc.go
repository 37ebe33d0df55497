// Package editor provides the editing core and the Bubble Tea front end for a
// single-file text editor.
//
// Controller keeps the cursor and the first visible line consistent with the
// buffer. Session interprets editing events against a buffer.Buffer and a
// Controller, and performs load and save through a storage.Store. Model wraps
// a Session as a Bubble Tea component: it maps key messages to events and
// renders the header, the visible lines and the footer.
package editor
