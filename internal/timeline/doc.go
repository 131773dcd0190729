// Package timeline holds per-key press history shared between the capture
// goroutine and the render loop, and reconstructs the scrolling press blocks
// shown for each key on every frame.
//
// The store has exactly one writer (capture) and one reader (the frame
// callback). The reader copies a snapshot out under the read lock and does all
// reconstruction and drawing after releasing it.
package timeline
