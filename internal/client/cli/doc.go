// Package cli provides the interactive foorum terminal client.
//
// The App wraps a SessionManager and a FeedService behind a small REPL:
// read the feed, sign in or up, compose posts and inspect local counters.
// The login and signup prompts behave like modal dialogs: one can switch to
// the other, and an empty first answer closes them.
//
// A post typed while signed out is not lost. It is kept as the composer
// draft, the login prompt opens, and after a successful sign-in the draft is
// offered for posting. Closing the prompt keeps the draft; posting it or
// logging out clears it.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits
// or input ends.
package cli
