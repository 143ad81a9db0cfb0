// Package cli provides the interactive PhysioFitness terminal client.
//
// It wires configuration, local storage, the REST client, the session store,
// the route gate and the views, then runs a REPL. Every page change goes
// through App.Navigate, which asks the gate first and follows its redirects:
// a logged-out user is sent to /login and a user without the required role is
// sent to /.
//
// Commands:
//   - login / logout / register
//   - whoami: show the logged-in identity
//   - open <path> (alias go): navigate to an application path
//   - routes: list paths and whether the current user may open them
//   - help, exit | quit
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
