// Package access decides whether the current user may open an application
// path. The Route Policy maps protected paths to the roles allowed on them;
// paths without an entry are public. Evaluate is the pure decision rule and
// Gate binds it to a policy and a session.
package access
