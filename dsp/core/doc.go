// Package core holds small numeric helpers and the error types shared by the
// magnification packages.
//
// Every constructor in this module validates its parameters eagerly and
// reports problems as a [*ConfigurationError], which matches
// [ErrConfiguration] under [errors.Is].
package core
