// Package feature groups the request controllers of the application.
//
// Controllers exposes every controller as an export of a loader.Namespace,
// which the startup code hands to loader.Manager.Scan.
package feature
