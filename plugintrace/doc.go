// Package plugintrace provides mechanisms to trace events in plugin
// hosts and plugin servers, so that calling applications can record
// those events in their own application-specific logs or other trace
// mechanisms.
package plugintrace
