// Package domain defines the entities served by the API (User and Question),
// the truthiness rules applied to decoded request payloads, and the
// merge-on-update semantics shared by both resources.
package domain
