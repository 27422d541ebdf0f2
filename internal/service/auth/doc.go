// Package auth holds credential hashing for stored user records.
package auth
