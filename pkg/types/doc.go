// Package types defines the Note entity, the Store and Subscription
// interfaces, configuration, and standard errors for the jotbook storage
// system.
package types
