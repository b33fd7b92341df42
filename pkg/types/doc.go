// Package types defines the domain records, drafts, patches, and standard
// errors for the lawdesk practice management system.
package types
