// Package model defines domain data structures used across the app: download
// requests, tasks, resolved media metadata and state enums. Structures are
// designed for direct binding in the UI and explicit state transitions.
package model
