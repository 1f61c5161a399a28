package model

// Package model defines domain data structures used across the app: step list
// entries, submission payloads, speed dial records, and categories. Structures
// are designed for direct binding in the UI and carry no persistence logic.
