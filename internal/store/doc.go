package store

// Package store handles the SQLite persistence behind the dialogs: categories,
// step lists with their items and tags, and speed dial records. It is the
// authoritative side of every check the dialogs perform advisorily (such as
// list name uniqueness).
