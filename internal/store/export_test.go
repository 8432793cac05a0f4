package store

// NewDBWithClassificator exposes newDB to the external test package.
var NewDBWithClassificator = newDB
