package ratchet

// Version is the current release of the ratchet module.
var Version = "0.4.1"
