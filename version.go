package arbor

// Version is the release of the arbor module.
const Version = "0.1.0"
