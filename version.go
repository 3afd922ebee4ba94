package wfreview

// Version is the release of the review tool, reported in traces.
const Version = "0.1.0"
