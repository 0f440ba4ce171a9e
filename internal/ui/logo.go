package ui

// logoText is the wordmark shown at the left of the header.
const logoText = "lookout"
