package turkishstemmer

// Version is the library version, set here and tagged in releases.
const Version = "0.1.0"
