// Package version holds the application version. Interchange files carry it
// and restore/import gate on exact equality.
package version

// Version is the running application's version tag.
const Version = "1.4.0"
