// Package timezone resolves the zone used to answer the device's date query.
package timezone
