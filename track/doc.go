// Package track writes gameplay telemetry to the Realtime Database: zone
// visit counters under zones/<zone>/visits and player sessions under
// sessions/<user>/.
package track
