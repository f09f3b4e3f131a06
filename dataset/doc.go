// Package dataset binds display labels to distance matrices and turns
// solver results back into human-readable reports.
//
// An Instance is the external input shape of tourbound: a name, an ordered
// list of location labels, and a square distance matrix. Labels are display
// only — solvers never see them; they work on vertex indices, and Report
// maps the indices back.
//
// Instances load from YAML documents:
//
//	name: delivery-day-1
//	unit: km
//	labels: [Depot, North, South]
//	distances:
//	  - [0, 4, 7]
//	  - [4, 0, 3]
//	  - [7, 3, 0]
//
// Hyderabad returns the embedded 10-location reference instance from the
// logistics case study that motivated this module.
package dataset
