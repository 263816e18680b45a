// Package jobpost contains the JobPost aggregate: a schedulable work
// assignment with a lifecycle status, a sequence-derived CRID, and the
// checkout details recorded when the assignment completes.
package jobpost
