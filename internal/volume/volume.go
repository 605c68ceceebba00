// Package volume resolves the drive or volume label for a path. The label
// names the database file and fills the row column that locates a video on
// a particular disk.
package volume
