// Package server implements the development file server used to preview a
// rendered site.
//
// The server binds the first free port of a small range, serves a directory
// with listings, and treats client disconnects as routine: a browser that
// cancels a download or navigates away mid-response produces no traceback
// and no error line. Every other failure is still reported.
package server
