// Package landing serves the front page at GET /.
//
// With object storage enabled the page is read from public/index.html in the
// bucket; otherwise index.html and its assets come from server.public_dir.
package landing
