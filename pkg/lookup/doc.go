// Package lookup implements the public HTTP surface of categoryd.
//
// Route maps method, escaped path and raw query to one of a closed set of
// handler kinds:
//
//	GET /ready                 200 "1\n"       never touches the store
//	GET /category?url=<key>    200 "<value>\n" empty value on miss or store error
//	GET /category              200 "\n"        no usable url parameter
//	anything else              404 "\n"
//
// Service performs the dispatch and the store lookup. It holds the single
// shared store handle; every request goroutine uses it concurrently and a
// slow lookup only blocks its own request. Store failures are logged and
// counted but answered with an empty 200 so the HTTP contract stays stable.
//
// Service.Handler adds the middleware stack (recovery, request ids, metrics,
// access log) and ConnContext tags each accepted connection with an id for
// log correlation.
package lookup
