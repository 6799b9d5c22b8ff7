// Package export delivers rendered report documents to their destination.
//
// A Dispatcher takes finished document bytes together with a MIME type and
// a filename and hands them off; FileDispatcher is the filesystem
// implementation used by the CLI. BatchExporter runs many snapshot exports
// concurrently with a bounded worker limit.
package export
