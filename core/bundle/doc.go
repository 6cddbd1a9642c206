// Package bundle moves the built front-end bundle between the local build
// directory served in production mode and an object storage bucket.
//
//   - Sync downloads every object under the configured prefix into the build
//     directory, preserving relative paths.
//   - Publish uploads every file of the build directory under the prefix.
//
// Object keys that would escape the build directory are rejected.
package bundle
