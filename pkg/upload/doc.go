// Package upload stages files for admin file fields.
//
// Uploads arrive over a multipart POST before the owning document is saved,
// so they are staged under a random id and claimed exactly once when the
// save lands. Unclaimed files expire. Two stores ship: DiskStore for local
// development and single-node deployments, S3Store for everything else.
package upload
