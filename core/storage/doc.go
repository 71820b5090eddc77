// Package storage provides the object storage client used for off-machine
// backup snapshots.
//
// It wraps a Minio client behind a small interface so consumers can be tested
// with the mocks subpackage. The client is optional: an empty endpoint in the
// configuration means backups stay on the local filesystem only.
package storage
