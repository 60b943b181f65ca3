// Package platform provides cross-platform filesystem operations used when
// mirroring editor files: metadata-preserving copies and permission changes.
// On Windows, permission bits are not applied because the OS does not
// support Unix-style modes.
package platform
