// Package platform contains OS-specific helpers: whole-file text I/O for the
// translate-file and save-output actions, and revealing files in the system
// file manager.
package platform
