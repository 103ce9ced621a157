package platform

// Package platform contains OS/platform integration glue: data directory
// discovery, directory creation and image asset loading.
