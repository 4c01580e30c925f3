package domain

import "go.trai.ch/zerr"

var (
	// ErrMalformedVersion is returned when a version string is not a valid major.minor.patch version.
	ErrMalformedVersion = zerr.New("malformed version")

	// ErrInvalidBumpLevel is returned when a bump level is not one of major, minor or patch.
	ErrInvalidBumpLevel = zerr.New("invalid bump level, expected 'major', 'minor' or 'patch'")

	// ErrInvalidOutputFormat is returned when the requested report format is unknown.
	ErrInvalidOutputFormat = zerr.New("invalid output format, expected 'text', 'json' or 'yaml'")

	// ErrNotNodeCookbook is returned when a node-only operation is run against a non-node cookbook.
	ErrNotNodeCookbook = zerr.New("cookbook is not a node cookbook")

	// ErrLockfileNotFound is returned when the cookbook has no lockfile.
	ErrLockfileNotFound = zerr.New("lockfile not found")

	// ErrUserAborted is returned when the operator declines a confirmation prompt.
	ErrUserAborted = zerr.New("aborted by user")

	// ErrEnvironmentNotFound is returned when the target environment does not exist on the Chef server.
	ErrEnvironmentNotFound = zerr.New("environment not found")

	// ErrApplyFailed is returned when the lockfile could not be applied to an environment.
	ErrApplyFailed = zerr.New("failed to apply lockfile")

	// ErrFrozenCookbookConflict is returned when uploading a version that already exists and is frozen.
	ErrFrozenCookbookConflict = zerr.New("cookbook version already exists and is frozen")

	// ErrUploadFailed is returned when the cookbook upload fails for any other reason.
	ErrUploadFailed = zerr.New("failed to upload cookbook")

	// ErrVersionFileNotFound is returned when the VERSION file does not exist.
	ErrVersionFileNotFound = zerr.New("VERSION file does not exist")

	// ErrVersionFileWriteFailed is returned when the VERSION file cannot be written.
	ErrVersionFileWriteFailed = zerr.New("failed to write VERSION file")

	// ErrMetadataNotFound is returned when neither metadata.rb nor metadata.json exists.
	ErrMetadataNotFound = zerr.New("cookbook metadata not found")

	// ErrMetadataParseFailed is returned when the cookbook name cannot be read from the metadata.
	ErrMetadataParseFailed = zerr.New("failed to parse cookbook metadata")

	// ErrLockfileParseFailed is returned when the lockfile cannot be parsed.
	ErrLockfileParseFailed = zerr.New("failed to parse lockfile")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigInvalid is returned when the configuration fails validation.
	ErrConfigInvalid = zerr.New("invalid configuration")

	// ErrServerRequestFailed is returned when a Chef server request fails.
	ErrServerRequestFailed = zerr.New("chef server request failed")

	// ErrServerClientFailed is returned when the Chef server client cannot be created.
	ErrServerClientFailed = zerr.New("failed to create chef server client")

	// ErrNotInteractive is returned when a confirmation is required but no terminal is attached.
	ErrNotInteractive = zerr.New("confirmation required but no interactive terminal is attached")
)
