package domain

const (
	// VersionFileName is the file at the cookbook root holding the current version.
	VersionFileName = "VERSION"

	// DefaultLockfileName is the Berkshelf lockfile at the cookbook root.
	DefaultLockfileName = "Berksfile.lock"

	// BerksfileName is the Berkshelf dependency file marking the cookbook root.
	BerksfileName = "Berksfile"

	// MetadataRubyFileName is the Ruby DSL metadata file.
	MetadataRubyFileName = "metadata.rb"

	// MetadataJSONFileName is the compiled JSON metadata file.
	MetadataJSONFileName = "metadata.json"

	// ConfigFileName is the base name of the cheflow configuration file.
	ConfigFileName = "cheflow"

	// ConfigDirName is the per-user configuration directory under $HOME.
	ConfigDirName = ".cheflow"

	// EnvPrefix is the prefix of environment variables overriding configuration keys.
	EnvPrefix = "CHEFLOW"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)
