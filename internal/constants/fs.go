package constants

import "os"

const (
	// DefaultFilePermissions sets the default permissions for regular files: (rw-r--r--).
	// Owner: read and write;
	// Group: read;
	// Others: read.
	DefaultFilePermissions os.FileMode = 0o644

	// SecretFilePermissions sets the permissions for files holding credentials: (rw-------).
	// Owner: read and write;
	// Group and others: no access.
	SecretFilePermissions os.FileMode = 0o600

	// SecretFolderPermissions sets the permissions for folders holding credentials: (rwx------).
	SecretFolderPermissions os.FileMode = 0o700
)

// Application directory and file names.
const (
	// AppDirName is the per-user directory under the home folder.
	AppDirName = ".cryptoalert"
	// CredentialsFilename is the name of the credentials file inside AppDirName.
	CredentialsFilename = "credentials.yaml"
)
