package filestore

// Error codes for filestore operations.
const (
	// CodeFileNotFound is returned when a file does not exist at the specified path.
	CodeFileNotFound = "FILE_NOT_FOUND"

	// CodeUploadFailed is returned when uploading a file fails.
	CodeUploadFailed = "FILE_UPLOAD_FAILED"

	// CodeDownloadFailed is returned when downloading a file to memory or a stream fails.
	CodeDownloadFailed = "FILE_DOWNLOAD_FAILED"

	// CodeDownloadToDiskFailed is returned when downloading a file to the local disk fails.
	CodeDownloadToDiskFailed = "FILE_DOWNLOAD_TO_DISK_FAILED"

	// CodeMoveFailed is returned when moving a file fails.
	CodeMoveFailed = "FILE_MOVE_FAILED"

	// CodeDeleteFailed is returned when deleting a file fails.
	CodeDeleteFailed = "FILE_DELETE_FAILED"

	// CodeListFailed is returned when listing the files of a directory fails.
	CodeListFailed = "FILE_LIST_FAILED"

	// CodeFolderListFailed is returned when listing the folders of a directory fails.
	CodeFolderListFailed = "FOLDER_LIST_FAILED"

	// CodeCreateDirectoryFailed is returned when a folder cannot be created.
	CodeCreateDirectoryFailed = "CREATE_DIRECTORY_FAILED"

	// CodeExistsCheckFailed is returned when the existence of a path cannot be determined.
	CodeExistsCheckFailed = "EXISTS_CHECK_FAILED"

	// CodeChecksumMismatch is returned when downloaded bytes do not match the remote checksum.
	CodeChecksumMismatch = "CHECKSUM_MISMATCH"

	// CodeDisabled is returned by every operation of a client built from a disabled config.
	CodeDisabled = "FILES_COM_DISABLED"

	// CodeInvalidConfig is returned when the Files.com configuration is incomplete.
	CodeInvalidConfig = "INVALID_CONFIG"

	// CodeAuthenticationFailed is returned when a session cannot be created.
	CodeAuthenticationFailed = "AUTHENTICATION_FAILED"
)
